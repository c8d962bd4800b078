package test

import (
	"github.com/Etch-Social/etch-local/test/mocks"
	"go.uber.org/mock/gomock"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

type nopObserver struct{}

func (nopObserver) Finish() {}

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartApiRequestIn(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartChainCallOut(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().PostPublished().AnyTimes()
	mockMetrics.EXPECT().FeedAggregated().AnyTimes()
	mockMetrics.EXPECT().FeedErrored().AnyTimes()
	mockMetrics.EXPECT().TrackedFeedCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}
