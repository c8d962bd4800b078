package logic

// Minimal in-package doubles so unit tests don't need the generated mocks.

type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{})     {}
func (nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})     {}
func (nopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Infof(format string, args ...interface{})      {}
func (nopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})      {}
func (nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})     {}

type nopMetricsObserver struct{}

func (nopMetricsObserver) Finish() {}

type nopMetrics struct{}

func (nopMetrics) StartApiRequestIn(label string) IRequestObserver { return nopMetricsObserver{} }
func (nopMetrics) StartChainCallOut(label string) IRequestObserver { return nopMetricsObserver{} }
func (nopMetrics) PostPublished()                                  {}
func (nopMetrics) FeedAggregated()                                 {}
func (nopMetrics) FeedErrored()                                    {}
func (nopMetrics) TrackedFeedCount(count int)                      {}
func (nopMetrics) ServiceStarted()                                 {}
