package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Etch-Social/etch-local/dto"
	"github.com/Etch-Social/etch-local/logic"
	"github.com/Etch-Social/etch-local/server"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/Etch-Social/etch-local/test/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testApiKey = "test-key-0001"

type apiHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockSettings   *mocks.MockISettings
	mockAggregator *mocks.MockIFeedAggregator
	mockComposer   *mocks.MockIComposer
	mockResolver   *mocks.MockIMetadataResolver
	mockMetrics    *mocks.MockIMetrics
}

func setupApiTest(t *testing.T) (*gomock.Controller, *apiHarness, http.Handler) {

	ctrl := gomock.NewController(t)

	h := &apiHarness{
		cfg: &shared.Config{
			Secrets: shared.Secrets{ApiKeys: []string{testApiKey}},
		},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockSettings:   mocks.NewMockISettings(ctrl),
		mockAggregator: mocks.NewMockIFeedAggregator(ctrl),
		mockComposer:   mocks.NewMockIComposer(ctrl),
		mockResolver:   mocks.NewMockIMetadataResolver(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
	}

	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	group := server.NewApiHandlerGroup(h.cfg, h.mockLogger, h.mockSettings,
		h.mockAggregator, h.mockComposer, h.mockResolver, h.mockMetrics)
	router := server.NewMux([]server.IHandlerGroup{group}, h.mockLogger)

	return ctrl, h, router
}

func apiRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		bodyJson, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(bodyJson)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("X-API-KEY", testApiKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func Test_Api_MissingKeyRejected(t *testing.T) {

	ctrl, _, router := setupApiTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET", "/api/feeds", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_Api_GetSetting(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	h.mockSettings.EXPECT().Get(gomock.Eq(shared.SettingContractAddress)).
		Return(contractA, true, nil)

	rec := apiRequest(router, "GET", "/api/settings/"+shared.SettingContractAddress, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.SettingResp
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Value)
	assert.Equal(t, contractA, *resp.Value)
}

func Test_Api_GetSetting_UnknownName(t *testing.T) {

	ctrl, _, router := setupApiTest(t)
	defer ctrl.Finish()

	rec := apiRequest(router, "GET", "/api/settings/SOME_RANDOM_NAME", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Api_SaveSetting_BadAddressRejected(t *testing.T) {

	ctrl, _, router := setupApiTest(t)
	defer ctrl.Finish()

	rec := apiRequest(router, "POST", "/api/settings/"+shared.SettingContractAddress,
		dto.SaveSettingReq{Value: "not-an-address"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Api_AddFeed(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	h.mockAggregator.EXPECT().AddFeed(gomock.Eq(contractA)).
		Return([]string{contractA}, nil)

	rec := apiRequest(router, "POST", "/api/feeds", dto.AddFeedReq{Address: contractA})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.FeedsResp
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{contractA}, resp.Contracts)
}

func Test_Api_AddFeed_ValidationErrorIs400(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	h.mockAggregator.EXPECT().AddFeed(gomock.Any()).
		Return(nil, fmt.Errorf("bad address: %w", logic.ErrValidation))

	rec := apiRequest(router, "POST", "/api/feeds", dto.AddFeedReq{Address: "xyz"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Api_Timeline_ReportsPerFeedErrors(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	post := makePost(contractA, "5", 500, 3)
	h.mockAggregator.EXPECT().TrackedFeeds().Return([]string{contractA, contractB}, nil)
	h.mockAggregator.EXPECT().Aggregate(gomock.Any(), gomock.Eq([]string{contractA, contractB})).
		Return([]*logic.Post{post}, []*logic.FeedError{
			{Address: contractB, Err: fmt.Errorf("rpc timeout")},
		})
	h.mockResolver.EXPECT().Resolve(gomock.Eq(post)).
		Return(&logic.Metadata{Content: "hello", Images: []string{}}, nil)

	rec := apiRequest(router, "GET", "/api/timeline", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.TimelineResp
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, len(resp.Posts))
	assert.Equal(t, "5", resp.Posts[0].TokenId)
	assert.NotNil(t, resp.Posts[0].Metadata)
	assert.Equal(t, "hello", resp.Posts[0].Metadata.Content)
	assert.Equal(t, 1, len(resp.FeedErrors))
	assert.Equal(t, contractB, resp.FeedErrors[0].Address)
}

func Test_Api_Timeline_MetadataFailureDoesNotDropPost(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	post := makePost(contractA, "5", 500, 3)
	h.mockAggregator.EXPECT().TrackedFeeds().Return([]string{contractA}, nil)
	h.mockAggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).
		Return([]*logic.Post{post}, []*logic.FeedError{})
	h.mockResolver.EXPECT().Resolve(gomock.Any()).
		Return(nil, fmt.Errorf("metadata fetch returned status 502"))

	rec := apiRequest(router, "GET", "/api/timeline", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.TimelineResp
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, len(resp.Posts))
	assert.Nil(t, resp.Posts[0].Metadata)
	assert.Contains(t, resp.Posts[0].MetadataError, "502")
}

func Test_Api_PublishPost(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	published := makePost(contractA, "1700000000", 1700000000, 42)
	h.mockComposer.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, draft *logic.Draft) (*logic.Post, error) {
			assert.Equal(t, "hello world", draft.Content)
			return published, nil
		})
	h.mockResolver.EXPECT().Resolve(gomock.Eq(published)).
		Return(&logic.Metadata{Content: "hello world", Images: []string{}}, nil)

	rec := apiRequest(router, "POST", "/api/posts", dto.NewPostReq{Content: "hello world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PublishResp
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1700000000", resp.Post.TokenId)
}

func Test_Api_UpdatePost(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	updated := makePost(contractA, "1700000000", 1700000001, 43)
	h.mockComposer.EXPECT().UpdatePost(gomock.Any(), gomock.Eq("1700000000"), gomock.Any()).
		Return(updated, nil)
	h.mockResolver.EXPECT().Resolve(gomock.Eq(updated)).
		Return(&logic.Metadata{Content: "edited", Images: []string{}}, nil)

	rec := apiRequest(router, "POST", "/api/posts/1700000000", dto.NewPostReq{Content: "edited"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_Api_GetPosts_NoContractConfigured(t *testing.T) {

	ctrl, h, router := setupApiTest(t)
	defer ctrl.Finish()

	h.mockSettings.EXPECT().Get(gomock.Eq(shared.SettingContractAddress)).
		Return("", false, nil)

	rec := apiRequest(router, "GET", "/api/posts", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
