package test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Etch-Social/etch-local/dal"
	"github.com/Etch-Social/etch-local/logic"
	"github.com/Etch-Social/etch-local/test/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const contractA = "0x1111111111111111111111111111111111111111"
const contractB = "0x2222222222222222222222222222222222222222"
const contractC = "0x3333333333333333333333333333333333333333"

type aggregatorHarness struct {
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockMetrics *mocks.MockIMetrics
	contracts   map[string]*mocks.MockIEtchContract
}

// setupAggregatorTest wires a mock contract client per address; addresses
// without one make the factory fail, simulating an unreachable feed.
func setupAggregatorTest(t *testing.T, addresses ...string) (*gomock.Controller, *aggregatorHarness, logic.IFeedAggregator) {

	ctrl := gomock.NewController(t)

	h := &aggregatorHarness{
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		contracts:   make(map[string]*mocks.MockIEtchContract),
	}
	for _, addr := range addresses {
		h.contracts[addr] = mocks.NewMockIEtchContract(ctrl)
	}

	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	factory := logic.ChainClientFactory(func(address string) (logic.IEtchContract, error) {
		if c, ok := h.contracts[address]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("no RPC route to %s", address)
	})
	agg := logic.NewFeedAggregator(h.mockLogger, h.mockRepo, h.mockMetrics, factory)

	return ctrl, h, agg
}

func expectFreshScan(h *aggregatorHarness, address string, posts []*logic.Post, maxBlock uint64) {
	h.mockRepo.EXPECT().GetCursor(gomock.Eq(address)).Return(uint64(0), false, nil)
	h.contracts[address].EXPECT().GetPostEventsSince(gomock.Any(), uint64(0)).Return(posts, nil)
	if len(posts) != 0 {
		h.mockRepo.EXPECT().AddCachedPosts(gomock.Any()).Return(nil)
		h.mockRepo.EXPECT().SetCursor(gomock.Eq(address), gomock.Eq(maxBlock)).Return(nil)
	} else {
		h.mockRepo.EXPECT().SetCursor(gomock.Eq(address), uint64(0)).Return(nil)
	}
}

func Test_Aggregate_MergesNewestFirst(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t, contractA, contractB)
	defer ctrl.Finish()

	expectFreshScan(h, contractA, []*logic.Post{
		makePost(contractA, "100", 100, 10),
		makePost(contractA, "300", 300, 12),
	}, 12)
	expectFreshScan(h, contractB, []*logic.Post{
		makePost(contractB, "200", 200, 7),
	}, 7)

	posts, feedErrs := agg.Aggregate(context.Background(), []string{contractA, contractB})

	assert.Empty(t, feedErrs)
	assert.Equal(t, 3, len(posts))
	assert.Equal(t, int64(300), posts[0].CreatedAt)
	assert.Equal(t, int64(200), posts[1].CreatedAt)
	assert.Equal(t, int64(100), posts[2].CreatedAt)
}

func Test_Aggregate_OneFeedFailing_OthersSurvive(t *testing.T) {

	// contractC gets no mock client, so its factory call fails
	ctrl, h, agg := setupAggregatorTest(t, contractA, contractB)
	defer ctrl.Finish()

	expectFreshScan(h, contractA, []*logic.Post{makePost(contractA, "1", 100, 5)}, 5)
	expectFreshScan(h, contractB, []*logic.Post{makePost(contractB, "2", 200, 6)}, 6)

	posts, feedErrs := agg.Aggregate(context.Background(), []string{contractA, contractB, contractC})

	assert.Equal(t, 2, len(posts))
	assert.Equal(t, 1, len(feedErrs))
	assert.Equal(t, contractC, feedErrs[0].Address)
}

func Test_Aggregate_ChainErrorBecomesFeedError(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t, contractA)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetCursor(gomock.Eq(contractA)).Return(uint64(0), false, nil)
	h.contracts[contractA].EXPECT().GetPostEventsSince(gomock.Any(), uint64(0)).
		Return(nil, errors.New("rpc timeout"))

	posts, feedErrs := agg.Aggregate(context.Background(), []string{contractA})

	assert.Empty(t, posts)
	assert.Equal(t, 1, len(feedErrs))
	assert.Contains(t, feedErrs[0].Err.Error(), "rpc timeout")
}

func Test_Aggregate_CursorMakesScanIncremental(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t, contractA)
	defer ctrl.Finish()

	cached := &dal.CachedPost{
		ContractAddress: contractA,
		EventId:         "cachedevent",
		CreatedAt:       100,
		Kind:            1,
		TokenId:         "77",
		TokenUri:        "https://arweave.net/stale",
		BlockNumber:     10,
	}
	h.mockRepo.EXPECT().GetCursor(gomock.Eq(contractA)).Return(uint64(10), true, nil)
	h.mockRepo.EXPECT().GetCachedPosts(gomock.Eq(contractA)).Return([]*dal.CachedPost{cached}, nil)

	fresh := makePost(contractA, "88", 200, 15)
	h.contracts[contractA].EXPECT().GetPostEventsSince(gomock.Any(), uint64(11)).
		Return([]*logic.Post{fresh}, nil)
	h.mockRepo.EXPECT().AddCachedPosts(gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().SetCursor(gomock.Eq(contractA), uint64(15)).Return(nil)

	// Cached entry's URI is re-queried live; fresh one is not
	h.contracts[contractA].EXPECT().URI(gomock.Any(), gomock.Cond(bigIntEq(77))).
		Return("https://arweave.net/current", nil)

	posts, feedErrs := agg.Aggregate(context.Background(), []string{contractA})

	assert.Empty(t, feedErrs)
	assert.Equal(t, 2, len(posts))
	var cachedPost *logic.Post
	for _, p := range posts {
		if p.TokenId == "77" {
			cachedPost = p
		}
	}
	assert.NotNil(t, cachedPost)
	assert.Equal(t, "https://arweave.net/current", cachedPost.TokenUri)
}

func Test_Aggregate_UpdateEventRefreshesCachedUri(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t, contractA)
	defer ctrl.Finish()

	// Cached creation entry for token 77, URI from before the update
	cached := &dal.CachedPost{
		ContractAddress: contractA,
		EventId:         "cachedevent",
		CreatedAt:       100,
		Kind:            1,
		TokenId:         "77",
		TokenUri:        "https://arweave.net/stale",
		BlockNumber:     10,
	}
	h.mockRepo.EXPECT().GetCursor(gomock.Eq(contractA)).Return(uint64(10), true, nil)
	h.mockRepo.EXPECT().GetCachedPosts(gomock.Eq(contractA)).Return([]*dal.CachedPost{cached}, nil)

	// Fresh update event for the same token carries the live URI; no
	// uri(tokenId) round trip is needed, so none is expected on the mock
	update := makePost(contractA, "77", 200, 15)
	update.TokenUri = "https://arweave.net/current"
	h.contracts[contractA].EXPECT().GetPostEventsSince(gomock.Any(), uint64(11)).
		Return([]*logic.Post{update}, nil)
	h.mockRepo.EXPECT().AddCachedPosts(gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().SetCursor(gomock.Eq(contractA), uint64(15)).Return(nil)

	posts, feedErrs := agg.Aggregate(context.Background(), []string{contractA})

	assert.Empty(t, feedErrs)
	assert.Equal(t, 2, len(posts))
	for _, p := range posts {
		assert.Equal(t, "https://arweave.net/current", p.TokenUri, "created_at %d", p.CreatedAt)
	}
}

func Test_Aggregate_EmptyFeedStoresCursor(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t, contractA)
	defer ctrl.Finish()

	expectFreshScan(h, contractA, []*logic.Post{}, 0)

	posts, feedErrs := agg.Aggregate(context.Background(), []string{contractA})

	assert.Empty(t, posts)
	assert.Empty(t, feedErrs)
}

func Test_AddFeed_InvalidAddressRejected(t *testing.T) {

	ctrl, _, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	_, err := agg.AddFeed("not-an-address")

	assert.ErrorIs(t, err, logic.ErrValidation)
}

func Test_AddFeed_DuplicateIsNoop(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().AddFeedIfNotExist(gomock.Eq(contractA)).Return(false, nil)
	h.mockRepo.EXPECT().GetFeeds().Return([]*dal.TrackedFeed{{Id: 1, Address: contractA}}, nil)

	feeds, err := agg.AddFeed(contractA)

	assert.NoError(t, err)
	assert.Equal(t, []string{contractA}, feeds)
}

func Test_RemoveFeed_PurgesCache(t *testing.T) {

	ctrl, h, agg := setupAggregatorTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().RemoveFeed(gomock.Eq(contractA)).Return(true, nil)
	h.mockRepo.EXPECT().PurgeContract(gomock.Eq(contractA)).Return(nil)
	h.mockRepo.EXPECT().GetFeeds().Return([]*dal.TrackedFeed{}, nil)

	feeds, err := agg.RemoveFeed(contractA)

	assert.NoError(t, err)
	assert.Empty(t, feeds)
}
