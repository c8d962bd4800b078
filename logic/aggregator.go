package logic

import (
	"context"
	"fmt"
	"github.com/Etch-Social/etch-local/dal"
	"github.com/Etch-Social/etch-local/shared"
	"math/big"
	"sort"
	"sync"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_aggregator.go -package mocks github.com/Etch-Social/etch-local/logic IFeedAggregator

// FeedError reports one tracked contract that could not be loaded. Other
// feeds in the same aggregation are unaffected.
type FeedError struct {
	Address string
	Err     error
}

func (fe *FeedError) Error() string {
	return fmt.Sprintf("feed %s: %v", fe.Address, fe.Err)
}

type IFeedAggregator interface {
	// Aggregate loads every address concurrently and merges the results
	// into one list, newest first. A failing feed yields a FeedError, not a
	// failed aggregation; the error slice tells the caller which feeds are
	// missing from the result.
	Aggregate(ctx context.Context, addresses []string) ([]*Post, []*FeedError)
	TrackedFeeds() ([]string, error)
	AddFeed(address string) ([]string, error)
	RemoveFeed(address string) ([]string, error)
}

type feedAggregator struct {
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
	factory ChainClientFactory
}

func NewFeedAggregator(
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
	factory ChainClientFactory,
) IFeedAggregator {
	return &feedAggregator{
		logger:  logger,
		repo:    repo,
		metrics: metrics,
		factory: factory,
	}
}

func (fa *feedAggregator) Aggregate(ctx context.Context, addresses []string) ([]*Post, []*FeedError) {

	type feedResult struct {
		ix    int
		posts []*Post
		err   error
	}

	results := make([]feedResult, len(addresses))
	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)
		go func(ix int, addr string) {
			defer wg.Done()
			posts, err := fa.loadFeed(ctx, addr)
			results[ix] = feedResult{ix: ix, posts: posts, err: err}
		}(i, address)
	}
	wg.Wait()

	allPosts := make([]*Post, 0)
	feedErrs := make([]*FeedError, 0)
	for i, res := range results {
		if res.err != nil {
			fa.logger.Warnf("Failed to load feed %s: %v", addresses[i], res.err)
			fa.metrics.FeedErrored()
			feedErrs = append(feedErrs, &FeedError{Address: addresses[i], Err: res.err})
			continue
		}
		fa.metrics.FeedAggregated()
		allPosts = append(allPosts, res.posts...)
	}

	// Newest first; stable so same-second posts keep their merge order.
	sort.SliceStable(allPosts, func(i, j int) bool {
		return allPosts[i].CreatedAt > allPosts[j].CreatedAt
	})

	return allPosts, feedErrs
}

// loadFeed returns all posts for one contract, using the post cache plus an
// incremental scan from the persisted block cursor. Token URIs of cached
// entries are re-queried so updatePost shows without a rescan.
func (fa *feedAggregator) loadFeed(ctx context.Context, address string) ([]*Post, error) {

	client, err := fa.factory(address)
	if err != nil {
		return nil, err
	}

	cursor, haveCursor, err := fa.repo.GetCursor(address)
	if err != nil {
		return nil, err
	}

	var posts []*Post
	fromBlock := uint64(0)
	if haveCursor {
		cached, err := fa.repo.GetCachedPosts(address)
		if err != nil {
			return nil, err
		}
		for _, cp := range cached {
			posts = append(posts, postFromCached(cp))
		}
		fromBlock = cursor + 1
	}
	cachedPosts := posts

	fresh, err := client.GetPostEventsSince(ctx, fromBlock)
	if err != nil {
		return nil, err
	}

	if len(fresh) != 0 {
		newRows := make([]*dal.CachedPost, 0, len(fresh))
		maxBlock := cursor
		for _, p := range fresh {
			newRows = append(newRows, cachedFromPost(p))
			if p.BlockNumber > maxBlock {
				maxBlock = p.BlockNumber
			}
		}
		if err := fa.repo.AddCachedPosts(newRows); err != nil {
			fa.logger.Warnf("Failed to cache %d posts for %s: %v", len(newRows), address, err)
		} else if err := fa.repo.SetCursor(address, maxBlock); err != nil {
			fa.logger.Warnf("Failed to advance cursor for %s: %v", address, err)
		}
		posts = append(posts, fresh...)
	} else if !haveCursor {
		// Empty contract: remember we scanned so the next load is
		// incremental too.
		if err := fa.repo.SetCursor(address, 0); err != nil {
			fa.logger.Warnf("Failed to store cursor for %s: %v", address, err)
		}
	}

	fa.refreshTokenUris(ctx, client, cachedPosts, fresh)
	return posts, nil
}

// refreshTokenUris brings cached posts' token URIs up to date. A fresh
// event for the same token already carries the live value and is copied
// over, so an updatePost shows on the cached creation entry too; other
// tokens are re-queried with uri(tokenId). A URI that fails to refresh
// keeps its cached value rather than failing the feed.
func (fa *feedAggregator) refreshTokenUris(ctx context.Context, client IEtchContract, cached []*Post, fresh []*Post) {

	current := make(map[string]string, len(fresh))
	for _, p := range fresh {
		// Later events win, in block order
		current[p.TokenId] = p.TokenUri
	}

	for _, p := range cached {
		uri, ok := current[p.TokenId]
		if !ok {
			tokenId, valid := new(big.Int).SetString(p.TokenId, 10)
			if !valid {
				continue
			}
			var err error
			uri, err = client.URI(ctx, tokenId)
			if err != nil {
				fa.logger.Debugf("Failed to refresh uri(%s) on %s: %v", p.TokenId, p.ContractAddress, err)
				continue
			}
			current[p.TokenId] = uri
		}
		p.TokenUri = uri
	}
}

func (fa *feedAggregator) TrackedFeeds() ([]string, error) {
	feeds, err := fa.repo.GetFeeds()
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(feeds))
	for _, tf := range feeds {
		res = append(res, tf.Address)
	}
	fa.metrics.TrackedFeedCount(len(res))
	return res, nil
}

// AddFeed validates the address and appends it to the tracked set. Adding
// an address that is already tracked is a no-op, not an error.
func (fa *feedAggregator) AddFeed(address string) ([]string, error) {
	if err := shared.ValidateAddress(address); err != nil {
		return nil, validationError("%v", err)
	}
	isNew, err := fa.repo.AddFeedIfNotExist(address)
	if err != nil {
		return nil, err
	}
	if isNew {
		fa.logger.Infof("Now tracking feed contract %s", address)
	} else {
		fa.logger.Infof("Feed contract %s is already tracked", address)
	}
	return fa.TrackedFeeds()
}

func (fa *feedAggregator) RemoveFeed(address string) ([]string, error) {
	removed, err := fa.repo.RemoveFeed(address)
	if err != nil {
		return nil, err
	}
	if removed {
		fa.logger.Infof("No longer tracking feed contract %s", address)
		if err := fa.repo.PurgeContract(address); err != nil {
			fa.logger.Warnf("Failed to purge cache for %s: %v", address, err)
		}
	}
	return fa.TrackedFeeds()
}
