package server

import (
	"encoding/json"
	"github.com/Etch-Social/etch-local/dto"
	"github.com/Etch-Social/etch-local/logic"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/gorilla/mux"
	"net/http"
	"sync"
)

// Settings the API will read or write. Anything else is a client error.
var knownSettings = map[string]bool{
	shared.SettingNostrPrivateKey: true,
	shared.SettingArweaveKey:      true,
	shared.SettingContractAddress: true,
	shared.SettingFeedContracts:   true,
}

type apiHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	settings   logic.ISettings
	aggregator logic.IFeedAggregator
	composer   logic.IComposer
	resolver   logic.IMetadataResolver
	metrics    logic.IMetrics
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	settings logic.ISettings,
	aggregator logic.IFeedAggregator,
	composer logic.IComposer,
	resolver logic.IMetadataResolver,
	metrics logic.IMetrics,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		settings:   settings,
		aggregator: aggregator,
		composer:   composer,
		resolver:   resolver,
		metrics:    metrics,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/settings/{name}", func(w http.ResponseWriter, r *http.Request) { hg.getSetting(w, r) }},
		{"POST", "/settings/{name}", func(w http.ResponseWriter, r *http.Request) { hg.postSetting(w, r) }},
		{"DELETE", "/settings/{name}", func(w http.ResponseWriter, r *http.Request) { hg.deleteSetting(w, r) }},
		{"GET", "/feeds", func(w http.ResponseWriter, r *http.Request) { hg.getFeeds(w, r) }},
		{"POST", "/feeds", func(w http.ResponseWriter, r *http.Request) { hg.postFeeds(w, r) }},
		{"DELETE", "/feeds/{address}", func(w http.ResponseWriter, r *http.Request) { hg.deleteFeed(w, r) }},
		{"GET", "/posts", func(w http.ResponseWriter, r *http.Request) { hg.getPosts(w, r) }},
		{"POST", "/posts", func(w http.ResponseWriter, r *http.Request) { hg.postPosts(w, r) }},
		{"POST", "/posts/{tokenId}", func(w http.ResponseWriter, r *http.Request) { hg.postPostUpdate(w, r) }},
		{"GET", "/timeline", func(w http.ResponseWriter, r *http.Request) { hg.getTimeline(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getSetting(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !knownSettings[name] {
		writeErrorResponse(w, "unknown setting: "+name, http.StatusBadRequest)
		return
	}
	val, found, err := hg.settings.Get(name)
	if err != nil {
		hg.logger.Errorf("Failed to get setting '%s': %v", name, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := dto.SettingResp{Name: name}
	if found {
		resp.Value = &val
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) postSetting(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !knownSettings[name] {
		writeErrorResponse(w, "unknown setting: "+name, http.StatusBadRequest)
		return
	}
	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.SaveSettingReq
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in setting request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if name == shared.SettingContractAddress {
		if err := shared.ValidateAddress(req.Value); err != nil {
			writeErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if name == shared.SettingNostrPrivateKey {
		if err := shared.ValidatePrivKeyHex(req.Value); err != nil {
			writeErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := hg.settings.Set(name, req.Value); err != nil {
		hg.logger.Errorf("Failed to save setting '%s': %v", name, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	hg.logger.Infof("Setting '%s' saved", name)
	writeJsonResponse(hg.logger, w, &dto.SettingResp{Name: name, Value: &req.Value})
}

func (hg *apiHandlerGroup) deleteSetting(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !knownSettings[name] {
		writeErrorResponse(w, "unknown setting: "+name, http.StatusBadRequest)
		return
	}
	if err := hg.settings.Remove(name); err != nil {
		hg.logger.Errorf("Failed to remove setting '%s': %v", name, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	hg.logger.Infof("Setting '%s' removed", name)
	writeJsonResponse(hg.logger, w, &dto.SettingResp{Name: name})
}

func (hg *apiHandlerGroup) getFeeds(w http.ResponseWriter, r *http.Request) {
	contracts, err := hg.aggregator.TrackedFeeds()
	if err != nil {
		hg.logger.Errorf("Failed to list tracked feeds: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.FeedsResp{Contracts: contracts})
}

func (hg *apiHandlerGroup) postFeeds(w http.ResponseWriter, r *http.Request) {
	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.AddFeedReq
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in feed request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	contracts, err := hg.aggregator.AddFeed(req.Address)
	if err != nil {
		writeLogicError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.FeedsResp{Contracts: contracts})
}

func (hg *apiHandlerGroup) deleteFeed(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	contracts, err := hg.aggregator.RemoveFeed(address)
	if err != nil {
		writeLogicError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.FeedsResp{Contracts: contracts})
}

// getPosts serves the user's own feed, i.e. the configured contract only.
func (hg *apiHandlerGroup) getPosts(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("get_posts")
	defer obs.Finish()

	contractAddress, found, err := hg.settings.Get(shared.SettingContractAddress)
	if err != nil {
		hg.logger.Errorf("Failed to get contract address: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !found || contractAddress == "" {
		writeErrorResponse(w, "no contract address configured", http.StatusBadRequest)
		return
	}
	posts, feedErrs := hg.aggregator.Aggregate(r.Context(), []string{contractAddress})
	if len(feedErrs) != 0 {
		writeLogicError(w, feedErrs[0].Err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.TimelineResp{
		Posts:      hg.resolvePosts(posts),
		FeedErrors: []*dto.FeedError{},
	})
}

// getTimeline merges all tracked feeds. Individual feed failures are
// reported alongside the posts that did load.
func (hg *apiHandlerGroup) getTimeline(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("get_timeline")
	defer obs.Finish()

	contracts, err := hg.aggregator.TrackedFeeds()
	if err != nil {
		hg.logger.Errorf("Failed to list tracked feeds: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	posts, feedErrs := hg.aggregator.Aggregate(r.Context(), contracts)
	dtoErrs := make([]*dto.FeedError, 0, len(feedErrs))
	for _, fe := range feedErrs {
		dtoErrs = append(dtoErrs, &dto.FeedError{Address: fe.Address, Error: fe.Err.Error()})
	}
	writeJsonResponse(hg.logger, w, &dto.TimelineResp{
		Posts:      hg.resolvePosts(posts),
		FeedErrors: dtoErrs,
	})
}

func (hg *apiHandlerGroup) postPosts(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("publish_post")
	defer obs.Finish()

	draft := hg.readDraft(w, r)
	if draft == nil {
		return
	}
	post, err := hg.composer.Publish(r.Context(), draft)
	if err != nil {
		hg.logger.Warnf("Failed to publish post: %v", err)
		writeLogicError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.PublishResp{Post: hg.resolvePost(post)})
}

func (hg *apiHandlerGroup) postPostUpdate(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("update_post")
	defer obs.Finish()

	tokenId := mux.Vars(r)["tokenId"]
	draft := hg.readDraft(w, r)
	if draft == nil {
		return
	}
	post, err := hg.composer.UpdatePost(r.Context(), tokenId, draft)
	if err != nil {
		hg.logger.Warnf("Failed to update post %s: %v", tokenId, err)
		writeLogicError(w, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.PublishResp{Post: hg.resolvePost(post)})
}

func (hg *apiHandlerGroup) readDraft(w http.ResponseWriter, r *http.Request) *logic.Draft {
	body := readBody(hg.logger, w, r)
	if body == nil {
		return nil
	}
	var req dto.NewPostReq
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in post request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return nil
	}
	draft := logic.Draft{Content: req.Content}
	for _, img := range req.Images {
		draft.Images = append(draft.Images, logic.DraftImage{Data: img.Data, ContentType: img.ContentType})
	}
	return &draft
}

// resolvePosts fetches display metadata for each post concurrently. A post
// whose metadata cannot be resolved is still returned, with the error on it.
func (hg *apiHandlerGroup) resolvePosts(posts []*logic.Post) []*dto.Post {
	res := make([]*dto.Post, len(posts))
	var wg sync.WaitGroup
	for i, post := range posts {
		wg.Add(1)
		go func(ix int, p *logic.Post) {
			defer wg.Done()
			res[ix] = hg.resolvePost(p)
		}(i, post)
	}
	wg.Wait()
	return res
}

func (hg *apiHandlerGroup) resolvePost(post *logic.Post) *dto.Post {
	res := dto.Post{
		Id:              post.Id,
		Pubkey:          post.Pubkey,
		CreatedAt:       post.CreatedAt,
		Kind:            post.Kind,
		Content:         post.Content,
		Tags:            post.Tags,
		Sig:             post.Sig,
		TokenId:         post.TokenId,
		TokenUri:        post.TokenUri,
		TxHash:          post.TxHash,
		ContractAddress: post.ContractAddress,
	}
	meta, err := hg.resolver.Resolve(post)
	if err != nil {
		hg.logger.Debugf("Failed to resolve metadata for token %s: %v", post.TokenId, err)
		res.MetadataError = err.Error()
		return &res
	}
	res.Metadata = &dto.Metadata{Content: meta.Content, Images: meta.Images}
	return &res
}
