package logic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/ethereum/go-ethereum/common"
	"github.com/nbd-wtf/go-nostr"
	"math/big"
	"strconv"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_composer.go -package mocks github.com/Etch-Social/etch-local/logic IComposer

// Fallback token image when a post has no attached media.
const defaultPostImage = "https://arweave.net/dWPZeOyiaD4h7CUpVKnnjAVPhEOrf5kk2Blg_YRBWuQ"
const metadataVersion = "1.0"
const appLabelTag = "app-etch"

// Draft is the user's composition input: text plus raw image bytes.
type Draft struct {
	Content string
	Images  []DraftImage
}

type DraftImage struct {
	Data        []byte
	ContentType string
}

type IComposer interface {
	// Publish signs the draft as a Nostr event, persists media and
	// metadata, mints the post and waits for confirmation. Any step
	// failure aborts the whole submission; nothing partial is persisted
	// on our side.
	Publish(ctx context.Context, draft *Draft) (*Post, error)
	// UpdatePost re-signs new content for an existing token and repoints
	// its URI. The original signed event remains in chain history.
	UpdatePost(ctx context.Context, tokenId string, draft *Draft) (*Post, error)
}

type composer struct {
	cfg            *shared.Config
	logger         shared.ILogger
	settings       ISettings
	storageFactory StorageFactory
	chainFactory   ChainClientFactory
	sess           ISession
	metrics        IMetrics
	muTokenId      sync.Mutex
	lastTokenId    int64
}

func NewComposer(
	cfg *shared.Config,
	logger shared.ILogger,
	settings ISettings,
	storageFactory StorageFactory,
	chainFactory ChainClientFactory,
	sess ISession,
	metrics IMetrics,
) IComposer {
	return &composer{
		cfg:            cfg,
		logger:         logger,
		settings:       settings,
		storageFactory: storageFactory,
		chainFactory:   chainFactory,
		sess:           sess,
		metrics:        metrics,
	}
}

// nextTokenId issues unix-second token ids, bumped monotonically so two
// posts within the same second still get distinct ids.
func (cp *composer) nextTokenId() int64 {
	cp.muTokenId.Lock()
	defer cp.muTokenId.Unlock()
	next := time.Now().Unix()
	if next <= cp.lastTokenId {
		next = cp.lastTokenId + 1
	}
	cp.lastTokenId = next
	return next
}

func (cp *composer) Publish(ctx context.Context, draft *Draft) (*Post, error) {

	if draft.Content == "" && len(draft.Images) == 0 {
		return nil, validationError("post needs content or an image")
	}

	signingKey, contractAddress, err := cp.loadKeys()
	if err != nil {
		return nil, err
	}
	storage, err := cp.storageFactory()
	if err != nil {
		return nil, err
	}
	if storage == nil && len(draft.Images) != 0 {
		return nil, validationError("an Arweave key is required to attach images")
	}
	client, err := cp.chainFactory(contractAddress)
	if err != nil {
		return nil, err
	}

	imageUrls, err := cp.uploadImages(storage, draft.Images)
	if err != nil {
		return nil, err
	}

	tokenId := cp.nextTokenId()
	event, err := cp.buildSignedEvent(signingKey, contractAddress, tokenId, draft.Content, imageUrls)
	if err != nil {
		return nil, err
	}

	metadataUrl, err := cp.persistMetadata(storage, event, draft.Content, imageUrls)
	if err != nil {
		return nil, err
	}

	params, err := createParamsFromEvent(event, cp.sess.Account(), metadataUrl, tokenId)
	if err != nil {
		return nil, err
	}
	tx, err := client.CreatePost(ctx, *params)
	if err != nil {
		return nil, err
	}
	if err = client.WaitMined(ctx, tx); err != nil {
		return nil, err
	}

	cp.metrics.PostPublished()
	cp.logger.Infof("Post published: token %d on %s", tokenId, contractAddress)

	tagsJson, _ := json.Marshal(event.Tags)
	return &Post{
		Id:              event.ID,
		Pubkey:          event.PubKey,
		CreatedAt:       int64(event.CreatedAt),
		Kind:            uint32(event.Kind),
		Content:         event.Content,
		Tags:            string(tagsJson),
		Sig:             event.Sig,
		TokenId:         strconv.FormatInt(tokenId, 10),
		TokenUri:        metadataUrl,
		TxHash:          tx.Hash().Hex(),
		ContractAddress: contractAddress,
	}, nil
}

func (cp *composer) UpdatePost(ctx context.Context, tokenIdStr string, draft *Draft) (*Post, error) {

	tokenId, err := strconv.ParseInt(tokenIdStr, 10, 64)
	if err != nil {
		return nil, validationError("'%s' is not a valid token id", tokenIdStr)
	}
	if draft.Content == "" && len(draft.Images) == 0 {
		return nil, validationError("post needs content or an image")
	}

	signingKey, contractAddress, err := cp.loadKeys()
	if err != nil {
		return nil, err
	}
	storage, err := cp.storageFactory()
	if err != nil {
		return nil, err
	}
	if storage == nil && len(draft.Images) != 0 {
		return nil, validationError("an Arweave key is required to attach images")
	}
	client, err := cp.chainFactory(contractAddress)
	if err != nil {
		return nil, err
	}

	imageUrls, err := cp.uploadImages(storage, draft.Images)
	if err != nil {
		return nil, err
	}
	event, err := cp.buildSignedEvent(signingKey, contractAddress, tokenId, draft.Content, imageUrls)
	if err != nil {
		return nil, err
	}
	metadataUrl, err := cp.persistMetadata(storage, event, draft.Content, imageUrls)
	if err != nil {
		return nil, err
	}

	params, err := updateParamsFromEvent(event, metadataUrl, tokenId)
	if err != nil {
		return nil, err
	}
	tx, err := client.UpdatePost(ctx, *params)
	if err != nil {
		return nil, err
	}
	if err = client.WaitMined(ctx, tx); err != nil {
		return nil, err
	}

	cp.logger.Infof("Post updated: token %d on %s", tokenId, contractAddress)

	tagsJson, _ := json.Marshal(event.Tags)
	return &Post{
		Id:              event.ID,
		Pubkey:          event.PubKey,
		CreatedAt:       int64(event.CreatedAt),
		Kind:            uint32(event.Kind),
		Content:         event.Content,
		Tags:            string(tagsJson),
		Sig:             event.Sig,
		TokenId:         tokenIdStr,
		TokenUri:        metadataUrl,
		TxHash:          tx.Hash().Hex(),
		ContractAddress: contractAddress,
	}, nil
}

func (cp *composer) loadKeys() (signingKey, contractAddress string, err error) {
	signingKey, found, err := cp.settings.Get(shared.SettingNostrPrivateKey)
	if err != nil {
		return "", "", err
	}
	if !found || signingKey == "" {
		return "", "", validationError("no signing key configured; set it up first")
	}
	if err = shared.ValidatePrivKeyHex(signingKey); err != nil {
		return "", "", validationError("%v", err)
	}
	contractAddress, found, err = cp.settings.Get(shared.SettingContractAddress)
	if err != nil {
		return "", "", err
	}
	if !found || contractAddress == "" {
		return "", "", validationError("no contract address configured; set it up first")
	}
	// The address validator accepts bare hex; the signed tag and the
	// stored post carry the 0x form.
	return shared.StripHexPrefix(signingKey), shared.EnsureHexPrefix(contractAddress), nil
}

func (cp *composer) uploadImages(storage IStorage, images []DraftImage) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := storage.UploadImage(img.Data, img.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// buildSignedEvent makes the canonical kind-1 event, derives id, pubkey and
// sig from the signing key, and verifies the signature round-trips before
// anything is submitted anywhere.
func (cp *composer) buildSignedEvent(signingKey, contractAddress string, tokenId int64, content string, imageUrls []string) (*nostr.Event, error) {

	pubkey, err := nostr.GetPublicKey(signingKey)
	if err != nil {
		return nil, validationError("cannot derive public key: %v", err)
	}

	// Convention: first image travels appended to the text body, since the
	// signed event has no structured image field.
	eventContent := content
	if len(imageUrls) != 0 {
		eventContent = fmt.Sprintf("%s\n\n%s", content, imageUrls[0])
	}

	event := nostr.Event{
		PubKey:    pubkey,
		CreatedAt: nostr.Now(),
		Kind:      nostr.KindTextNote,
		Tags: nostr.Tags{
			{"l", appLabelTag},
			{"p", pubkey},
			{"blockchain", cp.cfg.ChainName, contractAddress, strconv.FormatInt(tokenId, 10)},
		},
		Content: eventContent,
	}
	if err = event.Sign(signingKey); err != nil {
		return nil, fmt.Errorf("failed to sign event: %v", err)
	}
	ok, err := event.CheckSignature()
	if err != nil || !ok {
		return nil, fmt.Errorf("signed event failed verification: %v", err)
	}
	return &event, nil
}

// persistMetadata uploads the token document, or inlines it as a data URI
// when no storage is configured.
func (cp *composer) persistMetadata(storage IStorage, event *nostr.Event, content string, imageUrls []string) (string, error) {

	doc := &MetadataDoc{
		Name:        fmt.Sprintf("%s-%d-%s", event.PubKey, time.Now().UnixMilli(), shared.TruncateWithEllipsis(content, shared.MaxNameLen)),
		Description: content,
		Content:     content,
		Images:      imageUrls,
		Timestamp:   time.Now().UnixMilli(),
		Version:     metadataVersion,
		Attributes: []MetadataAttr{
			{TraitType: "kind", Value: event.Kind},
			{TraitType: "sig", Value: event.Sig},
			{TraitType: "id", Value: event.ID},
			{TraitType: "pubkey", Value: event.PubKey},
			{TraitType: "created_at", Value: int64(event.CreatedAt)},
			{TraitType: "content", Value: event.Content},
		},
	}
	for _, tag := range event.Tags {
		if len(tag) >= 2 {
			doc.Attributes = append(doc.Attributes, MetadataAttr{TraitType: "tag-" + tag[0], Value: tag[1:]})
		}
	}
	if len(imageUrls) != 0 {
		doc.Image = imageUrls[0]
	} else {
		doc.Image = defaultPostImage
	}

	if storage != nil {
		return storage.UploadMetadata(doc)
	}

	docJson, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to serialize metadata: %v", err)
	}
	return dataUriJsonPrefix + base64.StdEncoding.EncodeToString(docJson), nil
}

func createParamsFromEvent(event *nostr.Event, toAddress common.Address, metadataUrl string, tokenId int64) (*CreatePostParams, error) {
	id, err := shared.HexToBytes32(event.ID)
	if err != nil {
		return nil, validationError("malformed event id: %v", err)
	}
	pubkey, err := shared.HexToBytes32(event.PubKey)
	if err != nil {
		return nil, validationError("malformed event pubkey: %v", err)
	}
	tagsJson, err := json.Marshal(event.Tags)
	if err != nil {
		return nil, err
	}
	return &CreatePostParams{
		ToAddress: toAddress,
		Url:       metadataUrl,
		TokenId:   big.NewInt(tokenId),
		Id:        id,
		Pubkey:    pubkey,
		CreatedAt: big.NewInt(int64(event.CreatedAt)),
		Kind:      uint32(event.Kind),
		Content:   event.Content,
		TagsJson:  string(tagsJson),
		Sig:       event.Sig,
		Quantity:  big.NewInt(1),
	}, nil
}

func updateParamsFromEvent(event *nostr.Event, metadataUrl string, tokenId int64) (*UpdatePostParams, error) {
	id, err := shared.HexToBytes32(event.ID)
	if err != nil {
		return nil, validationError("malformed event id: %v", err)
	}
	pubkey, err := shared.HexToBytes32(event.PubKey)
	if err != nil {
		return nil, validationError("malformed event pubkey: %v", err)
	}
	tagsJson, err := json.Marshal(event.Tags)
	if err != nil {
		return nil, err
	}
	return &UpdatePostParams{
		TokenId:   big.NewInt(tokenId),
		NewUrl:    metadataUrl,
		Id:        id,
		Pubkey:    pubkey,
		CreatedAt: big.NewInt(int64(event.CreatedAt)),
		Kind:      uint32(event.Kind),
		Content:   event.Content,
		TagsJson:  string(tagsJson),
		Sig:       event.Sig,
	}, nil
}
