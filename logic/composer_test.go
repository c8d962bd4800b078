package logic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/Etch-Social/etch-local/shared"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContract = "0x5555555555555555555555555555555555555555"

type fakeSettings struct {
	vals map[string]string
}

func (fs *fakeSettings) Get(name string) (string, bool, error) {
	val, found := fs.vals[name]
	return val, found, nil
}
func (fs *fakeSettings) Set(name, val string) error { fs.vals[name] = val; return nil }
func (fs *fakeSettings) Remove(name string) error   { delete(fs.vals, name); return nil }

type fakeStorage struct {
	images   [][]byte
	metadata []*MetadataDoc
}

func (fs *fakeStorage) UploadImage(data []byte, contentType string) (string, error) {
	fs.images = append(fs.images, data)
	return fmt.Sprintf("https://arweave.net/img-%d", len(fs.images)), nil
}

func (fs *fakeStorage) UploadMetadata(doc *MetadataDoc) (string, error) {
	fs.metadata = append(fs.metadata, doc)
	return fmt.Sprintf("https://arweave.net/meta-%d", len(fs.metadata)), nil
}

type fakeContract struct {
	createParams *CreatePostParams
	updateParams *UpdatePostParams
}

func (fc *fakeContract) Address() common.Address { return common.HexToAddress(testContract) }

func (fc *fakeContract) CreatePost(ctx context.Context, p CreatePostParams) (*types.Transaction, error) {
	fc.createParams = &p
	return dummyTx(), nil
}

func (fc *fakeContract) UpdatePost(ctx context.Context, p UpdatePostParams) (*types.Transaction, error) {
	fc.updateParams = &p
	return dummyTx(), nil
}

func (fc *fakeContract) URI(ctx context.Context, tokenId *big.Int) (string, error) { return "", nil }
func (fc *fakeContract) TotalPosts(ctx context.Context) (*big.Int, error)          { return big.NewInt(0), nil }
func (fc *fakeContract) TotalSupply(ctx context.Context, tokenId *big.Int) (*big.Int, error) {
	return big.NewInt(0), nil
}
func (fc *fakeContract) SetAllowMultiple(ctx context.Context, tokenId *big.Int, allow bool) (*types.Transaction, error) {
	return dummyTx(), nil
}
func (fc *fakeContract) GetPostEvents(ctx context.Context) ([]*Post, error) { return nil, nil }
func (fc *fakeContract) GetPostEventsSince(ctx context.Context, fromBlock uint64) ([]*Post, error) {
	return nil, nil
}
func (fc *fakeContract) WaitMined(ctx context.Context, tx *types.Transaction) error { return nil }

func dummyTx() *types.Transaction {
	to := common.HexToAddress(testContract)
	return types.NewTx(&types.LegacyTx{Nonce: 1, To: &to, Value: big.NewInt(0),
		Gas: 100000, GasPrice: big.NewInt(1)})
}

type fakeSession struct{}

func (fakeSession) Connect(ctx context.Context) error { return nil }
func (fakeSession) Disconnect()                       {}
func (fakeSession) Connected() bool                   { return true }
func (fakeSession) Backend() ChainBackend             { return nil }
func (fakeSession) Transactor() *bind.TransactOpts    { return nil }
func (fakeSession) Account() common.Address {
	return common.HexToAddress("0x0000000000000000000000000000000000000009")
}
func (fakeSession) ChainID() *big.Int { return big.NewInt(8453) }

type composerHarness struct {
	settings *fakeSettings
	storage  *fakeStorage
	contract *fakeContract
}

func setupComposerTest(t *testing.T, withStorage bool) (*composerHarness, IComposer) {
	t.Helper()

	signingKey := nostr.GeneratePrivateKey()
	h := &composerHarness{
		settings: &fakeSettings{vals: map[string]string{
			shared.SettingNostrPrivateKey: signingKey,
			shared.SettingContractAddress: testContract,
		}},
		contract: &fakeContract{},
	}
	if withStorage {
		h.storage = &fakeStorage{}
	}

	cfg := &shared.Config{ChainName: "base"}
	storageFactory := StorageFactory(func() (IStorage, error) {
		if h.storage == nil {
			return nil, nil
		}
		return h.storage, nil
	})
	chainFactory := ChainClientFactory(func(address string) (IEtchContract, error) {
		return h.contract, nil
	})

	cp := NewComposer(cfg, nopLogger{}, h.settings, storageFactory, chainFactory,
		fakeSession{}, nopMetrics{})
	return h, cp
}

// Rebuilds the signed event from what was submitted on chain and verifies
// the signature, proving the whole pipeline preserved the signed fields.
func eventFromPost(t *testing.T, post *Post) *nostr.Event {
	t.Helper()
	var tags nostr.Tags
	require.NoError(t, json.Unmarshal([]byte(post.Tags), &tags))
	return &nostr.Event{
		ID:        post.Id,
		PubKey:    post.Pubkey,
		CreatedAt: nostr.Timestamp(post.CreatedAt),
		Kind:      int(post.Kind),
		Tags:      tags,
		Content:   post.Content,
		Sig:       post.Sig,
	}
}

func Test_Publish_SignsAndMints(t *testing.T) {

	h, cp := setupComposerTest(t, false)

	post, err := cp.Publish(context.Background(), &Draft{Content: "gm, chain"})

	require.NoError(t, err)
	require.NotNil(t, h.contract.createParams)
	p := h.contract.createParams

	// Event signature round-trips
	ok, err := eventFromPost(t, post).CheckSignature()
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, uint32(nostr.KindTextNote), p.Kind)
	assert.Equal(t, "gm, chain", p.Content)
	assert.Equal(t, int64(1), p.Quantity.Int64())
	assert.Equal(t, p.TokenId.String(), post.TokenId)
	assert.True(t, p.CreatedAt.Int64() > 0)
	assert.Equal(t, fakeSession{}.Account(), p.ToAddress)
}

func Test_Publish_TagsCarryChainBinding(t *testing.T) {

	h, cp := setupComposerTest(t, false)

	post, err := cp.Publish(context.Background(), &Draft{Content: "hello"})
	require.NoError(t, err)

	var tags nostr.Tags
	require.NoError(t, json.Unmarshal([]byte(post.Tags), &tags))

	var chainTag nostr.Tag
	for _, tag := range tags {
		if len(tag) > 0 && tag[0] == "blockchain" {
			chainTag = tag
		}
	}
	require.NotNil(t, chainTag)
	assert.Equal(t, "base", chainTag[1])
	assert.Equal(t, testContract, chainTag[2])
	assert.Equal(t, h.contract.createParams.TokenId.String(), chainTag[3])

	labelFound := false
	for _, tag := range tags {
		if len(tag) >= 2 && tag[0] == "l" && tag[1] == "app-etch" {
			labelFound = true
		}
	}
	assert.True(t, labelFound)
}

func Test_Publish_BareHexContractGetsPrefixed(t *testing.T) {

	h, cp := setupComposerTest(t, false)
	h.settings.vals[shared.SettingContractAddress] = strings.TrimPrefix(testContract, "0x")

	post, err := cp.Publish(context.Background(), &Draft{Content: "hello"})
	require.NoError(t, err)

	assert.Equal(t, testContract, post.ContractAddress)

	var tags nostr.Tags
	require.NoError(t, json.Unmarshal([]byte(post.Tags), &tags))
	for _, tag := range tags {
		if len(tag) > 2 && tag[0] == "blockchain" {
			assert.Equal(t, testContract, tag[2])
		}
	}
}

func Test_Publish_NoStorageInlinesMetadata(t *testing.T) {

	h, cp := setupComposerTest(t, false)

	post, err := cp.Publish(context.Background(), &Draft{Content: "inline me"})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(post.TokenUri, dataUriJsonPrefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(post.TokenUri, dataUriJsonPrefix))
	require.NoError(t, err)

	var doc MetadataDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "inline me", doc.Content)
	assert.Equal(t, defaultPostImage, doc.Image)

	sigFound := false
	for _, attr := range doc.Attributes {
		if attr.TraitType == "sig" {
			sigFound = true
			assert.Equal(t, post.Sig, attr.Value)
		}
	}
	assert.True(t, sigFound)
	assert.Equal(t, post.TokenUri, h.contract.createParams.Url)
}

func Test_Publish_ImageTravelsInContentAndMetadata(t *testing.T) {

	h, cp := setupComposerTest(t, true)

	post, err := cp.Publish(context.Background(), &Draft{
		Content: "look at this",
		Images:  []DraftImage{{Data: []byte{1, 2, 3}, ContentType: "image/png"}},
	})
	require.NoError(t, err)

	// First image URL is appended to the signed content
	assert.Equal(t, "look at this\n\nhttps://arweave.net/img-1", post.Content)
	assert.Equal(t, 1, len(h.storage.images))

	require.Equal(t, 1, len(h.storage.metadata))
	doc := h.storage.metadata[0]
	assert.Equal(t, "https://arweave.net/img-1", doc.Image)
	assert.Equal(t, []string{"https://arweave.net/img-1"}, doc.Images)
	assert.Equal(t, "https://arweave.net/meta-1", post.TokenUri)

	// Signature still verifies with the image URL baked in
	ok, err := eventFromPost(t, post).CheckSignature()
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Publish_EmptyDraftRejected(t *testing.T) {

	_, cp := setupComposerTest(t, false)

	_, err := cp.Publish(context.Background(), &Draft{})

	assert.ErrorIs(t, err, ErrValidation)
}

func Test_Publish_NoSigningKeyRejected(t *testing.T) {

	h, cp := setupComposerTest(t, false)
	delete(h.settings.vals, shared.SettingNostrPrivateKey)

	_, err := cp.Publish(context.Background(), &Draft{Content: "x"})

	assert.ErrorIs(t, err, ErrValidation)
}

func Test_Publish_ImagesNeedStorage(t *testing.T) {

	_, cp := setupComposerTest(t, false)

	_, err := cp.Publish(context.Background(), &Draft{
		Content: "x",
		Images:  []DraftImage{{Data: []byte{1}, ContentType: "image/png"}},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func Test_UpdatePost_RepointsToken(t *testing.T) {

	h, cp := setupComposerTest(t, false)

	post, err := cp.UpdatePost(context.Background(), "1700000000", &Draft{Content: "edited"})
	require.NoError(t, err)

	require.NotNil(t, h.contract.updateParams)
	p := h.contract.updateParams
	assert.Equal(t, int64(1700000000), p.TokenId.Int64())
	assert.Equal(t, "edited", p.Content)
	assert.True(t, strings.HasPrefix(p.NewUrl, dataUriJsonPrefix))
	assert.Equal(t, "1700000000", post.TokenId)

	ok, err := eventFromPost(t, post).CheckSignature()
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_UpdatePost_BadTokenIdRejected(t *testing.T) {

	_, cp := setupComposerTest(t, false)

	_, err := cp.UpdatePost(context.Background(), "not-a-number", &Draft{Content: "x"})

	assert.ErrorIs(t, err, ErrValidation)
}

func Test_NextTokenId_Monotonic(t *testing.T) {

	_, cp := setupComposerTest(t, false)
	c := cp.(*composer)

	first := c.nextTokenId()
	second := c.nextTokenId()
	third := c.nextTokenId()

	assert.True(t, second > first)
	assert.True(t, third > second)
}
