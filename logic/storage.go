package logic

import (
	"encoding/json"
	"fmt"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/everFinance/goar"
	"github.com/everFinance/goar/types"
)

const appNameTag = "EtchLocal"

// IStorage persists post media and metadata durably and returns shareable
// URLs. Backed by Arweave; the JWK authorizing uploads lives in the
// settings store.
type IStorage interface {
	UploadImage(data []byte, contentType string) (url string, err error)
	UploadMetadata(doc *MetadataDoc) (url string, err error)
}

// MetadataDoc is the token document uploaded for each post; uri(tokenId)
// points at it. Attributes carry the full signed event so the post can be
// verified from the document alone.
type MetadataDoc struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	Images      []string       `json:"images"`
	Image       string         `json:"image,omitempty"`
	Attributes  []MetadataAttr `json:"attributes"`
	Timestamp   int64          `json:"timestamp"`
	Version     string         `json:"version"`
}

type MetadataAttr struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

type arweaveStorage struct {
	cfg    *shared.Config
	logger shared.ILogger
	wallet *goar.Wallet
}

// NewArweaveStorage builds a storage client from JWK key material. Fails on
// malformed key material; upload failures surface per call.
func NewArweaveStorage(cfg *shared.Config, logger shared.ILogger, jwkJson string) (IStorage, error) {
	wallet, err := goar.NewWallet([]byte(jwkJson), cfg.ArweaveGateway)
	if err != nil {
		return nil, validationError("invalid Arweave key material: %v", err)
	}
	return &arweaveStorage{cfg: cfg, logger: logger, wallet: wallet}, nil
}

func (as *arweaveStorage) UploadImage(data []byte, contentType string) (string, error) {
	tags := []types.Tag{
		{Name: "Content-Type", Value: contentType},
		{Name: "App-Name", Value: appNameTag},
	}
	tx, err := as.wallet.SendData(data, tags)
	if err != nil {
		return "", fmt.Errorf("failed to upload image to Arweave: %w", err)
	}
	as.logger.Infof("Uploaded %d byte image to Arweave: %s", len(data), tx.ID)
	return as.txUrl(tx.ID), nil
}

func (as *arweaveStorage) UploadMetadata(doc *MetadataDoc) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to serialize metadata: %v", err)
	}
	tags := []types.Tag{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "App-Name", Value: appNameTag},
		{Name: "Type", Value: "post-metadata"},
	}
	tx, err := as.wallet.SendData(data, tags)
	if err != nil {
		return "", fmt.Errorf("failed to upload metadata to Arweave: %w", err)
	}
	as.logger.Infof("Uploaded metadata to Arweave: %s", tx.ID)
	return as.txUrl(tx.ID), nil
}

func (as *arweaveStorage) txUrl(txId string) string {
	return fmt.Sprintf("%s/%s", as.cfg.ArweaveGateway, txId)
}

// StorageFactory returns the storage client for the currently configured
// Arweave key, or nil when no key is set. The key is re-read per call so a
// key saved through the API takes effect without a restart.
type StorageFactory func() (IStorage, error)

func NewStorageFactory(cfg *shared.Config, logger shared.ILogger, settings ISettings) StorageFactory {
	return func() (IStorage, error) {
		jwkJson, found, err := settings.Get(shared.SettingArweaveKey)
		if err != nil {
			return nil, err
		}
		if !found || jwkJson == "" {
			return nil, nil
		}
		return NewArweaveStorage(cfg, logger, jwkJson)
	}
}
