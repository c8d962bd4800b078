package logic

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spaolacci/murmur3"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metadata.go -package mocks github.com/Etch-Social/etch-local/logic IMetadataResolver

const metadataFetchTimeoutSec = 10
const dataUriJsonPrefix = "data:application/json;base64,"

// Metadata is the normalized display form of a post's token document.
type Metadata struct {
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// metadataDoc is the superset of the document shapes seen in the wild:
// {content, images[]} or {content, image}, plus the on-chain NFT form
// {name, description, attributes[], image} where content travels as the
// description or a "content" attribute.
type metadataDoc struct {
	Content     string            `json:"content"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Images      []json.RawMessage `json:"images"`
	Attributes  []struct {
		TraitType string          `json:"trait_type"`
		Value     json.RawMessage `json:"value"`
	} `json:"attributes"`
}

type IMetadataResolver interface {
	// Resolve produces display metadata for one post. Fetch and parse
	// failures are returned to the caller per post; they must not abort a
	// whole feed. A post with neither URI nor inline content resolves to
	// empty metadata, not an error.
	Resolve(post *Post) (*Metadata, error)
}

type metadataResolver struct {
	logger    shared.ILogger
	client    *http.Client
	sanitizer *bluemonday.Policy
	muCache   sync.Mutex
	cache     map[uint64]*Metadata
}

func NewMetadataResolver(logger shared.ILogger) IMetadataResolver {
	return &metadataResolver{
		logger:    logger,
		client:    &http.Client{Timeout: metadataFetchTimeoutSec * time.Second},
		sanitizer: bluemonday.StrictPolicy(),
		cache:     make(map[uint64]*Metadata),
	}
}

func (mr *metadataResolver) Resolve(post *Post) (*Metadata, error) {

	if post.TokenUri == "" {
		// No document to fetch; inline content is all we have, maybe nothing.
		return &Metadata{Content: mr.sanitizer.Sanitize(post.Content), Images: []string{}}, nil
	}

	cacheKey := murmur3.Sum64([]byte(post.TokenUri))
	mr.muCache.Lock()
	if cached, ok := mr.cache[cacheKey]; ok {
		mr.muCache.Unlock()
		return cached, nil
	}
	mr.muCache.Unlock()

	raw, err := mr.fetch(post.TokenUri)
	if err != nil {
		return nil, err
	}
	var doc metadataDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata from '%s': %v", post.TokenUri, err)
	}

	meta := mr.normalize(&doc)
	mr.muCache.Lock()
	mr.cache[cacheKey] = meta
	mr.muCache.Unlock()
	return meta, nil
}

func (mr *metadataResolver) fetch(uri string) ([]byte, error) {

	// Posts minted without storage carry their whole document inline.
	if strings.HasPrefix(uri, dataUriJsonPrefix) {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataUriJsonPrefix))
		if err != nil {
			return nil, fmt.Errorf("failed to decode inline metadata: %v", err)
		}
		return raw, nil
	}
	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		return nil, fmt.Errorf("unsupported metadata URI scheme in '%s'", uri)
	}

	resp, err := mr.client.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata from '%s': %v", uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata fetch from '%s' returned status %d", uri, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata from '%s': %v", uri, err)
	}
	return raw, nil
}

func (mr *metadataResolver) normalize(doc *metadataDoc) *Metadata {

	content := doc.Content
	if content == "" {
		content = doc.Description
	}
	if content == "" {
		for _, attr := range doc.Attributes {
			if attr.TraitType == "content" {
				var val string
				if json.Unmarshal(attr.Value, &val) == nil {
					content = val
				}
				break
			}
		}
	}

	images := make([]string, 0)
	for _, rawImg := range doc.Images {
		// Each entry is either a URL string or a structured {url} object.
		var asStr string
		if json.Unmarshal(rawImg, &asStr) == nil && asStr != "" {
			images = append(images, asStr)
			continue
		}
		var asObj struct {
			Url string `json:"url"`
		}
		if json.Unmarshal(rawImg, &asObj) == nil && asObj.Url != "" {
			images = append(images, asObj.Url)
		}
	}
	if len(images) == 0 && doc.Image != "" {
		images = append(images, doc.Image)
	}

	return &Metadata{
		Content: mr.sanitizer.Sanitize(content),
		Images:  images,
	}
}
