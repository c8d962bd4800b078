package dto

// Post is one feed entry as served to the local UI. The signed fields come
// from the chain event; Metadata is resolved from TokenUri and may be
// missing when resolution failed (MetadataError says why).
type Post struct {
	Id              string    `json:"id"`
	Pubkey          string    `json:"pubkey"`
	CreatedAt       int64     `json:"created_at"`
	Kind            uint32    `json:"kind"`
	Content         string    `json:"content"`
	Tags            string    `json:"tags"`
	Sig             string    `json:"sig"`
	TokenId         string    `json:"token_id"`
	TokenUri        string    `json:"token_uri"`
	TxHash          string    `json:"transaction_hash"`
	ContractAddress string    `json:"contract_address"`
	Metadata        *Metadata `json:"metadata,omitempty"`
	MetadataError   string    `json:"metadata_error,omitempty"`
}

type Metadata struct {
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

type FeedError struct {
	Address string `json:"address"`
	Error   string `json:"error"`
}

type TimelineResp struct {
	Posts      []*Post      `json:"posts"`
	FeedErrors []*FeedError `json:"feed_errors"`
}

type FeedsResp struct {
	Contracts []string `json:"contracts"`
}

type AddFeedReq struct {
	Address string `json:"address"`
}

type SettingResp struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

type SaveSettingReq struct {
	Value string `json:"value"`
}

type NewPostReq struct {
	Content string         `json:"content"`
	Images  []ImagePayload `json:"images"`
}

type ImagePayload struct {
	Data        []byte `json:"data"` // base64 in JSON
	ContentType string `json:"content_type"`
}

type PublishResp struct {
	Post *Post `json:"post"`
}
