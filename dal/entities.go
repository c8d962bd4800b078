package dal

import (
	"time"
)

type TrackedFeed struct {
	Id      int
	AddedAt time.Time
	Address string // 0x1CBd3b2770909D4e10f157cABC84C7264073C9Ec
}

// CachedPost is one decoded PubEvent log, keyed by (contract, tx, log index).
// TokenUri is the URI seen at caching time; callers re-query the chain for
// the current value, since updatePost changes it without a new cache row.
type CachedPost struct {
	Id              int
	ContractAddress string
	EventId         string // hex, no 0x prefix
	Pubkey          string // hex, no 0x prefix
	CreatedAt       int64  // unix seconds, author-supplied
	Kind            uint32
	Content         string
	Tags            string // JSON array of tag arrays, as carried on chain
	Sig             string
	TokenId         string // decimal string
	TokenUri        string
	TxHash          string
	BlockNumber     uint64
	LogIndex        uint
}
