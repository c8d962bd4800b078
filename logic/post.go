package logic

import (
	"github.com/Etch-Social/etch-local/dal"
)

// Post is one PubEvent log entry joined with the token state recovered from
// its originating transaction. The signed fields (Id..Sig) are immutable;
// TokenUri is whatever uri(tokenId) returns right now, so an updatePost is
// reflected even on the original creation entry.
type Post struct {
	Id              string `json:"id"`     // hex, no 0x prefix
	Pubkey          string `json:"pubkey"` // hex, no 0x prefix
	CreatedAt       int64  `json:"createdAt"`
	Kind            uint32 `json:"kind"`
	Content         string `json:"content"`
	Tags            string `json:"tags"` // JSON array of tag arrays
	Sig             string `json:"sig"`
	TokenId         string `json:"tokenId"`
	TokenUri        string `json:"tokenUri"`
	TxHash          string `json:"transactionHash"`
	ContractAddress string `json:"contractAddress"`
	BlockNumber     uint64 `json:"-"`
	LogIndex        uint   `json:"-"`
}

func postFromCached(cp *dal.CachedPost) *Post {
	return &Post{
		Id:              cp.EventId,
		Pubkey:          cp.Pubkey,
		CreatedAt:       cp.CreatedAt,
		Kind:            cp.Kind,
		Content:         cp.Content,
		Tags:            cp.Tags,
		Sig:             cp.Sig,
		TokenId:         cp.TokenId,
		TokenUri:        cp.TokenUri,
		TxHash:          cp.TxHash,
		ContractAddress: cp.ContractAddress,
		BlockNumber:     cp.BlockNumber,
		LogIndex:        cp.LogIndex,
	}
}

func cachedFromPost(p *Post) *dal.CachedPost {
	return &dal.CachedPost{
		ContractAddress: p.ContractAddress,
		EventId:         p.Id,
		Pubkey:          p.Pubkey,
		CreatedAt:       p.CreatedAt,
		Kind:            p.Kind,
		Content:         p.Content,
		Tags:            p.Tags,
		Sig:             p.Sig,
		TokenId:         p.TokenId,
		TokenUri:        p.TokenUri,
		TxHash:          p.TxHash,
		BlockNumber:     p.BlockNumber,
		LogIndex:        p.LogIndex,
	}
}
