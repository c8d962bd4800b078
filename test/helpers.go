package test

import (
	"math/big"

	"github.com/Etch-Social/etch-local/logic"
)

func makePost(contract, tokenId string, createdAt int64, blockNumber uint64) *logic.Post {
	return &logic.Post{
		Id:              "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff",
		Pubkey:          "ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100",
		CreatedAt:       createdAt,
		Kind:            1,
		Content:         "post " + tokenId + " on " + contract,
		Tags:            `[["l","app-etch"]]`,
		Sig:             "deadbeef",
		TokenId:         tokenId,
		TokenUri:        "https://arweave.net/" + tokenId,
		TxHash:          "0xabc" + tokenId,
		ContractAddress: contract,
		BlockNumber:     blockNumber,
		LogIndex:        0,
	}
}

func bigIntEq(val int64) func(x any) bool {
	return func(x any) bool {
		b, ok := x.(*big.Int)
		return ok && b.Cmp(big.NewInt(val)) == 0
	}
}
