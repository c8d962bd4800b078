package logic

import (
	"context"
	"encoding/hex"
	"fmt"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"math/big"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_chain.go -package mocks github.com/Etch-Social/etch-local/logic IEtchContract

// The Etch v1 ABI is fixed and external; it must match the deployed
// contract bit-exactly. Note that PubEvent does not carry the token id;
// it is recovered from the originating transaction's call data.
const etchAbiJson = `[
	{"type":"event","name":"PubEvent","anonymous":false,"inputs":[
		{"name":"id","type":"bytes32","indexed":false},
		{"name":"pubkey","type":"bytes32","indexed":true},
		{"name":"created_at","type":"uint256","indexed":false},
		{"name":"kind","type":"uint32","indexed":true},
		{"name":"content","type":"string","indexed":false},
		{"name":"tags","type":"string","indexed":false},
		{"name":"sig","type":"string","indexed":false}]},
	{"type":"function","name":"createPost","stateMutability":"nonpayable","inputs":[
		{"name":"toAddress","type":"address"},
		{"name":"url","type":"string"},
		{"name":"tokenId","type":"uint256"},
		{"name":"id","type":"bytes32"},
		{"name":"pubkey","type":"bytes32"},
		{"name":"created_at","type":"uint256"},
		{"name":"kind","type":"uint32"},
		{"name":"content","type":"string"},
		{"name":"tags","type":"string"},
		{"name":"sig","type":"string"},
		{"name":"quantity","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"updatePost","stateMutability":"nonpayable","inputs":[
		{"name":"tokenId","type":"uint256"},
		{"name":"newUrl","type":"string"},
		{"name":"id","type":"bytes32"},
		{"name":"pubkey","type":"bytes32"},
		{"name":"created_at","type":"uint256"},
		{"name":"kind","type":"uint32"},
		{"name":"content","type":"string"},
		{"name":"tags","type":"string"},
		{"name":"sig","type":"string"}],"outputs":[]},
	{"type":"function","name":"uri","stateMutability":"view","inputs":[
		{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"totalPosts","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[
		{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"setAllowMultiple","stateMutability":"nonpayable","inputs":[
		{"name":"tokenId","type":"uint256"},
		{"name":"allow","type":"bool"}],"outputs":[]}
]`

// Positions of tokenId in the call data of the two functions that emit
// PubEvent. Any other selector behind a PubEvent log is an error.
const (
	createPostTokenIdArgIx = 2
	updatePostTokenIdArgIx = 0
)

var etchAbi abi.ABI
var pubEventTopic common.Hash

func init() {
	var err error
	etchAbi, err = abi.JSON(strings.NewReader(etchAbiJson))
	if err != nil {
		panic(fmt.Sprintf("failed to parse Etch ABI: %v", err))
	}
	pubEventTopic = etchAbi.Events["PubEvent"].ID
}

// ChainBackend is the slice of the RPC client the contract client needs.
// *ethclient.Client satisfies it; tests use a fake.
type ChainBackend interface {
	bind.ContractBackend
	TransactionByHash(ctx context.Context, txHash common.Hash) (tx *types.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type CreatePostParams struct {
	ToAddress common.Address
	Url       string
	TokenId   *big.Int
	Id        [32]byte
	Pubkey    [32]byte
	CreatedAt *big.Int
	Kind      uint32
	Content   string
	TagsJson  string
	Sig       string
	Quantity  *big.Int
}

type UpdatePostParams struct {
	TokenId   *big.Int
	NewUrl    string
	Id        [32]byte
	Pubkey    [32]byte
	CreatedAt *big.Int
	Kind      uint32
	Content   string
	TagsJson  string
	Sig       string
}

type IEtchContract interface {
	Address() common.Address
	CreatePost(ctx context.Context, p CreatePostParams) (*types.Transaction, error)
	UpdatePost(ctx context.Context, p UpdatePostParams) (*types.Transaction, error)
	URI(ctx context.Context, tokenId *big.Int) (string, error)
	TotalPosts(ctx context.Context) (*big.Int, error)
	TotalSupply(ctx context.Context, tokenId *big.Int) (*big.Int, error)
	SetAllowMultiple(ctx context.Context, tokenId *big.Int, allow bool) (*types.Transaction, error)
	GetPostEvents(ctx context.Context) ([]*Post, error)
	GetPostEventsSince(ctx context.Context, fromBlock uint64) ([]*Post, error)
	WaitMined(ctx context.Context, tx *types.Transaction) error
}

type etchContract struct {
	address common.Address
	backend ChainBackend
	bound   *bind.BoundContract
	auth    *bind.TransactOpts
	logger  shared.ILogger
	metrics IMetrics
}

// NewEtchContract wraps one deployed contract. auth may be nil for a
// read-only client; state-changing calls will then fail before hitting the
// network.
func NewEtchContract(
	address common.Address,
	backend ChainBackend,
	auth *bind.TransactOpts,
	logger shared.ILogger,
	metrics IMetrics,
) IEtchContract {
	return &etchContract{
		address: address,
		backend: backend,
		bound:   bind.NewBoundContract(address, etchAbi, backend, backend, backend),
		auth:    auth,
		logger:  logger,
		metrics: metrics,
	}
}

func (ec *etchContract) Address() common.Address {
	return ec.address
}

func (ec *etchContract) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if ec.auth == nil {
		return nil, validationError("no wallet key configured; contract is read-only")
	}
	opts := *ec.auth
	opts.Context = ctx
	return &opts, nil
}

func (ec *etchContract) CreatePost(ctx context.Context, p CreatePostParams) (*types.Transaction, error) {
	opts, err := ec.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	obs := ec.metrics.StartChainCallOut("create_post")
	defer obs.Finish()
	tx, err := ec.bound.Transact(opts, "createPost",
		p.ToAddress, p.Url, p.TokenId, p.Id, p.Pubkey, p.CreatedAt, p.Kind,
		p.Content, p.TagsJson, p.Sig, p.Quantity)
	if err != nil {
		return nil, classifyChainError(err)
	}
	ec.logger.Infof("createPost submitted: contract %s, token %v, tx %s",
		ec.address.Hex(), p.TokenId, tx.Hash().Hex())
	return tx, nil
}

func (ec *etchContract) UpdatePost(ctx context.Context, p UpdatePostParams) (*types.Transaction, error) {
	opts, err := ec.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	obs := ec.metrics.StartChainCallOut("update_post")
	defer obs.Finish()
	tx, err := ec.bound.Transact(opts, "updatePost",
		p.TokenId, p.NewUrl, p.Id, p.Pubkey, p.CreatedAt, p.Kind,
		p.Content, p.TagsJson, p.Sig)
	if err != nil {
		return nil, classifyChainError(err)
	}
	ec.logger.Infof("updatePost submitted: contract %s, token %v, tx %s",
		ec.address.Hex(), p.TokenId, tx.Hash().Hex())
	return tx, nil
}

func (ec *etchContract) URI(ctx context.Context, tokenId *big.Int) (string, error) {
	var out []interface{}
	err := ec.bound.Call(&bind.CallOpts{Context: ctx}, &out, "uri", tokenId)
	if err != nil {
		return "", classifyChainError(err)
	}
	res, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected uri() return type %T", out[0])
	}
	return res, nil
}

func (ec *etchContract) TotalPosts(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	err := ec.bound.Call(&bind.CallOpts{Context: ctx}, &out, "totalPosts")
	if err != nil {
		return nil, classifyChainError(err)
	}
	return out[0].(*big.Int), nil
}

func (ec *etchContract) TotalSupply(ctx context.Context, tokenId *big.Int) (*big.Int, error) {
	var out []interface{}
	err := ec.bound.Call(&bind.CallOpts{Context: ctx}, &out, "totalSupply", tokenId)
	if err != nil {
		return nil, classifyChainError(err)
	}
	return out[0].(*big.Int), nil
}

func (ec *etchContract) SetAllowMultiple(ctx context.Context, tokenId *big.Int, allow bool) (*types.Transaction, error) {
	opts, err := ec.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := ec.bound.Transact(opts, "setAllowMultiple", tokenId, allow)
	if err != nil {
		return nil, classifyChainError(err)
	}
	return tx, nil
}

func (ec *etchContract) WaitMined(ctx context.Context, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(ctx, ec.backend, tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return nil
}

// GetPostEvents reconstructs the full post list from the event log, scanning
// from genesis. Kept for compatibility with the original feed behavior; the
// aggregator uses GetPostEventsSince with a persisted cursor instead.
func (ec *etchContract) GetPostEvents(ctx context.Context) ([]*Post, error) {
	return ec.GetPostEventsSince(ctx, 0)
}

// GetPostEventsSince returns one Post per PubEvent log at or above
// fromBlock, in log order. Multiple events for the same token id are not
// deduplicated; each historical create/update is its own entry. Any failure
// aborts the whole call; there is no partial-result mode.
func (ec *etchContract) GetPostEventsSince(ctx context.Context, fromBlock uint64) ([]*Post, error) {

	obs := ec.metrics.StartChainCallOut("get_post_events")
	defer obs.Finish()

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{ec.address},
		Topics:    [][]common.Hash{{pubEventTopic}},
	}
	logs, err := ec.backend.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query PubEvent logs for %s: %w", ec.address.Hex(), err)
	}

	res := make([]*Post, 0, len(logs))
	for i := range logs {
		post, err := ec.postFromLog(ctx, &logs[i])
		if err != nil {
			return nil, err
		}
		res = append(res, post)
	}
	return res, nil
}

func (ec *etchContract) postFromLog(ctx context.Context, lg *types.Log) (*Post, error) {

	if len(lg.Topics) != 3 {
		return nil, fmt.Errorf("malformed PubEvent log in tx %s: %d topics", lg.TxHash.Hex(), len(lg.Topics))
	}

	// Non-indexed payload: id, created_at, content, tags, sig
	vals, err := etchAbi.Events["PubEvent"].Inputs.NonIndexed().Unpack(lg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack PubEvent data in tx %s: %w", lg.TxHash.Hex(), err)
	}
	eventId := vals[0].([32]byte)
	createdAt := vals[1].(*big.Int)
	content := vals[2].(string)
	tagsJson := vals[3].(string)
	sig := vals[4].(string)

	// Indexed: pubkey, kind
	var pubkey [32]byte
	copy(pubkey[:], lg.Topics[1].Bytes())
	kind := uint32(lg.Topics[2].Big().Uint64())

	tokenId, err := ec.recoverTokenId(ctx, lg.TxHash)
	if err != nil {
		return nil, err
	}

	// Always the *current* URI, so updates show on historical entries too.
	tokenUri, err := ec.URI(ctx, tokenId)
	if err != nil {
		return nil, fmt.Errorf("failed to query uri(%v) on %s: %w", tokenId, ec.address.Hex(), err)
	}

	return &Post{
		Id:              hex.EncodeToString(eventId[:]),
		Pubkey:          hex.EncodeToString(pubkey[:]),
		CreatedAt:       createdAt.Int64(),
		Kind:            kind,
		Content:         content,
		Tags:            tagsJson,
		Sig:             sig,
		TokenId:         tokenId.String(),
		TokenUri:        tokenUri,
		TxHash:          lg.TxHash.Hex(),
		ContractAddress: ec.address.Hex(),
		BlockNumber:     lg.BlockNumber,
		LogIndex:        lg.Index,
	}, nil
}

// recoverTokenId re-fetches the transaction that emitted a PubEvent and
// decodes its call data. The event schema does not carry the token id, so
// this coupling to the two known call shapes is unavoidable. Unknown
// selectors fail closed rather than defaulting.
func (ec *etchContract) recoverTokenId(ctx context.Context, txHash common.Hash) (*big.Int, error) {

	tx, _, err := ec.backend.TransactionByHash(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", txHash.Hex(), err)
	}
	data := tx.Data()
	if len(data) < 4 {
		return nil, fmt.Errorf("transaction %s has no decodable call data", txHash.Hex())
	}

	method, err := etchAbi.MethodById(data[:4])
	if err != nil {
		return nil, fmt.Errorf("transaction %s called an unknown function: %w", txHash.Hex(), err)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s call in tx %s: %w", method.Name, txHash.Hex(), err)
	}

	var argIx int
	switch method.Name {
	case "createPost":
		argIx = createPostTokenIdArgIx
	case "updatePost":
		argIx = updatePostTokenIdArgIx
	default:
		return nil, fmt.Errorf("PubEvent emitted by unexpected call '%s' in tx %s", method.Name, txHash.Hex())
	}
	tokenId, ok := args[argIx].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected tokenId type %T in tx %s", args[argIx], txHash.Hex())
	}
	return tokenId, nil
}
