package logic

import (
	"context"
	"fmt"
	"github.com/Etch-Social/etch-local/shared"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"math/big"
	"sync"
)

// ISession is the one wallet/provider connection, passed explicitly to
// whoever needs it instead of living in ambient state. Without a wallet key
// in secrets the session is read-only: Transactor returns nil and
// state-changing calls fail in the contract client.
type ISession interface {
	Connect(ctx context.Context) error
	Disconnect()
	Connected() bool
	Backend() ChainBackend
	Transactor() *bind.TransactOpts
	Account() common.Address
	ChainID() *big.Int
}

type session struct {
	cfg     *shared.Config
	logger  shared.ILogger
	mu      sync.Mutex
	client  *ethclient.Client
	auth    *bind.TransactOpts
	account common.Address
	chainId *big.Int
}

func NewSession(cfg *shared.Config, logger shared.ILogger) ISession {
	return &session{cfg: cfg, logger: logger}
}

func (s *session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return nil
	}

	client, err := ethclient.DialContext(ctx, s.cfg.ChainRpcUrl)
	if err != nil {
		return fmt.Errorf("failed to connect to chain RPC '%s': %w", s.cfg.ChainRpcUrl, err)
	}
	chainId, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to query chain id: %w", err)
	}
	if s.cfg.ChainId != 0 && chainId.Int64() != s.cfg.ChainId {
		client.Close()
		return fmt.Errorf("connected to chain %v, config expects %d", chainId, s.cfg.ChainId)
	}

	if s.cfg.Secrets.WalletPrivKey != "" {
		privKey, err := crypto.HexToECDSA(shared.StripHexPrefix(s.cfg.Secrets.WalletPrivKey))
		if err != nil {
			client.Close()
			return fmt.Errorf("invalid wallet private key: %w", err)
		}
		auth, err := bind.NewKeyedTransactorWithChainID(privKey, chainId)
		if err != nil {
			client.Close()
			return fmt.Errorf("failed to build transactor: %w", err)
		}
		s.auth = auth
		s.account = crypto.PubkeyToAddress(privKey.PublicKey)
		s.logger.Infof("Wallet session connected: chain %v, account %s", chainId, s.account.Hex())
	} else {
		s.logger.Infof("Wallet session connected read-only: chain %v", chainId)
	}

	s.client = client
	s.chainId = chainId
	return nil
}

func (s *session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Close()
		s.client = nil
		s.auth = nil
		s.chainId = nil
		s.account = common.Address{}
		s.logger.Infof("Wallet session disconnected")
	}
}

func (s *session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil
}

func (s *session) Backend() ChainBackend {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	return s.client
}

func (s *session) Transactor() *bind.TransactOpts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

func (s *session) Account() common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

func (s *session) ChainID() *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chainId
}

// ChainClientFactory builds a contract client for one address on the shared
// session. The aggregator calls it once per tracked feed.
type ChainClientFactory func(contractAddress string) (IEtchContract, error)

func NewChainClientFactory(
	logger shared.ILogger,
	metrics IMetrics,
	sess ISession,
) ChainClientFactory {
	return func(contractAddress string) (IEtchContract, error) {
		if err := shared.ValidateAddress(contractAddress); err != nil {
			return nil, validationError("%v", err)
		}
		backend := sess.Backend()
		if backend == nil {
			// The startup dial may have failed; retry before giving up.
			if err := sess.Connect(context.Background()); err != nil {
				return nil, fmt.Errorf("wallet session is not connected: %w", err)
			}
			backend = sess.Backend()
		}
		return NewEtchContract(common.HexToAddress(contractAddress), backend, sess.Transactor(), logger, metrics), nil
	}
}
