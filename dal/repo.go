package dal

import (
	"database/sql"
	"embed"
	"fmt"
	"github.com/Etch-Social/etch-local/shared"
	_ "github.com/mattn/go-sqlite3"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks github.com/Etch-Social/etch-local/dal IRepo

// ISettingsBackend is the narrow settings contract shared by the sqlite repo
// and the env-file fallback store.
type ISettingsBackend interface {
	GetSetting(name string) (val string, found bool, err error)
	SetSetting(name, val string) error
	RemoveSetting(name string) error
}

type IRepo interface {
	ISettingsBackend
	InitUpdateDb()
	GetFeeds() ([]*TrackedFeed, error)
	AddFeedIfNotExist(address string) (isNew bool, err error)
	RemoveFeed(address string) (removed bool, err error)
	GetCachedPosts(contractAddress string) ([]*CachedPost, error)
	AddCachedPosts(posts []*CachedPost) error
	GetCursor(contractAddress string) (lastSeenBlock uint64, found bool, err error)
	SetCursor(contractAddress string, lastSeenBlock uint64) error
	PurgeContract(contractAddress string) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) GetSetting(name string) (string, bool, error) {
	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow("SELECT val FROM settings WHERE name=?", name)
	var val string
	err := row.Scan(&val)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (repo *Repo) SetSetting(name, val string) error {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO settings (name, val) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET val=excluded.val`, name, val)
	return err
}

func (repo *Repo) RemoveSetting(name string) error {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("DELETE FROM settings WHERE name=?", name)
	return err
}

func (repo *Repo) GetFeeds() ([]*TrackedFeed, error) {
	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query("SELECT id, added_at, address FROM feeds ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*TrackedFeed, 0)
	for rows.Next() {
		tf := TrackedFeed{}
		if err = rows.Scan(&tf.Id, &tf.AddedAt, &tf.Address); err != nil {
			return nil, err
		}
		res = append(res, &tf)
	}
	return res, rows.Err()
}

func (repo *Repo) AddFeedIfNotExist(address string) (bool, error) {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	result, err := repo.db.Exec(`INSERT INTO feeds (added_at, address) VALUES (?, ?)
		ON CONFLICT (address) DO NOTHING`, time.Now().UTC(), address)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

func (repo *Repo) RemoveFeed(address string) (bool, error) {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	result, err := repo.db.Exec("DELETE FROM feeds WHERE address=?", address)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected != 0, nil
}

func (repo *Repo) GetCachedPosts(contractAddress string) ([]*CachedPost, error) {
	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(
		`SELECT id, contract_address, event_id, pubkey, created_at, kind, content, tags, sig,
			token_id, token_uri, tx_hash, block_number, log_index
		FROM posts WHERE contract_address=?
		ORDER BY block_number, log_index`, contractAddress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*CachedPost, 0)
	for rows.Next() {
		cp := CachedPost{}
		err = rows.Scan(&cp.Id, &cp.ContractAddress, &cp.EventId, &cp.Pubkey, &cp.CreatedAt,
			&cp.Kind, &cp.Content, &cp.Tags, &cp.Sig, &cp.TokenId, &cp.TokenUri,
			&cp.TxHash, &cp.BlockNumber, &cp.LogIndex)
		if err != nil {
			return nil, err
		}
		res = append(res, &cp)
	}
	return res, rows.Err()
}

func (repo *Repo) AddCachedPosts(posts []*CachedPost) error {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	for _, cp := range posts {
		_, err = tx.Exec(
			`INSERT INTO posts (contract_address, event_id, pubkey, created_at, kind, content,
				tags, sig, token_id, token_uri, tx_hash, block_number, log_index)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (contract_address, tx_hash, log_index) DO NOTHING`,
			cp.ContractAddress, cp.EventId, cp.Pubkey, cp.CreatedAt, cp.Kind, cp.Content,
			cp.Tags, cp.Sig, cp.TokenId, cp.TokenUri, cp.TxHash, cp.BlockNumber, cp.LogIndex)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (repo *Repo) GetCursor(contractAddress string) (uint64, bool, error) {
	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow("SELECT last_seen_block FROM cursors WHERE contract_address=?", contractAddress)
	var block uint64
	err := row.Scan(&block)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return block, true, nil
}

func (repo *Repo) SetCursor(contractAddress string, lastSeenBlock uint64) error {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(
		`INSERT INTO cursors (contract_address, last_seen_block) VALUES (?, ?)
		ON CONFLICT (contract_address) DO UPDATE SET last_seen_block=excluded.last_seen_block`,
		contractAddress, lastSeenBlock)
	return err
}

func (repo *Repo) PurgeContract(contractAddress string) error {
	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if _, err := repo.db.Exec("DELETE FROM posts WHERE contract_address=?", contractAddress); err != nil {
		return err
	}
	_, err := repo.db.Exec("DELETE FROM cursors WHERE contract_address=?", contractAddress)
	return err
}
