package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to config.json in development environment
)

// Names of the user-editable settings held in the settings store. These are
// not config file values; they are mutated at runtime through the API.
const (
	SettingNostrPrivateKey = "NOSTR_PRIVATE_KEY"
	SettingArweaveKey      = "ARWEAVE_KEY"
	SettingContractAddress = "CONTRACT_ADDRESS"
	SettingFeedContracts   = "FEED_CONTRACTS"
)

type Config struct {
	Secrets         Secrets `json:"-"`
	LogFile         string  `json:"log_file"`
	LogLevel        string  `json:"log_level"`
	ServicePort     uint    `json:"service_port"`
	DbFile          string  `json:"db_file"`
	EnvFile         string  `json:"env_file"`
	ChainRpcUrl     string  `json:"chain_rpc_url"`
	ChainId         int64   `json:"chain_id"`
	ChainName       string  `json:"chain_name"`
	ArweaveGateway  string  `json:"arweave_gateway"`
	ProfileDir      string  `json:"profile_dir"`
	ProfileKeepDays int     `json:"profile_keep_days"`
}

type Secrets struct {
	ApiKeys       []string `json:"api_keys"`
	MetricsAuth   string   `json:"metrics_auth"`
	WalletPrivKey string   `json:"wallet_privkey"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
