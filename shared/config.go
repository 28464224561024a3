package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"               // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets          Secrets  `json:"-"`
	LogFile          string   `json:"log_file"`
	LogLevel         string   `json:"log_level"`
	ServicePort      uint     `json:"service_port"`
	GraphApiBase     string   `json:"graph_api_base"`
	Pages            []Page   `json:"pages"`
	WatchedUsernames []string `json:"watched_usernames"`
	Smtp             Smtp     `json:"smtp"`
}

// Page is one monitored Facebook page, optionally linked to an Instagram
// account. The access token comes from the secrets file, keyed by page id.
type Page struct {
	Id                string `json:"id"`
	Name              string `json:"name"`
	InstagramUsername string `json:"instagram_username"`
	AccessToken       string `json:"-"`
}

type Smtp struct {
	Host string `json:"host"`
	Port uint   `json:"port"`
	User string `json:"user"`
	From string `json:"from"`
	To   string `json:"to"`
}

type Secrets struct {
	VerifyToken  string            `json:"verify_token"`
	AppSecret    string            `json:"app_secret"`
	PageTokens   map[string]string `json:"page_tokens"`
	SmtpPassword string            `json:"smtp_password"`
	MetricsAuth  string            `json:"metrics_auth"`
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

	// Page access tokens live in the secrets file, keyed by page id
	for i := range config.Pages {
		config.Pages[i].AccessToken = config.Secrets.PageTokens[config.Pages[i].Id]
	}

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
