package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionTTL         = 24 * time.Hour
	defaultCookieName         = "lineconnect_session"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Database selects the gorm dialect; postgres settings live under Postgres.
	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Line holds the LINE Login channel and the Messaging API channel.
	Line *LineConfig `json:"line" yaml:"line"`

	Sync *SyncConfig `json:"sync" yaml:"sync"`

	Redirect *RedirectConfig `json:"redirect" yaml:"redirect"`

	StateStore *StoreConfig `json:"stateStore" yaml:"stateStore"`

	Dedup *StoreConfig `json:"dedup" yaml:"dedup"`

	// QRCode configuration for authorize-URL QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for webhook batch hand-off
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool    `json:"pretty" yaml:"pretty"`
	Level  string  `json:"level" yaml:"level"`
	File   LogFile `json:"file" yaml:"file"`
}

// LogFile enables rotating file output next to stdout when Path is set.
type LogFile struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver      string `json:"driver" yaml:"driver"`
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	SessionTTL time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	// CookieName is the session cookie set after a successful callback
	CookieName   string `json:"cookieName" yaml:"cookieName"`
	CookieSecure bool   `json:"cookieSecure" yaml:"cookieSecure"`
}

type LineConfig struct {
	Login     LineLoginConfig     `json:"login" yaml:"login"`
	Messaging LineMessagingConfig `json:"messaging" yaml:"messaging"`
}

type LineLoginConfig struct {
	ChannelID     string   `json:"channelId" yaml:"channelId"`
	ChannelSecret string   `json:"channelSecret" yaml:"channelSecret"`
	CallbackURL   string   `json:"callbackUrl" yaml:"callbackUrl"`
	Scopes        []string `json:"scopes" yaml:"scopes"`
	// BotPrompt is "normal" or "aggressive"; empty disables the add-friend prompt
	BotPrompt    string `json:"botPrompt" yaml:"botPrompt"`
	AuthorizeURL string `json:"authorizeUrl" yaml:"authorizeUrl"`
	TokenURL     string `json:"tokenUrl" yaml:"tokenUrl"`
	ProfileURL   string `json:"profileUrl" yaml:"profileUrl"`
}

type LineMessagingConfig struct {
	ChannelSecret      string        `json:"channelSecret" yaml:"channelSecret"`
	ChannelAccessToken string        `json:"channelAccessToken" yaml:"channelAccessToken"`
	APIBaseURL         string        `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	MaxAttempts        int           `json:"maxAttempts" yaml:"maxAttempts"`
	RequestDeadline    time.Duration `json:"requestDeadline" yaml:"requestDeadline"`
	WelcomeMessage     string        `json:"welcomeMessage" yaml:"welcomeMessage"`
}

type SyncConfig struct {
	// ConflictPolicy is remote_priority, local_priority or manual
	ConflictPolicy    string `json:"conflictPolicy" yaml:"conflictPolicy"`
	SyncOnLogin       bool   `json:"syncOnLogin" yaml:"syncOnLogin"`
	AllowRegistration bool   `json:"allowRegistration" yaml:"allowRegistration"`
}

type RedirectConfig struct {
	Default      string   `json:"default" yaml:"default"`
	AllowedHosts []string `json:"allowedHosts" yaml:"allowedHosts"`
}

// StoreConfig selects a key/value backend: "memory" or "redis"
type StoreConfig struct {
	Provider string        `json:"provider" yaml:"provider"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines how accepted webhook batches reach the dispatcher
type PubSubConfig struct {
	// Provider type: "inline", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the expected audience of Pub/Sub push tokens; empty skips verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// ProcessingTimeout bounds a detached inline dispatch
	ProcessingTimeout time.Duration `json:"processingTimeout" yaml:"processingTimeout"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{Driver: DriverPostgres}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = defaultCookieName
	}
	if cfg.Line == nil {
		cfg.Line = &LineConfig{}
	}
	cfg.Line.applyDefaults()
	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if cfg.Sync.ConflictPolicy == "" {
		cfg.Sync.ConflictPolicy = "remote_priority"
	}
	if cfg.Redirect == nil {
		cfg.Redirect = &RedirectConfig{}
	}
	if cfg.Redirect.Default == "" {
		cfg.Redirect.Default = "/"
	}
	if cfg.StateStore == nil {
		cfg.StateStore = &StoreConfig{}
	}
	if cfg.StateStore.Provider == "" {
		cfg.StateStore.Provider = ProviderMemory
	}
	if cfg.Dedup == nil {
		cfg.Dedup = &StoreConfig{}
	}
	if cfg.Dedup.Provider == "" {
		cfg.Dedup.Provider = cfg.StateStore.Provider
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Provider == "" {
		cfg.PubSub.Provider = "inline"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func (l *LineConfig) applyDefaults() {
	if l.Login.AuthorizeURL == "" {
		l.Login.AuthorizeURL = "https://access.line.me/oauth2/v2.1/authorize"
	}
	if l.Login.TokenURL == "" {
		l.Login.TokenURL = "https://api.line.me/oauth2/v2.1/token"
	}
	if l.Login.ProfileURL == "" {
		l.Login.ProfileURL = "https://api.line.me/v2/profile"
	}
	if len(l.Login.Scopes) == 0 {
		l.Login.Scopes = []string{"profile", "openid", "email"}
	}
	if l.Messaging.APIBaseURL == "" {
		l.Messaging.APIBaseURL = "https://api.line.me"
	}
	if l.Messaging.MaxAttempts <= 0 {
		l.Messaging.MaxAttempts = 3
	}
	if l.Messaging.RequestDeadline <= 0 {
		l.Messaging.RequestDeadline = 60 * time.Second
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
