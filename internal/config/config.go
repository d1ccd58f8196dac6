package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".skycircle"
	envPrefix  = "SKYCIRCLE"
)

type Config struct {
	Service        Service
	HTTPTimeout    time.Duration
	Log            Logging
	Weights        domain.ScoringWeights
	PacksPath      string
	HistoryPath    string
	SecretsRoot    string
	SecretsBackend string // "chain" (pass, then files) or "file"
	PassDir        string
	BatchDelay     time.Duration
	MaxRepoBytes   int64
}

type Service struct {
	PDS     string
	AppView string
	PLC     string
	Web     string
}

type Logging struct {
	Level  string
	Format string
}

// Load reads ~/.skycircle/config.toml when present and applies defaults and
// SKYCIRCLE_* environment overrides.
func Load(cfg *viper.Viper, homeDir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	baseDir := filepath.Join(homeDir, configDir)
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("service.pds", "https://bsky.social")
	cfg.SetDefault("service.appview", "https://public.api.bsky.app")
	cfg.SetDefault("service.plc", "https://plc.directory")
	cfg.SetDefault("service.web", "https://bsky.app")
	cfg.SetDefault("http.timeout", "60s")
	cfg.SetDefault("log.level", "info")
	cfg.SetDefault("log.format", "text")
	cfg.SetDefault("weights.likes", domain.DefaultWeights.Likes)
	cfg.SetDefault("weights.replies", domain.DefaultWeights.Replies)
	cfg.SetDefault("weights.reposts", domain.DefaultWeights.Reposts)
	cfg.SetDefault("weights.mentions", domain.DefaultWeights.Mentions)
	cfg.SetDefault("weights.quotes", domain.DefaultWeights.Quotes)
	cfg.SetDefault("packs.path", filepath.Join(baseDir, "packs.toml"))
	cfg.SetDefault("history.path", filepath.Join(baseDir, "history.db"))
	cfg.SetDefault("secrets.root", filepath.Join(baseDir, "secrets"))
	cfg.SetDefault("secrets.backend", "chain")
	cfg.SetDefault("secrets.pass_dir", "")
	cfg.SetDefault("limits.batch_delay", "50ms")
	cfg.SetDefault("limits.max_repo_bytes", int64(1<<30))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	weights := domain.ScoringWeights{
		Likes:    cfg.GetFloat64("weights.likes"),
		Replies:  cfg.GetFloat64("weights.replies"),
		Reposts:  cfg.GetFloat64("weights.reposts"),
		Mentions: cfg.GetFloat64("weights.mentions"),
		Quotes:   cfg.GetFloat64("weights.quotes"),
	}
	if err := ValidateWeights(weights); err != nil {
		return Config{}, err
	}

	loaded := Config{
		Service: Service{
			PDS:     strings.TrimRight(cfg.GetString("service.pds"), "/"),
			AppView: strings.TrimRight(cfg.GetString("service.appview"), "/"),
			PLC:     strings.TrimRight(cfg.GetString("service.plc"), "/"),
			Web:     strings.TrimRight(cfg.GetString("service.web"), "/"),
		},
		HTTPTimeout: cfg.GetDuration("http.timeout"),
		Log: Logging{
			Level:  cfg.GetString("log.level"),
			Format: cfg.GetString("log.format"),
		},
		Weights:        weights,
		PacksPath:      cfg.GetString("packs.path"),
		HistoryPath:    cfg.GetString("history.path"),
		SecretsRoot:    cfg.GetString("secrets.root"),
		SecretsBackend: strings.ToLower(strings.TrimSpace(cfg.GetString("secrets.backend"))),
		PassDir:        cfg.GetString("secrets.pass_dir"),
		BatchDelay:     cfg.GetDuration("limits.batch_delay"),
		MaxRepoBytes:   cfg.GetInt64("limits.max_repo_bytes"),
	}

	if loaded.Service.PDS == "" || loaded.Service.AppView == "" || loaded.Service.PLC == "" {
		return Config{}, errors.New("service endpoints must not be empty")
	}
	if loaded.MaxRepoBytes <= 0 {
		return Config{}, fmt.Errorf("limits.max_repo_bytes must be positive (got %d)", loaded.MaxRepoBytes)
	}
	switch loaded.SecretsBackend {
	case "chain", "file":
	default:
		return Config{}, fmt.Errorf("unknown secrets backend %q (want chain or file)", loaded.SecretsBackend)
	}

	return loaded, nil
}

func ValidateWeights(w domain.ScoringWeights) error {
	for name, value := range map[string]float64{
		"likes":    w.Likes,
		"replies":  w.Replies,
		"reposts":  w.Reposts,
		"mentions": w.Mentions,
		"quotes":   w.Quotes,
	} {
		if value < 0 {
			return fmt.Errorf("weight %s must not be negative (got %v)", name, value)
		}
	}
	return nil
}
