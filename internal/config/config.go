package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/providers/crunchyroll"
	"github.com/brogergvhs/watchgrid/internal/scanner"
	"github.com/brogergvhs/watchgrid/internal/storage"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HistoryURL  string `yaml:"history_url"`
	SnapshotDir string `yaml:"snapshot_dir"`

	Storage     string `yaml:"storage"`
	StoragePath string `yaml:"storage_path"`
	StorageKey  string `yaml:"storage_key"`

	Debounce    time.Duration `yaml:"debounce"`
	PassTimeout time.Duration `yaml:"pass_timeout"`
	Debug       bool          `yaml:"debug"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`

	Selectors crunchyroll.Selectors `yaml:"selectors"`
}

type Options struct {
	IgnoreConfig bool
	Debug        bool
	HistoryURL   string
	SnapshotDir  string
	Storage      string
	StoragePath  string
	StorageKey   string
	Debounce     time.Duration
	PassTimeout  time.Duration
	Cookie       string
	CookieFile   string
	UserAgent    string
}

func DefaultConfig() *Config {
	return &Config{
		HistoryURL:  crunchyroll.HistoryURL,
		SnapshotDir: "",
		Storage:     storage.BackendSQLite,
		StoragePath: "",
		StorageKey:  history.DefaultKey,
		Debounce:    scanner.DefaultDebounce,
		PassTimeout: scanner.DefaultPassTimeout,
		Debug:       false,
		Cookie:      "",
		CookieFile:  "",
		UserAgent:   "",
		Selectors:   crunchyroll.DefaultSelectors(),
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg, "")
		return cfg, "(ignored config)", nil
	}

	label, activePath, err := ActiveProfile()
	if errors.Is(err, ErrNoConfig) {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg, "")
		return cfg, "(default config in memory)\nRun `watchgrid config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg, label)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.HistoryURL != "" {
		c.HistoryURL = o.HistoryURL
	}
	if o.SnapshotDir != "" {
		c.SnapshotDir = o.SnapshotDir
	}
	if o.Storage != "" {
		c.Storage = o.Storage
	}
	if o.StoragePath != "" {
		c.StoragePath = o.StoragePath
	}
	if o.StorageKey != "" {
		c.StorageKey = o.StorageKey
	}
	if o.Debounce != 0 {
		c.Debounce = o.Debounce
	}
	if o.PassTimeout != 0 {
		c.PassTimeout = o.PassTimeout
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
}

// normalizeDefaults fills unset fields; the history goes below the data
// directory of the given profile.
func normalizeDefaults(c *Config, label string) {
	if c.HistoryURL == "" {
		c.HistoryURL = crunchyroll.HistoryURL
	}
	if c.Storage == "" {
		c.Storage = storage.BackendSQLite
	}
	if c.StoragePath == "" {
		c.StoragePath = storage.DefaultPath(c.Storage, ProfileDataDir(label))
	}
	if c.StorageKey == "" {
		c.StorageKey = history.DefaultKey
	}
	if c.Debounce <= 0 {
		c.Debounce = scanner.DefaultDebounce
	}
	if c.PassTimeout <= 0 {
		c.PassTimeout = scanner.DefaultPassTimeout
	}
	c.Selectors = c.Selectors.WithDefaults()
}

func (c *Config) Print() {
	fmt.Printf(" -history_url: %s\n", c.HistoryURL)
	if c.SnapshotDir != "" {
		fmt.Printf(" -snapshot_dir: %s\n", c.SnapshotDir)
	}
	fmt.Printf(" -storage: %s\n", c.Storage)
	if c.StoragePath != "" {
		fmt.Printf(" -storage_path: %s\n", c.StoragePath)
	}
	fmt.Printf(" -storage_key: %s\n", c.StorageKey)
	fmt.Printf(" -debounce: %s\n", c.Debounce)
	fmt.Printf(" -pass_timeout: %s\n", c.PassTimeout)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	fmt.Printf(" -selectors.card: %s\n", c.Selectors.Card)
}
