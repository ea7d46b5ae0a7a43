package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brogergvhs/watchgrid/internal/storage"
)

const (
	appName        = "watchgrid"
	DefaultProfile = "Default"
)

var ErrNoConfig = errors.New("no config selected")

// ConfigRoot holds the profiles and the pointer to the active one.
func ConfigRoot() string {
	return appDir(os.Getenv("APPDATA"), os.Getenv("XDG_CONFIG_HOME"), ".config")
}

// DataRoot is where the Default profile keeps its history unless
// storage_path is set. Other profiles get a subdirectory of it.
func DataRoot() string {
	if p := os.Getenv("WATCHGRID_DATA_DIR"); p != "" {
		return p
	}
	return appDir(os.Getenv("LOCALAPPDATA"), os.Getenv("XDG_DATA_HOME"), filepath.Join(".local", "share"))
}

func appDir(platform, xdg, homeRel string) string {
	for _, base := range []string{platform, xdg} {
		if base != "" {
			return filepath.Join(base, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, homeRel, appName)
}

func ConfigsDir() string {
	return filepath.Join(ConfigRoot(), "configs")
}

func CurrentLabelFile() string {
	return filepath.Join(ConfigRoot(), "current_config")
}

func ProfilePath(label string) string {
	return filepath.Join(ConfigsDir(), label+".yaml")
}

// ProfileDataDir keeps the history of each profile apart, so switching
// profiles never mixes two accounts in one store.
func ProfileDataDir(label string) string {
	if label == "" || label == DefaultProfile {
		return DataRoot()
	}
	return filepath.Join(DataRoot(), "profiles", label)
}

func CurrentLabel() (string, error) {
	b, err := os.ReadFile(CurrentLabelFile())
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	label := strings.TrimSpace(string(b))
	if label == "" {
		return "", ErrNoConfig
	}
	return label, nil
}

// ActiveProfile returns the selected label and its YAML path.
func ActiveProfile() (label, path string, err error) {
	label, err = CurrentLabel()
	if err != nil {
		return "", "", err
	}
	return label, ProfilePath(label), nil
}

// LoadProfile reads one profile with defaults applied, including its data
// location.
func LoadProfile(label string) (*Config, error) {
	cfg, err := loadYAML(ProfilePath(label))
	if err != nil {
		return nil, err
	}
	normalizeDefaults(cfg, label)
	return cfg, nil
}

type Profile struct {
	Label  string
	Path   string
	Active bool

	Storage     string
	HistoryPath string
	HasHistory  bool
	Err         error
}

func ListProfiles() ([]Profile, error) {
	entries, err := os.ReadDir(ConfigsDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	active, _ := CurrentLabel()
	var out []Profile

	for _, e := range entries {
		label, ok := strings.CutSuffix(e.Name(), ".yaml")
		if e.IsDir() || !ok {
			continue
		}

		p := Profile{Label: label, Path: ProfilePath(label), Active: label == active}

		cfg, err := LoadProfile(label)
		if err != nil {
			p.Err = err
			out = append(out, p)
			continue
		}

		p.Storage = cfg.Storage
		p.HistoryPath = cfg.StoragePath
		if cfg.Storage != storage.BackendMemory {
			_, statErr := os.Stat(cfg.StoragePath)
			p.HasHistory = statErr == nil
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func SwitchProfile(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.New("label cannot be empty")
	}

	if _, err := os.Stat(ProfilePath(label)); err != nil {
		return fmt.Errorf("config profile %q does not exist", label)
	}

	return os.WriteFile(CurrentLabelFile(), []byte(label), 0644)
}

// InitDefaultProfile writes Default.yaml and makes it active. It returns
// os.ErrExist (and still activates it) when the file is already there.
func InitDefaultProfile() (string, error) {
	if err := os.MkdirAll(ConfigsDir(), 0755); err != nil {
		return "", err
	}

	path := ProfilePath(DefaultProfile)

	_, statErr := os.Stat(path)
	if statErr != nil {
		if err := SaveYAML(DefaultConfig(), path); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(CurrentLabelFile(), []byte(DefaultProfile), 0644); err != nil {
		return "", err
	}
	if statErr == nil {
		return path, os.ErrExist
	}
	return path, nil
}
