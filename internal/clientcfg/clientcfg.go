package clientcfg

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/limbo/fittrack/pkg/config"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL      = "http://localhost:8080"
	defaultGeocoderURL  = "https://api.opencagedata.com/geocode/v1/json"
	defaultInterval     = time.Hour
	defaultTimeout      = 15 * time.Second
	defaultOffsetHours  = 8
	defaultStateDirName = ".fitness"
)

type Config struct {
	APIBaseURL       string        `yaml:"api_base_url"`
	AIURL            string        `yaml:"api_ai_url"`
	OpenCageKey      string        `yaml:"opencage_api_key"`
	GeocoderURL      string        `yaml:"geocoder_url"`
	DBPath           string        `yaml:"db_path"`
	LocationInterval time.Duration `yaml:"location_interval"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
	// Offset of the chart's local day from UTC
	TZOffsetHours int `yaml:"tz_offset_hours"`
}

func Default() *Config {
	return &Config{
		APIBaseURL:       defaultBaseURL,
		GeocoderURL:      defaultGeocoderURL,
		DBPath:           filepath.Join(stateDir(), "fitness.db"),
		LocationInterval: defaultInterval,
		RequestTimeout:   defaultTimeout,
		TZOffsetHours:    defaultOffsetHours,
	}
}

// DefaultPath is $HOME/.fitness/config.yaml
func DefaultPath() string {
	return filepath.Join(stateDir(), "config.yaml")
}

// Load reads the YAML file at path (DefaultPath when empty), then overlays
// variables from .env and the process environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.New("parsing config file error: " + err.Error())
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, errors.New("reading config file error: " + err.Error())
	}
	_ = godotenv.Load()
	cfg.overlayEnv(config.Env())
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.New("marshalling config error: " + err.Error())
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.New("creating config dir error: " + err.Error())
	}
	return os.WriteFile(path, raw, 0o600)
}

func (c *Config) overlayEnv(env *config.Config) {
	c.APIBaseURL = env.GetStringOr("API_BASE_URL", c.APIBaseURL)
	c.AIURL = env.GetStringOr("API_AI_URL", c.AIURL)
	c.OpenCageKey = env.GetStringOr("OPENCAGE_API_KEY", c.OpenCageKey)
	c.GeocoderURL = env.GetStringOr("OPENCAGE_URL", c.GeocoderURL)
	c.DBPath = env.GetStringOr("FITNESS_DB_PATH", c.DBPath)
	c.LocationInterval = env.GetDuration("LOCATION_INTERVAL", c.LocationInterval)
	c.RequestTimeout = env.GetDuration("REQUEST_TIMEOUT", c.RequestTimeout)
	c.TZOffsetHours = env.GetInt("TZ_OFFSET_HOURS", c.TZOffsetHours)
}

// Location is the fixed zone charts use for the local day
func (c *Config) Location() *time.Location {
	return time.FixedZone("local", c.TZOffsetHours*60*60)
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultStateDirName
	}
	return filepath.Join(home, defaultStateDirName)
}
