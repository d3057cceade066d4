package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genricoloni/artblob/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultURL        = "http://localhost:6969/"
	defaultStatusPath = "json.py"
	defaultAuthPath   = "www-data/auth"
	defaultSize       = 180
	defaultInterval   = time.Second
	defaultTimeout    = 10 * time.Second
	defaultSongAlign  = "bottom"
	defaultInfoAlign  = "top"
	defaultArtAlign   = "bottom"
	defaultOutputDir  = "/tmp/artblob"

	envPrefix = "ARTBLOB"
)

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"url":           "url",
	"user":          "user",
	"password":      "password",
	"size":          "size",
	"interval":      "interval",
	"timeout":       "timeout",
	"song-align":    "song_align",
	"info-align":    "info_align",
	"art-align":     "art_align",
	"decorated":     "decorated",
	"normal-window": "normal_window",
	"output-dir":    "output_dir",
	"notify":        "notify",
	"control":       "control",
	"debug":         "debug",
}

// AppConfig holds application configuration
type AppConfig struct {
	logger       *zap.Logger
	url          string
	statusPath   string
	authPath     string
	user         string
	password     string
	size         int
	interval     time.Duration
	timeout      time.Duration
	songAlign    domain.Alignment
	infoAlign    domain.Alignment
	artAlign     domain.Alignment
	decorated    bool
	normalWindow bool
	outputDir    string
	notify       bool
	control      bool
}

// RegisterFlags declares the command-line surface on fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file")

	fs.String("url", defaultURL, "Acoustics API endpoint.")
	fs.String("user", "", "Authentication user name")
	fs.String("password", "", "Authentication password")

	fs.Int("size", defaultSize, "Size of the album art and default size of the window.")
	fs.Duration("interval", defaultInterval, "How often to poll the server.")
	fs.Duration("timeout", defaultTimeout, "Per-request timeout, 0 disables it.")

	fs.String("song-align", defaultSongAlign, "How to align the song information in the window.")
	fs.String("info-align", defaultInfoAlign, "How to align status messages in the window.")
	fs.String("art-align", defaultArtAlign, "How to align the album art in the window.")

	fs.Bool("decorated", false, "Show window decorations.")
	fs.Bool("normal-window", false, "Don't skip pager/taskbar.")

	fs.String("output-dir", defaultOutputDir, "Directory the overlay files are written to.")
	fs.Bool("notify", false, "Send a desktop notification on track change.")
	fs.Bool("control", false, "Export play/stop/skip controls on the session bus.")
	fs.Bool("debug", false, "Enable debug logging.")
}

// NewViper builds the layered configuration source: flags > env > file > defaults.
// fs may be nil when no command line is available.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("url", defaultURL)
	v.SetDefault("status_path", defaultStatusPath)
	v.SetDefault("auth_path", defaultAuthPath)
	v.SetDefault("user", "")
	v.SetDefault("password", "")
	v.SetDefault("size", defaultSize)
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("song_align", defaultSongAlign)
	v.SetDefault("info_align", defaultInfoAlign)
	v.SetDefault("art_align", defaultArtAlign)
	v.SetDefault("decorated", false)
	v.SetDefault("normal_window", false)
	v.SetDefault("output_dir", defaultOutputDir)
	v.SetDefault("notify", false)
	v.SetDefault("control", false)
	v.SetDefault("debug", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var configFile string
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "artblob"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// NewAppConfig validates the configuration eagerly.
// An invalid alignment, size or URL is fatal before the poll loop starts.
func NewAppConfig(v *viper.Viper, logger *zap.Logger) (*AppConfig, error) {
	apiURL, err := normalizeURL(v.GetString("url"))
	if err != nil {
		return nil, err
	}

	size := v.GetInt("size")
	if size <= 0 {
		return nil, fmt.Errorf("invalid artwork size %d: must be positive", size)
	}

	timeout := v.GetDuration("timeout")
	if timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s: must not be negative", timeout)
	}

	songAlign, err := domain.ParseAlignment(v.GetString("song_align"))
	if err != nil {
		return nil, fmt.Errorf("song alignment: %w", err)
	}
	infoAlign, err := domain.ParseAlignment(v.GetString("info_align"))
	if err != nil {
		return nil, fmt.Errorf("info alignment: %w", err)
	}
	artAlign, err := domain.ParseAlignment(v.GetString("art_align"))
	if err != nil {
		return nil, fmt.Errorf("art alignment: %w", err)
	}

	cfg := &AppConfig{
		logger:       logger,
		url:          apiURL,
		statusPath:   strings.TrimLeft(v.GetString("status_path"), "/"),
		authPath:     strings.TrimLeft(v.GetString("auth_path"), "/"),
		user:         v.GetString("user"),
		password:     v.GetString("password"),
		size:         size,
		interval:     v.GetDuration("interval"),
		timeout:      timeout,
		songAlign:    songAlign,
		infoAlign:    infoAlign,
		artAlign:     artAlign,
		decorated:    v.GetBool("decorated"),
		normalWindow: v.GetBool("normal_window"),
		outputDir:    expandPath(v.GetString("output_dir")),
		notify:       v.GetBool("notify"),
		control:      v.GetBool("control"),
	}

	logger.Info("Configuration loaded",
		zap.String("url", cfg.url),
		zap.Int("size", cfg.size),
		zap.Duration("interval", cfg.interval),
		zap.Bool("authenticated", cfg.user != ""),
		zap.String("outputDir", cfg.outputDir))

	return cfg, nil
}

// GetURL returns the API prefix, always ending in "/"
func (c *AppConfig) GetURL() string {
	return c.url
}

// GetStatusPath returns the status endpoint path relative to the prefix
func (c *AppConfig) GetStatusPath() string {
	return c.statusPath
}

// GetAuthPath returns the auth endpoint path relative to the prefix
func (c *AppConfig) GetAuthPath() string {
	return c.authPath
}

// GetCredentials returns the optional user and password
func (c *AppConfig) GetCredentials() (string, string) {
	return c.user, c.password
}

// GetSize returns the artwork pixel size
func (c *AppConfig) GetSize() int {
	return c.size
}

// GetInterval returns the poll interval
func (c *AppConfig) GetInterval() time.Duration {
	return c.interval
}

// GetTimeout returns the per-request timeout
func (c *AppConfig) GetTimeout() time.Duration {
	return c.timeout
}

func (c *AppConfig) GetSongAlign() domain.Alignment {
	return c.songAlign
}

func (c *AppConfig) GetInfoAlign() domain.Alignment {
	return c.infoAlign
}

func (c *AppConfig) GetArtAlign() domain.Alignment {
	return c.artAlign
}

// WantsWindowDecorations reports whether the host window shows up with a title
// and icon, i.e. it is decorated or listed in the taskbar
func (c *AppConfig) WantsWindowDecorations() bool {
	return c.decorated || c.normalWindow
}

// GetOutputDir returns the directory for overlay files
func (c *AppConfig) GetOutputDir() string {
	return c.outputDir
}

func (c *AppConfig) NotifyEnabled() bool {
	return c.notify
}

func (c *AppConfig) ControlEnabled() bool {
	return c.control
}

func normalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("parse url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String(), nil
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// expandPath expands environment variables and a leading ~
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}
