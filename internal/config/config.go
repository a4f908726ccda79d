// Package config loads the guestbook configuration from defaults, an
// optional YAML file and GUESTBOOK_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvConfigFile names the variable holding an explicit config file path.
const EnvConfigFile = "GUESTBOOK_CONFIG"

const envPrefix = "GUESTBOOK"

type Config struct {
	Addr      string `mapstructure:"addr"`
	Port      int    `mapstructure:"port"`
	DataDir   string `mapstructure:"dataDir"`
	DBPath    string `mapstructure:"dbPath"`
	LogLevel  string `mapstructure:"logLevel"`
	StaticDir string `mapstructure:"staticDir"`

	SiteTitle  string `mapstructure:"siteTitle"`
	Permalink  string `mapstructure:"permalink"`
	Root       string `mapstructure:"root"`
	FaviconAPI string `mapstructure:"faviconApi"`

	MaxCommentLen  int      `mapstructure:"maxCommentLen"`
	MaxNameLen     int      `mapstructure:"maxNameLen"`
	MaxSiteLen     int      `mapstructure:"maxSiteLen"`
	HoursPerPost   int      `mapstructure:"hoursPerPost"`
	PostsPerPage   int      `mapstructure:"postsPerPage"`
	WhitelistedIPs []string `mapstructure:"whitelistedIPs"`

	ShowStatus     bool          `mapstructure:"showStatus"`
	StatusInterval time.Duration `mapstructure:"statusInterval"`
	Cloudflare     bool          `mapstructure:"cloudflare"`
	Swagger        bool          `mapstructure:"swagger"`

	GeoAPIURL    string        `mapstructure:"geoApiUrl"`
	GeoTimeout   time.Duration `mapstructure:"geoTimeout"`
	ProbeMode    string        `mapstructure:"probeMode"`
	ProbeTimeout time.Duration `mapstructure:"probeTimeout"`
	ProbePorts   []int         `mapstructure:"probePorts"`
	ProxyURL     string        `mapstructure:"proxyUrl"`

	SubmitRPS   float64 `mapstructure:"submitRps"`
	SubmitBurst int     `mapstructure:"submitBurst"`
}

// envNames maps every key to its environment variable suffix.
var envNames = map[string]string{
	"addr":           "ADDR",
	"port":           "PORT",
	"dataDir":        "DATA_DIR",
	"dbPath":         "DB_PATH",
	"logLevel":       "LOG_LEVEL",
	"staticDir":      "STATIC_DIR",
	"siteTitle":      "SITE_TITLE",
	"permalink":      "PERMALINK",
	"root":           "ROOT",
	"faviconApi":     "FAVICON_API",
	"maxCommentLen":  "MAX_COMMENT_LEN",
	"maxNameLen":     "MAX_NAME_LEN",
	"maxSiteLen":     "MAX_SITE_LEN",
	"hoursPerPost":   "HOURS_PER_POST",
	"postsPerPage":   "POSTS_PER_PAGE",
	"whitelistedIPs": "WHITELISTED_IPS",
	"showStatus":     "SHOW_STATUS",
	"statusInterval": "STATUS_INTERVAL",
	"cloudflare":     "CLOUDFLARE",
	"swagger":        "SWAGGER",
	"geoApiUrl":      "GEO_API_URL",
	"geoTimeout":     "GEO_TIMEOUT",
	"probeMode":      "PROBE_MODE",
	"probeTimeout":   "PROBE_TIMEOUT",
	"probePorts":     "PROBE_PORTS",
	"proxyUrl":       "PROXY_URL",
	"submitRps":      "SUBMIT_RPS",
	"submitBurst":    "SUBMIT_BURST",
}

// Load reads the file named by GUESTBOOK_CONFIG, or the first of
// ./config.yml and ./config/config.yml that exists, then applies the
// environment.
func Load() (Config, error) {
	return LoadFile(resolveConfigFile())
}

// LoadFile is Load with an explicit file. An empty path skips the file.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, name := range envNames {
		if err := v.BindEnv(key, envPrefix+"_"+name); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", "")
	v.SetDefault("port", 8080)
	v.SetDefault("dataDir", "data")
	v.SetDefault("dbPath", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("staticDir", "./static")
	v.SetDefault("siteTitle", "Guestbook")
	v.SetDefault("permalink", "")
	v.SetDefault("root", "/")
	v.SetDefault("faviconApi", "https://www.google.com/s2/favicons?domain=")
	v.SetDefault("maxCommentLen", 300)
	v.SetDefault("maxNameLen", 50)
	v.SetDefault("maxSiteLen", 100)
	v.SetDefault("hoursPerPost", 24)
	v.SetDefault("postsPerPage", 10)
	v.SetDefault("whitelistedIPs", []string{})
	v.SetDefault("showStatus", false)
	v.SetDefault("statusInterval", "30m")
	v.SetDefault("cloudflare", false)
	v.SetDefault("swagger", false)
	v.SetDefault("geoApiUrl", "http://ip-api.com")
	v.SetDefault("geoTimeout", "5s")
	v.SetDefault("probeMode", "icmp")
	v.SetDefault("probeTimeout", "3s")
	v.SetDefault("probePorts", []int{80, 443})
	v.SetDefault("proxyUrl", "")
	v.SetDefault("submitRps", 0.2)
	v.SetDefault("submitBurst", 3)
}

func (c *Config) normalize() {
	c.DataDir = filepath.Clean(c.DataDir)
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = filepath.Join(c.DataDir, "guestbook.db")
	}
	c.DBPath = filepath.Clean(c.DBPath)
	c.StaticDir = filepath.Clean(c.StaticDir)
	c.Root = normalizeRoot(c.Root)
	c.ProbeMode = strings.ToLower(strings.TrimSpace(c.ProbeMode))

	ips := c.WhitelistedIPs[:0]
	for _, ip := range c.WhitelistedIPs {
		if ip = strings.TrimSpace(ip); ip != "" {
			ips = append(ips, ip)
		}
	}
	c.WhitelistedIPs = ips
}

// normalizeRoot makes the mount point start and end with a slash.
func normalizeRoot(root string) string {
	root = strings.Trim(strings.TrimSpace(root), "/")
	if root == "" {
		return "/"
	}
	return "/" + root + "/"
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" && (c.Port <= 0 || c.Port > 65535) {
		errs = append(errs, errors.New("port must be between 1 and 65535"))
	}
	if c.MaxCommentLen <= 0 {
		errs = append(errs, errors.New("maxCommentLen must be > 0"))
	}
	if c.MaxNameLen <= 0 {
		errs = append(errs, errors.New("maxNameLen must be > 0"))
	}
	if c.MaxSiteLen <= 0 {
		errs = append(errs, errors.New("maxSiteLen must be > 0"))
	}
	if c.HoursPerPost < 0 {
		errs = append(errs, errors.New("hoursPerPost must be >= 0"))
	}
	if c.PostsPerPage <= 0 {
		errs = append(errs, errors.New("postsPerPage must be > 0"))
	}
	if c.ProbeMode != "icmp" && c.ProbeMode != "tcp" {
		errs = append(errs, fmt.Errorf("probeMode must be icmp or tcp, got %q", c.ProbeMode))
	}
	if c.ShowStatus && c.StatusInterval <= 0 {
		errs = append(errs, errors.New("statusInterval must be > 0 when showStatus is enabled"))
	}
	return errors.Join(errs...)
}

// ListenAddr is Addr when set, otherwise ":<port>".
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return ":" + strconv.Itoa(c.Port)
}

func resolveConfigFile() string {
	if path := strings.TrimSpace(os.Getenv(EnvConfigFile)); path != "" {
		return path
	}
	for _, candidate := range []string{"config.yml", filepath.Join("config", "config.yml")} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
