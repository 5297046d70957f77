// Package config provides configuration loading and management for schoolsync.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/schoolgis/schoolsync/internal/telemetry"
)

const (
	// EnvPrefix is the prefix of every environment variable read through viper
	EnvPrefix = "SCHOOLSYNC"

	// PasswordEnvVar holds the database password when no password file is configured.
	PasswordEnvVar = "SCHOOLSYNC_DATABASE_PASSWORD"

	// DefaultGISBatchSize is the number of object ids sent per GIS query.
	DefaultGISBatchSize = 100
	// DefaultGISTimeout bounds one GIS query.
	DefaultGISTimeout = 30 * time.Second
	// DefaultUDISETimeout bounds one statistics service call.
	DefaultUDISETimeout = 10 * time.Second
	// DefaultChunkSize is the number of identifiers processed concurrently by a detail sync.
	DefaultChunkSize = 5
	// DefaultYearID is the academic year used when none is requested.
	DefaultYearID = 11
	// DefaultLockTTL bounds how long a region lock survives a crashed holder.
	DefaultLockTTL = 30 * time.Minute

	// DefaultGISURL is the public SchoolGIS MapServer query endpoint.
	DefaultGISURL = "https://geoportal.nic.in/nicgis/rest/services/SCHOOLGIS/Schooldata/MapServer/0/query"
	// DefaultUDISEBaseURL is the public UDISE+ statistics API.
	DefaultUDISEBaseURL = "https://kys.udiseplus.gov.in/webapp/api"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Database  *DatabaseConfig   `yaml:"database,omitempty"`
	GIS       GISConfig         `yaml:"gis"`
	UDISE     UDISEConfig       `yaml:"udise"`
	HTTP      HTTPConfig        `yaml:"http"`
	Sync      SyncConfig        `yaml:"sync"`
	Redis     *RedisConfig      `yaml:"redis,omitempty"`
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
	Logging   LoggingConfig     `yaml:"logging"`
}

// GISConfig points at the GIS portal.
type GISConfig struct {
	// URL is the MapServer query endpoint
	URL string `yaml:"url,omitempty"`

	// BatchSize is the number of object ids per query, clamped to 1..100
	BatchSize int `yaml:"batchSize,omitempty"`

	// Timeout bounds a single query (e.g., "30s")
	Timeout string `yaml:"timeout,omitempty"`

	// Headers are sent with every query, such as Origin
	Headers map[string]string `yaml:"headers,omitempty"`
}

// UDISEEndpoints overrides individual statistics service paths. Empty values keep the defaults.
type UDISEEndpoints struct {
	Search   string `yaml:"search,omitempty"`
	Years    string `yaml:"years,omitempty"`
	Profile  string `yaml:"profile,omitempty"`
	Facility string `yaml:"facility,omitempty"`
	Report   string `yaml:"report,omitempty"`
	Stats    string `yaml:"stats,omitempty"`
	Social   string `yaml:"social,omitempty"`
}

// UDISEConfig points at the statistics service.
type UDISEConfig struct {
	BaseURL   string            `yaml:"baseURL,omitempty"`
	Endpoints UDISEEndpoints    `yaml:"endpoints,omitempty"`
	Timeout   string            `yaml:"timeout,omitempty"`
	Headers   map[string]string `yaml:"headers,omitempty"`

	// RequestsPerSecond paces every statistics service call. 0 disables pacing.
	RequestsPerSecond float64 `yaml:"requestsPerSecond,omitempty"`

	// Burst is the number of calls allowed at once when pacing is on
	Burst int `yaml:"burst,omitempty"`
}

// HTTPConfig tunes the shared upstream HTTP client.
type HTTPConfig struct {
	// MaxRetries is the number of extra attempts for transport errors, 429 and 5xx. 0 disables retry.
	MaxRetries uint `yaml:"maxRetries,omitempty"`

	// InitialBackoff is the first retry interval (e.g., "500ms")
	InitialBackoff string `yaml:"initialBackoff,omitempty"`
}

// RegionConfig is a state and district pair synced by the coordinator.
type RegionConfig struct {
	StateCode    string `yaml:"stateCode"`
	DistrictCode string `yaml:"districtCode"`
}

// SyncConfig defines detail sync defaults and the periodic schedule.
type SyncConfig struct {
	ChunkSize int  `yaml:"chunkSize,omitempty"`
	Strict    bool `yaml:"strict,omitempty"`
	YearID    int  `yaml:"yearId,omitempty"`

	// Interval enables periodic syncs of Regions when set (e.g., "24h")
	Interval string         `yaml:"interval,omitempty"`
	Regions  []RegionConfig `yaml:"regions,omitempty"`

	// LockDir holds file locks on regions when Redis is not configured
	LockDir string `yaml:"lockDir,omitempty"`
}

// RedisConfig enables the cross-process region lock.
type RedisConfig struct {
	Address      string `yaml:"address"`
	PasswordFile string `yaml:"passwordFile,omitempty"`
	DB           int    `yaml:"db,omitempty"`
	LockTTL      string `yaml:"lockTTL,omitempty"`
}

// LoggingConfig controls log level and optional file output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. The SCHOOLSYNC_LOG_LEVEL variable wins over it.
	Level string `yaml:"level,omitempty"`

	// File enables rotating file output in addition to stderr
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"maxSizeMB,omitempty"`
	MaxBackups int    `yaml:"maxBackups,omitempty"`
	MaxAgeDays int    `yaml:"maxAgeDays,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
}

// DatabaseConfig defines database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname or IP address
	Host string `yaml:"host"`

	// Port is the database server port
	Port int `yaml:"port"`

	// User is the database username
	User string `yaml:"user"`

	// PasswordFile is the path to a file containing the database password
	// The file should contain only the password with optional trailing whitespace
	PasswordFile string `yaml:"passwordFile,omitempty"`

	// Database is the database name
	Database string `yaml:"database"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `yaml:"sslMode,omitempty"`

	// MaxOpenConns is the maximum number of open connections to the database
	MaxOpenConns int32 `yaml:"maxOpenConns,omitempty"`

	// MaxIdleConns is the number of connections the pool keeps open when idle
	MaxIdleConns int32 `yaml:"maxIdleConns,omitempty"`

	// ConnMaxLifetime is the maximum lifetime of a connection (e.g., "1h", "30m")
	ConnMaxLifetime string `yaml:"connMaxLifetime,omitempty"`
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from SCHOOLSYNC_DATABASE_PASSWORD environment variable
//
// The password from file will have leading/trailing whitespace trimmed.
func (d *DatabaseConfig) GetPassword() (string, error) {
	if d.PasswordFile != "" {
		return readSecret(d.PasswordFile)
	}

	if envPassword := os.Getenv(PasswordEnvVar); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf(
		"no database password configured: set passwordFile or %s environment variable", PasswordEnvVar,
	)
}

// GetConnectionString builds a PostgreSQL connection string with proper password handling.
// The password is URL-escaped to handle special characters safely.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(password),
		d.Host,
		d.Port,
		d.Database,
		sslMode,
	)

	return connString, nil
}

// GetConnMaxLifetime parses ConnMaxLifetime, returning 0 when unset.
func (d *DatabaseConfig) GetConnMaxLifetime() (time.Duration, error) {
	if d.ConnMaxLifetime == "" {
		return 0, nil
	}
	lifetime, err := time.ParseDuration(d.ConnMaxLifetime)
	if err != nil {
		return 0, fmt.Errorf("invalid connection max lifetime: %w", err)
	}
	return lifetime, nil
}

// GetURL returns the GIS query URL, using the public portal if not specified
func (g *GISConfig) GetURL() string {
	if g.URL == "" {
		return DefaultGISURL
	}
	return g.URL
}

// GetBatchSize returns the batch size clamped to 1..100
func (g *GISConfig) GetBatchSize() int {
	if g.BatchSize <= 0 || g.BatchSize > DefaultGISBatchSize {
		return DefaultGISBatchSize
	}
	return g.BatchSize
}

// GetTimeout returns the query timeout. Validation rejects unparsable values.
func (g *GISConfig) GetTimeout() time.Duration {
	return durationOr(g.Timeout, DefaultGISTimeout)
}

// GetBaseURL returns the statistics service base URL
func (u *UDISEConfig) GetBaseURL() string {
	if u.BaseURL == "" {
		return DefaultUDISEBaseURL
	}
	return u.BaseURL
}

// GetTimeout returns the call timeout
func (u *UDISEConfig) GetTimeout() time.Duration {
	return durationOr(u.Timeout, DefaultUDISETimeout)
}

// GetInitialBackoff returns the first retry interval, 0 meaning the client default
func (h *HTTPConfig) GetInitialBackoff() time.Duration {
	return durationOr(h.InitialBackoff, 0)
}

// GetChunkSize returns the detail sync chunk size
func (s *SyncConfig) GetChunkSize() int {
	if s.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return s.ChunkSize
}

// GetYearID returns the default academic year id
func (s *SyncConfig) GetYearID() int {
	if s.YearID <= 0 {
		return DefaultYearID
	}
	return s.YearID
}

// GetInterval returns the periodic sync interval, 0 when periodic sync is off
func (s *SyncConfig) GetInterval() time.Duration {
	return durationOr(s.Interval, 0)
}

// GetLockTTL returns the region lock lifetime
func (r *RedisConfig) GetLockTTL() time.Duration {
	return durationOr(r.LockTTL, DefaultLockTTL)
}

// GetPassword returns the Redis password from PasswordFile, or empty when none is configured
func (r *RedisConfig) GetPassword() (string, error) {
	if r.PasswordFile == "" {
		return "", nil
	}
	return readSecret(r.PasswordFile)
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Regions returns the configured coordinator regions with codes trimmed
func (c *Config) Regions() []RegionConfig {
	regions := make([]RegionConfig, 0, len(c.Sync.Regions))
	for _, r := range c.Sync.Regions {
		regions = append(regions, RegionConfig{
			StateCode:    strings.TrimSpace(r.StateCode),
			DistrictCode: strings.TrimSpace(r.DistrictCode),
		})
	}
	return regions
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	var errs []error

	if c.Database == nil {
		errs = append(errs, fmt.Errorf("database: configuration is required"))
	} else if err := c.Database.validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	if err := validateURL(c.GIS.URL); err != nil {
		errs = append(errs, fmt.Errorf("gis.url: %w", err))
	}
	if err := validateURL(c.UDISE.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("udise.baseURL: %w", err))
	}
	if c.UDISE.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("udise.requestsPerSecond must not be negative"))
	}
	if c.Sync.ChunkSize < 0 {
		errs = append(errs, fmt.Errorf("sync.chunkSize must not be negative"))
	}

	for field, value := range map[string]string{
		"gis.timeout":         c.GIS.Timeout,
		"udise.timeout":       c.UDISE.Timeout,
		"http.initialBackoff": c.HTTP.InitialBackoff,
		"sync.interval":       c.Sync.Interval,
	} {
		if err := validateDuration(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if c.Sync.Interval != "" && len(c.Sync.Regions) == 0 {
		errs = append(errs, fmt.Errorf("sync.regions: at least one region is required when sync.interval is set"))
	}
	for i, r := range c.Sync.Regions {
		if strings.TrimSpace(r.StateCode) == "" || strings.TrimSpace(r.DistrictCode) == "" {
			errs = append(errs, fmt.Errorf("sync.regions[%d]: stateCode and districtCode are required", i))
		}
	}

	if c.Redis != nil {
		if c.Redis.Address == "" {
			errs = append(errs, fmt.Errorf("redis.address is required when redis is configured"))
		}
		if err := validateDuration(c.Redis.LockTTL); err != nil {
			errs = append(errs, fmt.Errorf("redis.lockTTL: %w", err))
		}
	}

	if err := c.Telemetry.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("telemetry: %w", err))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error
	if d.Host == "" {
		errs = append(errs, fmt.Errorf("host is required"))
	}
	if d.Port <= 0 {
		errs = append(errs, fmt.Errorf("port is required"))
	}
	if d.User == "" {
		errs = append(errs, fmt.Errorf("user is required"))
	}
	if d.Database == "" {
		errs = append(errs, fmt.Errorf("database name is required"))
	}
	if _, err := d.GetConnMaxLifetime(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func validateDuration(value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	if d < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

func durationOr(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func readSecret(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read password from file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
