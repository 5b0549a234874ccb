package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment variable read by ApplyEnvOverrides
const EnvPrefix = "X2POST_"

// DefaultEnvFiles are the .env files LoadEnv reads when none are given
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnv loads environment variables from .env files. Later files override
// earlier ones; missing files are ignored.
func LoadEnv(logger *zap.Logger, files ...string) []string {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(files) == 0 {
		files = DefaultEnvFiles
	}
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			logger.Warn("Failed to load env file", zap.String("file", file), zap.Error(err))
			continue
		}
		loaded = append(loaded, file)
	}
	if len(loaded) == 0 {
		logger.Debug("No local env files loaded; relying on process environment")
	} else {
		logger.Debug("Loaded env files", zap.String("files", strings.Join(loaded, ", ")))
	}
	return loaded
}

// ApplyEnvOverrides overrides configuration values from X2POST_* variables
func (c *Config) ApplyEnvOverrides() {
	c.LogLevel = GetEnv("LOG_LEVEL", c.LogLevel)
	c.LogJSON = GetEnvBool("LOG_JSON", c.LogJSON)

	a := &c.Adapter
	a.Capacity = GetEnvInt("CAPACITY", a.Capacity)
	a.WordHeadroom = GetEnvInt("WORD_HEADROOM", a.WordHeadroom)
	a.NumberingThreshold = GetEnvInt("NUMBERING_THRESHOLD", a.NumberingThreshold)
	a.SummaryMaxLength = GetEnvInt("SUMMARY_MAX_LENGTH", a.SummaryMaxLength)
	a.TitleMaxLength = GetEnvInt("TITLE_MAX_LENGTH", a.TitleMaxLength)
	a.MaxSections = GetEnvInt("MAX_SECTIONS", a.MaxSections)
	a.Author = GetEnv("AUTHOR", a.Author)
	a.Brand.Name = GetEnv("BRAND_NAME", a.Brand.Name)
	a.Brand.URL = GetEnv("BRAND_URL", a.Brand.URL)
	a.ImagePathPrefix = GetEnv("IMAGE_PATH_PREFIX", a.ImagePathPrefix)

	b := &c.Batch
	b.Recursive = GetEnvBool("RECURSIVE", b.Recursive)
	b.SkipExisting = GetEnvBool("SKIP_EXISTING", b.SkipExisting)
	b.OutputDirectory = GetEnv("OUTPUT_DIR", b.OutputDirectory)
	b.Workers = GetEnvInt("WORKERS", b.Workers)
	if platforms := GetEnv("PLATFORMS", ""); platforms != "" {
		b.Platforms = strings.Split(platforms, ",")
	}

	s := &c.Server
	s.Addr = GetEnv("ADDR", s.Addr)
	s.ReleaseMode = GetEnvBool("RELEASE_MODE", s.ReleaseMode)
	s.ShutdownTimeout = GetEnvDuration("SHUTDOWN_TIMEOUT", s.ShutdownTimeout)
	s.MaxBodyBytes = int64(GetEnvInt("MAX_BODY_BYTES", int(s.MaxBodyBytes)))
}

// GetEnv gets an X2POST_ environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(EnvPrefix + key)); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer X2POST_ environment variable with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value := GetEnv(key, ""); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean X2POST_ environment variable with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value := GetEnv(key, ""); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvDuration gets a duration X2POST_ environment variable with a default value
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := GetEnv(key, ""); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
