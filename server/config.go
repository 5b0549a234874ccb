package server

import "time"

// Config represents server configuration
type Config struct {
	Addr            string        `yaml:"addr"`
	ServiceName     string        `yaml:"service_name"`
	Version         string        `yaml:"-"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// MaxBodyBytes caps the size of a request body
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// ReleaseMode switches gin to release mode
	ReleaseMode bool `yaml:"release_mode"`
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ServiceName:     "x2post",
		Version:         "dev",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}
