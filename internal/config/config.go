// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds configuration knobs for the HTTP server, logging and pages.
type Config struct {
	HTTPAddr          string
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	LogLevel          string
	SiteTitle         string
}

// fileConfig mirrors Config in the YAML file. Durations are plain numbers to
// match the env variables (seconds, or milliseconds where the key says so).
type fileConfig struct {
	HTTPAddr            string `yaml:"http_addr"`
	ShutdownTimeout     *int   `yaml:"shutdown_timeout"`
	ReadHeaderTimeoutMs *int   `yaml:"read_header_timeout_ms"`
	WriteTimeout        *int   `yaml:"write_timeout"`
	LogLevel            string `yaml:"log_level"`
	SiteTitle           string `yaml:"site_title"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	ms := atoienv(key, defMs)
	return time.Duration(ms) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

func defaults() Config {
	return Config{
		HTTPAddr:          ":8080",
		ShutdownTimeout:   15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		LogLevel:          "info",
		SiteTitle:         "Products",
	}
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return fromEnv(defaults())
}

// LoadFile reads a YAML file and layers the environment on top of it.
// An empty path behaves like Load.
func LoadFile(path string) (Config, error) {
	base := defaults()
	if path == "" {
		return fromEnv(base), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.HTTPAddr != "" {
		base.HTTPAddr = fc.HTTPAddr
	}
	if fc.ShutdownTimeout != nil {
		base.ShutdownTimeout = time.Duration(*fc.ShutdownTimeout) * time.Second
	}
	if fc.ReadHeaderTimeoutMs != nil {
		base.ReadHeaderTimeout = time.Duration(*fc.ReadHeaderTimeoutMs) * time.Millisecond
	}
	if fc.WriteTimeout != nil {
		base.WriteTimeout = time.Duration(*fc.WriteTimeout) * time.Second
	}
	if fc.LogLevel != "" {
		base.LogLevel = fc.LogLevel
	}
	if fc.SiteTitle != "" {
		base.SiteTitle = fc.SiteTitle
	}
	return fromEnv(base), nil
}

func fromEnv(def Config) Config {
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", def.HTTPAddr),
		ShutdownTimeout:   durenvs("SHUTDOWN_TIMEOUT", int(def.ShutdownTimeout/time.Second)),
		ReadHeaderTimeout: durenvms("READ_HEADER_TIMEOUT_MS", int(def.ReadHeaderTimeout/time.Millisecond)),
		WriteTimeout:      durenvs("WRITE_TIMEOUT", int(def.WriteTimeout/time.Second)),
		LogLevel:          getenv("LOG_LEVEL", def.LogLevel),
		SiteTitle:         getenv("SITE_TITLE", def.SiteTitle),
	}
}
