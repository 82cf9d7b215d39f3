// Package config handles configuration for the registry server,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the registry server.
//
// The database can be addressed either with a full DSN (DatabaseDSN) or with
// the discrete DBHost/DBPort/DBUser/DBPassword/DBName/DBSSLMode fields; when
// DatabaseDSN is empty, DSN() assembles one from the discrete parts.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDSN      string
	DBHost           string
	DBPort           int
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = ""
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBName = "aadhaar_db"
	c.DBSSLMode = "disable"
	c.MaxOpenConns = 10
	c.MaxIdleConns = 5
	c.ConnMaxLifetime = 30 * time.Minute
}

// DSN returns the PostgreSQL connection string: DatabaseDSN when set,
// otherwise one assembled from the discrete connection fields. The password
// is URL-escaped so arbitrary characters survive the round trip.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
