package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/aadhaarseva/registry/internal/flagx"
	"github.com/aadhaarseva/registry/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// parses both string values such as "30m" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	DatabaseDSN      string         `json:"database_dsn"`
	DBHost           string         `json:"db_host"`
	DBPort           int            `json:"db_port"`
	DBUser           string         `json:"db_user"`
	DBPassword       string         `json:"db_password"`
	DBName           string         `json:"db_name"`
	DBSSLMode        string         `json:"db_sslmode"`
	MaxOpenConns     int            `json:"max_open_conns"`
	MaxIdleConns     int            `json:"max_idle_conns"`
	ConnMaxLifetime  timex.Duration `json:"conn_max_lifetime"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; when
// neither is set, no JSON file is loaded. Unreadable or invalid files panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{
		EndpointAddrHTTP: config.EndpointAddrHTTP,
		DatabaseDSN:      config.DatabaseDSN,
		DBHost:           config.DBHost,
		DBPort:           config.DBPort,
		DBUser:           config.DBUser,
		DBPassword:       config.DBPassword,
		DBName:           config.DBName,
		DBSSLMode:        config.DBSSLMode,
		MaxOpenConns:     config.MaxOpenConns,
		MaxIdleConns:     config.MaxIdleConns,
		ConnMaxLifetime:  timex.Duration{Duration: config.ConnMaxLifetime},
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.DBHost = c.DBHost
	config.DBPort = c.DBPort
	config.DBUser = c.DBUser
	config.DBPassword = c.DBPassword
	config.DBName = c.DBName
	config.DBSSLMode = c.DBSSLMode
	config.MaxOpenConns = c.MaxOpenConns
	config.MaxIdleConns = c.MaxIdleConns
	config.ConnMaxLifetime = time.Duration(c.ConnMaxLifetime.Duration)
}
