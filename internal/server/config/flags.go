package config

import (
	"flag"
	"os"

	"github.com/aadhaarseva/registry/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   full PostgreSQL DSN (overrides discrete DB fields)
//	-h string   database host
//	-p int      database port
//	-u string   database user
//	-w string   database password
//	-n string   database name
//	-m string   TLS mode (sslmode value, e.g., "disable", "require")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-h", "-p", "-u", "-w", "-n", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DBHost, "h", config.DBHost, "database host")
	fs.IntVar(&config.DBPort, "p", config.DBPort, "database port")
	fs.StringVar(&config.DBUser, "u", config.DBUser, "database user")
	fs.StringVar(&config.DBPassword, "w", config.DBPassword, "database password")
	fs.StringVar(&config.DBName, "n", config.DBName, "database name")
	fs.StringVar(&config.DBSSLMode, "m", config.DBSSLMode, "database sslmode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
