package config

import (
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// The serve address and asset root are deliberately not configurable.
// This server exists to expose the web/ build output to a browser on the
// same machine during development, nothing more.
const (
	// Host is the loopback address the server binds to.
	Host = "127.0.0.1"

	// Port is the TCP port the server listens on.
	Port = "3000"

	// AssetRoot is the directory served, relative to the working
	// directory at startup.
	AssetRoot = "web"
)

type Config struct {
	Server ServerConfig
	Assets AssetsConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type AssetsConfig struct {
	Root string
}

type LogConfig struct {
	Level string
}

// Addr returns the host:port pair the listener binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Load assembles the process configuration. Everything except the log
// level is fixed; LOG_LEVEL (optionally via a .env file) selects the
// stderr verbosity and defaults to info.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:            Host,
			Port:            Port,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Assets: AssetsConfig{
			Root: AssetRoot,
		},
		Log: LogConfig{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}
}
