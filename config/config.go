// Package config exposes the process configuration of shopdesk. Values come
// from SHOPDESK_* environment variables, optionally seeded from a .env file,
// over an optional shopdesk.toml in the working directory.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

const (
	defaultPort = 5000
	defaultLang = "pt-BR"
)

var v = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SHOPDESK")
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("log_level", string(Info))
	v.SetDefault("db_folder", "db")
	v.SetDefault("log_folder", "log")
	v.SetDefault("listen", "")
	v.SetDefault("port", defaultPort)
	v.SetDefault("session_max_age", 0)
	v.SetDefault("lang", defaultLang)
	return v
}

// LoadEnv reads a .env file into the process environment, then the optional
// shopdesk.toml. Neither file is required; environment variables win over
// the toml file.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Notice: .env file not loaded: %v. Using system environment variables", err)
	}
	if err := loadConfigFile("."); err != nil {
		log.Printf("Notice: config file not loaded: %v", err)
	}
}

func loadConfigFile(dir string) error {
	v.SetConfigName(GetName())
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	return LogLevel(strings.ToLower(v.GetString("log_level")))
}

func IsDebug() bool {
	return v.GetBool("debug")
}

func GetDBFolderPath() string {
	return v.GetString("db_folder")
}

func GetDBPath() string {
	return filepath.Join(GetDBFolderPath(), fmt.Sprintf("%s.db", GetName()))
}

func GetLogFolder() string {
	return v.GetString("log_folder")
}

func GetListen() string {
	return v.GetString("listen")
}

// GetPort returns the listen port, falling back to the default on a
// malformed value.
func GetPort() int {
	return getInt("port", defaultPort)
}

// GetSecret returns the session signing secret. Empty means a random secret
// is generated for the lifetime of the process.
func GetSecret() string {
	return v.GetString("secret")
}

// GetSessionMaxAge returns the session cookie lifetime in minutes; zero keeps
// the cookie for the browser session.
func GetSessionMaxAge() int {
	return getInt("session_max_age", 0)
}

func GetWebDomain() string {
	return v.GetString("domain")
}

func GetCertFile() string {
	return v.GetString("cert_file")
}

func GetKeyFile() string {
	return v.GetString("key_file")
}

func GetDefaultLang() string {
	return v.GetString("lang")
}

func getInt(key string, def int) int {
	value := v.GetString(key)
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("invalid %s %q, using %d", key, value, def)
		return def
	}
	return n
}
