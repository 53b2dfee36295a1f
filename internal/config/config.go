package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/edvin/mailsink/internal/model"
)

type Config struct {
	HTTPListenAddr string
	LogLevel       string
	ServiceName    string
	// SetupsFile points at an optional YAML file describing the protocol
	// listeners and the users to provision at startup (and after a reset).
	SetupsFile string
	// PreloadDirectory holds per-address subdirectories of .eml files that are
	// delivered into each user's INBOX at startup and after a reset.
	PreloadDirectory       string
	AuthenticationDisabled bool
	SieveIgnoreDetail      bool

	Setups []model.ServerSetup
	Users  []model.User
}

// setupsFile is the YAML shape of the file referenced by MAILSINK_SETUPS_FILE.
type setupsFile struct {
	Setups []model.ServerSetup `yaml:"setups"`
	Users  []struct {
		Email    string `yaml:"email"`
		Login    string `yaml:"login"`
		Password string `yaml:"password"`
	} `yaml:"users"`
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPListenAddr:         getEnv("HTTP_LISTEN_ADDR", ":8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		ServiceName:            getEnv("SERVICE_NAME", "mailsink"),
		SetupsFile:             getEnv("MAILSINK_SETUPS_FILE", ""),
		PreloadDirectory:       getEnv("MAILSINK_PRELOAD_DIR", ""),
		AuthenticationDisabled: getEnvBool("MAILSINK_AUTH_DISABLED", false),
		SieveIgnoreDetail:      getEnvBool("MAILSINK_SIEVE_IGNORE_DETAIL", false),
	}

	if cfg.SetupsFile != "" {
		if err := cfg.loadSetupsFile(); err != nil {
			return nil, err
		}
	}
	if len(cfg.Setups) == 0 {
		cfg.Setups = DefaultSetups()
	}

	return cfg, nil
}

// DefaultSetups describes the listeners the mail service binds when no setups
// file is given: SMTP, IMAP and POP3 on their test-offset ports.
func DefaultSetups() []model.ServerSetup {
	return []model.ServerSetup{
		{Protocol: model.ProtocolSMTP, Hostname: "127.0.0.1", Port: 3025},
		{Protocol: model.ProtocolIMAP, Hostname: "127.0.0.1", Port: 3143},
		{Protocol: model.ProtocolPOP3, Hostname: "127.0.0.1", Port: 3110},
	}
}

func (c *Config) loadSetupsFile() error {
	data, err := os.ReadFile(c.SetupsFile)
	if err != nil {
		return fmt.Errorf("read setups file %s: %w", c.SetupsFile, err)
	}
	var f setupsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse setups file %s: %w", c.SetupsFile, err)
	}
	c.Setups = f.Setups
	for _, u := range f.Users {
		c.Users = append(c.Users, model.User{Email: u.Email, Login: u.Login, Password: u.Password})
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
