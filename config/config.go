package config

import (
	"fmt"
	"os"
	"strings"
)

// Config collects every environment value the process needs. It is loaded and
// validated once in main and injected into the services that use it, so no
// handler reads ambient environment state.
type Config struct {
	Port          string
	MongoURI      string
	MongoDBName   string
	CassandraHost string

	// AllowedEmailDomain restricts first-time registration to emails ending
	// with this suffix. Empty disables the gate.
	AllowedEmailDomain string
}

func Load() (Config, error) {
	cfg := Config{
		Port:               os.Getenv("PORT"),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDBName:        os.Getenv("MONGO_DB_NAME"),
		CassandraHost:      os.Getenv("CASS_DB"),
		AllowedEmailDomain: strings.TrimPrefix(os.Getenv("ALLOWED_EMAIL_DOMAIN"), "@"),
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is not set in the environment variables")
	}
	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is not set in the environment variables")
	}
	if cfg.MongoDBName == "" {
		cfg.MongoDBName = "campus_gigs"
	}
	if cfg.CassandraHost == "" {
		cfg.CassandraHost = "127.0.0.1"
	}

	return cfg, nil
}
