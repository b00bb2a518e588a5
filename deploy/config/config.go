package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Storage    Storage
	Firestore  Firestore
	HTTPServer HTTPServer
}

type Storage struct {
	Backend  string        `env:"STORAGE_BACKEND" env-default:"firestore"`
	Timeout  time.Duration `env:"BD_TIMEOUT" env-default:"10s"`
	Host     string        `env:"BD_HOST" env-default:"localhost"`
	Port     int           `env:"BD_PORT" env-default:"5432"`
	User     string        `env:"BD_USER" env-default:"postgres"`
	Password string        `env:"BD_PASSWORD" env-default:""`
	DBName   string        `env:"BD_DBNAME" env-default:"forex"`
	SSLMode  string        `env:"BD_SSL_MODE" env-default:"disable"`
	Schema   string        `env:"BD_SCHEMA" env-default:"public"`
}

type Firestore struct {
	ProjectID  string `env:"GCP_PROJECT_ID"`
	Collection string `env:"FIRESTORE_COLLECTION" env-default:"exchange_rates"`
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"2m"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

func NewConfig() *Config {
	cfg := &Config{}

	_ = godotenv.Load(".env")

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatal("Error reading env")
	}

	return cfg
}
