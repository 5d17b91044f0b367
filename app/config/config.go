package config

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
)

type Config struct {
	DB   *sql.DB
	Env  Env
	SMTP SMTPConfig
}

// Env carries everything read from the environment.
type Env struct {
	AppName string `envconfig:"APP_NAME" default:"Gabkut Schola"`
	Port    int    `envconfig:"PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"gabkut_schola"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	SchoolYear string `envconfig:"SCHOOL_YEAR" default:"2025-2026"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"SMTP_FROM"`
}

var AppConfig *Config

// ConnectionString builds the lib/pq DSN from the environment values.
func (e Env) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		e.DBHost, e.DBPort, e.DBUser, e.DBPassword, e.DBName, e.DBSSLMode)
}

// Load reads .env (when present) and the environment into AppConfig,
// then opens the database pool.
func Load() error {
	// .env is optional; the environment wins in deployment.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("processing environment: %w", err)
	}
	var smtp SMTPConfig
	if err := envconfig.Process("", &smtp); err != nil {
		return fmt.Errorf("processing SMTP environment: %w", err)
	}

	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return fmt.Errorf("opening database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		return fmt.Errorf("pinging database %s@%s:%d/%s: %w",
			env.DBUser, env.DBHost, env.DBPort, env.DBName, err)
	}

	AppConfig = &Config{DB: db, Env: env, SMTP: smtp}
	log.Println("Database connected successfully")
	return nil
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// GetEnv returns the loaded environment values.
func GetEnv() Env {
	return AppConfig.Env
}
