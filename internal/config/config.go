package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver   string
	DBPath     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	JWTSecret  string
	SessionTTL time.Duration
	Port       string
}

func LoadConfig() *Config {
	// Database configuration
	dbDriver := os.Getenv("DB_DRIVER")
	if dbDriver == "" {
		dbDriver = "sqlite3"
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "notes.db"
	}
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")

	// Session configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sessionTTLHours := 72 // default value
	if ttlStr := os.Getenv("SESSION_TTL_HOURS"); ttlStr != "" {
		if val, err := strconv.Atoi(ttlStr); err == nil {
			sessionTTLHours = val
		}
	}

	return &Config{
		DBDriver:   dbDriver,
		DBPath:     dbPath,
		DBUser:     dbUser,
		DBPassword: dbPassword,
		DBHost:     dbHost,
		DBName:     dbName,
		JWTSecret:  jwtSecret,
		SessionTTL: time.Duration(sessionTTLHours) * time.Hour,
		Port:       port,
	}
}
