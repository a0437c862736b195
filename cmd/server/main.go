package main

import (
	"database/sql"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ahsanfayaz52/noteservice/internal/auth"
	"github.com/ahsanfayaz52/noteservice/internal/config"
	"github.com/ahsanfayaz52/noteservice/internal/db"
	"github.com/ahsanfayaz52/noteservice/internal/handlers"
	"github.com/ahsanfayaz52/noteservice/internal/notes"
	"github.com/ahsanfayaz52/noteservice/internal/store"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	var dbConn *sql.DB
	var err error
	switch cfg.DBDriver {
	case "mysql":
		dbConn, err = db.InitMySQL(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBName)
	default:
		dbConn, err = db.InitSQLite(cfg.DBPath)
	}
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer dbConn.Close()

	st := store.NewStore(dbConn)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	authSvc := auth.NewService(st, log)
	notesSvc := notes.NewService(st, log)

	r := handlers.NewRouter(authSvc, notesSvc, jwtService, log)

	log.Infof("Starting server on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
