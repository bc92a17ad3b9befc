package cmd

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"caresam-backend/internal/config"
	"caresam-backend/internal/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func LoadEnvFile() {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	LoadEnvFileFrom(configPath)
}

func LoadEnvFileFrom(configPath string) {
	if configPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return
	}

	log.Printf("loading env from file %s", configPath)
	err := godotenv.Load(configPath)
	if err != nil {
		log.Fatalf("error loading .env file '%s': %v", configPath, err)
	}
}

func SetLogLevel(level string) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		log.Printf("%v, using info", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// OpenDatabase connects to the configured database and brings its schema up
// to date.
func OpenDatabase(cfg config.DBConfig) *gorm.DB {
	db, err := database.NewDatabase(cfg.Options())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.GetMigrator(db).Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
