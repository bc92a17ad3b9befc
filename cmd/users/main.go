package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"caresam-backend/cmd"
	"caresam-backend/internal/auth"
	"caresam-backend/internal/config"
	"caresam-backend/internal/database"

	"gorm.io/gorm"
)

func connect(envFile string) *gorm.DB {
	cmd.LoadEnvFileFrom(envFile)

	cfg, err := config.LoadDB()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	return cmd.OpenDatabase(cfg)
}

func createUser(db *gorm.DB, email, username, password string) {
	if email == "" || password == "" {
		log.Fatalf("-email and -password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := database.User{Username: username, Email: email, PasswordHash: hash}
	if err := database.UpsertUser(ctx, db, &user); err != nil {
		log.Fatalf("Error creating user: %v", err)
	}

	log.Printf("user '%s' saved", email)
}

func resetPassword(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		log.Fatalf("-email and -password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.UpdatePasswordHash(ctx, db, email, hash); err != nil {
		log.Fatalf("Error updating password for '%s': %v", email, err)
	}

	log.Printf("password for '%s' updated", email)
}

func main() {
	createArgs := flag.NewFlagSet("create", flag.ExitOnError)
	createEnv := createArgs.String("env", "", "path to load env from")
	createEmail := createArgs.String("email", "", "Email of the user")
	createName := createArgs.String("username", "", "Display name of the user")
	createPassword := createArgs.String("password", "", "Password of the user")

	passwdArgs := flag.NewFlagSet("passwd", flag.ExitOnError)
	passwdEnv := passwdArgs.String("env", "", "path to load env from")
	passwdEmail := passwdArgs.String("email", "", "Email of the user")
	passwdPassword := passwdArgs.String("password", "", "New password")

	migrateArgs := flag.NewFlagSet("migrate", flag.ExitOnError)
	migrateEnv := migrateArgs.String("env", "", "path to load env from")

	if len(os.Args) < 2 {
		log.Fatalf("expected 'create' or 'passwd' or 'migrate' subcommands")
	}

	switch os.Args[1] {
	case "create":
		if err := createArgs.Parse(os.Args[2:]); err != nil {
			log.Fatalf("Error parsing arguments: %v", err)
		}
		createUser(connect(*createEnv), *createEmail, *createName, *createPassword)
	case "passwd":
		if err := passwdArgs.Parse(os.Args[2:]); err != nil {
			log.Fatalf("Error parsing arguments: %v", err)
		}
		resetPassword(connect(*passwdEnv), *passwdEmail, *passwdPassword)
	case "migrate":
		if err := migrateArgs.Parse(os.Args[2:]); err != nil {
			log.Fatalf("Error parsing arguments: %v", err)
		}
		connect(*migrateEnv)
		log.Println("migrations complete")
	default:
		log.Fatalf("expected 'create' or 'passwd' or 'migrate' subcommands")
	}
}
