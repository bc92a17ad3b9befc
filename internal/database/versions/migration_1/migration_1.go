package migration_1

import (
	"fmt"
	"log/slog"

	"caresam-backend/internal/auth"

	"gorm.io/gorm"
)

type User struct {
	ID           uint
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Password     string `gorm:"size:255"`
	PasswordHash string `gorm:"size:255"`
}

func (User) TableName() string {
	return "user"
}

// Migration replaces the plaintext password column with a bcrypt hash of its
// current value.
func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&User{}, "PasswordHash"); err != nil {
		return fmt.Errorf("error adding PasswordHash column: %w", err)
	}

	var users []User
	if err := db.Select("id", "email", "password").Find(&users).Error; err != nil {
		return fmt.Errorf("error listing users: %w", err)
	}

	for _, user := range users {
		if user.Password == "" {
			slog.Warn("user has no password, leaving hash empty", "email", user.Email)
			continue
		}

		hash, err := auth.HashPassword(user.Password)
		if err != nil {
			return fmt.Errorf("error hashing password for user %d: %w", user.ID, err)
		}

		if err := db.Model(&User{}).Where("id = ?", user.ID).Update("password_hash", hash).Error; err != nil {
			return fmt.Errorf("error storing password hash for user %d: %w", user.ID, err)
		}
	}

	if err := db.Migrator().DropColumn(&User{}, "Password"); err != nil {
		return fmt.Errorf("error dropping Password column: %w", err)
	}

	// sqlite drops a column by rebuilding the table, which loses its indexes.
	if !db.Migrator().HasIndex(&User{}, "Email") {
		if err := db.Migrator().CreateIndex(&User{}, "Email"); err != nil {
			return fmt.Errorf("error restoring email index: %w", err)
		}
	}

	return nil
}

// Rollback restores the password column, but the plaintext values cannot be
// recovered: every user has to reset their password afterwards.
func Rollback(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&User{}, "Password"); err != nil {
		return fmt.Errorf("error adding Password column: %w", err)
	}

	if err := db.Migrator().DropColumn(&User{}, "PasswordHash"); err != nil {
		return fmt.Errorf("error dropping PasswordHash column: %w", err)
	}

	return nil
}
