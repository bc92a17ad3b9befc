package migration_2

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatHistory struct {
	UserEmotion    string `gorm:"size:50"`
	CompletionMeta datatypes.JSON
	CreatedAt      time.Time
}

func (ChatHistory) TableName() string {
	return "chat_history"
}

type ThankDiary struct {
	CreatedAt time.Time
}

func (ThankDiary) TableName() string {
	return "thank_diary"
}

func Migration(db *gorm.DB) error {
	for _, column := range []string{"UserEmotion", "CompletionMeta", "CreatedAt"} {
		if err := db.Migrator().AddColumn(&ChatHistory{}, column); err != nil {
			return fmt.Errorf("error adding chat_history %s column: %w", column, err)
		}
	}

	if err := db.Migrator().AddColumn(&ThankDiary{}, "CreatedAt"); err != nil {
		return fmt.Errorf("error adding thank_diary CreatedAt column: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	for _, column := range []string{"UserEmotion", "CompletionMeta", "CreatedAt"} {
		if err := db.Migrator().DropColumn(&ChatHistory{}, column); err != nil {
			return fmt.Errorf("error dropping chat_history %s column: %w", column, err)
		}
	}

	if err := db.Migrator().DropColumn(&ThankDiary{}, "CreatedAt"); err != nil {
		return fmt.Errorf("error dropping thank_diary CreatedAt column: %w", err)
	}

	return nil
}
