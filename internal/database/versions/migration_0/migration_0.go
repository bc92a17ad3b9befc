package migration_0

import (
	"fmt"

	"gorm.io/gorm"
)

// These mirror the tables the service was first deployed with. Running the
// migration against a database that already has them is a no-op.

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:100"`
	Email    string `gorm:"size:255;uniqueIndex;not null"`
	Password string `gorm:"size:255"`
}

func (User) TableName() string {
	return "user"
}

type ChatHistory struct {
	ID        uint   `gorm:"primaryKey"`
	ChatMode  string `gorm:"size:20"`
	UserName  string `gorm:"size:100"`
	UserEmail string `gorm:"size:255;index"`
	ChatUUID  string `gorm:"column:chat_uuid;size:64"`
	UserMsg   string `gorm:"type:text"`
	AIMsg     string `gorm:"column:ai_msg;type:text"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}

type ThankDiary struct {
	ID              uint   `gorm:"primaryKey"`
	UserName        string `gorm:"size:100"`
	UserEmail       string `gorm:"size:255;index"`
	ChatUUID        string `gorm:"column:chat_uuid;size:64"`
	DiaryText       string `gorm:"type:text"`
	DiaryWriteCount int
	DiaryToken      int
}

func (ThankDiary) TableName() string {
	return "thank_diary"
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &ChatHistory{}, &ThankDiary{}); err != nil {
		return fmt.Errorf("error creating initial schema: %w", err)
	}
	return nil
}
