package database

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

const (
	ChatModeThanks      string = "thanks"
	ChatModeThanksDiary string = "thanks-dia"
	ChatModeCons        string = "cons"
)

// DiaryTokenAward is the number of tokens credited for every diary entry.
const DiaryTokenAward = 100

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255"`
}

func (User) TableName() string {
	return "user"
}

type ChatHistory struct {
	ID        uint           `gorm:"primaryKey"`
	ChatMode  string         `gorm:"size:20"`
	UserName  string         `gorm:"size:100"`
	UserEmail string         `gorm:"size:255;index"`
	ChatUUID  sql.NullString `gorm:"column:chat_uuid;size:64"`
	UserMsg   string         `gorm:"type:text"`
	AIMsg     string         `gorm:"column:ai_msg;type:text"`

	UserEmotion    string `gorm:"size:50"`
	CompletionMeta datatypes.JSON // {"model": "...", "usage": {...}}
	CreatedAt      time.Time
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
	CreatedAt       time.Time
}

func (ThankDiary) TableName() string {
	return "thank_diary"
}
