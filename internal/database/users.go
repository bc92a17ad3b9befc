package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetUserByEmail(ctx context.Context, db *gorm.DB, email string) (User, error) {
	var user User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return User{}, err
	}
	return user, nil
}

// UpsertUser creates the user or, if the email is taken, overwrites its
// username and password hash.
func UpsertUser(ctx context.Context, db *gorm.DB, user *User) error {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "password_hash"}),
	}).Create(user).Error
	if err != nil {
		return fmt.Errorf("error saving user %s: %w", user.Email, err)
	}
	return nil
}

func UpdatePasswordHash(ctx context.Context, db *gorm.DB, email, hash string) error {
	res := db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Update("password_hash", hash)
	if res.Error != nil {
		return fmt.Errorf("error updating password for %s: %w", email, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type UserSummary struct {
	Username     string
	Email        string
	DiaryCnt     int64
	Token        int64
	TotalCnt     int64
	ThankChatCnt int64
	ConsChatCnt  int64
}

// ListUserSummaries aggregates diary and chat activity for every user. Users
// without activity are still listed with zero counts.
func ListUserSummaries(ctx context.Context, db *gorm.DB) ([]UserSummary, error) {
	db = db.WithContext(ctx)

	thank := db.Model(&ThankDiary{}).
		Select("user_email, MAX(diary_write_count) AS diary_cnt, SUM(diary_token) AS token").
		Group("user_email")

	chats := db.Model(&ChatHistory{}).
		Select(
			"user_email, COUNT(DISTINCT chat_uuid) AS total_cnt, "+
				"COUNT(DISTINCT CASE WHEN chat_mode = ? THEN chat_uuid END) AS thank_chat_cnt, "+
				"COUNT(DISTINCT CASE WHEN chat_mode IN ? THEN chat_uuid END) AS cons_chat_cnt",
			ChatModeThanks, []string{ChatModeCons, ChatModeThanksDiary},
		).
		Group("user_email")

	var summaries []UserSummary
	err := db.Model(&User{}).
		Select(
			"username, email, " +
				"COALESCE(thank.diary_cnt, 0) AS diary_cnt, " +
				"COALESCE(thank.token, 0) AS token, " +
				"COALESCE(chats.total_cnt, 0) AS total_cnt, " +
				"COALESCE(chats.thank_chat_cnt, 0) AS thank_chat_cnt, " +
				"COALESCE(chats.cons_chat_cnt, 0) AS cons_chat_cnt",
		).
		Joins("LEFT JOIN (?) AS thank ON thank.user_email = email", thank).
		Joins("LEFT JOIN (?) AS chats ON chats.user_email = email", chats).
		Order("email").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("error listing user summaries: %w", err)
	}

	return summaries, nil
}
