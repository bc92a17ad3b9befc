package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

func SaveChatHistory(ctx context.Context, db *gorm.DB, record *ChatHistory) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("error saving chat history: %w", err)
	}
	return nil
}

type DeletedCounts struct {
	ChatHistory int64
	Diary       int64
}

// DeleteUserData removes every chat_history and thank_diary row of a user. Both
// deletes run in one transaction.
func DeleteUserData(ctx context.Context, db *gorm.DB, email string) (DeletedCounts, error) {
	var counts DeletedCounts

	err := db.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		res := txn.Where("user_email = ?", email).Delete(&ChatHistory{})
		if res.Error != nil {
			return fmt.Errorf("error deleting chat history: %w", res.Error)
		}
		counts.ChatHistory = res.RowsAffected

		res = txn.Where("user_email = ?", email).Delete(&ThankDiary{})
		if res.Error != nil {
			return fmt.Errorf("error deleting diary entries: %w", res.Error)
		}
		counts.Diary = res.RowsAffected

		return nil
	})
	if err != nil {
		return DeletedCounts{}, err
	}

	slog.Info("deleted user data", "user_email", email, "chat_history", counts.ChatHistory, "diary", counts.Diary)
	return counts, nil
}
