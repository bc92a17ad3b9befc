package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DiaryStats struct {
	Count int64
	Token int64
}

func diaryStats(txn *gorm.DB, email string) (DiaryStats, error) {
	var stats DiaryStats
	err := txn.Model(&ThankDiary{}).
		Select("COUNT(*) AS count, COALESCE(SUM(diary_token), 0) AS token").
		Where("user_email = ?", email).
		Scan(&stats).Error
	return stats, err
}

// GetDiaryStats returns how many diary entries a user has written and the
// tokens they earned. A failed query is logged and reported as zero.
func GetDiaryStats(ctx context.Context, db *gorm.DB, email string) DiaryStats {
	stats, err := diaryStats(db.WithContext(ctx), email)
	if err != nil {
		slog.Error("error querying diary stats", "user_email", email, "error", err)
		return DiaryStats{}
	}
	return stats
}

// CreateDiaryEntry stores entry as the user's next diary entry and returns the
// user's totals including it. The user's row is locked for the duration of the
// transaction so concurrent entries of a registered user get distinct write
// counts. Emails without a user row are not serialized.
func CreateDiaryEntry(ctx context.Context, db *gorm.DB, entry ThankDiary) (ThankDiary, DiaryStats, error) {
	var totals DiaryStats

	err := db.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		var owner []User
		err := txn.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("email = ?", entry.UserEmail).
			Limit(1).
			Find(&owner).Error
		if err != nil {
			return fmt.Errorf("error locking user %s: %w", entry.UserEmail, err)
		}

		prior, err := diaryStats(txn, entry.UserEmail)
		if err != nil {
			return fmt.Errorf("error querying diary stats: %w", err)
		}

		entry.ID = 0
		entry.DiaryWriteCount = int(prior.Count) + 1
		entry.DiaryToken = DiaryTokenAward

		if err := txn.Create(&entry).Error; err != nil {
			return fmt.Errorf("error saving diary entry: %w", err)
		}

		totals = DiaryStats{Count: prior.Count + 1, Token: prior.Token + DiaryTokenAward}
		return nil
	})
	if err != nil {
		return ThankDiary{}, DiaryStats{}, err
	}

	return entry, totals, nil
}
