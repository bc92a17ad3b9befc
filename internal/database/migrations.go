package database

import (
	"caresam-backend/internal/database/versions/migration_0"
	"caresam-backend/internal/database/versions/migration_1"
	"caresam-backend/internal/database/versions/migration_2"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// GetMigrator always replays the versions in order instead of using
// InitSchema: databases created by the first deployment already contain the
// legacy tables but no migrations table, and their plaintext passwords must
// still go through migration 1.
func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	return gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID:      "0",
			Migrate: migration_0.Migration,
		},
		{
			ID:       "1",
			Migrate:  migration_1.Migration,
			Rollback: migration_1.Rollback,
		},
		{
			ID:       "2",
			Migrate:  migration_2.Migration,
			Rollback: migration_2.Rollback,
		},
	})
}
