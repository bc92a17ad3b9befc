package migration_1

import (
	"testing"

	"caresam-backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OldUser struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:100"`
	Email    string `gorm:"size:255;uniqueIndex;not null"`
	Password string `gorm:"size:255"`
}

func (OldUser) TableName() string {
	return "user"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&OldUser{}))

	return db
}

func TestMigration(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&[]OldUser{
		{Username: "Kim", Email: "kim@example.com", Password: "secret"},
		{Username: "Lee", Email: "lee@example.com", Password: "hunter2"},
		{Username: "Park", Email: "park@example.com"},
	}).Error)

	require.NoError(t, Migration(db))

	assert.True(t, db.Migrator().HasColumn(&User{}, "PasswordHash"))
	assert.False(t, db.Migrator().HasColumn("user", "password"))
	assert.True(t, db.Migrator().HasIndex(&User{}, "Email"))

	var users []User
	require.NoError(t, db.Select("id", "email", "password_hash").Order("id").Find(&users).Error)
	require.Len(t, users, 3)

	assert.True(t, auth.CheckPassword(users[0].PasswordHash, "secret"))
	assert.False(t, auth.CheckPassword(users[0].PasswordHash, "hunter2"))
	assert.True(t, auth.CheckPassword(users[1].PasswordHash, "hunter2"))
	assert.NotEqual(t, "secret", users[0].PasswordHash)
	assert.Empty(t, users[2].PasswordHash)

	var username string
	require.NoError(t, db.Table("user").Select("username").Where("email = ?", "kim@example.com").Scan(&username).Error)
	assert.Equal(t, "Kim", username)

	err := db.Table("user").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(map[string]any{"email": "kim@example.com", "password_hash": "x"}).Error
	assert.NoError(t, err)
}

func TestRollback(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&OldUser{Email: "kim@example.com", Password: "secret"}).Error)

	require.NoError(t, Migration(db))
	require.NoError(t, Rollback(db))

	assert.True(t, db.Migrator().HasColumn("user", "password"))
	assert.False(t, db.Migrator().HasColumn("user", "password_hash"))
}
