package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"branding-agent/internal/domain/entities"
	"branding-agent/internal/domain/repositories"
	"branding-agent/internal/infrastructure/db/postgres"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection to :memory: would see a separate empty
	// database; pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))
	return db
}

func createTestUser(t *testing.T, repo repositories.UserRepository, email string) *entities.User {
	t.Helper()

	user := entities.NewUser("Jane Doe", email, "secret123")
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)

	created, err := repo.Create(validated)
	require.NoError(t, err)
	return created
}

func completeProfile(t *testing.T, repo repositories.UserRepository, user *entities.User) *entities.User {
	t.Helper()

	user.Role = "AI Intern"
	user.Industry = "EdTech"
	user.Interests = "machine learning, career tips"
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)

	updated, err := repo.Update(validated)
	require.NoError(t, err)
	return updated
}
