package service

import (
	"context"
	"testing"

	"friender/internal/database"
	"friender/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles the services over a shared in-memory database.
type testEnv struct {
	db       *gorm.DB
	users    *UserService
	friends  *FriendService
	messages *MessageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	return &testEnv{
		db:       db,
		users:    NewUserService(db, userRepo),
		friends:  NewFriendService(db, friendRepo, userRepo),
		messages: NewMessageService(messageRepo, userRepo),
	}
}

// testPassword satisfies the password policy.
const testPassword = "TestPass123!@#"

func (e *testEnv) register(t *testing.T, username string) {
	t.Helper()
	_, err := e.users.Register(context.Background(), RegisterInput{
		Username:     username,
		Email:        username + "@example.com",
		Password:     testPassword,
		Location:     48197,
		Bio:          "hello",
		FriendRadius: 25,
	})
	require.NoError(t, err)
}
