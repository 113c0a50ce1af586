package service

import (
	"context"
	"strings"
	"testing"

	"friender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_SendAndHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice")
	env.register(t, "bob")

	msg, err := env.messages.Send(ctx, "alice", "bob", "hey bob")
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())

	_, err = env.messages.Send(ctx, "bob", "alice", "hey alice")
	require.NoError(t, err)

	// Both participants see both messages.
	for _, name := range []string{"alice", "bob"} {
		history, err := env.messages.History(ctx, name)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	}
}

func TestMessageService_TextValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice")
	env.register(t, "bob")

	_, err := env.messages.Send(ctx, "alice", "bob", "")
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))

	_, err = env.messages.Send(ctx, "alice", "bob", "   ")
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))

	_, err = env.messages.Send(ctx, "alice", "bob", strings.Repeat("a", models.MaxMessageLen+1))
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))

	// Exactly the limit is fine, counted in runes not bytes.
	_, err = env.messages.Send(ctx, "alice", "bob", strings.Repeat("é", models.MaxMessageLen))
	assert.NoError(t, err)
}

func TestMessageService_SendToMissingUser(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	_, err := env.messages.Send(context.Background(), "alice", "ghost", "hello?")
	require.Error(t, err)
	assert.Equal(t, models.CodeForeignKey, models.ErrorCode(err))
}

func TestMessageService_HistoryUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.messages.History(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}
