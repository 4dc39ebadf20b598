package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/classes")
	t.Setenv("ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":3333", cfg.HTTPAddr)
	assert.False(t, cfg.NotificationsEnabled())
}

func TestFromEnv_RequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_Telegram(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/classes")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	t.Setenv("TELEGRAM_CHAT_ID", "")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	_, err = FromEnv()
	assert.Error(t, err)

	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(-100200300), cfg.TelegramChatID)
	assert.True(t, cfg.NotificationsEnabled())
}
