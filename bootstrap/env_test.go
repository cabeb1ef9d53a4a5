package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnv_DefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("REC_LIMIT", "5")

	env, err := NewEnv("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", env.ServerAddress)
	assert.Equal(t, 30, env.ContextTimeout)
	assert.Equal(t, "bookrec", env.DBName)
	assert.Equal(t, 5, env.RecLimit)
	assert.Equal(t, 40, env.GoogleBooksMaxResults)
	assert.Equal(t, 5.0, env.GoogleBooksRatePerSecond)
	assert.Equal(t, []string{"*"}, env.AllowedOrigins())
	assert.False(t, env.IsProduction())
}

func TestNewEnv_ReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"APP_ENV=production\nDB_URI=mongodb://db:27017\nACCESS_TOKEN_SECRET=abc\nCORS_ALLOW_ORIGINS=http://a.test,http://b.test\n",
	), 0o600))

	env, err := NewEnv(path)
	require.NoError(t, err)
	assert.True(t, env.IsProduction())
	assert.Equal(t, "mongodb://db:27017", env.DBURI)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.AllowedOrigins())
}

func TestNewEnv_MissingRequired(t *testing.T) {
	t.Setenv("DB_URI", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	_, err := NewEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URI")
	assert.Contains(t, err.Error(), "ACCESS_TOKEN_SECRET")
}
