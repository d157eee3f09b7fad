package config

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput перехватывает вывод log.Fatal
func captureOutput(f func()) (string, bool) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	oldFlags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(oldFlags)
	}()

	panicked := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		f()
	}()

	return buf.String(), panicked
}

func TestMustLoad_ValidConfig(t *testing.T) {
	// Создаем временный конфиг файл
	configContent := `
env: test
storage:
  data_dir: "/tmp/culture-swap/data"
  media_dir: "/tmp/culture-swap/media"
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 90s
jwttoken:
  jwt_secret_key: "test_secret_key"
  token_ttl: 12h
animations:
  fetch_timeout: 5s
`

	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		err = os.Remove(tmpFile.Name())
		require.NoError(t, err)
	}()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)

	// Устанавливаем переменную окружения
	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		err = os.Setenv("CONFIG_PATH", originalPath)
		require.NoError(t, err)
	}()

	err = os.Setenv("CONFIG_PATH", tmpFile.Name())
	require.NoError(t, err)

	// Не должно быть ошибок
	output, panicked := captureOutput(func() {
		cfg := MustLoad()

		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, "/tmp/culture-swap/data", cfg.DataDir)
		assert.Equal(t, "/tmp/culture-swap/media", cfg.MediaDir)
		assert.Equal(t, ":8080", cfg.AddressHTTP)
		assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
		assert.Equal(t, 90*time.Second, cfg.IdleTimeout)
		assert.Equal(t, "test_secret_key", cfg.JWTSecretKey)
		assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	})

	assert.Empty(t, output)
	assert.False(t, panicked)
}

func TestConfig_DefaultValues(t *testing.T) {
	// Создаем минимальный конфиг
	configContent := `
jwttoken:
  jwt_secret_key: "test_secret"
`

	tmpFile, err := os.CreateTemp("", "minimal_config_*.yaml")
	require.NoError(t, err)
	defer func() {
		err = os.Remove(tmpFile.Name())
		require.NoError(t, err)
	}()

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)

	// Устанавливаем переменную окружения
	originalPath := os.Getenv("CONFIG_PATH")
	defer func() {
		err = os.Setenv("CONFIG_PATH", originalPath)
		require.NoError(t, err)
	}()

	err = os.Setenv("CONFIG_PATH", tmpFile.Name())
	require.NoError(t, err)

	output, panicked := captureOutput(func() {
		cfg := MustLoad()

		assert.Equal(t, "test_secret", cfg.JWTSecretKey)

		// Проверяем значения по умолчанию для необязательных полей
		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, "data", cfg.DataDir)
		assert.Equal(t, "data/media", cfg.MediaDir)
		assert.Equal(t, "localhost:8080", cfg.AddressHTTP)
		assert.Equal(t, 4*time.Second, cfg.TimeoutHTTP)
		assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	})

	assert.Empty(t, output)
	assert.False(t, panicked)
}

func TestConfig_String_OmitsSecret(t *testing.T) {
	cfg := &Config{
		Env: "test",
		JWTToken: JWTToken{
			JWTSecretKey: "super_secret",
			TokenTTL:     time.Hour,
		},
	}

	s := cfg.String()
	assert.Contains(t, s, "Env: test")
	assert.NotContains(t, s, "super_secret")
}
