package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
database:
  driver: sqlite
  database: ":memory:"
auth:
  jwtSecret: from-file
seed:
  enabled: true
  users:
    - username: Alice
      email: alice@example.com
      password: password1
`

func readYAML(t *testing.T, content string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return v
}

func TestLoadFromViper(t *testing.T) {
	// Arrange
	v := readYAML(t, sampleYAML)

	// Act
	cfg, err := LoadFromViper(v, Test)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "expense-splitter", cfg.Auth.Issuer)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.Metrics.PoolInterval)
	require.Len(t, cfg.Seed.Users, 1)
	assert.Equal(t, "alice@example.com", cfg.Seed.Users[0].Email)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ES_JWT_SECRET", "from-env")
	t.Setenv("ES_DB_QUERY_TIMEOUT_SECONDS", "2")
	t.Setenv("ES_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("ES_SERVER_PORT", "7070")
	t.Setenv("ES_SERVER_REQUEST_TIMEOUT", "3")

	cfg, err := LoadFromViper(readYAML(t, sampleYAML), Development)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{"Missing secret", "server:\n  port: 8080\n"},
		{"Bad driver", "auth:\n  jwtSecret: x\ndatabase:\n  driver: mysql\n"},
		{"Bad port", "auth:\n  jwtSecret: x\nserver:\n  port: 70000\n"},
		{"No request timeout", "auth:\n  jwtSecret: x\nserver:\n  requestTimeout: 0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromViper(readYAML(t, tc.yaml), Test)
			assert.Error(t, err)
		})
	}
}
