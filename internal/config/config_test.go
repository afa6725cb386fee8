package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ETHERSCAN_API_KEY", "ETH_ADDRESS", "ETHERSCAN_BASE_URL",
		"ETHERSCAN_TIMEOUT_SECONDS", "SERVER_HOST", "SERVER_PORT", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ETHERSCAN_API_KEY", "key123")
	t.Setenv("ETH_ADDRESS", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "key123", cfg.Etherscan.APIKey)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", cfg.Etherscan.Address)
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
	assert.Equal(t, "https://api.etherscan.io/v2/api", cfg.Etherscan.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Etherscan.Timeout)
}

func TestLoadMissingAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("ETH_ADDRESS", "0xabc")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadMissingAddress(t *testing.T) {
	clearEnv(t)
	t.Setenv("ETHERSCAN_API_KEY", "key123")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
server:
  host: 0.0.0.0
  port: 8080
etherscan:
  api_key: filekey
  address: "0xfile"
  timeout: 5s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("ETH_ADDRESS", "0xenv")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "filekey", cfg.Etherscan.APIKey)
	assert.Equal(t, "0xenv", cfg.Etherscan.Address)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.Etherscan.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("ETHERSCAN_API_KEY", "key123")
	t.Setenv("ETH_ADDRESS", "0xabc")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "0xabc", cfg.Etherscan.Address)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestTimeoutEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ETHERSCAN_API_KEY", "key123")
	t.Setenv("ETH_ADDRESS", "0xabc")
	t.Setenv("ETHERSCAN_TIMEOUT_SECONDS", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.Etherscan.Timeout)
}
