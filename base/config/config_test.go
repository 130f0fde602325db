package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	req.NoError(os.WriteFile(path, []byte(`
chain:
  chainId: 8453
  rpcUrl: https://mainnet.base.org
http:
  timeout: 5s
`), 0o600))
	t.Setenv("CHAIN_RPCURL", "http://localhost:8545")

	req.NoError(Load(path))
	req.Equal(int32(8453), viper.GetInt32("chain.chainId"))
	req.Equal("http://localhost:8545", viper.GetString("chain.rpcUrl"))
	req.Equal("5s", viper.GetDuration("http.timeout").String())
	req.Equal("https://anky.mypinata.cloud/ipfs", viper.GetString("ipfs.gateway"))
}

func TestLoadMissingFile(t *testing.T) {
	require.Error(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))
}
