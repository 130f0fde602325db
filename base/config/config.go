package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/farbarter/goapi/base/log"
)

const DefaultPath = "infra/configs/config.yaml"

func init() {
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("chain.chainId", 666666666)
	viper.SetDefault("chain.rpcUrl", "https://rpc.degen.tips")
	viper.SetDefault("farbarter.contract", "0x8d59e8ef33fb819979ad09fb444a26792970fb6f")
	viper.SetDefault("ipfs.gateway", "https://anky.mypinata.cloud/ipfs")
	viper.SetDefault("arweave.gateway", "https://arweave.net")
	viper.SetDefault("daimo.baseUrl", "https://farcaster.anky.bot")
}

// Load reads the yaml config at path into viper. Environment variables win
// over the file, CHAIN_RPCURL overrides chain.rpcUrl.
func Load(path string) error {
	if path == "" {
		path = DefaultPath
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	if err := log.Setup(viper.GetBool("debug")); err != nil {
		return err
	}
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}
