package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/okx/testtube/app"
)

const (
	envPrefix  = "TESTTUBE"
	flagConfig = "config"
)

type flagDescriptor struct {
	name      string
	configKey string
	usage     string
}

var configFlags = []flagDescriptor{
	{"chain-id", app.FlagChainID, "chain id of the simulated chain"},
	{"address-prefix", app.FlagAddressPrefix, "bech32 prefix of account addresses"},
	{"fee-denom", app.FlagFeeDenom, "denom fees are paid in"},
	{"gas-price", app.FlagGasPrice, "gas price in fee denom"},
	{"gas-adjustment", app.FlagGasAdjustment, "multiplier applied to simulated gas"},
	{"block-interval", app.FlagBlockInterval, "time between two blocks"},
	{"voting-period", app.FlagVotingPeriod, "gov voting period"},
	{"log-level", app.FlagLogLevel, "log level (debug|info|error|none)"},
	{"metrics", app.FlagMetrics, "collect prometheus metrics and print them after the run"},
}

// NewRootCmd returns the testtubed command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	app.SetDefaults(v)

	rootCmd := &cobra.Command{
		Use:           "testtubed",
		Short:         "Run scenarios against an in-process neutron chain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupViper(cmd, v)
		},
	}
	rootCmd.PersistentFlags().String(flagConfig, "", "config file (yaml, toml or json)")
	for _, f := range configFlags {
		rootCmd.PersistentFlags().String(f.name, v.GetString(f.configKey), f.usage)
	}

	rootCmd.AddCommand(
		runCmd(v),
		routesCmd(v),
	)
	return rootCmd
}

// setupViper loads the config file and binds env and flags. Precedence
// is flags, then environment, then the config file, then defaults.
func setupViper(cmd *cobra.Command, v *viper.Viper) error {
	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, f := range configFlags {
		if err := v.BindPFlag(f.configKey, cmd.Flags().Lookup(f.name)); err != nil {
			return err
		}
	}
	return nil
}
