package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/app/simulator"
	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/types"
	govtypes "github.com/okx/testtube/x/gov/types"
)

const (
	DefaultChainID       = "neutron-666"
	DefaultAddressPrefix = "neutron"
	DefaultFeeDenom      = "untrn"
	// DefaultGenesisTime is the time of block 1.
	DefaultGenesisTime = int64(1700000000)
)

// config keys, shared by config files, environment and flags
const (
	FlagChainID       = "chain_id"
	FlagAddressPrefix = "address_prefix"
	FlagFeeDenom      = "fee_denom"
	FlagGasPrice      = "gas_price"
	FlagGasAdjustment = "gas_adjustment"
	FlagBlockInterval = "block_interval"
	FlagVotingPeriod  = "voting_period"
	FlagLogLevel      = "log_level"
	FlagMetrics       = "metrics"
)

// Config parameterizes a TestApp.
type Config struct {
	ChainID       string        `mapstructure:"chain_id"`
	AddressPrefix string        `mapstructure:"address_prefix"`
	FeeDenom      string        `mapstructure:"fee_denom"`
	GasPrice      string        `mapstructure:"gas_price"`
	GasAdjustment float64       `mapstructure:"gas_adjustment"`
	BlockInterval time.Duration `mapstructure:"block_interval"`
	VotingPeriod  time.Duration `mapstructure:"voting_period"`
	LogLevel      string        `mapstructure:"log_level"`
	// Metrics registers prometheus collectors for the simulator.
	Metrics bool `mapstructure:"metrics"`
}

// DefaultConfig returns the configuration of a local neutron chain.
func DefaultConfig() Config {
	return Config{
		ChainID:       DefaultChainID,
		AddressPrefix: DefaultAddressPrefix,
		FeeDenom:      DefaultFeeDenom,
		GasPrice:      account.DefaultGasPrice,
		GasAdjustment: account.DefaultGasAdjustment,
		BlockInterval: simulator.DefaultBlockInterval,
		VotingPeriod:  govtypes.DefaultVotingPeriod * time.Second,
		LogLevel:      log.LevelNone,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.ChainID == "" {
		return errors.New("chain id is empty")
	}
	if c.AddressPrefix == "" {
		return errors.New("address prefix is empty")
	}
	if err := types.ValidateDenom(c.FeeDenom); err != nil {
		return errors.Wrap(err, "fee denom")
	}
	if _, err := types.ParseDecCoin(c.GasPrice + c.FeeDenom); err != nil {
		return errors.Wrap(err, "gas price")
	}
	if c.GasAdjustment <= 0 {
		return errors.Errorf("gas adjustment must be positive: %v", c.GasAdjustment)
	}
	if c.BlockInterval <= 0 {
		return errors.Errorf("block interval must be positive: %s", c.BlockInterval)
	}
	if c.VotingPeriod < time.Second {
		return errors.Errorf("voting period must be at least one second: %s", c.VotingPeriod)
	}
	return nil
}

// DefaultFeeSetting is the fee setting of accounts created by InitAccount.
func (c Config) DefaultFeeSetting() account.AutoFee {
	return account.AutoFee{
		GasPrice:      types.DecCoin{Denom: c.FeeDenom, Amount: c.GasPrice},
		GasAdjustment: c.GasAdjustment,
	}
}

// SetDefaults registers the defaults of every config key on v.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault(FlagChainID, def.ChainID)
	v.SetDefault(FlagAddressPrefix, def.AddressPrefix)
	v.SetDefault(FlagFeeDenom, def.FeeDenom)
	v.SetDefault(FlagGasPrice, def.GasPrice)
	v.SetDefault(FlagGasAdjustment, def.GasAdjustment)
	v.SetDefault(FlagBlockInterval, def.BlockInterval)
	v.SetDefault(FlagVotingPeriod, def.VotingPeriod)
	v.SetDefault(FlagLogLevel, def.LogLevel)
	v.SetDefault(FlagMetrics, def.Metrics)
}

// ReadConfig decodes the configuration held by v on top of the defaults
// and validates it.
func ReadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
