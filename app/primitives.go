package app

import (
	"time"

	"github.com/pkg/errors"

	"github.com/okx/testtube/account"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	"github.com/okx/testtube/x/oracle"
)

// InitAccount creates a funded account with a fresh key. Denoms of coins
// that have no bank metadata get one. No block is produced.
func (app *TestApp) InitAccount(coins sdk.Coins) (*account.SigningAccount, error) {
	accs, err := app.InitAccounts(coins, 1)
	if err != nil {
		return nil, err
	}
	return accs[0], nil
}

// InitAccounts creates n accounts funded with coins each.
func (app *TestApp) InitAccounts(coins sdk.Coins, n int) ([]*account.SigningAccount, error) {
	if err := coins.Validate(); err != nil {
		return nil, err
	}
	accs := make([]*account.SigningAccount, 0, n)
	for i := 0; i < n; i++ {
		acc, err := account.GenerateSigningAccount(app.cfg.AddressPrefix, app.cfg.DefaultFeeSetting())
		if err != nil {
			return nil, err
		}
		accs = append(accs, acc)
	}

	err := app.UpdateState(func(ctx sdk.Context) error {
		app.ensureDenomMetadata(ctx, coins)
		for _, acc := range accs {
			if err := app.BankKeeper.InitGenesisBalance(ctx, acc.Address(), coins); err != nil {
				return errors.Wrapf(err, "fund %s", acc.Address())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accs, nil
}

// BlockTime returns the time of the last committed block.
func (app *TestApp) BlockTime() time.Time { return app.LastHeader().Time }

// BlockTimeSeconds returns BlockTime as unix seconds.
func (app *TestApp) BlockTimeSeconds() int64 { return app.BlockTime().Unix() }

// BlockHeight returns the height of the last committed block.
func (app *TestApp) BlockHeight() int64 { return app.LastHeader().Height }

// IncreaseTime commits an empty block the given number of seconds after
// the last one.
func (app *TestApp) IncreaseTime(seconds uint64) error {
	_, err := app.AdvanceTime(time.Duration(seconds) * time.Second)
	return err
}

// FirstValidatorAddress returns the operator address of the validator
// with the most voting power.
func (app *TestApp) FirstValidatorAddress() (string, error) {
	var operator string
	err := app.View(func(ctx sdk.Context) error {
		vals := app.StakingKeeper.GetBondedValidatorsByPower(ctx)
		if len(vals) == 0 {
			return sdkerrors.Wrap(sdkerrors.ErrNotFound, "no bonded validator")
		}
		operator = vals[0].OperatorAddress
		return nil
	})
	return operator, err
}

// FirstValidatorPrivateKey returns the raw private key of the genesis
// validator account.
func (app *TestApp) FirstValidatorPrivateKey() []byte {
	return app.validator.PrivateKeyBytes()
}

// ValidatorSigningAccount returns a signer for the genesis validator
// account paying fees in feeDenom at the configured gas price.
func (app *TestApp) ValidatorSigningAccount(feeDenom string, gasAdjustment float64) (*account.SigningAccount, error) {
	fee := account.AutoFee{
		GasPrice:      sdk.DecCoin{Denom: feeDenom, Amount: app.cfg.GasPrice},
		GasAdjustment: gasAdjustment,
	}
	return account.NewSigningAccount(app.cfg.AddressPrefix, app.FirstValidatorPrivateKey(), fee)
}

// SetPriceForCurrencyPair stores price for cp as if the oracle had
// reported it in the next block, and commits that block.
func (app *TestApp) SetPriceForCurrencyPair(cp oracle.CurrencyPair, price string) error {
	header := app.LastHeader()
	quote := oracle.QuotePrice{
		Price:          price,
		BlockTimestamp: header.Time.Add(app.cfg.BlockInterval).Unix(),
		BlockHeight:    uint64(header.Height + 1),
	}
	err := app.UpdateState(func(ctx sdk.Context) error {
		return app.OracleKeeper.SetPriceForCurrencyPair(ctx, cp, quote)
	})
	if err != nil {
		return err
	}
	_, err = app.FinalizeBlock(nil)
	return err
}

// ModuleAddress returns the account address of the named module.
func (app *TestApp) ModuleAddress(name string) string {
	return app.AccountKeeper.GetModuleAddress(name)
}

// AccountSequence returns the next sequence the chain expects from addr.
func (app *TestApp) AccountSequence(addr string) (uint64, error) {
	_, seq, err := app.accountState(addr)
	return seq, err
}

// AccountNumber returns the account number of addr, or zero for an
// account the chain does not know.
func (app *TestApp) AccountNumber(addr string) (uint64, error) {
	num, _, err := app.accountState(addr)
	return num, err
}

// Balance returns the balance of addr in denom.
func (app *TestApp) Balance(addr, denom string) (sdk.Coin, error) {
	var coin sdk.Coin
	err := app.View(func(ctx sdk.Context) error {
		coin = app.BankKeeper.GetBalance(ctx, addr, denom)
		return nil
	})
	return coin, err
}
