package scenario

import (
	"sort"
	"strings"

	"github.com/okx/testtube/account"
	"github.com/okx/testtube/app"
	"github.com/okx/testtube/libs/log"
	"github.com/okx/testtube/module"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// Result is the outcome of one step.
type Result struct {
	Step    string      `json:"step"`
	Action  string      `json:"action"`
	Height  int64       `json:"height"`
	GasUsed uint64      `json:"gas_used,omitempty"`
	Output  interface{} `json:"output,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Runner executes scenarios on one chain. Accounts created by a scenario
// can still be referenced as $<name> by the scenarios run after it, but
// signers must be declared by the scenario itself.
type Runner struct {
	app      *app.TestApp
	logger   log.Logger
	accounts map[string]*account.SigningAccount

	bank   module.Bank
	tf     module.TokenFactory
	dex    module.Dex
	oracle module.Oracle
	gov    module.GovWithAppAccess
}

func NewRunner(testApp *app.TestApp, logger log.Logger) *Runner {
	cfg := testApp.Config()
	return &Runner{
		app:      testApp,
		logger:   logger.With("module", "scenario"),
		accounts: make(map[string]*account.SigningAccount),
		bank:     module.NewBank(testApp),
		tf:       module.NewTokenFactory(testApp),
		dex:      module.NewDex(testApp),
		oracle:   module.NewOracle(testApp),
		gov:      module.NewGovWithAppAccess(testApp, testApp, module.WithVoteFee(cfg.FeeDenom, cfg.GasAdjustment)),
	}
}

// Run funds the scenario accounts and runs its steps in order. It stops
// at the first step that does not end as expected and returns the results
// up to and including that step.
func (r *Runner) Run(s *Scenario) ([]Result, error) {
	for _, acc := range s.Accounts {
		coins, err := sdk.ParseCoins(acc.Coins)
		if err != nil {
			return nil, ErrInvalidAccount.Wrapf("%s: %s", acc.Name, err)
		}
		signer, err := r.app.InitAccount(coins)
		if err != nil {
			return nil, ErrInvalidAccount.Wrapf("%s: %s", acc.Name, err)
		}
		r.accounts[acc.Name] = signer
		r.logger.Info("funded account", "name", acc.Name, "address", signer.Address(), "coins", coins.String())
	}

	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		name := step.Name
		if name == "" {
			name = step.Action
		}
		res, err := r.runStep(step)
		res.Step = name
		results = append(results, res)
		if err != nil {
			r.logger.Error("step failed", "step", name, "err", err)
			return results, sdkerrors.Wrapf(err, "step %d (%s)", i, name)
		}
		r.logger.Info("step done", "step", name, "height", res.Height, "gas_used", res.GasUsed)
	}
	return results, nil
}

func (r *Runner) runStep(step Step) (Result, error) {
	res := Result{Action: step.Action}
	a, ok := actions[step.Action]
	if !ok {
		return res, ErrUnknownAction.Wrapf("%q", step.Action)
	}

	var signer *account.SigningAccount
	if a.signed {
		var err error
		if signer, err = r.signer(step.Signer); err != nil {
			return res, err
		}
	}

	gasUsed, output, err := a.run(r, signer, r.resolve(step.Args))
	res.Height = r.app.BlockHeight()
	res.GasUsed = gasUsed
	switch {
	case step.ExpectError == "" && err != nil:
		res.Error = err.Error()
		return res, err
	case step.ExpectError == "":
		res.Output = output
		return res, nil
	case err == nil:
		return res, ErrExpectedFailure.Wrapf("want error containing %q", step.ExpectError)
	case !strings.Contains(err.Error(), step.ExpectError):
		res.Error = err.Error()
		return res, ErrStepFailed.Wrapf("want error containing %q, got %q", step.ExpectError, err.Error())
	default:
		res.Error = err.Error()
		return res, nil
	}
}

func (r *Runner) signer(name string) (*account.SigningAccount, error) {
	if name == ValidatorAccount {
		cfg := r.app.Config()
		return r.app.ValidatorSigningAccount(cfg.FeeDenom, cfg.GasAdjustment)
	}
	signer, ok := r.accounts[name]
	if !ok {
		return nil, ErrInvalidStep.Wrapf("unknown signer %s", name)
	}
	return signer, nil
}

// resolve replaces $<name> in every argument with the address of the
// account called name.
func (r *Runner) resolve(args map[string]string) Args {
	names := make([]string, 0, len(r.accounts)+1)
	for name := range r.accounts {
		names = append(names, name)
	}
	names = append(names, ValidatorAccount)
	// longest first, so that $alice2 is not read as $alice
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	out := make(Args, len(args))
	for k, v := range args {
		for _, name := range names {
			token := "$" + name
			if !strings.Contains(v, token) {
				continue
			}
			v = strings.ReplaceAll(v, token, r.address(name))
		}
		out[k] = v
	}
	return out
}

func (r *Runner) address(name string) string {
	if name == ValidatorAccount {
		val, err := r.signer(ValidatorAccount)
		if err != nil {
			return ""
		}
		return val.Address()
	}
	return r.accounts[name].Address()
}
