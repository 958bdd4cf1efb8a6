package ante

import (
	sdk "github.com/okx/testtube/types"
	authante "github.com/okx/testtube/x/auth/ante"
	"github.com/okx/testtube/x/gov/keeper"
	"github.com/okx/testtube/x/gov/types"
	stakingtypes "github.com/okx/testtube/x/staking/types"
)

// StakingKeeper reports whether an account operates a validator.
type StakingKeeper interface {
	IsValidator(ctx sdk.Context, account string) bool
}

// AnteDecorator rejects proposals that could never execute before they
// are stored and charged for.
type AnteDecorator struct {
	k  keeper.Keeper
	sk StakingKeeper
}

func NewAnteDecorator(k keeper.Keeper, sk StakingKeeper) AnteDecorator {
	return AnteDecorator{k: k, sk: sk}
}

func (ad AnteDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, msgs []sdk.Msg, simulate bool, next authante.AnteHandler) error {
	for _, m := range msgs {
		switch msg := m.(type) {
		case types.MsgSubmitProposal:
			if err := ad.k.ValidateProposalMessages(msg.Messages); err != nil {
				return err
			}
			if msg.Expedited && !ad.sk.IsValidator(ctx, msg.Proposer) {
				return stakingtypes.ErrProposerMustBeValidator
			}
		}
	}
	return next(ctx, tx, msgs, simulate)
}
