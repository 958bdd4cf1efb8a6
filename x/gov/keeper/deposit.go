package keeper

import (
	"strconv"

	"github.com/okx/testtube/codec"
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/gov/types"
)

// AddDeposit escrows amount from depositor and starts the voting period
// once the minimum deposit is reached.
func (k Keeper) AddDeposit(ctx sdk.Context, id uint64, depositor string, amount sdk.Coins) (bool, error) {
	proposal, found := k.GetProposal(ctx, id)
	if !found {
		return false, types.ErrUnknownProposal.Wrapf("%d", id)
	}
	if proposal.Status != types.StatusDepositPeriod && proposal.Status != types.StatusVotingPeriod {
		return false, types.ErrInactiveProposal.Wrapf("%d", id)
	}

	if !amount.IsZero() {
		if err := k.bk.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, amount); err != nil {
			return false, err
		}
		deposit, found := k.GetDeposit(ctx, id, depositor)
		if !found {
			deposit = types.Deposit{ProposalId: id, Depositor: depositor}
		}
		deposit.Amount = deposit.Amount.Add(amount...)
		k.SetDeposit(ctx, deposit)
		proposal.TotalDeposit = proposal.TotalDeposit.Add(amount...)
	}

	activated := false
	if proposal.Status == types.StatusDepositPeriod && proposal.TotalDeposit.IsAllGTE(k.GetParams(ctx).MinDeposit) {
		k.activateVotingPeriod(ctx, &proposal)
		activated = true
	}
	k.SetProposal(ctx, proposal)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeProposalDeposit,
		sdk.NewAttribute(sdk.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(id, 10)),
	))
	return activated, nil
}

func (k Keeper) GetDeposit(ctx sdk.Context, id uint64, depositor string) (types.Deposit, bool) {
	bz := ctx.KVStore(k.key).Get(types.DepositKey(id, depositor))
	if bz == nil {
		return types.Deposit{}, false
	}
	var deposit types.Deposit
	if err := codec.Unmarshal(bz, &deposit); err != nil {
		panic(err)
	}
	return deposit, true
}

func (k Keeper) SetDeposit(ctx sdk.Context, deposit types.Deposit) {
	ctx.KVStore(k.key).Set(types.DepositKey(deposit.ProposalId, deposit.Depositor), codec.MustMarshal(deposit))
}

// GetDeposits returns the deposits on proposal id.
func (k Keeper) GetDeposits(ctx sdk.Context, id uint64) (deposits []types.Deposit) {
	store := ctx.KVStore(k.key)
	prefix := types.DepositsKey(id)
	iter := store.Iterator(prefix, sdk.PrefixEnd(prefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var deposit types.Deposit
		if err := codec.Unmarshal(iter.Value(), &deposit); err != nil {
			panic(err)
		}
		deposits = append(deposits, deposit)
	}
	return deposits
}

// RefundAndDeleteDeposits returns every deposit on proposal id.
func (k Keeper) RefundAndDeleteDeposits(ctx sdk.Context, id uint64) {
	store := ctx.KVStore(k.key)
	for _, deposit := range k.GetDeposits(ctx, id) {
		if err := k.bk.SendCoinsFromModuleToAccount(ctx, types.ModuleName, deposit.Depositor, deposit.Amount); err != nil {
			panic(err)
		}
		store.Delete(types.DepositKey(id, deposit.Depositor))
	}
}

// DeleteAndBurnDeposits burns every deposit on proposal id.
func (k Keeper) DeleteAndBurnDeposits(ctx sdk.Context, id uint64) {
	store := ctx.KVStore(k.key)
	for _, deposit := range k.GetDeposits(ctx, id) {
		if err := k.bk.BurnCoins(ctx, types.ModuleName, deposit.Amount); err != nil {
			panic(err)
		}
		store.Delete(types.DepositKey(id, deposit.Depositor))
	}
}
