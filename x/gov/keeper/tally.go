package keeper

import (
	"math/big"

	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/gov/types"
)

// Tally counts the votes of bonded validators on proposal. Only
// validators carry voting power.
func (k Keeper) Tally(ctx sdk.Context, proposal types.Proposal) (passes bool, burnDeposits bool, tally types.TallyResult) {
	results := map[types.VoteOption]*big.Int{
		types.OptionYes:        new(big.Int),
		types.OptionAbstain:    new(big.Int),
		types.OptionNo:         new(big.Int),
		types.OptionNoWithVeto: new(big.Int),
	}
	totalVotingPower := new(big.Int)

	for _, vote := range k.GetVotes(ctx, proposal.Id) {
		val, found := k.sk.GetValidatorByAccount(ctx, vote.Voter)
		if !found || !val.IsBonded() {
			continue
		}
		power := val.BondedTokens()
		for _, option := range vote.Options {
			weight, err := types.ParseRatio(option.Weight)
			if err != nil {
				continue
			}
			share := new(big.Rat).Mul(new(big.Rat).SetInt(power), weight)
			results[option.Option].Add(results[option.Option], new(big.Int).Quo(share.Num(), share.Denom()))
		}
		totalVotingPower.Add(totalVotingPower, power)
	}

	params := k.GetParams(ctx)
	tally = types.NewTallyResultFromMap(results)

	totalBonded := k.sk.TotalBondedTokens(ctx)
	if totalBonded.Sign() == 0 {
		return false, false, tally
	}

	quorum, _ := types.ParseRatio(params.Quorum)
	if new(big.Rat).SetFrac(totalVotingPower, totalBonded).Cmp(quorum) < 0 {
		return false, false, tally
	}

	nonAbstaining := new(big.Int).Sub(totalVotingPower, results[types.OptionAbstain])
	if nonAbstaining.Sign() == 0 {
		return false, false, tally
	}

	veto, _ := types.ParseRatio(params.VetoThreshold)
	if new(big.Rat).SetFrac(results[types.OptionNoWithVeto], totalVotingPower).Cmp(veto) > 0 {
		return false, params.BurnVoteVeto, tally
	}

	threshold, _ := types.ParseRatio(params.Threshold)
	if new(big.Rat).SetFrac(results[types.OptionYes], nonAbstaining).Cmp(threshold) > 0 {
		return true, false, tally
	}
	return false, false, tally
}
