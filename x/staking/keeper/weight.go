package keeper

import (
	"math/big"
)

// PowerReduction is the number of tokens worth one unit of consensus
// power.
var PowerReduction = big.NewInt(1000000)

func calculateWeight(tokens *big.Int) int64 {
	return new(big.Int).Quo(tokens, PowerReduction).Int64()
}

// TokensToConsensusPower converts bonded tokens to consensus power.
func TokensToConsensusPower(tokens *big.Int) int64 {
	return calculateWeight(tokens)
}
