package scenario

import (
	"github.com/okx/testtube/account"
	banktypes "github.com/okx/testtube/x/bank/types"
	dextypes "github.com/okx/testtube/x/dex/types"
	govtypes "github.com/okx/testtube/x/gov/types"
	oracletypes "github.com/okx/testtube/x/oracle/types"
	tftypes "github.com/okx/testtube/x/tokenfactory/types"
)

type action struct {
	// signed actions submit a tx and need a signer
	signed bool
	run    func(r *Runner, signer *account.SigningAccount, args Args) (gasUsed uint64, output interface{}, err error)
}

var actions = map[string]action{
	"bank/send":                      {signed: true, run: bankSend},
	"bank/balance":                   {run: bankBalance},
	"tokenfactory/create_denom":      {signed: true, run: createDenom},
	"tokenfactory/mint":              {signed: true, run: mint},
	"dex/place_limit_order":          {signed: true, run: placeLimitOrder},
	"dex/cancel_limit_order":         {signed: true, run: cancelLimitOrder},
	"oracle/set_price":               {run: setPrice},
	"oracle/get_price":               {run: getPrice},
	"gov/update_tokenfactory_params": {signed: true, run: updateTokenFactoryParams},
	"gov/proposal":                   {run: proposal},
	"chain/increase_time":            {run: increaseTime},
}

func bankSend(r *Runner, signer *account.SigningAccount, args Args) (uint64, interface{}, error) {
	to, err := args.String("to")
	if err != nil {
		return 0, nil, err
	}
	amount, err := args.Coins("amount")
	if err != nil {
		return 0, nil, err
	}
	res, err := r.bank.Send(banktypes.MsgSend{FromAddress: signer.Address(), ToAddress: to, Amount: amount}, signer)
	if err != nil {
		return 0, nil, err
	}
	return res.GasInfo.GasUsed, nil, nil
}

func bankBalance(r *Runner, _ *account.SigningAccount, args Args) (uint64, interface{}, error) {
	addr, err := args.String("address")
	if err != nil {
		return 0, nil, err
	}
	denom, err := args.String("denom")
	if err != nil {
		return 0, nil, err
	}
	res, err := r.bank.QueryBalance(&banktypes.QueryBalanceRequest{Address: addr, Denom: denom})
	if err != nil {
		return 0, nil, err
	}
	return 0, res.Balance.String(), nil
}

func createDenom(r *Runner, signer *account.SigningAccount, args Args) (uint64, interface{}, error) {
	subdenom, err := args.String("subdenom")
	if err != nil {
		return 0, nil, err
	}
	res, err := r.tf.CreateDenom(tftypes.MsgCreateDenom{Sender: signer.Address(), Subdenom: subdenom}, signer)
	if err != nil {
		return 0, nil, err
	}
	return res.GasInfo.GasUsed, res.Data.NewTokenDenom, nil
}

func mint(r *Runner, signer *account.SigningAccount, args Args) (uint64, interface{}, error) {
	amount, err := args.Coin("amount")
	if err != nil {
		return 0, nil, err
	}
	res, err := r.tf.Mint(tftypes.MsgMint{
		Sender:        signer.Address(),
		Amount:        amount,
		MintToAddress: args.Optional("to", ""),
	}, signer)
	if err != nil {
		return 0, nil, err
	}
	return res.GasInfo.GasUsed, nil, nil
}

func placeLimitOrder(r *Runner, signer *account.SigningAccount, args Args) (uint64, interface{}, error) {
	tokenIn, err := args.String("token_in")
	if err != nil {
		return 0, nil, err
	}
	tokenOut, err := args.String("token_out")
	if err != nil {
		return 0, nil, err
	}
	tick, err := args.Int64("tick")
	if err != nil {
		return 0, nil, err
	}
	amountIn, err := args.String("amount_in")
	if err != nil {
		return 0, nil, err
	}
	orderType, ok := dextypes.ParseLimitOrderType(args.Optional("order_type", dextypes.GOOD_TIL_CANCELLED.String()))
	if !ok {
		return 0, nil, ErrInvalidArg.Wrapf("order_type: %s", args["order_type"])
	}
	var expiration int64
	if orderType.IsGoodTil() {
		if expiration, err = args.Int64("expiration_time"); err != nil {
			return 0, nil, err
		}
	}

	res, err := r.dex.PlaceLimitOrder(dextypes.MsgPlaceLimitOrder{
		Creator:          signer.Address(),
		Receiver:         args.Optional("receiver", signer.Address()),
		TokenIn:          tokenIn,
		TokenOut:         tokenOut,
		TickIndexInToOut: tick,
		AmountIn:         amountIn,
		OrderType:        orderType,
		ExpirationTime:   expiration,
	}, signer)
	if err != nil {
		return 0, nil, err
	}
	return res.GasInfo.GasUsed, res.Data.TrancheKey, nil
}

func cancelLimitOrder(r *Runner, signer *account.SigningAccount, args Args) (uint64, interface{}, error) {
	key, err := args.String("tranche_key")
	if err != nil {
		return 0, nil, err
	}
	res, err := r.dex.CancelLimitOrder(dextypes.MsgCancelLimitOrder{Creator: signer.Address(), TrancheKey: key}, signer)
	if err != nil {
		return 0, nil, err
	}
	return res.GasInfo.GasUsed, res.Data.MakerCoinOut.String(), nil
}

func currencyPair(args Args) (oracletypes.CurrencyPair, error) {
	v, err := args.String("pair")
	if err != nil {
		return oracletypes.CurrencyPair{}, err
	}
	cp, err := oracletypes.CurrencyPairFromString(v)
	if err != nil {
		return oracletypes.CurrencyPair{}, ErrInvalidArg.Wrapf("pair: %s", err)
	}
	return cp, nil
}

func setPrice(r *Runner, _ *account.SigningAccount, args Args) (uint64, interface{}, error) {
	cp, err := currencyPair(args)
	if err != nil {
		return 0, nil, err
	}
	price, err := args.String("price")
	if err != nil {
		return 0, nil, err
	}
	return 0, nil, r.app.SetPriceForCurrencyPair(cp, price)
}

func getPrice(r *Runner, _ *account.SigningAccount, args Args) (uint64, interface{}, error) {
	cp, err := currencyPair(args)
	if err != nil {
		return 0, nil, err
	}
	res, err := r.oracle.GetPrice(&oracletypes.GetPriceRequest{CurrencyPair: cp})
	if err != nil {
		return 0, nil, err
	}
	return 0, res.Price.Price, nil
}

// updateTokenFactoryParams proposes new tokenfactory params through gov
// and votes them through. They apply once the voting period is over.
func updateTokenFactoryParams(r *Runner, signer *account.SigningAccount, args Args) (uint64, interface{}, error) {
	fee, err := args.Coins("denom_creation_fee")
	if err != nil {
		return 0, nil, err
	}
	msg := tftypes.MsgUpdateParams{
		Authority: r.app.ModuleAddress(govtypes.ModuleName),
		Params: tftypes.Params{
			DenomCreationFee:    fee,
			FeeCollectorAddress: args.Optional("fee_collector", ""),
		},
	}
	res, err := r.gov.ProposeAndExecute(tftypes.TypeURLMsgUpdateParams, msg, signer.Address(), signer)
	if err != nil {
		return 0, nil, err
	}
	return res.GasInfo.GasUsed, res.Data.ProposalId, nil
}

func proposal(r *Runner, _ *account.SigningAccount, args Args) (uint64, interface{}, error) {
	id, err := args.Uint64("id")
	if err != nil {
		return 0, nil, err
	}
	res, err := r.gov.Gov().QueryProposal(&govtypes.QueryProposalRequest{ProposalId: id})
	if err != nil {
		return 0, nil, err
	}
	return 0, res.Proposal.Status.String(), nil
}

func increaseTime(r *Runner, _ *account.SigningAccount, args Args) (uint64, interface{}, error) {
	seconds, err := args.Uint64("seconds")
	if err != nil {
		return 0, nil, err
	}
	return 0, nil, r.app.IncreaseTime(seconds)
}
