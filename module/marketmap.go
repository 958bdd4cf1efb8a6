package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/runner"
	marketmaptypes "github.com/okx/testtube/x/marketmap/types"
)

type Marketmap struct {
	runner runner.Runner
}

func NewMarketmap(r runner.Runner) Marketmap { return Marketmap{runner: r} }

func (m Marketmap) CreateMarkets(msg marketmaptypes.MsgCreateMarkets, signer *account.SigningAccount) (*runner.ExecuteResponse[marketmaptypes.MsgCreateMarketsResponse], error) {
	return execute[marketmaptypes.MsgCreateMarketsResponse](m.runner, marketmaptypes.TypeURLMsgCreateMarkets, msg, signer)
}

func (m Marketmap) UpdateMarkets(msg marketmaptypes.MsgUpdateMarkets, signer *account.SigningAccount) (*runner.ExecuteResponse[marketmaptypes.MsgUpdateMarketsResponse], error) {
	return execute[marketmaptypes.MsgUpdateMarketsResponse](m.runner, marketmaptypes.TypeURLMsgUpdateMarkets, msg, signer)
}

func (m Marketmap) RemoveMarketAuthorities(msg marketmaptypes.MsgRemoveMarketAuthorities, signer *account.SigningAccount) (*runner.ExecuteResponse[marketmaptypes.MsgRemoveMarketAuthoritiesResponse], error) {
	return execute[marketmaptypes.MsgRemoveMarketAuthoritiesResponse](m.runner, marketmaptypes.TypeURLMsgRemoveMarketAuthorities, msg, signer)
}

func (m Marketmap) UpdateParams(msg marketmaptypes.MsgParams, signer *account.SigningAccount) (*runner.ExecuteResponse[marketmaptypes.MsgParamsResponse], error) {
	return execute[marketmaptypes.MsgParamsResponse](m.runner, marketmaptypes.TypeURLMsgParams, msg, signer)
}

func (m Marketmap) MarketMap(req *marketmaptypes.MarketMapRequest) (*marketmaptypes.MarketMapResponse, error) {
	return query[marketmaptypes.MarketMapResponse](m.runner, marketmaptypes.QueryPath+"MarketMap", req)
}

func (m Marketmap) Market(req *marketmaptypes.MarketRequest) (*marketmaptypes.MarketResponse, error) {
	return query[marketmaptypes.MarketResponse](m.runner, marketmaptypes.QueryPath+"Market", req)
}

func (m Marketmap) LastUpdated(req *marketmaptypes.LastUpdatedRequest) (*marketmaptypes.LastUpdatedResponse, error) {
	return query[marketmaptypes.LastUpdatedResponse](m.runner, marketmaptypes.QueryPath+"LastUpdated", req)
}

func (m Marketmap) Params(req *marketmaptypes.ParamsRequest) (*marketmaptypes.ParamsResponse, error) {
	return query[marketmaptypes.ParamsResponse](m.runner, marketmaptypes.QueryPath+"Params", req)
}
