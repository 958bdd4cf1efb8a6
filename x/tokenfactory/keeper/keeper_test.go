package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/okx/testtube/testutil"
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	authkeeper "github.com/okx/testtube/x/auth/keeper"
	authtypes "github.com/okx/testtube/x/auth/types"
	bankkeeper "github.com/okx/testtube/x/bank/keeper"
	banktypes "github.com/okx/testtube/x/bank/types"
	"github.com/okx/testtube/x/tokenfactory/keeper"
	"github.com/okx/testtube/x/tokenfactory/types"
)

const prefix = "neutron"

type KeeperTestSuite struct {
	suite.Suite

	ctx    sdk.Context
	bk     bankkeeper.BaseKeeper
	keeper keeper.Keeper
	msgServer interface {
		CreateDenom(sdk.Context, types.MsgCreateDenom) (*types.MsgCreateDenomResponse, error)
		Mint(sdk.Context, types.MsgMint) (*types.MsgMintResponse, error)
		Burn(sdk.Context, types.MsgBurn) (*types.MsgBurnResponse, error)
		ChangeAdmin(sdk.Context, types.MsgChangeAdmin) (*types.MsgChangeAdminResponse, error)
		SetDenomMetadata(sdk.Context, types.MsgSetDenomMetadata) (*types.MsgSetDenomMetadataResponse, error)
		UpdateParams(sdk.Context, types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error)
	}
	authority  string
	moduleAddr string
	alice      string
	bob        string
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.ctx = testutil.DefaultContext()
	ak := authkeeper.NewAccountKeeper(authtypes.StoreKey, prefix, map[string][]string{
		types.ModuleName: {authtypes.Minter, authtypes.Burner},
		"gov":            {authtypes.Burner},
	})
	suite.authority = ak.GetModuleAddress("gov")
	suite.moduleAddr = ak.GetModuleAddress(types.ModuleName)
	suite.bk = bankkeeper.NewBaseKeeper(banktypes.StoreKey, ak, suite.authority)
	suite.keeper = keeper.NewKeeper(types.StoreKey, ak, suite.bk, suite.authority)
	suite.msgServer = keeper.NewMsgServerImpl(suite.keeper)
	suite.alice = testutil.Addr(prefix, "alice")
	suite.bob = testutil.Addr(prefix, "bob")
	suite.Require().NoError(suite.bk.InitGenesisBalance(suite.ctx, suite.alice, sdk.NewCoins(sdk.NewCoin("untrn", 1000))))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) createDenom(subdenom string) string {
	res, err := suite.msgServer.CreateDenom(suite.ctx, types.MsgCreateDenom{Sender: suite.alice, Subdenom: subdenom})
	suite.Require().NoError(err)
	return res.NewTokenDenom
}

func (suite *KeeperTestSuite) TestCreateDenom() {
	denom := suite.createDenom("udenom")
	suite.Require().Equal("factory/"+suite.alice+"/udenom", denom)

	metadata, found := suite.bk.GetDenomMetaData(suite.ctx, denom)
	suite.Require().True(found)
	suite.Require().Equal(denom, metadata.Base)

	authority, err := suite.keeper.GetAuthorityMetadata(suite.ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.alice, authority.Admin)
	suite.Require().Equal([]string{denom}, suite.keeper.GetDenomsFromCreator(suite.ctx, suite.alice))

	_, err = suite.msgServer.CreateDenom(suite.ctx, types.MsgCreateDenom{Sender: suite.alice, Subdenom: "udenom"})
	suite.Require().ErrorIs(err, types.ErrDenomExists)
}

func (suite *KeeperTestSuite) TestCreateDenomFee() {
	collector := testutil.Addr(prefix, "collector")
	suite.Require().NoError(suite.keeper.SetParams(suite.ctx, types.Params{
		DenomCreationFee:        sdk.NewCoins(sdk.NewCoin("untrn", 100)),
		DenomCreationGasConsume: 1000,
		FeeCollectorAddress:     collector,
	}))

	before := suite.ctx.GasMeter().GasConsumed()
	suite.createDenom("fee")
	suite.Require().GreaterOrEqual(suite.ctx.GasMeter().GasConsumed()-before, uint64(1000))
	suite.Require().Equal(sdk.NewCoin("untrn", 900), suite.bk.GetBalance(suite.ctx, suite.alice, "untrn"))
	suite.Require().Equal(sdk.NewCoin("untrn", 100), suite.bk.GetBalance(suite.ctx, collector, "untrn"))

	_, err := suite.msgServer.CreateDenom(suite.ctx, types.MsgCreateDenom{Sender: suite.bob, Subdenom: "fee"})
	suite.Require().ErrorIs(err, sdkerrors.ErrInsufficientFunds)
}

func (suite *KeeperTestSuite) TestMintAndBurn() {
	denom := suite.createDenom("udenom")

	_, err := suite.msgServer.Mint(suite.ctx, types.MsgMint{Sender: suite.alice, Amount: sdk.NewCoin(denom, 500)})
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoin(denom, 500), suite.bk.GetBalance(suite.ctx, suite.alice, denom))

	_, err = suite.msgServer.Mint(suite.ctx, types.MsgMint{Sender: suite.alice, Amount: sdk.NewCoin(denom, 20), MintToAddress: suite.bob})
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoin(denom, 20), suite.bk.GetBalance(suite.ctx, suite.bob, denom))

	_, err = suite.msgServer.Burn(suite.ctx, types.MsgBurn{Sender: suite.alice, Amount: sdk.NewCoin(denom, 200)})
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoin(denom, 300), suite.bk.GetBalance(suite.ctx, suite.alice, denom))
	suite.Require().Equal(sdk.NewCoin(denom, 320), suite.bk.GetSupply(suite.ctx, denom))

	_, err = suite.msgServer.Mint(suite.ctx, types.MsgMint{Sender: suite.bob, Amount: sdk.NewCoin(denom, 1)})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.msgServer.Mint(suite.ctx, types.MsgMint{Sender: suite.alice, Amount: sdk.NewCoin("factory/"+suite.alice+"/missing", 1)})
	suite.Require().ErrorIs(err, types.ErrDenomDoesNotExist)
}

func (suite *KeeperTestSuite) TestBurnFromModuleAccount() {
	denom := suite.createDenom("udenom")
	_, err := suite.msgServer.Burn(suite.ctx, types.MsgBurn{
		Sender:          suite.alice,
		Amount:          sdk.NewCoin(denom, 1),
		BurnFromAddress: suite.authority,
	})
	suite.Require().ErrorIs(err, types.ErrBurnFromModuleAccount)

	_, err = suite.msgServer.Burn(suite.ctx, types.MsgBurn{
		Sender:          suite.alice,
		Amount:          sdk.NewCoin(denom, 1),
		BurnFromAddress: suite.moduleAddr,
	})
	suite.Require().ErrorIs(err, types.ErrBurnFromModuleAccount)
}

func (suite *KeeperTestSuite) TestChangeAdmin() {
	denom := suite.createDenom("udenom")

	_, err := suite.msgServer.ChangeAdmin(suite.ctx, types.MsgChangeAdmin{Sender: suite.bob, Denom: denom, NewAdmin: suite.bob})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.msgServer.ChangeAdmin(suite.ctx, types.MsgChangeAdmin{Sender: suite.alice, Denom: denom, NewAdmin: suite.bob})
	suite.Require().NoError(err)

	_, err = suite.msgServer.Mint(suite.ctx, types.MsgMint{Sender: suite.alice, Amount: sdk.NewCoin(denom, 1)})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = suite.msgServer.Mint(suite.ctx, types.MsgMint{Sender: suite.bob, Amount: sdk.NewCoin(denom, 1)})
	suite.Require().NoError(err)

	// An empty admin locks the denom.
	_, err = suite.msgServer.ChangeAdmin(suite.ctx, types.MsgChangeAdmin{Sender: suite.bob, Denom: denom, NewAdmin: ""})
	suite.Require().NoError(err)
	_, err = suite.msgServer.Mint(suite.ctx, types.MsgMint{Sender: suite.bob, Amount: sdk.NewCoin(denom, 1)})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestSetDenomMetadata() {
	denom := suite.createDenom("udenom")
	metadata := banktypes.Metadata{
		Description: "test denom",
		DenomUnits: []banktypes.DenomUnit{
			{Denom: denom, Exponent: 0},
			{Denom: "denom", Exponent: 6},
		},
		Base:    denom,
		Display: "denom",
		Name:    "Denom",
		Symbol:  "DNM",
	}
	_, err := suite.msgServer.SetDenomMetadata(suite.ctx, types.MsgSetDenomMetadata{Sender: suite.bob, Metadata: metadata})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.msgServer.SetDenomMetadata(suite.ctx, types.MsgSetDenomMetadata{Sender: suite.alice, Metadata: metadata})
	suite.Require().NoError(err)
	stored, found := suite.bk.GetDenomMetaData(suite.ctx, denom)
	suite.Require().True(found)
	suite.Require().Equal("DNM", stored.Symbol)
	suite.Require().Len(stored.DenomUnits, 2)
}

func (suite *KeeperTestSuite) TestUpdateParams() {
	_, err := suite.msgServer.UpdateParams(suite.ctx, types.MsgUpdateParams{Authority: suite.alice, Params: types.DefaultParams()})
	suite.Require().ErrorIs(err, types.ErrInvalidAuthority)

	params := types.Params{DenomCreationFee: sdk.Coins{}, DenomCreationGasConsume: 7}
	_, err = suite.msgServer.UpdateParams(suite.ctx, types.MsgUpdateParams{Authority: suite.authority, Params: params})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(7), suite.keeper.GetParams(suite.ctx).DenomCreationGasConsume)
}

func (suite *KeeperTestSuite) TestQuerier() {
	denom := suite.createDenom("udenom")
	q := keeper.NewQuerier(suite.keeper)

	res, err := q.DenomAuthorityMetadata(suite.ctx, &types.QueryDenomAuthorityMetadataRequest{Creator: suite.alice, Subdenom: "udenom"})
	suite.Require().NoError(err)
	suite.Require().Equal(suite.alice, res.AuthorityMetadata.Admin)

	_, err = q.DenomAuthorityMetadata(suite.ctx, &types.QueryDenomAuthorityMetadataRequest{Creator: suite.alice, Subdenom: "other"})
	suite.Require().ErrorIs(err, types.ErrDenomDoesNotExist)

	denoms, err := q.DenomsFromCreator(suite.ctx, &types.QueryDenomsFromCreatorRequest{Creator: suite.alice})
	suite.Require().NoError(err)
	suite.Require().Equal([]string{denom}, denoms.Denoms)

	denoms, err = q.DenomsFromCreator(suite.ctx, &types.QueryDenomsFromCreatorRequest{Creator: suite.bob})
	suite.Require().NoError(err)
	suite.Require().Empty(denoms.Denoms)
}

func TestDeconstructDenom(t *testing.T) {
	creator := testutil.Addr(prefix, "alice")
	denom, err := types.GetTokenDenom(creator, "a/b")
	require.NoError(t, err)

	gotCreator, subdenom, err := types.DeconstructDenom(denom)
	require.NoError(t, err)
	require.Equal(t, creator, gotCreator)
	require.Equal(t, "a/b", subdenom)

	_, _, err = types.DeconstructDenom("untrn")
	require.ErrorIs(t, err, types.ErrInvalidDenom)

	_, err = types.GetTokenDenom(creator, "0123456789012345678901234567890123456789012345")
	require.ErrorIs(t, err, types.ErrSubdenomTooLong)
}
