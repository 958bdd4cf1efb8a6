package keeper

import (
	sdk "github.com/okx/testtube/types"
	"github.com/okx/testtube/x/tokenfactory/types"
)

const (
	TypeMsgCreateDenom      = "create_denom"
	TypeMsgMint             = "tf_mint"
	TypeMsgBurn             = "tf_burn"
	TypeMsgChangeAdmin      = "change_admin"
	TypeMsgSetDenomMetadata = "set_denom_metadata"

	AttributeCreator     = "creator"
	AttributeNewTokenDen = "new_token_denom"
	AttributeMintToAddr  = "mint_to_address"
	AttributeBurnFrom    = "burn_from_address"
	AttributeDenom       = "denom"
	AttributeNewAdmin    = "new_admin"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the tokenfactory message handlers.
func NewMsgServerImpl(k Keeper) msgServer { return msgServer{Keeper: k} }

func (server msgServer) CreateDenom(ctx sdk.Context, msg types.MsgCreateDenom) (*types.MsgCreateDenomResponse, error) {
	denom, err := server.Keeper.CreateDenom(ctx, msg.Sender, msg.Subdenom)
	if err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(TypeMsgCreateDenom,
		sdk.NewAttribute(AttributeCreator, msg.Sender),
		sdk.NewAttribute(AttributeNewTokenDen, denom),
	))
	return &types.MsgCreateDenomResponse{NewTokenDenom: denom}, nil
}

func (server msgServer) Mint(ctx sdk.Context, msg types.MsgMint) (*types.MsgMintResponse, error) {
	if _, found := server.bk.GetDenomMetaData(ctx, msg.Amount.Denom); !found {
		return nil, types.ErrDenomDoesNotExist.Wrapf("denom: %s", msg.Amount.Denom)
	}
	if err := server.assertAdmin(ctx, msg.Sender, msg.Amount.Denom); err != nil {
		return nil, err
	}
	mintTo := msg.MintToAddress
	if mintTo == "" {
		mintTo = msg.Sender
	}
	if err := server.mintTo(ctx, msg.Amount, mintTo); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(TypeMsgMint,
		sdk.NewAttribute(AttributeMintToAddr, mintTo),
		sdk.NewAttribute(sdk.AttributeKeyAmount, msg.Amount.String()),
	))
	return &types.MsgMintResponse{}, nil
}

func (server msgServer) Burn(ctx sdk.Context, msg types.MsgBurn) (*types.MsgBurnResponse, error) {
	if err := server.assertAdmin(ctx, msg.Sender, msg.Amount.Denom); err != nil {
		return nil, err
	}
	burnFrom := msg.BurnFromAddress
	if burnFrom == "" {
		burnFrom = msg.Sender
	}
	if err := server.burnFrom(ctx, msg.Amount, burnFrom); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(TypeMsgBurn,
		sdk.NewAttribute(AttributeBurnFrom, burnFrom),
		sdk.NewAttribute(sdk.AttributeKeyAmount, msg.Amount.String()),
	))
	return &types.MsgBurnResponse{}, nil
}

func (server msgServer) ChangeAdmin(ctx sdk.Context, msg types.MsgChangeAdmin) (*types.MsgChangeAdminResponse, error) {
	if err := server.assertAdmin(ctx, msg.Sender, msg.Denom); err != nil {
		return nil, err
	}
	if err := server.setAdmin(ctx, msg.Denom, msg.NewAdmin); err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(TypeMsgChangeAdmin,
		sdk.NewAttribute(AttributeDenom, msg.Denom),
		sdk.NewAttribute(AttributeNewAdmin, msg.NewAdmin),
	))
	return &types.MsgChangeAdminResponse{}, nil
}

func (server msgServer) SetDenomMetadata(ctx sdk.Context, msg types.MsgSetDenomMetadata) (*types.MsgSetDenomMetadataResponse, error) {
	if err := server.assertAdmin(ctx, msg.Sender, msg.Metadata.Base); err != nil {
		return nil, err
	}
	server.bk.SetDenomMetaData(ctx, msg.Metadata)
	ctx.EventManager().EmitEvent(sdk.NewEvent(TypeMsgSetDenomMetadata,
		sdk.NewAttribute(AttributeDenom, msg.Metadata.Base),
	))
	return &types.MsgSetDenomMetadataResponse{}, nil
}

func (server msgServer) UpdateParams(ctx sdk.Context, msg types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if msg.Authority != server.authority {
		return nil, types.ErrInvalidAuthority.Wrapf("expected %s, got %s", server.authority, msg.Authority)
	}
	if err := server.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
