package types

import (
	"strings"

	sdk "github.com/okx/testtube/types"
)

const (
	// ModuleName is the name of the tokenfactory module.
	ModuleName = "tokenfactory"

	// StoreKey is the store key of the tokenfactory module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of tokenfactory query routes.
	QueryPath = "/osmosis.tokenfactory.v1beta1.Query/"

	TypeURLMsgCreateDenom      = "/osmosis.tokenfactory.v1beta1.MsgCreateDenom"
	TypeURLMsgMint             = "/osmosis.tokenfactory.v1beta1.MsgMint"
	TypeURLMsgBurn             = "/osmosis.tokenfactory.v1beta1.MsgBurn"
	TypeURLMsgChangeAdmin      = "/osmosis.tokenfactory.v1beta1.MsgChangeAdmin"
	TypeURLMsgSetDenomMetadata = "/osmosis.tokenfactory.v1beta1.MsgSetDenomMetadata"
	TypeURLMsgUpdateParams     = "/osmosis.tokenfactory.v1beta1.MsgUpdateParams"

	// ParamsTypeURL identifies tokenfactory params in the params registry.
	ParamsTypeURL = "/osmosis.tokenfactory.v1beta1.Params"
)

const (
	DenomAuthorityMetadataKey = "authoritymetadata"
	DenomsPrefixKey           = "denoms"
	CreatorPrefixKey          = "creator"
	ParamsPrefixKey           = "params"
)

// KeySeparator joins the parts of tokenfactory store keys.
const KeySeparator = "|"

// GetDenomPrefixStore returns the key prefix of denom state.
func GetDenomPrefixStore(denom string) []byte {
	return []byte(strings.Join([]string{DenomsPrefixKey, denom, ""}, KeySeparator))
}

// GetCreatorPrefix returns the key prefix of the denoms of creator.
func GetCreatorPrefix(creator string) []byte {
	return []byte(strings.Join([]string{CreatorPrefixKey, creator, ""}, KeySeparator))
}

// GetCreatorsPrefix returns the key prefix of every creator.
func GetCreatorsPrefix() []byte {
	return []byte(strings.Join([]string{CreatorPrefixKey, ""}, KeySeparator))
}
