package simulator

import (
	"fmt"

	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

type paramSubspace struct {
	typeURL string
	get     func(ctx types.Context) ([]byte, error)
	set     func(ctx types.Context, bz []byte) error
}

// ParamsRegistry exposes module params by subspace for direct inspection
// and overrides outside of governance.
type ParamsRegistry struct {
	subspaces map[string]paramSubspace
}

func NewParamsRegistry() *ParamsRegistry {
	return &ParamsRegistry{subspaces: make(map[string]paramSubspace)}
}

// RegisterParams exposes the params of one module under subspace.
func RegisterParams[P any](reg *ParamsRegistry, subspace, typeURL string,
	get func(ctx types.Context) P, set func(ctx types.Context, params P) error) {
	if _, ok := reg.subspaces[subspace]; ok {
		panic(fmt.Sprintf("param subspace %s has already been registered", subspace))
	}
	reg.subspaces[subspace] = paramSubspace{
		typeURL: typeURL,
		get: func(ctx types.Context) ([]byte, error) {
			return codec.Marshal(get(ctx))
		},
		set: func(ctx types.Context, bz []byte) error {
			var params P
			if err := codec.Unmarshal(bz, &params); err != nil {
				return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
			}
			return set(ctx, params)
		},
	}
}

func (reg *ParamsRegistry) lookup(subspace, typeURL string) (paramSubspace, error) {
	ps, ok := reg.subspaces[subspace]
	if !ok {
		return ps, sdkerrors.Wrapf(sdkerrors.ErrNotFound, "param subspace %s", subspace)
	}
	if ps.typeURL != typeURL {
		return ps, sdkerrors.Wrapf(sdkerrors.ErrInvalidType, "param subspace %s holds %s, not %s", subspace, ps.typeURL, typeURL)
	}
	return ps, nil
}

// Get returns the encoded params of subspace.
func (reg *ParamsRegistry) Get(ctx types.Context, subspace, typeURL string) ([]byte, error) {
	ps, err := reg.lookup(subspace, typeURL)
	if err != nil {
		return nil, err
	}
	return ps.get(ctx)
}

// Set replaces the params of subspace with the payload of params.
func (reg *ParamsRegistry) Set(ctx types.Context, subspace string, params codec.Any) error {
	ps, err := reg.lookup(subspace, params.TypeURL)
	if err != nil {
		return err
	}
	return ps.set(ctx, params.Value)
}

// Subspaces lists the registered subspaces in order.
func (reg *ParamsRegistry) Subspaces() []string {
	return sortedKeys(reg.subspaces)
}
