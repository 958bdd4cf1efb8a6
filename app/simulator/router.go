package simulator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okx/testtube/codec"
	"github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// ResponseTypeURL is the type URL of the response to a message.
func ResponseTypeURL(msgTypeURL string) string { return msgTypeURL + "Response" }

type msgRoute struct {
	decode func(bz []byte) (types.Msg, error)
	handle func(ctx types.Context, msg types.Msg) (interface{}, error)
}

// MsgServiceRouter routes messages by type URL.
type MsgServiceRouter struct {
	routes map[string]msgRoute
}

var _ types.MsgRouter = (*MsgServiceRouter)(nil)

func NewMsgServiceRouter() *MsgServiceRouter {
	return &MsgServiceRouter{routes: make(map[string]msgRoute)}
}

// RegisterMsgHandler binds typeURL to fn. Registering a type URL twice
// panics.
func RegisterMsgHandler[M types.Msg, R any](r *MsgServiceRouter, typeURL string, fn func(ctx types.Context, msg M) (*R, error)) {
	if strings.TrimSpace(typeURL) == "" {
		panic("msg type url cannot be blank")
	}
	if _, ok := r.routes[typeURL]; ok {
		panic(fmt.Sprintf("msg route %s has already been registered", typeURL))
	}
	r.routes[typeURL] = msgRoute{
		decode: func(bz []byte) (types.Msg, error) {
			var msg M
			if err := codec.Unmarshal(bz, &msg); err != nil {
				return nil, err
			}
			return msg, nil
		},
		handle: func(ctx types.Context, msg types.Msg) (interface{}, error) {
			m, ok := msg.(M)
			if !ok {
				return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidType, "expected %T, got %T", m, msg)
			}
			res, err := fn(ctx, m)
			if err != nil {
				return nil, err
			}
			if res == nil {
				res = new(R)
			}
			return res, nil
		},
	}
}

func (r *MsgServiceRouter) HasRoute(typeURL string) bool {
	_, ok := r.routes[typeURL]
	return ok
}

func (r *MsgServiceRouter) Decode(msg codec.Any) (types.Msg, error) {
	route, ok := r.routes[msg.TypeURL]
	if !ok {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRoute, "unrecognized message type: %s", msg.TypeURL)
	}
	decoded, err := route.decode(msg.Value)
	if err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrTxDecode, "%s: %s", msg.TypeURL, err)
	}
	return decoded, nil
}

// Handle executes an already decoded message and packs its response.
func (r *MsgServiceRouter) Handle(ctx types.Context, typeURL string, msg types.Msg) (codec.Any, error) {
	route, ok := r.routes[typeURL]
	if !ok {
		return codec.Any{}, sdkerrors.Wrapf(sdkerrors.ErrUnknownRoute, "unrecognized message type: %s", typeURL)
	}
	res, err := route.handle(ctx, msg)
	if err != nil {
		return codec.Any{}, err
	}
	return codec.NewAny(ResponseTypeURL(typeURL), res)
}

func (r *MsgServiceRouter) Dispatch(ctx types.Context, msg codec.Any) (codec.Any, error) {
	decoded, err := r.Decode(msg)
	if err != nil {
		return codec.Any{}, err
	}
	if err := decoded.ValidateBasic(); err != nil {
		return codec.Any{}, err
	}
	return r.Handle(ctx, msg.TypeURL, decoded)
}

// Routes lists the registered type URLs in order.
func (r *MsgServiceRouter) Routes() []string {
	return sortedKeys(r.routes)
}

// Querier answers an encoded query request.
type Querier func(ctx types.Context, req []byte) ([]byte, error)

// QueryRouter routes queries by path.
type QueryRouter struct {
	routes map[string]Querier
}

func NewQueryRouter() *QueryRouter {
	return &QueryRouter{routes: make(map[string]Querier)}
}

// RegisterQueryHandler binds path to fn. Registering a path twice panics.
func RegisterQueryHandler[Q, R any](r *QueryRouter, path string, fn func(ctx types.Context, req *Q) (*R, error)) {
	if strings.TrimSpace(path) == "" {
		panic("query path cannot be blank")
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query route %s has already been registered", path))
	}
	r.routes[path] = func(ctx types.Context, bz []byte) ([]byte, error) {
		req := new(Q)
		if err := codec.Unmarshal(bz, req); err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
		}
		res, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = new(R)
		}
		return codec.Marshal(res)
	}
}

func (r *QueryRouter) Route(path string) (Querier, bool) {
	q, ok := r.routes[path]
	return q, ok
}

// Routes lists the registered query paths in order.
func (r *QueryRouter) Routes() []string {
	return sortedKeys(r.routes)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
