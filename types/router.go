package types

import (
	"github.com/okx/testtube/codec"
)

// MsgRouter resolves and executes encoded messages. Modules that execute
// messages on behalf of an authority, like gov, depend on it.
type MsgRouter interface {
	// Decode resolves the route of msg and decodes it.
	Decode(msg codec.Any) (Msg, error)
	// Dispatch decodes, validates and executes msg, returning the typed
	// response.
	Dispatch(ctx Context, msg codec.Any) (codec.Any, error)
}
