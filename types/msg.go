package types

// Msg is a message routed to a module handler. Every message names a
// single signer.
type Msg interface {
	ValidateBasic() error
	GetSigner() string
}
