package codec

// Any is the typed message envelope: a type URL naming the schema and
// routing destination, and the amino encoded payload.
type Any struct {
	TypeURL string `json:"type_url"`
	Value   []byte `json:"value"`
}

// NewAny encodes msg and wraps it under typeURL.
func NewAny(typeURL string, msg interface{}) (Any, error) {
	bz, err := Marshal(msg)
	if err != nil {
		return Any{}, err
	}
	return Any{TypeURL: typeURL, Value: bz}, nil
}

// UnpackInto decodes the payload into ptr. The type URL is not checked:
// a mismatch surfaces as a decode failure or as a wrongly shaped value.
func (a Any) UnpackInto(ptr interface{}) error {
	return Unmarshal(a.Value, ptr)
}

func (a Any) String() string {
	return a.TypeURL
}
