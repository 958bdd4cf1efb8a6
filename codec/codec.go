package codec

import (
	"fmt"
	"reflect"
	"time"

	"github.com/pkg/errors"
	amino "github.com/tendermint/go-amino"
)

// Cdc is the amino codec shared by every message, tx and stored value.
// Types are never registered as concretes: the type identifier travels
// next to the payload in an Any instead of as an amino prefix.
var Cdc = amino.NewCodec()

// Marshal encodes o with amino binary-bare encoding. Values amino cannot
// represent (floats, maps, channels, ...) are rejected before amino sees
// them: amino panics on those while holding the codec lock. The result is
// never nil so all-default values can be stored.
func Marshal(o interface{}) ([]byte, error) {
	if err := checkEncodable(reflect.TypeOf(o)); err != nil {
		return nil, errors.Wrapf(err, "amino: cannot encode %T", o)
	}
	bz, err := Cdc.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrapf(err, "amino: cannot encode %T", o)
	}
	if bz == nil {
		bz = []byte{}
	}
	return bz, nil
}

// MustMarshal is Marshal for values that are known to be encodable.
func MustMarshal(o interface{}) []byte {
	bz, err := Marshal(o)
	if err != nil {
		panic(err)
	}
	return bz
}

// Unmarshal decodes bz into ptr. Empty input decodes to the zero value,
// which is how amino encodes a struct whose fields are all default.
func Unmarshal(bz []byte, ptr interface{}) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("amino: cannot decode into non-pointer %T", ptr)
	}
	if err := checkEncodable(rv.Type().Elem()); err != nil {
		return errors.Wrapf(err, "amino: cannot decode into %T", ptr)
	}
	if len(bz) == 0 {
		rv.Elem().Set(reflect.Zero(rv.Elem().Type()))
		return nil
	}
	if err := Cdc.UnmarshalBinaryBare(bz, ptr); err != nil {
		return errors.Wrapf(err, "amino: cannot decode into %T", ptr)
	}
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

// checkEncodable reports the first part of t that amino cannot encode.
func checkEncodable(t reflect.Type) error {
	return checkType(t, make(map[reflect.Type]struct{}))
}

func checkType(t reflect.Type, seen map[reflect.Type]struct{}) error {
	if t == nil {
		return errors.New("nil value")
	}
	if _, ok := seen[t]; ok {
		return nil
	}
	seen[t] = struct{}{}

	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Interface, reflect.UnsafePointer,
		reflect.Complex64, reflect.Complex128, reflect.Float32, reflect.Float64:
		return fmt.Errorf("unsupported type %s", t)
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return checkType(t.Elem(), seen)
	case reflect.Struct:
		if t == timeType {
			return nil
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" || f.Tag.Get("json") == "-" || f.Tag.Get("amino") == "-" {
				continue
			}
			if err := checkType(f.Type, seen); err != nil {
				return errors.Wrapf(err, "field %s", f.Name)
			}
		}
	}
	return nil
}
