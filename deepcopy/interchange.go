package deepcopy

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes values for an interchange copy.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	// JSON round-trips through encoding/json.
	JSON Codec = jsonCodec{}

	// Msgpack round-trips through MessagePack.
	Msgpack Codec = msgpackCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

// Unmarshal decodes untyped integers as int64/uint64 rather than the
// smallest width that fits.
func (msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)

	return dec.Decode(v)
}

// InterchangeCopy copies v by encoding it with codec and decoding the result
// into an untyped value. Named types, pointers and struct identity are lost:
// structs come back as maps keyed by their encoded field names.
func InterchangeCopy(v any, codec Codec) (any, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	data, err := codec.Marshal(v)
	if err != nil {
		return nil, &CodecError{Codec: codec.Name(), Op: "marshal", Err: err}
	}

	var out any
	if err := codec.Unmarshal(data, &out); err != nil {
		return nil, &CodecError{Codec: codec.Name(), Op: "unmarshal", Err: err}
	}

	return out, nil
}

// JSONCopy is the JSON deep copy. Unlike Copy it fails on values with no
// JSON representation (funcs, channels, complex numbers), turns every
// number into float64, times into RFC 3339 strings, and structs into
// map[string]any, dropping fields tagged `json:"-"`. A value without a JSON
// form is an error here, never silently left out of the result.
func JSONCopy(v any) (any, error) {
	return InterchangeCopy(v, JSON)
}

// MsgpackCopy is the MessagePack deep copy. It shares JSONCopy's loss of
// named types, but keeps time.Time values and integer signedness.
func MsgpackCopy(v any) (any, error) {
	return InterchangeCopy(v, Msgpack)
}

// CopyInto round-trips src through codec into dst, keeping the static type.
// Fields the codec cannot represent are left at their zero value in dst.
func CopyInto[T any](dst *T, src T, codec Codec) error {
	if codec == nil {
		return ErrNilCodec
	}

	data, err := codec.Marshal(src)
	if err != nil {
		return &CodecError{Codec: codec.Name(), Op: "marshal", Err: err}
	}

	if err := codec.Unmarshal(data, dst); err != nil {
		return &CodecError{Codec: codec.Name(), Op: "unmarshal", Err: err}
	}

	return nil
}
