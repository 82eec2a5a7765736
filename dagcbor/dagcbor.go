// Package dagcbor encodes genesis content as deterministic DAG-CBOR.
//
// Maps are emitted with length-first sorted string keys, integers use the
// smallest encoding, floats are always 64-bit, and indefinite-length items,
// NaN and infinities are rejected. CID values become tag 42 links.
package dagcbor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
)

// TagCID is the CBOR tag DAG-CBOR uses for CID links.
const TagCID = 42

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortLengthFirst,
		ShortestFloat: cbor.ShortestFloatNone,
		NaNConvert:    cbor.NaNConvertReject,
		InfConvert:    cbor.InfConvertReject,
		IndefLength:   cbor.IndefLengthForbidden,
		TagsMd:        cbor.TagsAllowed,
		// Identifiers and stream types serialize as their canonical strings.
		TextMarshaler: cbor.TextMarshalerTextString,
	}.EncMode()
	if err != nil {
		panic("dagcbor: encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IndefLength:    cbor.IndefLengthForbidden,
		DupMapKey:      cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("dagcbor: decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v as DAG-CBOR. v is typically the result of decoding a JSON
// or YAML document: maps with string keys, slices, strings, numbers (including
// json.Number), booleans, nil, []byte and cid.Cid.
func Marshal(v any) ([]byte, error) {
	n, err := normalize(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(n)
}

// Decode decodes DAG-CBOR data into generic Go values, turning tag 42 links
// back into cid.Cid.
func Decode(data []byte) (any, error) {
	var v any
	if err := decMode.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return links(v)
}

func normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return x, nil
	case float32:
		return normalizeFloat(float64(x))
	case float64:
		return normalizeFloat(x)
	case json.Number:
		return normalizeNumber(x)
	case cid.Cid:
		return link(x)
	case *cid.Cid:
		if x == nil {
			return nil, nil
		}
		return link(*x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			n, err := normalize(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("dagcbor: map key %v is not a string", k)
			}
			n, err := normalize(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ks, err)
			}
			out[ks] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			n, err := normalize(val)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

func normalizeFloat(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.New("dagcbor: NaN and infinity are not representable")
	}
	return f, nil
}

func normalizeNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("dagcbor: invalid number %q", n.String())
	}
	return normalizeFloat(f)
}

func link(c cid.Cid) (any, error) {
	if !c.Defined() {
		return nil, errors.New("dagcbor: undefined cid")
	}
	// The 0x00 prefix is the identity multibase DAG-CBOR requires.
	return cbor.Tag{Number: TagCID, Content: append([]byte{0x00}, c.Bytes()...)}, nil
}

func links(v any) (any, error) {
	switch x := v.(type) {
	case cbor.Tag:
		if x.Number != TagCID {
			return nil, fmt.Errorf("dagcbor: unsupported tag %d", x.Number)
		}
		b, ok := x.Content.([]byte)
		if !ok || len(b) == 0 || b[0] != 0x00 {
			return nil, errors.New("dagcbor: malformed cid link")
		}
		return cid.Cast(b[1:])
	case map[string]any:
		for k, val := range x {
			n, err := links(val)
			if err != nil {
				return nil, err
			}
			x[k] = n
		}
		return x, nil
	case []any:
		for i, val := range x {
			n, err := links(val)
			if err != nil {
				return nil, err
			}
			x[i] = n
		}
		return x, nil
	default:
		return v, nil
	}
}
