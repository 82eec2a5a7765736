package streamid

import "fmt"

// StreamType is the closed set of stream kinds an identifier can carry.
// The numeric value is the code written to the binary form.
type StreamType uint8

const (
	Tile       StreamType = 0
	Caip10Link StreamType = 1
	Model      StreamType = 2
	Mid        StreamType = 3
	Unloadable StreamType = 4
)

// StreamTypes lists every stream type in code order.
var StreamTypes = []StreamType{Tile, Caip10Link, Model, Mid, Unloadable}

var streamTypeNames = [...]string{
	Tile:       "tile",
	Caip10Link: "caip10-link",
	Model:      "model",
	Mid:        "MID",
	Unloadable: "UNLOADABLE",
}

// StreamTypeFromCode returns the stream type with the given numeric code.
func StreamTypeFromCode(code uint64) (StreamType, error) {
	if code >= uint64(len(streamTypeNames)) {
		return 0, newError(KindInvalidStreamTypeIndex, fmt.Sprint(code), fmt.Sprintf("invalid stream type index: %d", code))
	}
	return StreamType(code), nil
}

// ParseStreamType returns the stream type with the given canonical name.
// Matching is exact: "mid" is not "MID".
func ParseStreamType(name string) (StreamType, error) {
	for i, n := range streamTypeNames {
		if n == name {
			return StreamType(i), nil
		}
	}
	return 0, newError(KindInvalidStreamTypeName, name, fmt.Sprintf("invalid stream type name: %q", name))
}

// Code returns the numeric code of t.
func (t StreamType) Code() uint8 { return uint8(t) }

// Valid reports whether t is one of the known stream types.
func (t StreamType) Valid() bool { return int(t) < len(streamTypeNames) }

func (t StreamType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("StreamType(%d)", uint8(t))
	}
	return streamTypeNames[t]
}

func (t StreamType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, newError(KindInvalidStreamTypeIndex, fmt.Sprint(uint8(t)), fmt.Sprintf("invalid stream type index: %d", uint8(t)))
	}
	return []byte(streamTypeNames[t]), nil
}

func (t *StreamType) UnmarshalText(b []byte) error {
	v, err := ParseStreamType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
