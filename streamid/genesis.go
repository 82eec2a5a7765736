package streamid

import (
	"fmt"

	"xdao.co/streamid/cidutil"
	"xdao.co/streamid/dagcbor"
)

// FromGenesis derives the StreamID of a stream from its genesis commit.
//
// The content is encoded as DAG-CBOR and addressed with a sha2-256 CIDv1
// using the dag-cbor multicodec. See dagcbor.Marshal for accepted values.
func FromGenesis(t StreamType, genesis any) (StreamID, error) {
	if !t.Valid() {
		return StreamID{}, newError(KindInvalidStreamTypeIndex, fmt.Sprint(uint8(t)), fmt.Sprintf("invalid stream type index: %d", uint8(t)))
	}
	b, err := dagcbor.Marshal(genesis)
	if err != nil {
		return StreamID{}, wrapError(KindEncoding, "", "encode genesis commit", err)
	}
	c, err := cidutil.CIDv1DagCborSHA256(b)
	if err != nil {
		return StreamID{}, wrapError(KindEncoding, "", "hash genesis commit", err)
	}
	return NewStreamID(t, c), nil
}
