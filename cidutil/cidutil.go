// Package cidutil collects the small CID helpers shared by the identifier codec
// and its tools.
package cidutil

import (
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
)

// ErrEmpty is returned by ReadCID when there are no bytes left to read.
var ErrEmpty = errors.New("cidutil: no bytes to read cid from")

// CIDv1RawSHA256 returns a CIDv1 using the "raw" multicodec and a sha2-256
// multihash derived from data.
func CIDv1RawSHA256(data []byte) (cid.Cid, error) {
	return sum(cid.Raw, data)
}

// CIDv1DagCborSHA256 returns a CIDv1 using the "dag-cbor" multicodec and a
// sha2-256 multihash. data must already be DAG-CBOR encoded.
func CIDv1DagCborSHA256(data []byte) (cid.Cid, error) {
	return sum(cid.DagCBOR, data)
}

func sum(codec uint64, data []byte) (cid.Cid, error) {
	h, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(codec, h), nil
}

// ReadCID reads one self-delimiting CID from the front of buf and returns it
// together with the unread remainder.
func ReadCID(buf []byte) (cid.Cid, []byte, error) {
	if len(buf) == 0 {
		return cid.Undef, nil, ErrEmpty
	}
	n, c, err := cid.CidFromBytes(buf)
	if err != nil {
		return cid.Undef, nil, err
	}
	return c, buf[n:], nil
}

// Base36 encodes b as a lowercase base36 multibase string.
func Base36(b []byte) string {
	s, err := multibase.Encode(multibase.Base36, b)
	if err != nil {
		// Encode only fails for unknown encodings.
		return ""
	}
	return s
}
