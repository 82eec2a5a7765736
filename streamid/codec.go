package streamid

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-varint"

	"xdao.co/streamid/cidutil"
)

// Codec is the multicodec code that prefixes every binary identifier.
const Codec = 206

// zeroCommit is the tail byte of a CommitID pinned at genesis.
const zeroCommit = 0x00

func appendHeader(b []byte, t StreamType, genesis cid.Cid) []byte {
	b = append(b, varint.ToUvarint(Codec)...)
	b = append(b, varint.ToUvarint(uint64(t))...)
	return append(b, genesis.Bytes()...)
}

// Decode decodes the binary form of an identifier, accepting the shapes
// allowed by m. The result is a StreamID or a CommitID.
func Decode(b []byte, m Mode) (Ref, error) {
	if len(b) == 0 {
		return nil, newError(m.bytesKind(), "", "invalid "+m.noun()+" bytes: empty input")
	}
	input := cidutil.Base36(b)

	codec, n, err := varint.FromUvarint(b)
	if err != nil {
		return nil, wrapError(KindVarint, input, "read stream id codec", err)
	}
	if codec != Codec {
		return nil, newError(KindInvalidStreamRefCodec, input, "invalid stream ref, does not include streamid codec")
	}
	b = b[n:]

	code, n, err := varint.FromUvarint(b)
	if err != nil {
		return nil, wrapError(KindVarint, input, "read stream type", err)
	}
	t, err := StreamTypeFromCode(code)
	if err != nil {
		return nil, err
	}
	b = b[n:]

	genesis, rest, err := cidutil.ReadCID(b)
	if err != nil {
		return nil, wrapError(KindCID, input, "read genesis cid", err)
	}

	switch {
	case len(rest) == 0 && m.acceptsStream():
		return StreamID{typ: t, genesis: genesis}, nil
	case !m.acceptsCommit():
		tail := cidutil.Base36(rest)
		return nil, newError(KindInvalidStreamIDBytes, tail, fmt.Sprintf("invalid stream id bytes %s: contains commit", tail))
	case len(rest) == 0:
		return nil, newError(KindInvalidCommitIDBytes, input, fmt.Sprintf("parse commit id from bytes %s: no commit information provided", input))
	case len(rest) == 1 && rest[0] == zeroCommit:
		return CommitID{typ: t, genesis: genesis}, nil
	}

	// cid.Cast rejects trailing bytes after the commit.
	commit, err := cid.Cast(rest)
	if err != nil {
		return nil, wrapError(KindCID, input, "read commit cid", err)
	}
	return CommitID{typ: t, genesis: genesis, commit: commit}, nil
}

func (m Mode) bytesKind() Kind {
	switch m {
	case ModeStream:
		return KindInvalidStreamIDBytes
	case ModeCommit:
		return KindInvalidCommitIDBytes
	default:
		return KindInvalidStreamRefBytes
	}
}

func (m Mode) stringKind() Kind {
	switch m {
	case ModeStream:
		return KindInvalidStreamIDString
	case ModeCommit:
		return KindInvalidCommitIDString
	default:
		return KindInvalidStreamRefString
	}
}

func (m Mode) noun() string {
	switch m {
	case ModeStream:
		return "stream id"
	case ModeCommit:
		return "commit id"
	default:
		return "stream ref"
	}
}
