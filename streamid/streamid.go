package streamid

import (
	"github.com/ipfs/go-cid"

	"xdao.co/streamid/cidutil"
)

// StreamID identifies a stream by its type and genesis CID. It carries no
// commit information.
//
// StreamID is a comparable value; == compares type and genesis CID.
type StreamID struct {
	typ     StreamType
	genesis cid.Cid
}

// NewStreamID returns the StreamID for a stream of type t with the given
// genesis CID.
func NewStreamID(t StreamType, genesis cid.Cid) StreamID {
	return StreamID{typ: t, genesis: genesis}
}

// StreamIDFromBytes decodes the binary form of a StreamID. Bytes carrying a
// commit are rejected.
func StreamIDFromBytes(b []byte) (StreamID, error) {
	ref, err := Decode(b, ModeStream)
	if err != nil {
		return StreamID{}, err
	}
	return ref.(StreamID), nil
}

// ParseStreamID parses "<id>", "ceramic://<id>" or "/ceramic/<id>".
// A "?commit=" suffix is not accepted.
func ParseStreamID(s string) (StreamID, error) {
	ref, err := Parse(s, ModeStream)
	if err != nil {
		return StreamID{}, err
	}
	return ref.(StreamID), nil
}

// MustParseStreamID is like ParseStreamID but panics on error.
func MustParseStreamID(s string) StreamID {
	id, err := ParseStreamID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (s StreamID) Type() StreamType { return s.typ }

func (s StreamID) CID() cid.Cid { return s.genesis }

// AtCommit returns a CommitID for this stream pinned at commit.
// commit is kept even when it equals the genesis CID.
func (s StreamID) AtCommit(commit cid.Cid) CommitID {
	return CommitID{typ: s.typ, genesis: s.genesis, commit: commit}
}

func (s StreamID) BaseID() StreamID { return s }

func (s StreamID) Bytes() []byte {
	return appendHeader(nil, s.typ, s.genesis)
}

func (s StreamID) String() string { return cidutil.Base36(s.Bytes()) }

func (s StreamID) URL() string { return urlScheme + s.String() }

func (s StreamID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StreamID) UnmarshalText(b []byte) error {
	id, err := ParseStreamID(string(b))
	if err != nil {
		return err
	}
	*s = id
	return nil
}
