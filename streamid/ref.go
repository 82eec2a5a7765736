package streamid

import (
	"github.com/ipfs/go-cid"
)

// Ref is either a StreamID or a CommitID.
//
// The set of implementations is closed; use a type switch to recover the
// concrete value.
type Ref interface {
	// Type returns the stream type.
	Type() StreamType
	// CID returns the genesis CID.
	CID() cid.Cid
	// AtCommit returns a CommitID for the same stream pinned at commit.
	// cid.Undef yields the zero commit.
	AtCommit(commit cid.Cid) CommitID
	// BaseID returns the StreamID without commit information.
	BaseID() StreamID
	// Bytes returns the binary encoding.
	Bytes() []byte
	// String returns the base36 multibase encoding of Bytes.
	String() string
	// URL returns String with the "ceramic://" scheme.
	URL() string

	isRef()
}

func (StreamID) isRef() {}
func (CommitID) isRef() {}

// ParseRef parses any accepted string form and returns whichever shape it
// denotes. A "?commit=" suffix always produces a CommitID.
func ParseRef(s string) (Ref, error) {
	return Parse(s, ModeAny)
}

// RefFromBytes decodes the binary form of either shape.
func RefFromBytes(b []byte) (Ref, error) {
	return Decode(b, ModeAny)
}

// Mode selects which identifier shapes a decode or parse accepts.
type Mode uint8

const (
	// ModeAny accepts both StreamID and CommitID.
	ModeAny Mode = iota
	// ModeStream accepts only a StreamID.
	ModeStream
	// ModeCommit accepts only a CommitID.
	ModeCommit
)

var modeNames = [...]string{
	ModeAny:    "any",
	ModeStream: "stream",
	ModeCommit: "commit",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode returns the mode named "any", "stream" or "commit".
func ParseMode(s string) (Mode, bool) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), true
		}
	}
	return 0, false
}

func (m Mode) acceptsStream() bool { return m != ModeCommit }
func (m Mode) acceptsCommit() bool { return m != ModeStream }

func (m Mode) accepts(ref Ref) bool {
	switch ref.(type) {
	case StreamID:
		return m.acceptsStream()
	case CommitID:
		return m.acceptsCommit()
	default:
		return false
	}
}
