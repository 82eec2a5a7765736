package streamid

import (
	"github.com/ipfs/go-cid"

	"xdao.co/streamid/cidutil"
)

// CommitID identifies a stream pinned at a commit.
//
// A CommitID without a pinned commit (the zero commit) refers to the stream at
// its genesis. The zero commit is encoded with a single 0x00 byte in place of
// a commit CID. Parsers collapse a "?commit=" value equal to the genesis CID
// into the zero commit, so do not rely on telling the two apart.
type CommitID struct {
	typ     StreamType
	genesis cid.Cid
	commit  cid.Cid
}

// NewCommitID returns a CommitID pinned at commit. Passing cid.Undef yields
// the zero commit.
func NewCommitID(t StreamType, genesis, commit cid.Cid) CommitID {
	return CommitID{typ: t, genesis: genesis, commit: commit}
}

// ZeroCommitID returns the CommitID for the genesis of a stream.
func ZeroCommitID(t StreamType, genesis cid.Cid) CommitID {
	return CommitID{typ: t, genesis: genesis}
}

// CommitIDFromBytes decodes the binary form of a CommitID.
func CommitIDFromBytes(b []byte) (CommitID, error) {
	ref, err := Decode(b, ModeCommit)
	if err != nil {
		return CommitID{}, err
	}
	return ref.(CommitID), nil
}

// ParseCommitID parses a CommitID string or URL. The legacy form
// "/ceramic/<stream id>?commit=<cid>" is accepted; "?commit=0" denotes the
// zero commit.
func ParseCommitID(s string) (CommitID, error) {
	ref, err := Parse(s, ModeCommit)
	if err != nil {
		return CommitID{}, err
	}
	return ref.(CommitID), nil
}

// MustParseCommitID is like ParseCommitID but panics on error.
func MustParseCommitID(s string) CommitID {
	id, err := ParseCommitID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (c CommitID) Type() StreamType { return c.typ }

func (c CommitID) CID() cid.Cid { return c.genesis }

// Commit returns the pinned commit, or the genesis CID for the zero commit.
func (c CommitID) Commit() cid.Cid {
	if !c.commit.Defined() {
		return c.genesis
	}
	return c.commit
}

// HasCommit reports whether a commit other than the zero commit is pinned.
func (c CommitID) HasCommit() bool { return c.commit.Defined() }

func (c CommitID) AtCommit(commit cid.Cid) CommitID {
	return CommitID{typ: c.typ, genesis: c.genesis, commit: commit}
}

func (c CommitID) BaseID() StreamID {
	return StreamID{typ: c.typ, genesis: c.genesis}
}

func (c CommitID) Bytes() []byte {
	b := appendHeader(nil, c.typ, c.genesis)
	if !c.commit.Defined() {
		return append(b, zeroCommit)
	}
	return append(b, c.commit.Bytes()...)
}

func (c CommitID) String() string { return cidutil.Base36(c.Bytes()) }

func (c CommitID) URL() string { return urlScheme + c.String() }

func (c CommitID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CommitID) UnmarshalText(b []byte) error {
	id, err := ParseCommitID(string(b))
	if err != nil {
		return err
	}
	*c = id
	return nil
}
