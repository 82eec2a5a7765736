package streamid

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
)

const urlScheme = "ceramic://"

var (
	// urlPattern matches the URL forms of a StreamID.
	urlPattern = sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(`^(?:ceramic://|/ceramic/)?([a-zA-Z0-9]+)$`)
	})
	// urlPatternCommit also matches a trailing "?commit=<cid>".
	urlPatternCommit = sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(`^(?:ceramic://|/ceramic/)?([a-zA-Z0-9]+)(?:\?commit=([a-zA-Z0-9]+))?$`)
	})
)

// Parse parses the string or URL form of an identifier, accepting the shapes
// allowed by m.
//
// The identifier token is decoded as a StreamID or CommitID regardless of m.
// For ModeAny and ModeCommit a "?commit=<cid>" suffix then replaces any commit
// in the token. A value that is not a valid CID (including "0") or that equals
// the genesis CID yields the zero commit rather than an error. Finally the
// shape is checked against m.
func Parse(s string, m Mode) (Ref, error) {
	fail := func(cause error) error {
		return wrapError(m.stringKind(), s, m.stringMessage(s), cause)
	}

	pattern := urlPatternCommit
	if m == ModeStream {
		pattern = urlPattern
	}
	match := pattern().FindStringSubmatch(s)
	if match == nil {
		return nil, fail(nil)
	}

	_, b, err := multibase.Decode(match[1])
	if err != nil {
		return nil, fail(err)
	}
	ref, err := Decode(b, ModeAny)
	if err != nil {
		return nil, err
	}

	if len(match) > 2 && match[2] != "" {
		commit, err := cid.Parse(match[2])
		if err != nil || commit == ref.CID() {
			commit = cid.Undef
		}
		ref = ref.AtCommit(commit)
	}

	if !m.accepts(ref) {
		return nil, fail(nil)
	}
	return ref, nil
}

func (m Mode) stringMessage(s string) string {
	switch m {
	case ModeStream:
		return fmt.Sprintf("invalid stream id string %q: contains commit or is malformed", s)
	case ModeCommit:
		return fmt.Sprintf("parse commit id from string %q: no commit information provided", s)
	default:
		return fmt.Sprintf("invalid stream ref string %q", s)
	}
}
