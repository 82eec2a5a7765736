package streamid

import (
	"bytes"
	"testing"

	"github.com/ipfs/go-cid"
)

func TestRef_Dispatch(t *testing.T) {
	stream := NewStreamID(Tile, genesisCID(t))
	commit := NewCommitID(Tile, genesisCID(t), commitCID(t))

	for _, ref := range []Ref{stream, commit} {
		if ref.Type() != Tile {
			t.Fatalf("%T Type: got %v", ref, ref.Type())
		}
		if ref.CID() != genesisCID(t) {
			t.Fatalf("%T CID: got %s", ref, ref.CID())
		}
		if ref.BaseID() != stream {
			t.Fatalf("%T BaseID: got %s", ref, ref.BaseID())
		}
		if ref.AtCommit(commitCID(t)) != commit {
			t.Fatalf("%T AtCommit: got %s", ref, ref.AtCommit(commitCID(t)))
		}
		if ref.URL() != "ceramic://"+ref.String() {
			t.Fatalf("%T URL: got %s", ref, ref.URL())
		}
	}

	if !bytes.Equal(Ref(stream).Bytes(), stream.Bytes()) {
		t.Fatalf("StreamID bytes differ through Ref")
	}
	if Ref(commit).String() != commitIDString {
		t.Fatalf("CommitID string differs through Ref")
	}
}

func TestParseRef_Shapes(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		wantCommit bool
		wantString string
	}{
		{"stream id", streamIDString, false, streamIDString},
		{"stream url", streamIDURL, false, streamIDString},
		{"legacy stream url", streamIDLegacyURL, false, streamIDString},
		{"zero commit", zeroCommitIDString, true, zeroCommitIDString},
		{"commit", commitIDString, true, commitIDString},
		{"legacy commit", commitIDLegacyURL, true, commitIDString},
		{"legacy zero commit", zeroCommitLegacyURL, true, zeroCommitIDString},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := ParseRef(tc.in)
			if err != nil {
				t.Fatalf("ParseRef: %v", err)
			}
			_, isCommit := ref.(CommitID)
			if isCommit != tc.wantCommit {
				t.Fatalf("got %T, want commit=%v", ref, tc.wantCommit)
			}
			if ref.String() != tc.wantString {
				t.Fatalf("String: got %s want %s", ref.String(), tc.wantString)
			}
		})
	}
}

func TestParseRef_BareStreamIDIsNotPromoted(t *testing.T) {
	ref, err := ParseRef(streamIDString)
	if err != nil {
		t.Fatalf("ParseRef: %v", err)
	}
	id, ok := ref.(StreamID)
	if !ok {
		t.Fatalf("expected StreamID, got %T", ref)
	}
	// Promotion is explicit.
	if got := id.AtCommit(cid.Undef); got.String() != zeroCommitIDString {
		t.Fatalf("AtCommit(zero): got %s", got)
	}
}

func TestRefFromBytes(t *testing.T) {
	ref, err := RefFromBytes(mustDecode(t, streamIDString))
	if err != nil {
		t.Fatalf("RefFromBytes(stream): %v", err)
	}
	if _, ok := ref.(StreamID); !ok {
		t.Fatalf("expected StreamID, got %T", ref)
	}

	ref, err = RefFromBytes(mustDecode(t, zeroCommitIDString))
	if err != nil {
		t.Fatalf("RefFromBytes(zero commit): %v", err)
	}
	if c, ok := ref.(CommitID); !ok || c.HasCommit() {
		t.Fatalf("expected zero CommitID, got %#v", ref)
	}

	_, err = RefFromBytes(nil)
	expectKind(t, err, KindInvalidStreamRefBytes)
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeAny, ModeStream, ModeCommit} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Fatalf("ParseMode(%q): got %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("either"); ok {
		t.Fatalf("expected unknown mode to be rejected")
	}
	if Mode(7).String() != "unknown" {
		t.Fatalf("unexpected String for unknown mode")
	}
}
