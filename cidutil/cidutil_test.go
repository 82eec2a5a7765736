package cidutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
)

const genesisCID = "bagcqcerakszw2vsovxznyp5gfnpdj4cqm2xiv76yd24wkjewhhykovorwo6a"

func TestCIDv1RawSHA256_Stable(t *testing.T) {
	a, err := CIDv1RawSHA256([]byte("hello"))
	if err != nil {
		t.Fatalf("CIDv1RawSHA256: %v", err)
	}
	b, err := CIDv1RawSHA256([]byte("hello"))
	if err != nil {
		t.Fatalf("CIDv1RawSHA256: %v", err)
	}
	if a != b {
		t.Fatalf("expected identical CIDs, got %s and %s", a, b)
	}
	if a.Prefix().Codec != cid.Raw {
		t.Fatalf("expected raw codec, got %x", a.Prefix().Codec)
	}
	if a.Version() != 1 {
		t.Fatalf("expected CIDv1, got v%d", a.Version())
	}
}

func TestCIDv1DagCborSHA256_Codec(t *testing.T) {
	c, err := CIDv1DagCborSHA256([]byte{0xa0})
	if err != nil {
		t.Fatalf("CIDv1DagCborSHA256: %v", err)
	}
	if c.Prefix().Codec != cid.DagCBOR {
		t.Fatalf("expected dag-cbor codec, got %x", c.Prefix().Codec)
	}
	raw, err := CIDv1RawSHA256([]byte{0xa0})
	if err != nil {
		t.Fatalf("CIDv1RawSHA256: %v", err)
	}
	if !bytes.Equal(c.Hash(), raw.Hash()) {
		t.Fatalf("expected same multihash for same bytes")
	}
}

func TestReadCID_Remainder(t *testing.T) {
	c, err := cid.Parse(genesisCID)
	if err != nil {
		t.Fatalf("cid.Parse: %v", err)
	}
	buf := append(c.Bytes(), 0x00, 0x01)

	got, rest, err := ReadCID(buf)
	if err != nil {
		t.Fatalf("ReadCID: %v", err)
	}
	if got != c {
		t.Fatalf("cid mismatch: got %s want %s", got, c)
	}
	if !bytes.Equal(rest, []byte{0x00, 0x01}) {
		t.Fatalf("remainder mismatch: %x", rest)
	}
}

func TestReadCID_Empty(t *testing.T) {
	_, _, err := ReadCID(nil)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestReadCID_Truncated(t *testing.T) {
	c, err := cid.Parse(genesisCID)
	if err != nil {
		t.Fatalf("cid.Parse: %v", err)
	}
	b := c.Bytes()
	if _, _, err := ReadCID(b[:len(b)-4]); err == nil {
		t.Fatalf("expected error for truncated cid bytes")
	}
}

func TestBase36_RoundTrip(t *testing.T) {
	in := []byte{0xce, 0x01, 0x00, 0x01, 0x02}
	s := Base36(in)
	if s == "" || s[0] != 'k' {
		t.Fatalf("expected base36 multibase string, got %q", s)
	}
	enc, out, err := multibase.Decode(s)
	if err != nil {
		t.Fatalf("multibase.Decode: %v", err)
	}
	if enc != multibase.Base36 {
		t.Fatalf("unexpected encoding %c", enc)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("round trip mismatch: %x vs %x", in, out)
	}
}
