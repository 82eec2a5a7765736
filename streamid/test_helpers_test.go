package streamid

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
)

const (
	genesisCIDString = "bagcqcerakszw2vsovxznyp5gfnpdj4cqm2xiv76yd24wkjewhhykovorwo6a"
	commitCIDString  = "bagjqcgzaday6dzalvmy5ady2m5a5legq5zrbsnlxfc2bfxej532ds7htpova"

	streamIDString       = "kjzl6cwe1jw147dvq16zluojmraqvwdmbh61dx9e0c59i344lcrsgqfohexp60s"
	streamIDURL          = "ceramic://" + streamIDString
	streamIDLegacyURL    = "/ceramic/" + streamIDString
	commitIDString       = "k1dpgaqe3i64kjqcp801r3sn7ysi5i0k7nxvs7j351s7kewfzr3l7mdxnj7szwo4kr9mn2qki5nnj0cv836ythy1t1gya9s25cn1nexst3jxi5o3h6qprfyju"
	zeroCommitIDString   = "k3y52l7qbv1frxwipl4hp7e6jlu4f6u8upm2xv0irmedfkm5cnutmezzi3u7mytj4"
	commitIDLegacyURL    = streamIDLegacyURL + "?commit=" + commitCIDString
	zeroCommitLegacyURL  = streamIDLegacyURL + "?commit=0"
	commitIDQueryOnCID   = streamIDURL + "?commit=" + commitCIDString
	commitIDQueryGenesis = streamIDURL + "?commit=" + genesisCIDString
)

func genesisCID(t *testing.T) cid.Cid {
	t.Helper()
	return mustCID(t, genesisCIDString)
}

func commitCID(t *testing.T) cid.Cid {
	t.Helper()
	return mustCID(t, commitCIDString)
}

func mustCID(t *testing.T, s string) cid.Cid {
	t.Helper()
	c, err := cid.Parse(s)
	if err != nil {
		t.Fatalf("cid.Parse(%q): %v", s, err)
	}
	return c
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	_, b, err := multibase.Decode(s)
	if err != nil {
		t.Fatalf("multibase.Decode(%q): %v", s, err)
	}
	return b
}

func expectKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("expected kind %s, got %q (%v)", kind, got, err)
	}
}
