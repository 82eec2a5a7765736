package streamid

import (
	"testing"

	"github.com/ipfs/go-cid"
)

func TestFromGenesis_Deterministic(t *testing.T) {
	a := map[string]any{"header": map[string]any{"family": "IDX", "controllers": []any{"did:3:kjz"}}}
	b := map[string]any{"header": map[string]any{"controllers": []any{"did:3:kjz"}, "family": "IDX"}}

	idA, err := FromGenesis(Tile, a)
	if err != nil {
		t.Fatalf("FromGenesis: %v", err)
	}
	idB, err := FromGenesis(Tile, b)
	if err != nil {
		t.Fatalf("FromGenesis: %v", err)
	}
	if idA != idB {
		t.Fatalf("expected map key order not to matter: %s vs %s", idA, idB)
	}
	if idA.CID().Prefix().Codec != cid.DagCBOR {
		t.Fatalf("expected dag-cbor genesis CID, got codec %x", idA.CID().Prefix().Codec)
	}
}

func TestFromGenesis_EmptyMap(t *testing.T) {
	id, err := FromGenesis(Tile, map[string]any{})
	if err != nil {
		t.Fatalf("FromGenesis: %v", err)
	}
	// The well-known CID of the empty DAG-CBOR map.
	if want := "bafyreigbtj4x7ip5legnfznufuopl4sg4knzc2cof6duas4b3q2fy6swua"; id.CID().String() != want {
		t.Fatalf("got %s want %s", id.CID(), want)
	}
}

func TestFromGenesis_Errors(t *testing.T) {
	_, err := FromGenesis(StreamType(42), map[string]any{})
	expectKind(t, err, KindInvalidStreamTypeIndex)

	_, err = FromGenesis(Tile, map[any]any{7: "x"})
	expectKind(t, err, KindEncoding)
}

func TestFromGenesis_TypeChangesID(t *testing.T) {
	doc := map[string]any{"k": "v"}
	tile, err := FromGenesis(Tile, doc)
	if err != nil {
		t.Fatalf("FromGenesis: %v", err)
	}
	model, err := FromGenesis(Model, doc)
	if err != nil {
		t.Fatalf("FromGenesis: %v", err)
	}
	if tile.CID() != model.CID() {
		t.Fatalf("genesis CID should not depend on stream type")
	}
	if tile == model {
		t.Fatalf("stream ids should differ by type")
	}
}
