package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ipfs/go-cid"

	"xdao.co/streamid/streamid"
)

// Regenerate with:
//
//	go run ./internal/tools/streamid_vector_gen > streamid/testdata/vectors.json
const (
	genesisCID = "bagcqcerakszw2vsovxznyp5gfnpdj4cqm2xiv76yd24wkjewhhykovorwo6a"
	commitCID  = "bagjqcgzaday6dzalvmy5ady2m5a5legq5zrbsnlxfc2bfxej532ds7htpova"
)

type streamTypeVector struct {
	Name        string `json:"name"`
	Code        uint8  `json:"code"`
	StreamID    string `json:"stream_id"`
	StreamIDHex string `json:"stream_id_hex"`
}

type tileVector struct {
	StreamID        string `json:"stream_id"`
	CommitIDZero    string `json:"commit_id_zero"`
	CommitIDZeroHex string `json:"commit_id_zero_hex"`
	CommitID        string `json:"commit_id"`
	CommitIDHex     string `json:"commit_id_hex"`
}

type genesisVector struct {
	Document      map[string]any `json:"document"`
	CID           string         `json:"cid"`
	TileStreamID  string         `json:"tile_stream_id"`
	ModelStreamID string         `json:"model_stream_id"`
}

type vectors struct {
	GenesisCID  string             `json:"genesis_cid"`
	CommitCID   string             `json:"commit_cid"`
	StreamTypes []streamTypeVector `json:"stream_types"`
	Tile        tileVector         `json:"tile"`
	Genesis     genesisVector      `json:"genesis"`
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	genesis := must(cid.Parse(genesisCID))
	commit := must(cid.Parse(commitCID))

	out := vectors{GenesisCID: genesisCID, CommitCID: commitCID}
	for _, t := range streamid.StreamTypes {
		id := streamid.NewStreamID(t, genesis)
		out.StreamTypes = append(out.StreamTypes, streamTypeVector{
			Name:        t.String(),
			Code:        t.Code(),
			StreamID:    id.String(),
			StreamIDHex: hex.EncodeToString(id.Bytes()),
		})
	}

	tile := streamid.NewStreamID(streamid.Tile, genesis)
	zero := tile.AtCommit(cid.Undef)
	pinned := tile.AtCommit(commit)
	out.Tile = tileVector{
		StreamID:        tile.String(),
		CommitIDZero:    zero.String(),
		CommitIDZeroHex: hex.EncodeToString(zero.Bytes()),
		CommitID:        pinned.String(),
		CommitIDHex:     hex.EncodeToString(pinned.Bytes()),
	}

	doc := map[string]any{
		"header": map[string]any{
			"controllers": []any{"did:3:kjz"},
			"family":      "IDX",
		},
	}
	tileGenesis := must(streamid.FromGenesis(streamid.Tile, doc))
	modelGenesis := must(streamid.FromGenesis(streamid.Model, doc))
	out.Genesis = genesisVector{
		Document:      doc,
		CID:           tileGenesis.CID().String(),
		TileStreamID:  tileGenesis.String(),
		ModelStreamID: modelGenesis.String(),
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
