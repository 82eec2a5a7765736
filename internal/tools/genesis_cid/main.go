package main

import (
	"fmt"
	"os"

	"github.com/ipfs/go-cid"

	"xdao.co/streamid/cidutil"
	"xdao.co/streamid/dagcbor"
)

// genesis_cid prints the CID of an already DAG-CBOR encoded genesis block.
// With -raw the bytes are addressed as an opaque raw block instead.
func main() {
	args := os.Args[1:]
	raw := len(args) == 2 && args[0] == "-raw"
	if raw {
		args = args[1:]
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: genesis_cid [-raw] <genesis.cbor>")
		os.Exit(2)
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}

	var c cid.Cid
	if raw {
		c, err = cidutil.CIDv1RawSHA256(b)
	} else {
		if _, err = dagcbor.Decode(b); err != nil {
			fmt.Fprintf(os.Stderr, "decode: %v\n", err)
			os.Exit(1)
		}
		c, err = cidutil.CIDv1DagCborSHA256(b)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cid: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(c)
}
