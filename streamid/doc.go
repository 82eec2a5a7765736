// Package streamid encodes and decodes identifiers for content-addressed,
// append-only streams.
//
// A StreamID names a stream by its type and the CID of its genesis commit.
// A CommitID additionally pins the stream at one commit; a CommitID without a
// pinned commit refers to the genesis (the "zero commit"). Both implement Ref,
// which is also what parsing returns when the caller accepts either shape.
//
// Binary layout:
//
//	varint(206) varint(stream type) genesis-cid [tail]
//
// where tail is empty for a StreamID, and either the single byte 0x00 (zero
// commit) or the commit CID bytes for a CommitID. The string form is the
// lowercase base36 multibase encoding of those bytes; URLs add a "ceramic://"
// prefix. Parsing also accepts the legacy "/ceramic/<id>" prefix and a
// "?commit=<cid>" suffix.
//
// All values are immutable and safe for concurrent use.
package streamid
