// Package model defines stable boundary types for API layers.
//
// Identifier bytes and strings are produced by package streamid; these structs
// only project them. They are the only types intended for direct JSON/YAML
// serialization by consumers.
package model
