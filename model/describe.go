package model

import (
	"encoding/hex"
	"strconv"

	"xdao.co/streamid/streamid"
)

// Describe projects ref into its boundary view.
func Describe(ref streamid.Ref) RefView {
	base := ref.BaseID()
	v := RefView{
		Kind:           KindStream,
		StreamType:     ref.Type().String(),
		StreamTypeCode: ref.Type().Code(),
		GenesisCID:     ref.CID().String(),
		StreamID:       base.String(),
		URL:            ref.URL(),
		Bytes:          hex.EncodeToString(ref.Bytes()),
	}
	if c, ok := ref.(streamid.CommitID); ok {
		v.Kind = KindCommit
		v.CommitID = c.String()
		if c.HasCommit() {
			v.Commit = c.Commit().String()
		}
	}
	return v
}

// Parse handles a ParseRequest. Identifier errors are reported in the
// response; only a malformed request returns an error.
func Parse(req ParseRequest) (*ParseResponse, error) {
	mode := streamid.ModeAny
	if req.Mode != "" {
		m, ok := streamid.ParseMode(req.Mode)
		if !ok {
			return nil, NewError(ErrInvalidRequest, "invalid mode: "+req.Mode)
		}
		mode = m
	}
	if req.Input == "" {
		return nil, NewError(ErrInvalidRequest, "input is required")
	}

	resp := &ParseResponse{Input: req.Input}
	ref, err := streamid.Parse(req.Input, mode)
	if err != nil {
		resp.Error = mapErr(err)
		return resp, nil
	}
	v := Describe(ref)
	resp.Ref = &v
	return resp, nil
}

// ParseAll handles a batch of requests, preserving order.
func ParseAll(reqs []ParseRequest) ([]ParseResponse, error) {
	out := make([]ParseResponse, 0, len(reqs))
	for i, req := range reqs {
		resp, err := Parse(req)
		if err != nil {
			return nil, NewError(ErrInvalidRequest, "invalid request["+strconv.Itoa(i)+"]: "+err.Error())
		}
		out = append(out, *resp)
	}
	return out, nil
}
