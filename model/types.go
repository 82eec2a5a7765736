package model

// RefView is the JSON projection of a StreamID or CommitID.
//
// StreamID is always the base identifier. CommitID and Commit are set only
// for commit references; Commit is empty for the zero commit.
type RefView struct {
	Kind           string `json:"kind"`
	StreamType     string `json:"streamType"`
	StreamTypeCode uint8  `json:"streamTypeCode"`
	GenesisCID     string `json:"genesisCID"`
	StreamID       string `json:"streamID"`
	CommitID       string `json:"commitID,omitempty"`
	Commit         string `json:"commit,omitempty"`
	URL            string `json:"url"`
	Bytes          string `json:"bytes"`
}

const (
	KindStream = "stream"
	KindCommit = "commit"
)

// ParseRequest asks for one identifier to be parsed.
// Mode is "any" (default), "stream" or "commit".
type ParseRequest struct {
	Input string `json:"input"`
	Mode  string `json:"mode,omitempty"`
}

// ParseResponse carries either the parsed reference or a coded error.
type ParseResponse struct {
	Input string      `json:"input"`
	Ref   *RefView    `json:"ref,omitempty"`
	Error *CodedError `json:"error,omitempty"`
}
