package model

import (
	"errors"
	"fmt"

	"xdao.co/streamid/streamid"
)

type ErrorCode string

const (
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrInvalidStreamID   ErrorCode = "INVALID_STREAM_ID"
	ErrInvalidCommitID   ErrorCode = "INVALID_COMMIT_ID"
	ErrInvalidStreamRef  ErrorCode = "INVALID_STREAM_REF"
	ErrInvalidStreamType ErrorCode = "INVALID_STREAM_TYPE"
	ErrInvalidCID        ErrorCode = "INVALID_CID"
	ErrInternal          ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

func mapErr(err error) *CodedError {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	switch streamid.KindOf(err) {
	case streamid.KindInvalidStreamIDBytes, streamid.KindInvalidStreamIDString:
		return NewError(ErrInvalidStreamID, err.Error())
	case streamid.KindInvalidCommitIDBytes, streamid.KindInvalidCommitIDString:
		return NewError(ErrInvalidCommitID, err.Error())
	case streamid.KindInvalidStreamRefBytes, streamid.KindInvalidStreamRefString,
		streamid.KindInvalidStreamRefCodec, streamid.KindVarint:
		return NewError(ErrInvalidStreamRef, err.Error())
	case streamid.KindInvalidStreamTypeIndex, streamid.KindInvalidStreamTypeName:
		return NewError(ErrInvalidStreamType, err.Error())
	case streamid.KindCID:
		return NewError(ErrInvalidCID, err.Error())
	}
	return NewError(ErrInternal, err.Error())
}
