package codec

import "errors"

var (
	// ErrInvalidData represents general invalid data.
	ErrInvalidData = errors.New("invalid data")
	// ErrOutOfRange represents logic accessing data in out of range.
	ErrOutOfRange = errors.New("out of range")
	// ErrNoTerminate represents invalid protobuf format.
	ErrNoTerminate = errors.New("no terminationg bit found")
	// ErrUnexpectedFieldNumber represents protobuf field number not matching expected value.
	ErrUnexpectedFieldNumber = errors.New("unexpected field number found")
	// ErrFieldNumberNotFound represents protobuf field number not matching expected value.
	ErrFieldNumberNotFound = errors.New("expected field number does not exist")
	// ErrUnreadBytes represents extra bytes not read.
	ErrUnreadBytes = errors.New("unread bytes exist")
	// ErrUnnecessaryLeadingBytes represents varint which is not in the shortest form.
	ErrUnnecessaryLeadingBytes = errors.New("varint has unnecessary leading bytes")
)

var (
	// ErrUnknownTag represents an enum value outside of the codec domain.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrUnknownToken represents a string matching none of the enum tokens.
	ErrUnknownToken = errors.New("unknown token")
	// ErrInvalidEncoding represents text which cannot be parsed by the byte codec.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrInvalidLength represents decoded bytes not matching the fixed width of the value.
	ErrInvalidLength = errors.New("invalid length")
)
