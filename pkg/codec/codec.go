// Package codec implements the wire and text representations of Helium transaction fields.
//
// The wire form is the protobuf binary encoding written by [Writer] and read by [Reader].
// The text form is JSON. Fields that need a non-default JSON representation are declared
// with one of the codec types below, which pair an encode and a decode function:
//
//	Origin      int32  <-> "p2p" | "radio"
//	RewardType  int32  <-> "securities" | "data_credits" | ... | "consensus"
//	Base58      []byte <-> Base58 (Bitcoin alphabet), null decodes to empty bytes
//	Base64      []byte <-> standard Base64
//	Base64URL   []byte <-> URL-safe Base64
//	U64Base64   uint64 <-> standard Base64 of the 8 big-endian bytes
//	Hex         []byte <-> lower case hex
//
// All functions are pure and safe for concurrent use.
package codec

// Encodable is interface for struct which is encodable
// All generated struct code should have this method.
type Encodable interface {
	Encode() ([]byte, error)
}

// Decodable is interface for struct which is decodable
// All generated struct code should have this method.
type Decodable interface {
	Decode([]byte) error
}

// DecodableReader is interface for struct which is decodable
// All generated struct code should have this method.
type DecodableReader interface {
	DecodeFromReader(*Reader) error
}

// EncodeDecodable can encode and decode.
type EncodeDecodable interface {
	Encodable
	Decodable
	DecodableReader
}
