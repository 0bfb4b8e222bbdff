/*
gen generates protobuf wire encoding/decoding codes for struct using "fieldNumber" tag.
Text codec types of the codec package are written with their wire type.
Below example will generate corresponding encoding/decoding functions.

Example:

	//go:generate go run github.com/helium/proto-go/pkg/codec/gen

	type RewardV1 struct {
		Account codec.Base58     `json:"account" fieldNumber:"1"`
		Gateway codec.Base58     `json:"gateway" fieldNumber:"2"`
		Amount  uint64           `json:"amount" fieldNumber:"3"`
		Type    codec.RewardType `json:"type" fieldNumber:"4"`
	}

Supported field types:

	bool, uint64, int32, string, []byte, [][]byte
	codec.Hex, codec.Base58, codec.Base64, codec.Base64URL (bytes)
	codec.Origin, codec.RewardType (enum)
	codec.U64Base64 (uint64)
	*Struct, []*Struct (embedded message)
*/
package main
