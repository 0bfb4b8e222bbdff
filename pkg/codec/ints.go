package codec

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

const u64Size = 8

// EncodeU64Base64 returns standard Base64 of the 8 big-endian bytes of word.
func EncodeU64Base64(word uint64) string {
	buf := make([]byte, u64Size)
	binary.BigEndian.PutUint64(buf, word)
	return EncodeBase64(buf)
}

// DecodeU64Base64 returns the word of the Base64 token.
// Decoded bytes must be exactly 8 bytes.
func DecodeU64Base64(token string) (uint64, error) {
	buf, err := DecodeBase64(token)
	if err != nil {
		return 0, err
	}
	if len(buf) != u64Size {
		return 0, fmt.Errorf("%w: u64 must be size of %d but received %d", ErrInvalidLength, u64Size, len(buf))
	}
	return binary.BigEndian.Uint64(buf), nil
}

// U64Base64 type for marshal and unmarshal uint64 as big-endian Base64 json string.
type U64Base64 uint64

func (i U64Base64) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeU64Base64(uint64(i)))
}

func (i *U64Base64) UnmarshalJSON(b []byte) error {
	str, err := readRequiredToken(b, "u64 base64")
	if err != nil {
		return err
	}
	value, err := DecodeU64Base64(str)
	if err != nil {
		return err
	}
	*i = U64Base64(value)
	return nil
}
