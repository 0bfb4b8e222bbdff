package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// readToken returns the JSON string in b. present is false when b is null.
func readToken(b []byte) (string, bool, error) {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return "", false, nil
	}
	str := ""
	if err := json.Unmarshal(b, &str); err != nil {
		return "", true, err
	}
	return str, true, nil
}

func readRequiredToken(b []byte, name string) (string, error) {
	str, present, err := readToken(b)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidEncoding, name, err)
	}
	if !present {
		return "", fmt.Errorf("%w: %s: null value", ErrInvalidEncoding, name)
	}
	return str, nil
}

type Hex []byte

func (h *Hex) UnmarshalJSON(b []byte) error {
	str, err := readRequiredToken(b, "hex")
	if err != nil {
		return err
	}
	res, err := hex.DecodeString(str)
	if err != nil {
		return fmt.Errorf("%w: hex: %w", ErrInvalidEncoding, err)
	}
	*h = res
	return nil
}

func (h Hex) String() string {
	return hex.EncodeToString(h)
}

func (h Hex) MarshalJSON() ([]byte, error) {
	str := hex.EncodeToString(h)
	return json.Marshal(str)
}

// EncodeBase58 returns the Base58 text of data using the Bitcoin alphabet.
func EncodeBase58(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base58.Encode(data)
}

// DecodeBase58 returns the bytes of the Base58 token.
// Absent token (nil) decodes to empty bytes.
func DecodeBase58(token *string) ([]byte, error) {
	if token == nil || *token == "" {
		return []byte{}, nil
	}
	res, err := base58.Decode(*token)
	if err != nil {
		return nil, fmt.Errorf("%w: base58: %w", ErrInvalidEncoding, err)
	}
	return res, nil
}

// Base58 is bytes represented as Base58 string in JSON.
type Base58 []byte

func (b Base58) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeBase58(b))
}

func (b *Base58) UnmarshalJSON(data []byte) error {
	str, present, err := readToken(data)
	if err != nil {
		return fmt.Errorf("%w: base58: %w", ErrInvalidEncoding, err)
	}
	var token *string
	if present {
		token = &str
	}
	res, err := DecodeBase58(token)
	if err != nil {
		return err
	}
	*b = res
	return nil
}

func (b Base58) String() string {
	return EncodeBase58(b)
}

// EncodeBase64 returns the padded standard Base64 text of data.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// decodeStrictBase64 rejects line breaks and non-zero trailing bits.
func decodeStrictBase64(enc *base64.Encoding, name, token string) ([]byte, error) {
	if i := strings.IndexAny(token, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEncoding, name, base64.CorruptInputError(i))
	}
	res, err := enc.Strict().DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEncoding, name, err)
	}
	return res, nil
}

// DecodeBase64 returns the bytes of the padded standard Base64 token.
func DecodeBase64(token string) ([]byte, error) {
	return decodeStrictBase64(base64.StdEncoding, "base64", token)
}

// Base64 is bytes represented as standard Base64 string in JSON.
type Base64 []byte

func (b Base64) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeBase64(b))
}

func (b *Base64) UnmarshalJSON(data []byte) error {
	str, err := readRequiredToken(data, "base64")
	if err != nil {
		return err
	}
	res, err := DecodeBase64(str)
	if err != nil {
		return err
	}
	*b = res
	return nil
}

func (b Base64) String() string {
	return EncodeBase64(b)
}

// EncodeBase64URL returns the padded URL-safe Base64 text of data.
func EncodeBase64URL(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeBase64URL returns the bytes of the padded URL-safe Base64 token.
func DecodeBase64URL(token string) ([]byte, error) {
	return decodeStrictBase64(base64.URLEncoding, "base64 url", token)
}

// Base64URL is bytes represented as URL-safe Base64 string in JSON.
type Base64URL []byte

func (b Base64URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeBase64URL(b))
}

func (b *Base64URL) UnmarshalJSON(data []byte) error {
	str, err := readRequiredToken(data, "base64 url")
	if err != nil {
		return err
	}
	res, err := DecodeBase64URL(str)
	if err != nil {
		return err
	}
	*b = res
	return nil
}

func (b Base64URL) String() string {
	return EncodeBase64URL(b)
}
