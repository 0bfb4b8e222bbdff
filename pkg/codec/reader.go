package codec

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	msg8Bit  = 0x80
	rest8Bit = 0x7f
)

// Reader is responsible for reading data in protobuf protocol.
// Fields must appear in ascending field number order.
type Reader struct {
	index int
	end   int
	data  []byte
}

// NewReader returns reader with the data given.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:  data,
		index: 0,
		end:   len(data),
	}
}

// ReadUInt reads uint if the field number matches.
func (r *Reader) ReadUInt(fieldNumber int, strict bool) (uint64, error) {
	ok, err := r.checkField(fieldNumber, wireType0, strict)
	if err != nil || !ok {
		return 0, err
	}
	return r.readUInt()
}

// ReadInt32 reads protobuf int32 if the field number matches.
func (r *Reader) ReadInt32(fieldNumber int, strict bool) (int32, error) {
	ok, err := r.checkField(fieldNumber, wireType0, strict)
	if err != nil || !ok {
		return 0, err
	}
	res, err := r.readUInt()
	if err != nil {
		return 0, err
	}
	value := int64(res)
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, ErrOutOfRange
	}
	return int32(value), nil
}

// ReadEnum reads protobuf enum if the field number matches.
func (r *Reader) ReadEnum(fieldNumber int, strict bool) (int32, error) {
	return r.ReadInt32(fieldNumber, strict)
}

// ReadBool reads bool if the field number matches.
func (r *Reader) ReadBool(fieldNumber int, strict bool) (bool, error) {
	ok, err := r.checkField(fieldNumber, wireType0, strict)
	if err != nil || !ok {
		return false, err
	}
	return r.readBool()
}

// ReadBytes reads []byte if the field number matches.
func (r *Reader) ReadBytes(fieldNumber int, strict bool) ([]byte, error) {
	ok, err := r.checkField(fieldNumber, wireType2, strict)
	if err != nil || !ok {
		return []byte{}, err
	}
	return r.readBytes()
}

// ReadBytesArray reads [][]byte if the field number matches.
func (r *Reader) ReadBytesArray(fieldNumber int) ([][]byte, error) {
	result := [][]byte{}
	for r.index < r.end {
		ok, err := r.check(fieldNumber, wireType2)
		if err != nil && !r.strictError(err) {
			return result, err
		}
		if !ok {
			return result, nil
		}
		val, err := r.readBytes()
		if err != nil {
			return result, err
		}
		result = append(result, val)
	}
	return result, nil
}

// ReadString reads string if the field number matches.
func (r *Reader) ReadString(fieldNumber int, strict bool) (string, error) {
	ok, err := r.checkField(fieldNumber, wireType2, strict)
	if err != nil || !ok {
		return "", err
	}
	return r.readString()
}

// ReadDecodable reads struct if the field number matches.
func (r *Reader) ReadDecodable(fieldNumber int, creator func() DecodableReader, strict bool) (DecodableReader, error) {
	ok, err := r.checkField(fieldNumber, wireType2, strict)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return r.readDecodable(creator)
}

// ReadDecodables reads array of struct if the field number matches.
func (r *Reader) ReadDecodables(fieldNumber int, creator func() DecodableReader) ([]interface{}, error) {
	result := []interface{}{}
	for r.index < r.end {
		ok, err := r.check(fieldNumber, wireType2)
		if err != nil && !r.strictError(err) {
			return result, err
		}
		if !ok {
			return result, nil
		}
		val, err := r.readDecodable(creator)
		if err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, nil
}

// HasUnreadBytes returns true if the reader has not reached the end.
func (r *Reader) HasUnreadBytes() bool {
	return r.index != r.end
}

func (r *Reader) readDecodable(creator func() DecodableReader) (DecodableReader, error) {
	decodableSize, err := r.readUInt()
	if err != nil {
		return nil, err
	}
	if decodableSize > uint64(r.end-r.index) {
		return nil, fmt.Errorf("%w: invalid message size %d. Remaining data length is %d", ErrInvalidData, decodableSize, r.end-r.index)
	}
	decodableReader := &Reader{
		data:  r.data,
		index: r.index,
		end:   r.index + int(decodableSize),
	}
	val := creator()
	if err := val.DecodeFromReader(decodableReader); err != nil {
		return nil, err
	}
	if decodableReader.HasUnreadBytes() {
		return nil, ErrUnreadBytes
	}
	r.index = decodableReader.index
	return val, nil
}

func (r *Reader) readUInt() (uint64, error) {
	result, size, err := readUint(r.data[:r.end], r.index)
	if err != nil {
		return 0, err
	}
	r.index += size
	return result, nil
}

func (r *Reader) readBytes() ([]byte, error) {
	size, err := r.readUInt()
	if err != nil {
		return nil, err
	}
	remaining := r.end - r.index
	if size > uint64(remaining) {
		return nil, fmt.Errorf("%w: invalid byte size %d. Remaining data length is %d", ErrInvalidData, size, remaining)
	}
	result := make([]byte, int(size))
	copy(result, r.data[r.index:r.index+int(size)])
	r.index += int(size)
	return result, nil
}

func (r *Reader) readString() (string, error) {
	result, err := r.readBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(result) {
		return "", errors.New("invalid byte for UTF-8 is included")
	}
	if !norm.NFC.IsNormal(result) {
		return "", errors.New("UTF-8 is not normalized")
	}
	return string(result), nil
}

func (r *Reader) readBool() (bool, error) {
	if r.index >= r.end {
		return false, ErrInvalidData
	}
	target := r.data[r.index]
	if target != 0x00 && target != 0x01 {
		return false, ErrInvalidData
	}
	r.index++
	return target != 0x00, nil
}

// checkField checks the next key. Missing field is only an error in strict mode.
func (r *Reader) checkField(fieldNumber, wireType int, strict bool) (bool, error) {
	ok, err := r.check(fieldNumber, wireType)
	if err != nil {
		if !r.strictError(err) || strict {
			return false, err
		}
	}
	return ok, nil
}

func (r *Reader) check(fieldNumber, wireType int) (bool, error) {
	if r.index >= r.end {
		return false, ErrFieldNumberNotFound
	}
	key, size, err := readUint(r.data[:r.end], r.index)
	if err != nil {
		return false, err
	}
	nextFieldNumber, nextWireType, err := readKey(int(key))
	if err != nil {
		return false, err
	}
	if nextFieldNumber != fieldNumber {
		return false, ErrUnexpectedFieldNumber
	}
	if nextWireType != wireType {
		return false, ErrInvalidData
	}
	r.index += size
	return true, nil
}

func (r *Reader) strictError(err error) bool {
	return errors.Is(err, ErrFieldNumberNotFound) || errors.Is(err, ErrUnexpectedFieldNumber)
}

func readUint(data []byte, offset int) (uint64, int, error) {
	result := uint64(0)
	index := offset
	for shift := 0; shift < 64; shift += 7 {
		if index >= len(data) {
			return 0, 0, ErrInvalidData
		}
		bit := uint64(data[index])
		index++
		if index == offset+10 && bit > 0x01 {
			return 0, 0, ErrOutOfRange
		}
		result |= (bit & uint64(rest8Bit)) << shift
		if (bit & uint64(msg8Bit)) == 0 {
			if varintShortestSize(result) != index-offset {
				return 0, 0, ErrUnnecessaryLeadingBytes
			}
			return result, index - offset, nil
		}
	}
	return 0, 0, ErrNoTerminate
}

func varintShortestSize(data uint64) int {
	size := 1
	for data >= msg8Bit {
		data >>= 7
		size++
	}
	return size
}
