package codec

import "encoding/binary"

// Supported protobuf wire types. Fixed width types are not used by transactions.
const (
	wireType0 = 0
	wireType2 = 2
)

// readKey returns field number and wire type of the key.
func readKey(key int) (int, int, error) {
	wireType := key & 7
	if wireType != wireType0 && wireType != wireType2 {
		return 0, 0, ErrInvalidData
	}
	fieldNumber := key >> 3
	if fieldNumber < 1 {
		return 0, 0, ErrInvalidData
	}
	return fieldNumber, wireType, nil
}

func getKey(wireType int, fieldNumber int) ([]byte, int) {
	vint := make([]byte, binary.MaxVarintLen32)
	size := binary.PutUvarint(vint, uint64(fieldNumber<<3|wireType))
	return vint, size
}
