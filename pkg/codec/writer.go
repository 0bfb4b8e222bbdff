package codec

import (
	"encoding/binary"

	"golang.org/x/text/unicode/norm"
)

// Writer is responsible for writing data in protobuf protocol.
type Writer struct {
	result []byte
	size   int
}

// NewWriter returns a new instances of a writer.
func NewWriter() *Writer {
	return &Writer{
		result: []byte{},
	}
}

// WriteBytes writes a bytes to result.
func (w *Writer) WriteBytes(fieldNumber int, data []byte) {
	w.writeKey(wireType2, fieldNumber)
	w.writeBytes(data)
}

// WriteBytesArray writes bytes array to result.
func (w *Writer) WriteBytesArray(fieldNumber int, data [][]byte) {
	for _, val := range data {
		w.WriteBytes(fieldNumber, val)
	}
}

// WriteString writes a NFC normalized string to result.
func (w *Writer) WriteString(fieldNumber int, data string) {
	w.WriteBytes(fieldNumber, []byte(norm.NFC.String(data)))
}

// WriteBool writes a boolean to result.
func (w *Writer) WriteBool(fieldNumber int, data bool) {
	w.writeKey(wireType0, fieldNumber)
	if data {
		w.writeByte(0x01)
		return
	}
	w.writeByte(0x00)
}

// WriteUInt writes uint to result.
func (w *Writer) WriteUInt(fieldNumber int, data uint64) {
	w.writeKey(wireType0, fieldNumber)
	w.writeUInt(data)
}

// WriteInt32 writes protobuf int32 to result.
// Negative value is written as 10 bytes two's complement varint.
func (w *Writer) WriteInt32(fieldNumber int, data int32) {
	w.writeKey(wireType0, fieldNumber)
	w.writeUInt(uint64(int64(data)))
}

// WriteEnum writes protobuf enum to result. Enum shares the int32 encoding.
func (w *Writer) WriteEnum(fieldNumber int, data int32) {
	w.WriteInt32(fieldNumber, data)
}

// WriteEncodable writes encodable struct to result.
func (w *Writer) WriteEncodable(fieldNumber int, data Encodable) error {
	if data == nil {
		return nil
	}
	result, err := data.Encode()
	if err != nil {
		return err
	}
	w.writeKey(wireType2, fieldNumber)
	w.writeBytes(result)
	return nil
}

// Result returns the written bytes.
func (w *Writer) Result() []byte {
	return w.result
}

// Size returns written size.
func (w *Writer) Size() int {
	return w.size
}

func (w *Writer) writeKey(wireType int, fieldNumber int) {
	vint, size := getKey(wireType, fieldNumber)
	w.size += size
	w.result = append(w.result, vint[0:size]...)
}

// writeBytes writes a bytes to result without key.
func (w *Writer) writeBytes(data []byte) {
	w.writeUInt(uint64(len(data)))
	w.size += len(data)
	w.result = append(w.result, data...)
}

func (w *Writer) writeUInt(data uint64) {
	vint := make([]byte, binary.MaxVarintLen64)
	size := binary.PutUvarint(vint, data)
	w.size += size
	w.result = append(w.result, vint[0:size]...)
}

func (w *Writer) writeByte(data byte) {
	w.size++
	w.result = append(w.result, data)
}
