package txn

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/helium/proto-go/pkg/codec"
)

// Field numbers of the blockchain_txn oneof.
const (
	fieldPayment     = 8
	fieldPocReceipts = 9
	fieldRewards     = 14
	fieldPaymentV2   = 19
)

// Txn is the envelope of a single blockchain transaction. Exactly one field must be set.
type Txn struct {
	Payment     *PaymentV1     `json:"payment,omitempty"`
	PocReceipts *PocReceiptsV1 `json:"poc_receipts,omitempty"`
	Rewards     *RewardsV1     `json:"rewards,omitempty"`
	PaymentV2   *PaymentV2     `json:"payment_v2,omitempty"`
}

type variant struct {
	kind        string
	fieldNumber int
	value       codec.Encodable
}

func (t *Txn) variants() []variant {
	result := []variant{}
	if t.Payment != nil {
		result = append(result, variant{"payment", fieldPayment, t.Payment})
	}
	if t.PocReceipts != nil {
		result = append(result, variant{"poc_receipts", fieldPocReceipts, t.PocReceipts})
	}
	if t.Rewards != nil {
		result = append(result, variant{"rewards", fieldRewards, t.Rewards})
	}
	if t.PaymentV2 != nil {
		result = append(result, variant{"payment_v2", fieldPaymentV2, t.PaymentV2})
	}
	return result
}

// Validate checks exactly one transaction is set.
func (t *Txn) Validate() error {
	variants := t.variants()
	if len(variants) == 0 {
		return ErrEmptyTxn
	}
	if len(variants) > 1 {
		kinds := make([]string, len(variants))
		for i, v := range variants {
			kinds[i] = v.kind
		}
		return fmt.Errorf("%w: %v", ErrMultipleTxn, kinds)
	}
	return nil
}

// Kind returns the JSON name of the set transaction, or empty string if invalid.
func (t *Txn) Kind() string {
	variants := t.variants()
	if len(variants) != 1 {
		return ""
	}
	return variants[0].kind
}

func (t *Txn) Encode() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	v := t.variants()[0]
	writer := codec.NewWriter()
	if err := writer.WriteEncodable(v.fieldNumber, v.value); err != nil {
		return nil, err
	}
	return writer.Result(), nil
}

func (t *Txn) Decode(data []byte) error {
	reader := codec.NewReader(data)
	if err := t.DecodeFromReader(reader); err != nil {
		return err
	}
	if reader.HasUnreadBytes() {
		return codec.ErrUnreadBytes
	}
	return t.Validate()
}

func (t *Txn) DecodeFromReader(reader *codec.Reader) error {
	{
		val, err := reader.ReadDecodable(fieldPayment, func() codec.DecodableReader { return new(PaymentV1) }, false)
		if err != nil {
			return err
		}
		if val != nil {
			t.Payment = val.(*PaymentV1)
		}
	}
	{
		val, err := reader.ReadDecodable(fieldPocReceipts, func() codec.DecodableReader { return new(PocReceiptsV1) }, false)
		if err != nil {
			return err
		}
		if val != nil {
			t.PocReceipts = val.(*PocReceiptsV1)
		}
	}
	{
		val, err := reader.ReadDecodable(fieldRewards, func() codec.DecodableReader { return new(RewardsV1) }, false)
		if err != nil {
			return err
		}
		if val != nil {
			t.Rewards = val.(*RewardsV1)
		}
	}
	{
		val, err := reader.ReadDecodable(fieldPaymentV2, func() codec.DecodableReader { return new(PaymentV2) }, false)
		if err != nil {
			return err
		}
		if val != nil {
			t.PaymentV2 = val.(*PaymentV2)
		}
	}
	return nil
}

// MarshalTxnJSON returns JSON of the transaction with text codecs applied.
func MarshalTxnJSON(t *Txn, indent bool) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if indent {
		return json.MarshalIndent(t, "", "  ")
	}
	return json.Marshal(t)
}

// UnmarshalTxnJSON decodes JSON of the transaction. Unknown fields are rejected.
func UnmarshalTxnJSON(data []byte) (*Txn, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	t := &Txn{}
	if err := decoder.Decode(t); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after transaction")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
