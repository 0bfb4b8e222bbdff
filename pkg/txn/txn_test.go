package txn

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helium/proto-go/pkg/codec"
)

const (
	paymentWire = "42160a0362626212016118e80720b8910228073203626262"
	paymentJSON = `{"payment":{"payer":"a3gV","payee":"2g","amount":1000,"fee":35000,"nonce":7,"signature":"YmJi"}}`
	rewardsWire = "7213080a10141a0d0a0362626212016118f4032004"
	rewardsJSON = `{"rewards":{"start_epoch":10,"end_epoch":20,"rewards":[{"account":"a3gV","gateway":"2g","amount":500,"type":"poc_witnesses"}]}}`
)

func mustDecodeHex(v string) []byte {
	decoded, err := hex.DecodeString(v)
	if err != nil {
		panic(err)
	}
	return decoded
}

func samplePocReceipts() *PocReceiptsV1 {
	return &PocReceiptsV1{
		Challenger:   []byte{0x01, 0xff, 0xe3},
		Secret:       []byte("secret"),
		OnionKeyHash: []byte{0xbf, 0x4f, 0x89},
		Path: []*PocPathElementV1{
			{
				Challengee: []byte{0x00, 0x62},
				Receipt: &PocReceiptV1{
					Gateway:   []byte{0x00, 0x62},
					Timestamp: 1588000000000000000,
					Signal:    -112,
					Data:      []byte{0x01, 0x02},
					Origin:    codec.OriginRadio,
					Signature: []byte{0x03},
					Datarate:  "SF9BW125",
				},
				Witnesses: []*PocWitnessV1{
					{
						Gateway:    []byte{0x00, 0x63},
						Timestamp:  1588000000000000001,
						Signal:     -98,
						PacketHash: []byte{0xbf, 0x4f, 0x89, 0x00},
						Signature:  []byte{0x04},
						Datarate:   "SF9BW125",
					},
				},
			},
			{
				Challengee: []byte{0x00, 0x64},
				Witnesses:  []*PocWitnessV1{},
			},
		},
		Fee:              0,
		Signature:        []byte{0x05},
		RequestBlockHash: []byte{0xbf, 0x4f, 0x89, 0x00, 0x1e, 0x67, 0x02, 0x74, 0xdd},
	}
}

func samplePaymentV2() *PaymentV2 {
	return &PaymentV2{
		Payer: []byte("bbb"),
		Payments: []*Payment{
			{Payee: []byte("a"), Amount: 10, Memo: 1, Max: false},
			{Payee: []byte("c"), Amount: 0, Memo: codec.U64Base64(^uint64(0)), Max: true},
		},
		Fee:       35000,
		Nonce:     2,
		Signature: []byte("sig"),
	}
}

func TestTxnWire(t *testing.T) {
	payment := &Txn{
		Payment: &PaymentV1{
			Payer:     []byte("bbb"),
			Payee:     []byte("a"),
			Amount:    1000,
			Fee:       35000,
			Nonce:     7,
			Signature: []byte("bbb"),
		},
	}
	encoded, err := payment.Encode()
	assert.NoError(t, err)
	assert.Equal(t, paymentWire, hex.EncodeToString(encoded))

	decoded := &Txn{}
	assert.NoError(t, decoded.Decode(mustDecodeHex(paymentWire)))
	assert.Equal(t, payment, decoded)
	assert.Equal(t, "payment", decoded.Kind())

	rewards := &Txn{}
	assert.NoError(t, rewards.Decode(mustDecodeHex(rewardsWire)))
	assert.Equal(t, "rewards", rewards.Kind())
	assert.Equal(t, codec.RewardTypePocWitnesses, rewards.Rewards.Rewards[0].Type)
}

func TestTxnWireRoundTrip(t *testing.T) {
	cases := []*Txn{
		{PocReceipts: samplePocReceipts()},
		{PaymentV2: samplePaymentV2()},
		{Rewards: &RewardsV1{StartEpoch: 1, EndEpoch: 30, Rewards: []*RewardV1{
			{Account: []byte("a"), Gateway: []byte{}, Amount: 1, Type: codec.RewardTypeSecurities},
			{Account: []byte("b"), Gateway: []byte("g"), Amount: 2, Type: codec.RewardTypeConsensus},
		}}},
	}
	for _, c := range cases {
		encoded, err := c.Encode()
		assert.NoError(t, err)
		decoded := &Txn{}
		assert.NoError(t, decoded.Decode(encoded))
		assert.Equal(t, c, decoded, c.Kind())
	}
}

func TestPocWitnessNegativeSignalWire(t *testing.T) {
	witness := &PocWitnessV1{
		Gateway:    []byte{0x00, 0x63},
		Timestamp:  1,
		Signal:     -98,
		PacketHash: []byte{0x01},
		Signature:  []byte{0x02},
		Datarate:   "SF9",
	}
	// signal is int32, so negative value is 10 bytes two's complement varint
	expected := "0a0200631001189effffffffffffffff012201012a01024a03534639"
	encoded, err := witness.Encode()
	assert.NoError(t, err)
	assert.Equal(t, expected, hex.EncodeToString(encoded))

	decoded := &PocWitnessV1{}
	assert.NoError(t, decoded.DecodeStrict(mustDecodeHex(expected)))
	assert.Equal(t, witness, decoded)
}

func TestTxnWireInvalid(t *testing.T) {
	cases := []struct {
		desc  string
		input string
		err   error
	}{
		{
			desc:  "empty envelope",
			input: "",
			err:   ErrEmptyTxn,
		},
		{
			desc:  "multiple transactions",
			input: paymentWire + rewardsWire,
			err:   ErrMultipleTxn,
		},
		{
			desc:  "extra bytes",
			input: paymentWire + "0800",
			err:   codec.ErrUnreadBytes,
		},
		{
			desc:  "truncated",
			input: paymentWire[:len(paymentWire)-2],
			err:   codec.ErrInvalidData,
		},
	}
	for _, c := range cases {
		err := (&Txn{}).Decode(mustDecodeHex(c.input))
		assert.ErrorIs(t, err, c.err, c.desc)
	}
}

func TestPaymentDecodeStrict(t *testing.T) {
	cases := []struct {
		desc  string
		input string
		err   error
	}{
		{
			desc:  "Valid payment",
			input: "0a0362626212016118e80720b8910228073203626262",
		},
		{
			desc:  "Valid payment with extra bytes",
			input: "0a0362626212016118e80720b8910228073203626262121314",
			err:   codec.ErrUnreadBytes,
		},
		{
			desc:  "Valid payment with missing key",
			input: "0a0362626212016120b8910228073203626262",
			err:   codec.ErrUnexpectedFieldNumber,
		},
	}
	for _, c := range cases {
		payment := &PaymentV1{}
		err := payment.DecodeStrict(mustDecodeHex(c.input))
		if c.err == nil {
			assert.NoError(t, err, c.desc)
		} else {
			assert.ErrorIs(t, err, c.err, c.desc)
		}
	}
}

func TestTxnJSON(t *testing.T) {
	cases := []struct {
		wire string
		json string
	}{
		{wire: paymentWire, json: paymentJSON},
		{wire: rewardsWire, json: rewardsJSON},
	}
	for _, c := range cases {
		decoded := &Txn{}
		assert.NoError(t, decoded.Decode(mustDecodeHex(c.wire)))
		marshaled, err := MarshalTxnJSON(decoded, false)
		assert.NoError(t, err)
		assert.Equal(t, c.json, string(marshaled))

		unmarshaled, err := UnmarshalTxnJSON([]byte(c.json))
		assert.NoError(t, err)
		encoded, err := unmarshaled.Encode()
		assert.NoError(t, err)
		assert.Equal(t, c.wire, hex.EncodeToString(encoded))
	}
}

func TestTxnJSONRoundTrip(t *testing.T) {
	cases := []*Txn{
		{PocReceipts: samplePocReceipts()},
		{PaymentV2: samplePaymentV2()},
	}
	for _, c := range cases {
		marshaled, err := MarshalTxnJSON(c, true)
		assert.NoError(t, err)
		unmarshaled, err := UnmarshalTxnJSON(marshaled)
		assert.NoError(t, err)
		assert.Equal(t, c, unmarshaled)
	}
}

func TestPocReceiptsJSON(t *testing.T) {
	marshaled, err := MarshalTxnJSON(&Txn{PocReceipts: samplePocReceipts()}, false)
	assert.NoError(t, err)

	doc := map[string]map[string]json.RawMessage{}
	assert.NoError(t, json.Unmarshal(marshaled, &doc))
	receipts := doc["poc_receipts"]
	assert.Equal(t, `"v0+J"`, string(receipts["onion_key_hash"]))
	assert.Equal(t, `"v0-JAB5nAnTd"`, string(receipts["request_block_hash"]))
	assert.Equal(t, `"c2VjcmV0"`, string(receipts["secret"]))
	assert.True(t, bytes.Contains(marshaled, []byte(`"origin":"radio"`)))
	assert.True(t, bytes.Contains(marshaled, []byte(`"receipt":null`)))

	paymentV2, err := MarshalTxnJSON(&Txn{PaymentV2: samplePaymentV2()}, false)
	assert.NoError(t, err)
	assert.True(t, bytes.Contains(paymentV2, []byte(`"memo":"AAAAAAAAAAE="`)))
	assert.True(t, bytes.Contains(paymentV2, []byte(`"memo":"//////////8="`)))
}

func TestTxnJSONInvalid(t *testing.T) {
	cases := []struct {
		desc  string
		input string
		err   error
	}{
		{
			desc:  "unknown reward type",
			input: `{"rewards":{"start_epoch":1,"end_epoch":2,"rewards":[{"account":"a3gV","gateway":"2g","amount":1,"type":"mining"}]}}`,
			err:   codec.ErrUnknownToken,
		},
		{
			desc:  "invalid base58 payer",
			input: `{"payment":{"payer":"0OIl","payee":"2g","amount":1,"fee":1,"nonce":1,"signature":"YmJi"}}`,
			err:   codec.ErrInvalidEncoding,
		},
		{
			desc:  "invalid base64 signature",
			input: `{"payment":{"payer":"a3gV","payee":"2g","amount":1,"fee":1,"nonce":1,"signature":"YmJ"}}`,
			err:   codec.ErrInvalidEncoding,
		},
		{
			desc:  "memo is not 8 bytes",
			input: `{"payment_v2":{"payer":"a3gV","payments":[{"payee":"2g","amount":1,"memo":"YmJi","max":false}],"fee":1,"nonce":1,"signature":"YmJi"}}`,
			err:   codec.ErrInvalidLength,
		},
		{
			desc:  "empty envelope",
			input: `{}`,
			err:   ErrEmptyTxn,
		},
		{
			desc:  "multiple transactions",
			input: `{"payment":{"payer":"a3gV"},"rewards":{"start_epoch":1}}`,
			err:   ErrMultipleTxn,
		},
	}
	for _, c := range cases {
		_, err := UnmarshalTxnJSON([]byte(c.input))
		assert.ErrorIs(t, err, c.err, c.desc)
	}

	_, err := UnmarshalTxnJSON([]byte(`{"payment":{"payer":"a3gV","amount_hnt":1}}`))
	assert.ErrorContains(t, err, "unknown field")
}

func TestPaymentMissingPayerIsEmpty(t *testing.T) {
	result, err := UnmarshalTxnJSON([]byte(`{"payment":{"payer":null,"payee":"2g","amount":1,"fee":1,"nonce":1,"signature":""}}`))
	assert.NoError(t, err)
	assert.Equal(t, codec.Base58{}, result.Payment.Payer)
}

func TestTxnJSONInvalidTag(t *testing.T) {
	receipts := samplePocReceipts()
	receipts.Path[0].Receipt.Origin = 3
	_, err := MarshalTxnJSON(&Txn{PocReceipts: receipts}, false)
	assert.ErrorIs(t, err, codec.ErrUnknownTag)

	_, err = MarshalTxnJSON(&Txn{}, false)
	assert.ErrorIs(t, err, ErrEmptyTxn)
}

func FuzzPaymentCodec(f *testing.F) {
	f.Add(mustDecodeHex("0a0362626212016118e80720b8910228073203626262"))
	f.Fuzz(func(t *testing.T, randomBytes []byte) {
		payment := &PaymentV1{}
		err := payment.DecodeStrict(randomBytes)
		if err == nil {
			encoded, err := payment.Encode()
			assert.NoError(t, err)
			if !bytes.Equal(encoded, randomBytes) {
				t.Logf("Failed with %s. encoded to %s", codec.Hex(randomBytes), codec.Hex(encoded))
				t.Fail()
			}
		}
	})
}
