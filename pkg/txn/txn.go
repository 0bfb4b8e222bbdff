// Package txn defines the Helium blockchain transactions which carry text codec fields.
// Field numbers follow helium-proto. Wire codec is generated by pkg/codec/gen.
package txn

import (
	"github.com/helium/proto-go/pkg/codec"
)

//go:generate go run github.com/helium/proto-go/pkg/codec/gen

// PaymentV1 is a single payee payment.
type PaymentV1 struct {
	Payer     codec.Base58 `json:"payer" fieldNumber:"1"`
	Payee     codec.Base58 `json:"payee" fieldNumber:"2"`
	Amount    uint64       `json:"amount" fieldNumber:"3"`
	Fee       uint64       `json:"fee" fieldNumber:"4"`
	Nonce     uint64       `json:"nonce" fieldNumber:"5"`
	Signature codec.Base64 `json:"signature" fieldNumber:"6"`
}

// Payment is one entry of PaymentV2.
type Payment struct {
	Payee  codec.Base58    `json:"payee" fieldNumber:"1"`
	Amount uint64          `json:"amount" fieldNumber:"2"`
	Memo   codec.U64Base64 `json:"memo" fieldNumber:"3"`
	Max    bool            `json:"max" fieldNumber:"4"`
}

// PaymentV2 is a multi payee payment.
type PaymentV2 struct {
	Payer     codec.Base58 `json:"payer" fieldNumber:"1"`
	Payments  []*Payment   `json:"payments" fieldNumber:"2"`
	Fee       uint64       `json:"fee" fieldNumber:"3"`
	Nonce     uint64       `json:"nonce" fieldNumber:"4"`
	Signature codec.Base64 `json:"signature" fieldNumber:"5"`
}

type RewardV1 struct {
	Account codec.Base58     `json:"account" fieldNumber:"1"`
	Gateway codec.Base58     `json:"gateway" fieldNumber:"2"`
	Amount  uint64           `json:"amount" fieldNumber:"3"`
	Type    codec.RewardType `json:"type" fieldNumber:"4"`
}

// RewardsV1 pays the mining rewards of an epoch range.
type RewardsV1 struct {
	StartEpoch uint64      `json:"start_epoch" fieldNumber:"1"`
	EndEpoch   uint64      `json:"end_epoch" fieldNumber:"2"`
	Rewards    []*RewardV1 `json:"rewards" fieldNumber:"3"`
}

type PocReceiptV1 struct {
	Gateway   codec.Base58 `json:"gateway" fieldNumber:"1"`
	Timestamp uint64       `json:"timestamp" fieldNumber:"2"`
	Signal    int32        `json:"signal" fieldNumber:"3"`
	Data      codec.Base64 `json:"data" fieldNumber:"4"`
	Origin    codec.Origin `json:"origin" fieldNumber:"5"`
	Signature codec.Base64 `json:"signature" fieldNumber:"6"`
	Datarate  string       `json:"datarate" fieldNumber:"10"`
}

type PocWitnessV1 struct {
	Gateway    codec.Base58 `json:"gateway" fieldNumber:"1"`
	Timestamp  uint64       `json:"timestamp" fieldNumber:"2"`
	Signal     int32        `json:"signal" fieldNumber:"3"`
	PacketHash codec.Base64 `json:"packet_hash" fieldNumber:"4"`
	Signature  codec.Base64 `json:"signature" fieldNumber:"5"`
	Datarate   string       `json:"datarate" fieldNumber:"9"`
}

// PocPathElementV1 is one hop of a proof of coverage challenge.
// Receipt is nil when the challengee did not report.
type PocPathElementV1 struct {
	Challengee codec.Base58    `json:"challengee" fieldNumber:"1"`
	Receipt    *PocReceiptV1   `json:"receipt" fieldNumber:"2"`
	Witnesses  []*PocWitnessV1 `json:"witnesses" fieldNumber:"3"`
}

type PocReceiptsV1 struct {
	Challenger       codec.Base58        `json:"challenger" fieldNumber:"1"`
	Secret           codec.Base64        `json:"secret" fieldNumber:"2"`
	OnionKeyHash     codec.Base64        `json:"onion_key_hash" fieldNumber:"3"`
	Path             []*PocPathElementV1 `json:"path" fieldNumber:"4"`
	Fee              uint64              `json:"fee" fieldNumber:"5"`
	Signature        codec.Base64        `json:"signature" fieldNumber:"6"`
	RequestBlockHash codec.Base64URL     `json:"request_block_hash" fieldNumber:"7"`
}
