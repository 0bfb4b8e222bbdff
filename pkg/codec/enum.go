package codec

import (
	"encoding/json"
	"fmt"
)

// enumTable maps the tags of a closed enum to their tokens. Index of tokens is the tag.
type enumTable struct {
	name   string
	tokens []string
	tags   map[string]int32
}

func newEnumTable(name string, tokens ...string) *enumTable {
	tags := make(map[string]int32, len(tokens))
	for i, token := range tokens {
		if _, exist := tags[token]; exist {
			panic(fmt.Sprintf("duplicate token %q for %s", token, name))
		}
		tags[token] = int32(i)
	}
	return &enumTable{
		name:   name,
		tokens: tokens,
		tags:   tags,
	}
}

func (t *enumTable) encode(tag int32) (string, error) {
	if tag < 0 || int(tag) >= len(t.tokens) {
		return "", fmt.Errorf("%w %d for %s field", ErrUnknownTag, tag, t.name)
	}
	return t.tokens[tag], nil
}

func (t *enumTable) decode(token string) (int32, error) {
	tag, exist := t.tags[token]
	if !exist {
		return 0, fmt.Errorf("%w %q for %s field", ErrUnknownToken, token, t.name)
	}
	return tag, nil
}

func (t *enumTable) marshalJSON(tag int32) ([]byte, error) {
	token, err := t.encode(tag)
	if err != nil {
		return nil, err
	}
	return json.Marshal(token)
}

func (t *enumTable) unmarshalJSON(b []byte) (int32, error) {
	token, present, err := readToken(b)
	if err != nil {
		return 0, fmt.Errorf("%w for %s field: %w", ErrUnknownToken, t.name, err)
	}
	if !present {
		return 0, fmt.Errorf("%w null for %s field", ErrUnknownToken, t.name)
	}
	return t.decode(token)
}

var originTable = newEnumTable("origin",
	"p2p",
	"radio",
)

// Origin is the transport a proof of coverage receipt was received over.
type Origin int32

const (
	OriginP2P Origin = iota
	OriginRadio
)

// EncodeOrigin returns the token of the origin tag.
func EncodeOrigin(tag int32) (string, error) {
	return originTable.encode(tag)
}

// DecodeOrigin returns the origin tag of the token.
func DecodeOrigin(token string) (int32, error) {
	return originTable.decode(token)
}

func (o Origin) MarshalJSON() ([]byte, error) {
	return originTable.marshalJSON(int32(o))
}

func (o *Origin) UnmarshalJSON(b []byte) error {
	tag, err := originTable.unmarshalJSON(b)
	if err != nil {
		return err
	}
	*o = Origin(tag)
	return nil
}

func (o Origin) String() string {
	token, err := EncodeOrigin(int32(o))
	if err != nil {
		return fmt.Sprintf("Origin(%d)", int32(o))
	}
	return token
}

var rewardTypeTable = newEnumTable("reward_type",
	"securities",
	"data_credits",
	"poc_challengees",
	"poc_challengers",
	"poc_witnesses",
	"consensus",
)

// RewardType is the category of a mining reward.
type RewardType int32

const (
	RewardTypeSecurities RewardType = iota
	RewardTypeDataCredits
	RewardTypePocChallengees
	RewardTypePocChallengers
	RewardTypePocWitnesses
	RewardTypeConsensus
)

// EncodeRewardType returns the token of the reward type tag.
func EncodeRewardType(tag int32) (string, error) {
	return rewardTypeTable.encode(tag)
}

// DecodeRewardType returns the reward type tag of the token.
func DecodeRewardType(token string) (int32, error) {
	return rewardTypeTable.decode(token)
}

func (r RewardType) MarshalJSON() ([]byte, error) {
	return rewardTypeTable.marshalJSON(int32(r))
}

func (r *RewardType) UnmarshalJSON(b []byte) error {
	tag, err := rewardTypeTable.unmarshalJSON(b)
	if err != nil {
		return err
	}
	*r = RewardType(tag)
	return nil
}

func (r RewardType) String() string {
	token, err := EncodeRewardType(int32(r))
	if err != nil {
		return fmt.Sprintf("RewardType(%d)", int32(r))
	}
	return token
}
