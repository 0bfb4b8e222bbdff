package codec

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestCodecsConcurrentUse(t *testing.T) {
	group := new(errgroup.Group)
	for i := 0; i < 64; i++ {
		i := i
		group.Go(func() error {
			input := bytes.Repeat([]byte{byte(i)}, i+1)
			token := EncodeBase58(input)
			decoded, err := DecodeBase58(&token)
			if err != nil {
				return err
			}
			if !bytes.Equal(input, decoded) {
				return fmt.Errorf("base58 mismatch on %d", i)
			}
			decoded, err = DecodeBase64URL(EncodeBase64URL(input))
			if err != nil {
				return err
			}
			if !bytes.Equal(input, decoded) {
				return fmt.Errorf("base64 url mismatch on %d", i)
			}
			word, err := DecodeU64Base64(EncodeU64Base64(uint64(i) << 40))
			if err != nil {
				return err
			}
			if word != uint64(i)<<40 {
				return fmt.Errorf("u64 mismatch on %d", i)
			}
			rewardToken, err := EncodeRewardType(int32(i % 6))
			if err != nil {
				return err
			}
			tag, err := DecodeRewardType(rewardToken)
			if err != nil {
				return err
			}
			if tag != int32(i%6) {
				return fmt.Errorf("reward type mismatch on %d", i)
			}
			return nil
		})
	}
	assert.NoError(t, group.Wait())
}
