package client

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helium/proto-go/pkg/codec"
)

const (
	paymentWire       = "42160a0362626212016118e80720b8910228073203626262"
	paymentWireBase64 = "QhYKA2JiYhIBYRjoByC4kQIoBzIDYmJi"
	paymentJSON       = `{"payment":{"payer":"a3gV","payee":"2g","amount":1000,"fee":35000,"nonce":7,"signature":"YmJi"}}`
	rewardsWire       = "7213080a10141a0d0a0362626212016118f4032004"
	rewardsJSON       = `{"rewards":{"start_epoch":10,"end_epoch":20,"rewards":[{"account":"a3gV","gateway":"2g","amount":500,"type":"poc_witnesses"}]}}`
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := NewApp(out)
	err := app.Run(append([]string{"htxn", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", paymentWire)
	assert.NoError(t, err)
	assert.Equal(t, paymentJSON+"\n", out)

	out, err = run(t, "decode", "--encoding", "base64", paymentWireBase64)
	assert.NoError(t, err)
	assert.Equal(t, paymentJSON+"\n", out)
}

func TestDecodeCommandKeepsInputOrder(t *testing.T) {
	args := []string{"decode"}
	expected := []string{}
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			args = append(args, paymentWire)
			expected = append(expected, paymentJSON)
		} else {
			args = append(args, rewardsWire)
			expected = append(expected, rewardsJSON)
		}
	}
	out, err := run(t, args...)
	assert.NoError(t, err)
	assert.Equal(t, strings.Join(expected, "\n")+"\n", out)
}

func TestDecodeCommandInvalid(t *testing.T) {
	cases := []struct {
		args []string
		err  string
	}{
		{args: []string{"decode"}, err: "missing argument"},
		{args: []string{"decode", paymentWire, "zz"}, err: "payload 1"},
		{args: []string{"decode", paymentWire + "0800"}, err: "payload 0"},
		{args: []string{"decode", "--encoding", "base58", paymentWire}, err: "unsupported wire encoding"},
	}
	for _, c := range cases {
		out, err := run(t, c.args...)
		assert.ErrorContains(t, err, c.err)
		assert.Empty(t, out)
	}
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "encode", paymentJSON)
	assert.NoError(t, err)
	assert.Equal(t, paymentWire+"\n", out)

	out, err = run(t, "encode", "-e", "base64", paymentJSON)
	assert.NoError(t, err)
	assert.Equal(t, paymentWireBase64+"\n", out)

	_, err = run(t, "encode", `{"payment":{"payer":"0OIl"}}`)
	assert.ErrorIs(t, err, codec.ErrInvalidEncoding)

	_, err = run(t, "encode", `{"unknown":{}}`)
	assert.ErrorContains(t, err, "unknown field")

	_, err = run(t, "encode")
	assert.ErrorIs(t, err, errMissingArgument)
}

func TestConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(configPath, []byte(`{"output":{"wireEncoding":"base64","indent":true}}`), 0600)
	assert.NoError(t, err)

	out, err := run(t, "--config", configPath, "encode", paymentJSON)
	assert.NoError(t, err)
	assert.Equal(t, paymentWireBase64+"\n", out)

	out, err = run(t, "--config", configPath, "decode", paymentWireBase64)
	assert.NoError(t, err)
	assert.Contains(t, out, "\n  \"payment\": {\n")

	out, err = run(t, "--config", configPath, "encode", "--encoding", "hex", paymentJSON)
	assert.NoError(t, err)
	assert.Equal(t, paymentWire+"\n", out)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "encode", paymentJSON)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "--log-level", "trace", "encode", paymentJSON)
	assert.ErrorContains(t, err, "logger level must be one of")
}

func runField(t *testing.T, direction, codecName string, values ...string) (string, error) {
	t.Helper()
	return run(t, append([]string{"field", direction, "--codec", codecName, "--"}, values...)...)
}

func TestFieldCommand(t *testing.T) {
	cases := []struct {
		direction string
		codec     string
		value     string
		result    string
	}{
		{direction: "encode", codec: "origin", value: "1", result: "radio"},
		{direction: "decode", codec: "origin", value: "p2p", result: "0"},
		{direction: "encode", codec: "reward_type", value: "3", result: "poc_challengers"},
		{direction: "decode", codec: "reward_type", value: "consensus", result: "5"},
		{direction: "encode", codec: "base58", value: "626262", result: "a3gV"},
		{direction: "decode", codec: "base58", value: "2g", result: "61"},
		{direction: "encode", codec: "base64", value: "626262", result: "YmJi"},
		{direction: "decode", codec: "base64", value: "YmJi", result: "626262"},
		{direction: "encode", codec: "base64_url", value: "fbff", result: "-_8="},
		{direction: "decode", codec: "base64_url", value: "-_8=", result: "fbff"},
		{direction: "decode", codec: "base64_url", value: "-w==", result: "fb"},
		{direction: "encode", codec: "u64_base64", value: "1", result: "AAAAAAAAAAE="},
		{direction: "decode", codec: "u64_base64", value: "//////////8=", result: "18446744073709551615"},
	}
	for _, c := range cases {
		out, err := runField(t, c.direction, c.codec, c.value)
		assert.NoError(t, err, "%s %s %q", c.direction, c.codec, c.value)
		assert.Equal(t, c.result+"\n", out)
	}
}

func TestFieldCommandWithoutTerminator(t *testing.T) {
	out, err := run(t, "field", "decode", "--codec", "base64", "YmJi")
	assert.NoError(t, err)
	assert.Equal(t, "626262\n", out)
}

func TestFieldCommandInvalid(t *testing.T) {
	cases := []struct {
		direction string
		codec     string
		values    []string
		err       error
		msg       string
	}{
		{direction: "encode", codec: "origin", values: []string{"2"}, err: codec.ErrUnknownTag},
		{direction: "encode", codec: "origin", values: []string{"-1"}, err: codec.ErrUnknownTag},
		{direction: "decode", codec: "origin", values: []string{"Radio"}, err: codec.ErrUnknownToken},
		{direction: "decode", codec: "reward_type", values: []string{"rewards"}, err: codec.ErrUnknownToken},
		{direction: "decode", codec: "base64", values: []string{"YmJ"}, err: codec.ErrInvalidEncoding},
		{direction: "decode", codec: "base64_url", values: []string{"-_8"}, err: codec.ErrInvalidEncoding},
		{direction: "decode", codec: "u64_base64", values: []string{"YmJi"}, err: codec.ErrInvalidLength},
		{direction: "encode", codec: "origin", values: []string{"radio"}, msg: "invalid tag"},
		{direction: "encode", codec: "base58", values: []string{"xyz"}, msg: "invalid hex"},
		{direction: "encode", codec: "u64_base64", values: []string{"-1"}, msg: "invalid u64"},
		{direction: "encode", codec: "hex", values: []string{"00"}, msg: "unknown codec hex"},
		{direction: "encode", codec: "origin", values: []string{}, err: errMissingArgument},
		{direction: "encode", codec: "origin", values: []string{"0", "1"}, err: errMissingArgument},
	}
	for _, c := range cases {
		_, err := runField(t, c.direction, c.codec, c.values...)
		if c.err != nil {
			assert.ErrorIs(t, err, c.err)
		}
		if c.msg != "" {
			assert.ErrorContains(t, err, c.msg)
		}
	}
}

func TestFieldCodecNames(t *testing.T) {
	assert.Equal(t, []string{"base58", "base64", "base64_url", "origin", "reward_type", "u64_base64"}, fieldCodecNames())
}
