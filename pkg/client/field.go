package client

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/helium/proto-go/pkg/codec"
)

// fieldCodec converts between the native command line form of a value and its token.
// Enums are decimal tags, byte buffers are hex and u64 is decimal.
type fieldCodec struct {
	encode func(value string) (string, error)
	decode func(token string) (string, error)
}

func enumFieldCodec(encode func(int32) (string, error), decode func(string) (int32, error)) fieldCodec {
	return fieldCodec{
		encode: func(value string) (string, error) {
			tag, err := strconv.ParseInt(value, 10, 32)
			if err != nil {
				return "", fmt.Errorf("invalid tag %s: %w", value, err)
			}
			return encode(int32(tag))
		},
		decode: func(token string) (string, error) {
			tag, err := decode(token)
			if err != nil {
				return "", err
			}
			return strconv.FormatInt(int64(tag), 10), nil
		},
	}
}

func bytesFieldCodec(encode func([]byte) string, decode func(string) ([]byte, error)) fieldCodec {
	return fieldCodec{
		encode: func(value string) (string, error) {
			data, err := hex.DecodeString(value)
			if err != nil {
				return "", fmt.Errorf("invalid hex %s: %w", value, err)
			}
			return encode(data), nil
		},
		decode: func(token string) (string, error) {
			data, err := decode(token)
			if err != nil {
				return "", err
			}
			return hex.EncodeToString(data), nil
		},
	}
}

var fieldCodecs = map[string]fieldCodec{
	"origin":      enumFieldCodec(codec.EncodeOrigin, codec.DecodeOrigin),
	"reward_type": enumFieldCodec(codec.EncodeRewardType, codec.DecodeRewardType),
	"base58": bytesFieldCodec(codec.EncodeBase58, func(token string) ([]byte, error) {
		return codec.DecodeBase58(&token)
	}),
	"base64":     bytesFieldCodec(codec.EncodeBase64, codec.DecodeBase64),
	"base64_url": bytesFieldCodec(codec.EncodeBase64URL, codec.DecodeBase64URL),
	"u64_base64": {
		encode: func(value string) (string, error) {
			word, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return "", fmt.Errorf("invalid u64 %s: %w", value, err)
			}
			return codec.EncodeU64Base64(word), nil
		},
		decode: func(token string) (string, error) {
			word, err := codec.DecodeU64Base64(token)
			if err != nil {
				return "", err
			}
			return strconv.FormatUint(word, 10), nil
		},
	},
}

func fieldCodecNames() []string {
	names := make([]string, 0, len(fieldCodecs))
	for name := range fieldCodecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func getFieldCodec(name string) (fieldCodec, error) {
	fc, exist := fieldCodecs[name]
	if !exist {
		return fieldCodec{}, fmt.Errorf("unknown codec %s, must be one of %v", name, fieldCodecNames())
	}
	return fc, nil
}

func fieldAction(r *runtime, direction string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one value", errMissingArgument)
		}
		name := c.String("codec")
		fc, err := getFieldCodec(name)
		if err != nil {
			return err
		}
		convert := fc.encode
		if direction == "decode" {
			convert = fc.decode
		}
		result, err := convert(c.Args().First())
		if err != nil {
			return err
		}
		r.logger.Debugf("Applied %s %s", name, direction)
		_, err = fmt.Fprintln(c.App.Writer, result)
		return err
	}
}

// getFieldCommand returns the command running a single text codec.
func getFieldCommand(r *runtime) *cli.Command {
	codecFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:     "codec",
			Usage:    fmt.Sprintf("Name of the codec %v", fieldCodecNames()),
			Required: true,
		}
	}
	return &cli.Command{
		Name:  "field",
		Usage: "Run a single field codec",
		Subcommands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Convert native value into the text token",
				ArgsUsage: "-- <value>",
				Flags:     []cli.Flag{codecFlag()},
				Action:    fieldAction(r, "encode"),
			},
			{
				Name:      "decode",
				Usage:     "Convert text token into the native value",
				ArgsUsage: "-- <token>",
				Flags:     []cli.Flag{codecFlag()},
				Action:    fieldAction(r, "decode"),
			},
		},
	}
}
