package client

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/helium/proto-go/pkg/codec"
	"github.com/helium/proto-go/pkg/config"
	"github.com/helium/proto-go/pkg/txn"
)

func encodingFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Usage:   "Encoding of the wire payload (hex, base64)",
	}
}

func parseWire(payload, encoding string) ([]byte, error) {
	switch encoding {
	case config.WireEncodingHex:
		return hex.DecodeString(payload)
	case config.WireEncodingBase64:
		return codec.DecodeBase64(payload)
	default:
		return nil, fmt.Errorf("unsupported wire encoding %s", encoding)
	}
}

func formatWire(data []byte, encoding string) (string, error) {
	switch encoding {
	case config.WireEncodingHex:
		return codec.Hex(data).String(), nil
	case config.WireEncodingBase64:
		return codec.EncodeBase64(data), nil
	default:
		return "", fmt.Errorf("unsupported wire encoding %s", encoding)
	}
}

func decodePayload(payload, encoding string, indent bool) ([]byte, error) {
	data, err := parseWire(payload, encoding)
	if err != nil {
		return nil, err
	}
	t := &txn.Txn{}
	if err := t.Decode(data); err != nil {
		return nil, err
	}
	return txn.MarshalTxnJSON(t, indent)
}

// getDecodeCommand returns the command converting wire payloads into JSON.
func getDecodeCommand(r *runtime) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode wire transactions into JSON",
		ArgsUsage: "<payload>...",
		Flags:     []cli.Flag{encodingFlag()},
		Action: func(c *cli.Context) error {
			payloads := c.Args().Slice()
			if len(payloads) == 0 {
				return fmt.Errorf("%w: payload", errMissingArgument)
			}
			encoding := r.wireEncoding(c)
			indent := *r.config.Output.Indent

			results := make([][]byte, len(payloads))
			eg := new(errgroup.Group)
			for i, payload := range payloads {
				i, payload := i, payload
				eg.Go(func() error {
					result, err := decodePayload(payload, encoding, indent)
					if err != nil {
						return fmt.Errorf("payload %d: %w", i, err)
					}
					results[i] = result
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				r.logger.Errorf("Failed to decode payloads with %v", err)
				return err
			}
			r.logger.Debugf("Decoded %d payloads", len(payloads))
			for _, result := range results {
				if _, err := fmt.Fprintln(c.App.Writer, string(result)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// getEncodeCommand returns the command converting a JSON transaction into the wire form.
func getEncodeCommand(r *runtime) *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode JSON transaction into wire form",
		ArgsUsage: "<json>",
		Flags:     []cli.Flag{encodingFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected exactly one JSON transaction", errMissingArgument)
			}
			t, err := txn.UnmarshalTxnJSON([]byte(c.Args().First()))
			if err != nil {
				return err
			}
			data, err := t.Encode()
			if err != nil {
				return err
			}
			result, err := formatWire(data, r.wireEncoding(c))
			if err != nil {
				return err
			}
			r.logger.Debugf("Encoded %s transaction into %d bytes", t.Kind(), len(data))
			_, err = fmt.Fprintln(c.App.Writer, result)
			return err
		},
	}
}
