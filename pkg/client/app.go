// Package client provides the commands of the htxn CLI.
package client

import (
	"errors"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/helium/proto-go/pkg/config"
	"github.com/helium/proto-go/pkg/log"
)

// runtime holds the resolved config and logger shared by the commands.
type runtime struct {
	config *config.Config
	logger log.Logger
}

func (r *runtime) setup(c *cli.Context) error {
	cfg := config.Default()
	if configPath := c.String("config"); configPath != "" {
		fileConfig, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg.Merge(fileConfig)
	}
	if c.IsSet("log-level") {
		cfg.Merge(&config.Config{Logger: &config.LoggerConfig{Level: c.String("log-level")}})
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := log.NewLogger(cfg.Logger.Level)
	if err != nil {
		return err
	}
	r.config = cfg
	r.logger = logger.With("app", "htxn")
	r.logger.Debugf("Using wire encoding %s", cfg.Output.WireEncoding)
	return nil
}

func (r *runtime) wireEncoding(c *cli.Context) string {
	if c.IsSet("encoding") {
		return c.String("encoding")
	}
	return r.config.Output.WireEncoding
}

// NewApp returns the htxn application writing its results to out.
func NewApp(out io.Writer) *cli.App {
	r := &runtime{
		config: config.Default(),
		logger: log.NewSilentLogger(),
	}
	return &cli.App{
		Name:   "htxn",
		Usage:  "Convert helium transactions between wire and JSON forms",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to JSON config",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: r.setup,
		After: func(c *cli.Context) error {
			// stderr cannot be synced on some platforms
			_ = r.logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			getDecodeCommand(r),
			getEncodeCommand(r),
			getFieldCommand(r),
		},
	}
}

var errMissingArgument = errors.New("missing argument")
