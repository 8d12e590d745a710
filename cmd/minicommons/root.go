package main

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	log "github.com/sirupsen/logrus"
)

// run creates and executes the minicommons command with the given
// arguments. Results are printed to stdout, logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {

	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.InfoLevel)

	app := &cli.Command{
		Name:      "minicommons",
		Usage:     "Left-pad numbers and compute field hash codes",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log at debug level",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				logger.SetLevel(log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			digitsCmd(logger),
			padCmd(logger),
			hashCmd(logger),
		},
	}

	return app.Run(ctx, args)
}
