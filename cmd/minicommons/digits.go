package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Pro7ech/minicommons/strutil"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	log "github.com/sirupsen/logrus"
)

// digitsCmd prints the number of decimal digits of each argument, one
// per line.
func digitsCmd(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "digits",
		Usage:     "Print the decimal digit length of non-negative integers",
		ArgsUsage: "N...",
		Action: func(ctx context.Context, cmd *cli.Command) error {

			for _, arg := range cmd.Args().Slice() {

				d, err := digitLength(arg)
				if err != nil {
					return err
				}

				logger.WithFields(log.Fields{"value": arg, "digits": d}).Debug("digit length")
				fmt.Fprintln(cmd.Root().Writer, d)
			}

			return nil
		},
	}
}

// digitLength accepts the whole int64 range, so that negative values fail
// with strutil.ErrNegative, and the uint64 values above it.
func digitLength(arg string) (int, error) {

	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return strutil.DigitLength(i)
	}

	u, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", arg)
	}

	return strutil.DigitLength(u)
}
