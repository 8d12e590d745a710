package main

import (
	"bufio"
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/Pro7ech/minicommons/strutil"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	log "github.com/sirupsen/logrus"
)

// padCmd left-pads each argument to the requested size, one per line.
// The arguments "-" and "null" stand for an absent value and are
// printed as padding only.
func padCmd(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "pad",
		Usage:     "Left-pad integers or strings to a minimum width",
		ArgsUsage: "VALUE...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "minimum width of each output line",
				Sources: cli.EnvVars("MINICOMMONS_SIZE"),
			},
			&cli.StringFlag{
				Name:    "char",
				Aliases: []string{"c"},
				Usage:   "pad character",
				Value:   "0",
				Sources: cli.EnvVars("MINICOMMONS_PAD_CHAR"),
			},
			&cli.BoolFlag{
				Name:  "string",
				Usage: "pad the arguments as strings instead of integers",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {

			padChar, err := parsePadChar(cmd.String("char"))
			if err != nil {
				return err
			}

			size := cmd.Int("size")
			asString := cmd.Bool("string")

			logger.WithFields(log.Fields{
				"size":   size,
				"char":   string(padChar),
				"string": asString,
			}).Debug("padding")

			w := bufio.NewWriter(cmd.Root().Writer)

			for _, arg := range cmd.Args().Slice() {

				switch {
				case arg == "-" || arg == "null":
					err = strutil.LeftPadPtrInto[uint64](w, nil, size, padChar)
				case asString:
					err = strutil.LeftPadStringInto(w, arg, size, padChar)
				default:
					err = padInteger(w, arg, size, padChar)
				}

				if err != nil {
					return err
				}

				if err = w.WriteByte('\n'); err != nil {
					return errors.Wrap(err, "write output")
				}
			}

			return errors.Wrap(w.Flush(), "flush output")
		},
	}
}

func parsePadChar(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, errors.Errorf("invalid pad character %q: expected a single character", s)
	}
	return r, nil
}

func padInteger(w strutil.Buffer, arg string, size int, padChar rune) error {

	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return strutil.LeftPadInto(w, i, size, padChar)
	}

	u, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid integer %q", arg)
	}

	return strutil.LeftPadInto(w, u, size, padChar)
}
