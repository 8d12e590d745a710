package main

import (
	"context"
	"fmt"
	"math"

	"github.com/Pro7ech/minicommons/hashcode"
	"github.com/Pro7ech/minicommons/utils/structs"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	log "github.com/sirupsen/logrus"
)

// hashCmd folds typed fields into a hash code and prints it. Fields from
// the --file YAML document come before the ones given as arguments.
func hashCmd(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Compute the hash code of a sequence of typed fields",
		ArgsUsage: "TYPE:VALUE...",
		Description: `Supported types are bool, byte, rune, int16, int32, int, int64,
float32, float64, string and null, and arrays of them written []TYPE with
comma separated elements (for instance []int32:1,2,3).`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "initial value of the hash code",
				Value:   int(structs.Seed),
				Sources: cli.EnvVars("MINICOMMONS_SEED"),
			},
			&cli.IntFlag{
				Name:    "multiplier",
				Usage:   "multiplier applied before each field",
				Value:   int(structs.Multiplier),
				Sources: cli.EnvVars("MINICOMMONS_MULTIPLIER"),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML file with a fields list of {type, value} entries",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {

			seed, err := int32Flag(cmd, "seed")
			if err != nil {
				return err
			}

			multiplier, err := int32Flag(cmd, "multiplier")
			if err != nil {
				return err
			}

			var fields []field
			if path := cmd.String("file"); path != "" {
				if fields, err = readFieldFile(path); err != nil {
					return err
				}
			}

			for _, arg := range cmd.Args().Slice() {
				f, err := parseField(arg)
				if err != nil {
					return err
				}
				fields = append(fields, f)
			}

			b := hashcode.NewWithConstants(seed, multiplier)
			for i, f := range fields {
				if err := f.appendTo(b); err != nil {
					return errors.Wrapf(err, "field %d", i)
				}
				logger.WithFields(log.Fields{"type": f.Type, "value": f.Value, "total": b.HashCode()}).Debug("appended field")
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, b.HashCode())
			return errors.Wrap(err, "write output")
		},
	}
}

func int32Flag(cmd *cli.Command, name string) (int32, error) {
	v := cmd.Int(name)
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errors.Errorf("--%s %d does not fit in 32 bits", name, v)
	}
	return int32(v), nil
}
