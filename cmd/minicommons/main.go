// Command minicommons exposes the padding and hash code helpers on the
// command line.
//
//	minicommons digits 7 42 1000
//	minicommons pad --size 5 --char 0 42
//	minicommons hash int32:45 string:foo []float64:1.5,2
package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		log.WithError(err).Error("minicommons failed")
		os.Exit(1)
	}
}
