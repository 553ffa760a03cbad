// drdump dumps and translates skb drop reasons from kernel BTF.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/frobware/go-drdump/cmd/drdump/cli"
)

func main() {
	var c cli.CLI
	parser, err := kong.New(&c, cli.KongOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := c.Run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
