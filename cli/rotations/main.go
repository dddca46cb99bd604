// Package main is the rotations command itself.
package main

import (
	"log"
	"os"

	rotcli "go.viam.com/rotkernel/cli"
)

func main() {
	app := rotcli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
