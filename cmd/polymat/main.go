// Command polymat populates two matrices, adds them and prints the sum.
//
// Usage:
//
//	polymat --rows 3 --cols 2 --kind fixed --values "1.5 2 0 1 4.5 3  0.5 1 2 3 1 1"
//
// Without --values every element is prompted for on stdin.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "polymat"
	app.Usage = "add a dynamic matrix and a dynamic or fixed matrix"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		RowsFlag,
		ColsFlag,
		KindFlag,
		StrictFlag,
		PrecisionFlag,
		ValuesFlag,
		VerboseFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool(VerboseFlag.Name) {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Action = addAction

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
