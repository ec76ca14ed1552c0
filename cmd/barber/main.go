package main

import (
	"log"
	"os"

	clilib "github.com/urfave/cli/v2"

	barbercli "github.com/qazcut/barber/cli"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "barber",
		Usage: "The QazCut salon site, served straight from Go",
		Commands: []*clilib.Command{
			barbercli.DevCommand,
			barbercli.ProdCommand,
			barbercli.CleanCommand,
			barbercli.CheckCommand,
			barbercli.InfoCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
