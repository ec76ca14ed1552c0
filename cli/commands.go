package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/qazcut/barber"
)

var portFlag = &cli.IntFlag{
	Name:  "port",
	Value: 8080,
	Usage: "port to listen on",
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start the site in dev mode (no caching, live reload)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		return barber.Start(barber.RuntimeConfig{
			Env:         "dev",
			EnableCache: false,
			Port:        c.Int("port"),
		})
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start the site in production mode (page cache on by default)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		return barber.Start(barber.RuntimeConfig{
			Env:         "prod",
			EnableCache: true,
			Port:        c.Int("port"),
		})
	},
}
