package main

import (
	"os"

	"github.com/urfave/cli/v2"
	igloo "github.com/virjilakrum/igloo"
	"github.com/virjilakrum/igloo/config"
	"github.com/virjilakrum/igloo/log"
)

const appName = "igloo-node"

var (
	configFileFlag = cli.StringFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration `FILE`",
		Required: false,
	}
	migrationsFlag = cli.BoolFlag{
		Name:     config.FlagMigrations,
		Aliases:  []string{"mig"},
		Usage:    "Disable the automatic database migrations on startup",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = igloo.Version

	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action: func(ctx *cli.Context) error {
				igloo.PrintVersion(os.Stdout)
				return nil
			},
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the igloo derivation node",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &migrationsFlag},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
