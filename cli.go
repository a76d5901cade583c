package main

import "github.com/urfave/cli"

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = "nikos"
	app.Usage = "chat with a keyword-driven responder"
	app.Action = runChat
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "keyword/swap configuration document",
			Value:  "keywords.json",
			EnvVar: "NIKOS_CONFIG",
		},
		cli.StringFlag{
			Name:   "name",
			Usage:  "speaker label for replies",
			Value:  "NikosGPT",
			EnvVar: "NIKOS_NAME",
		},
		cli.Int64Flag{
			Name:   "seed",
			Usage:  "seed for response selection, 0 picks a random seed",
			EnvVar: "NIKOS_SEED",
		},
		cli.IntFlag{
			Name:   "width",
			Usage:  "wrap replies at this many columns, 0 uses the terminal width",
			EnvVar: "NIKOS_WIDTH",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "debug, info, warn or error",
			Value:  "warn",
			EnvVar: "NIKOS_LOG_LEVEL",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:   "check",
			Usage:  "validate the configuration document",
			Action: checkConfig,
		},
		{
			Name:      "keywords",
			Usage:     "list configured keywords, optionally ranked by a fuzzy query",
			ArgsUsage: "[query]",
			Action:    listKeywords,
		},
	}
	return app
}
