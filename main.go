package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/urfave/cli"
	"github.com/zeozeozeo/nikos/chat"
	"github.com/zeozeozeo/nikos/config"
	"github.com/zeozeozeo/nikos/responder"
)

func main() {
	_ = godotenv.Load()
	app := makeApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("nikos failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.GlobalString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func runChat(c *cli.Context) error {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return err
	}
	r := responder.New(cfg, responder.NewRNG(c.GlobalInt64("seed")))

	console, restore, err := chat.OpenConsole(os.Stdin, os.Stdout, chat.Prompt)
	if err != nil {
		return err
	}
	defer restore()

	width := c.GlobalInt("width")
	if width == 0 {
		width = chat.Width(os.Stdout)
	}

	s := chat.NewSession(c.GlobalString("name"), r, console)
	s.SetWidth(width)
	return s.Run()
}

func checkConfig(c *cli.Context) error {
	path := c.GlobalString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s: %d keywords, %d swaps, %d generic responses\n",
		path, len(cfg.Keywords), len(cfg.Swaps), len(cfg.GenericResponses))
	return err
}

func listKeywords(c *cli.Context) error {
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return err
	}

	words := cfg.Words()
	query := c.Args().First()

	var matches fuzzy.Ranks
	if query != "" {
		matches = fuzzy.RankFindNormalizedFold(query, words)
		sort.Sort(matches)
	} else {
		// fake it to keep the document order
		for i, w := range words {
			matches = append(matches, fuzzy.Rank{Target: w, OriginalIndex: i})
		}
	}

	for _, match := range matches {
		kw := cfg.Keywords[match.OriginalIndex]
		if _, err := fmt.Fprintf(c.App.Writer, "%-16s %d responses\n", kw.Word, len(kw.Responses)); err != nil {
			return err
		}
	}
	return nil
}
