package main

import (
	"log/slog"
	"os"

	"github.com/bluesky-social/botmod"
	"github.com/bluesky-social/botmod/blockstore"
	"github.com/bluesky-social/botmod/rules"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "swatter",
		Usage:   "bot detection tool (swats the bots)",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.Float64Flag{
			Name:    "threshold",
			Usage:   "aggregate score at or above which an account is classified as a bot",
			Value:   0.7,
			EnvVars: []string{"SWATTER_THRESHOLD"},
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to YAML engine configuration (threshold, rule weights, rule cutoffs)",
			EnvVars: []string{"SWATTER_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis connection URL for a persistent live blocklist (eg: redis://localhost:6379/0); in-memory when unset",
			EnvVars: []string{"SWATTER_REDIS_URL"},
		},
	}

	app.Commands = []*cli.Command{
		scanCmd,
		exportBlocklistCmd,
		importBlocklistCmd,
	}

	return app.Run(args)
}

func configureEngine(cctx *cli.Context, logger *slog.Logger) (*botmod.Engine, error) {
	cfg := botmod.DefaultConfig()
	if p := cctx.String("config"); p != "" {
		var err error
		cfg, err = botmod.LoadConfigFile(p)
		if err != nil {
			return nil, err
		}
	}
	if cctx.IsSet("threshold") {
		cfg.Threshold = cctx.Float64("threshold")
	}

	var store blockstore.BlockStore = blockstore.NewMemBlockStore()
	if u := cctx.String("redis-url"); u != "" {
		var err error
		store, err = blockstore.NewRedisBlockStore(u)
		if err != nil {
			return nil, err
		}
	}

	return botmod.NewEngine(logger, cfg, rules.DefaultRules(), store)
}

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}
