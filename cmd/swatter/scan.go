package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/bluesky-social/botmod"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "github.com/urfave/cli/v2"
)

// wire shape of one profile snapshot in the input file; produced by whatever upstream tool fetched the account data
type profileSnapshot struct {
	DID            string         `json:"did"`
	Handle         string         `json:"handle"`
	CreatedAt      *time.Time     `json:"created_at"`
	FollowersCount int64          `json:"followers_count"`
	FollowsCount   int64          `json:"follows_count"`
	Posts          []postSnapshot `json:"posts"`
}

type postSnapshot struct {
	Text      string     `json:"text"`
	CreatedAt *time.Time `json:"created_at"`
}

var scanCmd = &cli.Command{
	Name:  "scan",
	Usage: "evaluate profile snapshots from a JSON file and update the blocklist",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "profiles",
			Usage:    "path to JSON file of profile snapshots to evaluate",
			Required: true,
			EnvVars:  []string{"SWATTER_PROFILES"},
		},
		&cli.StringFlag{
			Name:    "blocklist",
			Usage:   "path to blocklist snapshot file; imported before the scan if it exists, exported after",
			EnvVars: []string{"SWATTER_BLOCKLIST"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs while scanning; disabled when empty",
			EnvVars: []string{"SWATTER_METRICS_LISTEN"},
		},
	},
	Action: func(cctx *cli.Context) error {
		ctx := context.Background()
		logger := newLogger()

		eng, err := configureEngine(cctx, logger)
		if err != nil {
			return err
		}

		if ml := cctx.String("metrics-listen"); ml != "" {
			go func() {
				http.Handle("/metrics", promhttp.Handler())
				if err := http.ListenAndServe(ml, nil); err != nil {
					logger.Error("failed to start metrics endpoint", "error", err)
				}
			}()
		}

		if p := cctx.String("blocklist"); p != "" {
			if err := eng.ImportBlocklist(ctx, p); err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
				logger.Info("no existing blocklist snapshot, starting empty", "path", p)
			}
		}

		profiles, err := loadProfileSnapshots(cctx.String("profiles"))
		if err != nil {
			return err
		}

		var flagged int
		for _, prof := range profiles {
			res, err := eng.ProcessProfile(ctx, prof)
			if err != nil {
				logger.Warn("skipping profile", "did", prof.DID, "err", err)
				continue
			}
			logger.Info("profile evaluated", "did", res.DID, "handle", prof.Handle, "score", res.Score, "bot", res.Flagged)
			if res.Flagged {
				flagged++
			}
		}
		logger.Info("scan complete", "profiles", len(profiles), "flagged", flagged)

		if p := cctx.String("blocklist"); p != "" {
			return eng.ExportBlocklist(ctx, p)
		}
		return nil
	},
}

var exportBlocklistCmd = &cli.Command{
	Name:  "export-blocklist",
	Usage: "snapshot the live blocklist (eg, redis) to a file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Usage:    "destination file path",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		ctx := context.Background()
		logger := newLogger()
		eng, err := configureEngine(cctx, logger)
		if err != nil {
			return err
		}
		return eng.ExportBlocklist(ctx, cctx.String("out"))
	},
}

var importBlocklistCmd = &cli.Command{
	Name:  "import-blocklist",
	Usage: "replace the live blocklist (eg, redis) with a snapshot file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "in",
			Usage:    "source file path",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		ctx := context.Background()
		logger := newLogger()
		eng, err := configureEngine(cctx, logger)
		if err != nil {
			return err
		}
		return eng.ImportBlocklist(ctx, cctx.String("in"))
	},
}

func loadProfileSnapshots(p string) ([]botmod.Profile, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var snaps []profileSnapshot
	if err := json.Unmarshal(raw, &snaps); err != nil {
		return nil, fmt.Errorf("parsing profile snapshots %s: %w", p, err)
	}

	out := make([]botmod.Profile, 0, len(snaps))
	for _, snap := range snaps {
		var created time.Time
		if snap.CreatedAt != nil {
			created = *snap.CreatedAt
		}
		posts := make([]botmod.Post, len(snap.Posts))
		for i, ps := range snap.Posts {
			posts[i] = botmod.Post{Text: ps.Text, CreatedAt: ps.CreatedAt}
		}
		out = append(out, botmod.Profile{
			DID:            snap.DID,
			Handle:         snap.Handle,
			CreatedAt:      created,
			FollowersCount: snap.FollowersCount,
			FollowsCount:   snap.FollowsCount,
			Posts:          posts,
		})
	}
	return out, nil
}
