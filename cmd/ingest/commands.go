package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/match-ingestion/internal/app"
	"github.com/riskibarqy/match-ingestion/internal/domain/rollup"
	"github.com/riskibarqy/match-ingestion/internal/usecase"
	"github.com/urfave/cli/v3"
)

func matchCommand() *cli.Command {
	return &cli.Command{
		Name:  "match",
		Usage: "Import one match by id",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true, Usage: "match id, e.g. NA1_4242"},
			&cli.StringFlag{Name: "region", Required: true, Usage: "platform region, e.g. na1"},
			&cli.BoolFlag{Name: "refresh", Usage: "replace the stored match"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				result, err := services.Matches.ImportMatch(ctx, c.String("region"), c.String("id"), c.Bool("refresh"))
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

func windowCommand() *cli.Command {
	return &cli.Command{
		Name:  "window",
		Usage: "Import a slice of a player's match history",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "puuid", Required: true},
			&cli.StringFlag{Name: "region", Required: true},
			&cli.IntFlag{Name: "start", Value: 0, Usage: "first history index"},
			&cli.IntFlag{Name: "end", Value: 100, Usage: "history index to stop before"},
			&cli.IntSliceFlag{Name: "queue", Usage: "queue id filter, repeatable"},
			&cli.StringFlag{Name: "start-time", Usage: "RFC3339 lower bound on game start"},
			&cli.StringFlag{Name: "end-time", Usage: "RFC3339 upper bound on game start"},
			&cli.BoolFlag{Name: "refresh", Usage: "re-import stored matches"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			startTime, err := parseTimeFlag(c.String("start-time"))
			if err != nil {
				return fmt.Errorf("start-time: %w", err)
			}
			endTime, err := parseTimeFlag(c.String("end-time"))
			if err != nil {
				return fmt.Errorf("end-time: %w", err)
			}
			input := usecase.WindowInput{
				PUUID:     c.String("puuid"),
				Region:    c.String("region"),
				Start:     c.Int("start"),
				End:       c.Int("end"),
				Queues:    c.IntSlice("queue"),
				StartTime: startTime,
				EndTime:   endTime,
				Refresh:   c.Bool("refresh"),
			}
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				result, err := services.Windows.ImportWindow(ctx, input)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

func backfillCommand(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "region", Required: true},
			&cli.StringFlag{Name: "name", Usage: "riot id as GameName#TAG"},
			&cli.StringFlag{Name: "puuid"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ref := usecase.PlayerRef{Name: c.String("name"), PUUID: c.String("puuid"), Region: c.String("region")}
			if strings.TrimSpace(ref.Name) == "" && strings.TrimSpace(ref.PUUID) == "" {
				return fmt.Errorf("one of --name or --puuid is required")
			}
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				var (
					result usecase.WindowResult
					err    error
				)
				if name == "ranked" {
					result, err = services.Backfill.RankedImport(ctx, ref)
				} else {
					result, err = services.Backfill.FullImport(ctx, ref)
				}
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

func bulkCommand() *cli.Command {
	return &cli.Command{
		Name:  "bulk",
		Usage: "Run the periodic bulk import for a known player",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "puuid", Required: true},
			&cli.DurationFlag{Name: "interval", Usage: "minimum time between bulk imports"},
			&cli.IntFlag{Name: "count", Usage: "history entries to scan"},
			&cli.IntFlag{Name: "offset", Value: -1, Usage: "first history index, negative uses the configured offset"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input := usecase.BulkImportInput{
				PUUID:    c.String("puuid"),
				Interval: c.Duration("interval"),
				Count:    c.Int("count"),
				Offset:   c.Int("offset"),
			}
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				result, err := services.Backfill.BulkImport(ctx, input)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

func timelineCommand() *cli.Command {
	return &cli.Command{
		Name:  "timeline",
		Usage: "Import the timeline of a stored match",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true},
			&cli.BoolFlag{Name: "overwrite", Usage: "replace a stored timeline"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				result, err := services.Timelines.ImportTimeline(ctx, c.String("id"), c.Bool("overwrite"))
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

func ranksCommand() *cli.Command {
	return &cli.Command{
		Name:  "ranks",
		Usage: "Back-fill participant ranks of a recent match",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				result, err := services.Ranks.BackfillRanks(ctx, c.String("id"))
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "major", Value: -1, Usage: "patch major version"},
		&cli.IntFlag{Name: "minor", Value: -1, Usage: "patch minor version"},
		&cli.IntSliceFlag{Name: "queue", Usage: "queue id filter, repeatable"},
		&cli.StringFlag{Name: "after", Usage: "RFC3339 lower bound on game creation"},
		&cli.StringFlag{Name: "before", Usage: "RFC3339 upper bound on game creation"},
		&cli.DurationFlag{Name: "min-duration", Usage: "shortest game counted, defaults to five minutes"},
	}
}

func rollupCommand() *cli.Command {
	return &cli.Command{
		Name:  "rollup",
		Usage: "Per-champion totals for a player",
		Flags: append(filterFlags(),
			&cli.StringFlag{Name: "puuid", Required: true},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := filterFromFlags(c)
			if err != nil {
				return err
			}
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				items, err := services.Rollups.ChampionRollups(ctx, c.String("puuid"), filter)
				if err != nil {
					return err
				}
				if c.Bool("json") {
					return printJSON(items)
				}
				for _, item := range items {
					fmt.Printf("champion=%d games=%d wins=%d losses=%d kda=%.2f\n", item.ChampionID, item.Games, item.Wins, item.Losses, item.KDA)
				}
				return nil
			})
		},
	}
}

func playedWithCommand() *cli.Command {
	return &cli.Command{
		Name:  "played-with",
		Usage: "Most frequent teammates or opponents of a player",
		Flags: append(filterFlags(),
			&cli.StringFlag{Name: "puuid", Required: true},
			&cli.BoolFlag{Name: "opponents", Usage: "count opposing players instead of teammates"},
			&cli.IntFlag{Name: "limit", Value: 20},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := filterFromFlags(c)
			if err != nil {
				return err
			}
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				items, err := services.Rollups.TopPlayedWith(ctx, c.String("puuid"), !c.Bool("opponents"), filter, c.Int("limit"))
				if err != nil {
					return err
				}
				if c.Bool("json") {
					return printJSON(items)
				}
				for _, item := range items {
					fmt.Printf("puuid=%s name=%q games=%d wins=%d\n", item.PUUID, item.Name, item.Games, item.Wins)
				}
				return nil
			})
		},
	}
}

func liveCommand() *cli.Command {
	return &cli.Command{
		Name:  "live",
		Usage: "Record the spectator handle of a player's ongoing game",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "region", Required: true},
			&cli.StringFlag{Name: "puuid", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runWithServices(ctx, func(ctx context.Context, services *app.Services) error {
				result, err := services.LiveGames.ImportLiveGame(ctx, c.String("region"), c.String("puuid"))
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
}

type filterInput struct {
	major       int
	minor       int
	queues      []int
	after       string
	before      string
	minDuration time.Duration
}

func filterFromFlags(c *cli.Command) (rollup.Filter, error) {
	return buildFilter(filterInput{
		major:       c.Int("major"),
		minor:       c.Int("minor"),
		queues:      c.IntSlice("queue"),
		after:       c.String("after"),
		before:      c.String("before"),
		minDuration: c.Duration("min-duration"),
	})
}

// buildFilter maps flag values onto a rollup filter; negative versions mean unset.
func buildFilter(in filterInput) (rollup.Filter, error) {
	filter := rollup.Filter{Queues: in.queues, MinDuration: in.minDuration}
	if in.major >= 0 {
		major := in.major
		filter.MajorVersion = &major
	}
	if in.minor >= 0 {
		minor := in.minor
		filter.MinorVersion = &minor
	}

	var err error
	if filter.CreatedAfter, err = parseTimeFlag(in.after); err != nil {
		return rollup.Filter{}, fmt.Errorf("after: %w", err)
	}
	if filter.CreatedBefore, err = parseTimeFlag(in.before); err != nil {
		return rollup.Filter{}, fmt.Errorf("before: %w", err)
	}
	return filter, nil
}

func parseTimeFlag(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
