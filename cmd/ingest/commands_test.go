package main

import (
	"testing"
	"time"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	t.Run("negative versions stay unset", func(t *testing.T) {
		filter, err := buildFilter(filterInput{major: -1, minor: -1})
		if err != nil {
			t.Fatalf("build filter: %v", err)
		}
		if filter.MajorVersion != nil || filter.MinorVersion != nil || filter.CreatedAfter != nil {
			t.Fatalf("expected empty filter, got=%+v", filter)
		}
	})

	t.Run("maps every flag", func(t *testing.T) {
		filter, err := buildFilter(filterInput{
			major:       13,
			minor:       24,
			queues:      []int{420},
			after:       "2024-01-01T00:00:00+07:00",
			before:      "2024-02-01T00:00:00Z",
			minDuration: 10 * time.Minute,
		})
		if err != nil {
			t.Fatalf("build filter: %v", err)
		}
		if *filter.MajorVersion != 13 || *filter.MinorVersion != 24 || filter.Queues[0] != 420 {
			t.Fatalf("unexpected version or queue filter: %+v", filter)
		}
		if filter.CreatedAfter.Location() != time.UTC || filter.CreatedAfter.Hour() != 17 {
			t.Fatalf("expected after bound normalized to utc, got=%s", filter.CreatedAfter)
		}
		if filter.MinDuration != 10*time.Minute {
			t.Fatalf("unexpected min duration: %s", filter.MinDuration)
		}
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		if _, err := buildFilter(filterInput{major: -1, minor: -1, before: "yesterday"}); err == nil {
			t.Fatalf("expected error for malformed before bound")
		}
	})
}

func TestRootCommand_ListsSubcommands(t *testing.T) {
	t.Parallel()

	want := []string{"match", "window", "full", "ranked", "bulk", "timeline", "ranks", "rollup", "played-with", "live"}
	got := make(map[string]bool)
	for _, cmd := range rootCommand().Commands {
		got[cmd.Name] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Fatalf("expected subcommand %q", name)
		}
	}
}
