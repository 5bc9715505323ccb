// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/store"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// RunRuns manages the persisted run history: list, show, delete, prune.
func RunRuns(args []string) error {
	parser := NewArgParser(args)

	s, err := store.Open(config.Global().History.Path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer s.Close()

	switch parser.Subcommand() {
	case "", "list":
		return runsList(s, parser.FlagIntOrDefault("limit", 20))
	case "show":
		id := parser.Positional(1)
		if id == "" {
			return Usagef("runs show needs a run id")
		}
		return runsShow(s, id)
	case "delete":
		id := parser.Positional(1)
		if id == "" {
			return Usagef("runs delete needs a run id")
		}
		return runsDelete(s, id)
	case "prune":
		keepArg := parser.Positional(1)
		if keepArg == "" {
			return Usagef("runs prune needs a count to keep")
		}
		keep, err := strconv.Atoi(keepArg)
		if err != nil || keep < 1 {
			return Usagef("runs prune needs a positive count, got %q", keepArg)
		}
		return runsPrune(s, keep)
	default:
		return Usagef("unknown runs subcommand %q", parser.Subcommand())
	}
}

func runsList(s *store.Store, limit int) error {
	runs, err := s.ListRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println(DimStyle.Render("no runs recorded yet"))
		return nil
	}

	fmt.Println(TitleStyle.Render("Run History"))
	for _, r := range runs {
		fmt.Printf("%s  %s  %s\n",
			ValueStyle.Render(shortID(r.ID)),
			DimStyle.Render(util.FormatTimestamp(r.CreatedAt)),
			r.Source)
		fmt.Printf("          %d records, %d comparisons, %d rejected\n",
			r.RecordCount, r.ComparisonCount, r.RejectedCount)
	}
	return nil
}

func runsShow(s *store.Store, id string) error {
	run, err := resolveRun(s, id)
	if err != nil {
		return err
	}

	comps, err := s.GetRunComparisons(run.ID)
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render("Run " + shortID(run.ID)))
	fmt.Printf("%s %s\n", LabelStyle.Render("Source"), run.Source)
	fmt.Printf("%s %s\n", LabelStyle.Render("Recorded"), util.FormatTimestamp(run.CreatedAt))
	fmt.Printf("%s %s\n", LabelStyle.Render("Fingerprint"), DimStyle.Render(run.Fingerprint))
	fmt.Println()
	for _, c := range comps {
		ratio, ok := c.Speedup()
		fmt.Printf("%s %s %s %s\n",
			util.PadRight(c.Label(), 44),
			util.PadLeft(scoreCell(c.Baseline), 12),
			util.PadLeft(scoreCell(c.Alternate), 12),
			RenderSpeedup(util.PadLeft(util.FormatSpeedup(ratio, ok), 9), ratio, ok))
	}
	return nil
}

func runsDelete(s *store.Store, id string) error {
	run, err := resolveRun(s, id)
	if err != nil {
		return err
	}
	if err := s.DeleteRun(run.ID); err != nil {
		return err
	}
	fmt.Printf("deleted run %s\n", shortID(run.ID))
	return nil
}

func runsPrune(s *store.Store, keep int) error {
	removed, err := s.PruneRuns(keep)
	if err != nil {
		return err
	}
	fmt.Printf("pruned %d run(s), kept the newest %d\n", removed, keep)
	return nil
}

// resolveRun accepts a full run ID or an unambiguous prefix.
func resolveRun(s *store.Store, id string) (store.Run, error) {
	run, err := s.GetRun(id)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.Run{}, err
	}

	runs, err := s.ListRuns(0)
	if err != nil {
		return store.Run{}, err
	}
	var match *store.Run
	for i := range runs {
		if len(id) >= 4 && len(runs[i].ID) >= len(id) && runs[i].ID[:len(id)] == id {
			if match != nil {
				return store.Run{}, fmt.Errorf("run id %q is ambiguous", id)
			}
			match = &runs[i]
		}
	}
	if match == nil {
		return store.Run{}, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return *match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
