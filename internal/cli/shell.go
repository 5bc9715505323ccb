// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/config"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// shellHistoryFile keeps REPL history across sessions.
const shellHistoryFile = "shell_history"

// shellState is the REPL's cursor into the hierarchy.
type shellState struct {
	report  *analysis.Report
	source  string
	current *analysis.Node
}

// RunShell starts the interactive exploration REPL.
func RunShell(args []string) error {
	parser := NewArgParser(args)
	source := resolveSource(parser, 0)

	coll, report, err := loadAndAnalyze(context.Background(), source)
	if err != nil {
		return err
	}

	state := &shellState{report: report, source: coll.Source, current: report.Tree}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(state.complete)

	historyPath := filepath.Join(config.Dir(), shellHistoryFile)
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("%s %s (%d comparisons). Type help for commands.\n",
		TitleStyle.Render("jostle-bench shell"), coll.Source, len(report.Comparisons))

	for {
		prompt := state.current.Path
		if prompt == "" {
			prompt = analysis.RootName
		}
		input, err := line.Prompt(prompt + "> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if done := state.dispatch(input); done {
			return nil
		}
	}
}

// dispatch executes one REPL command; true means exit.
func (s *shellState) dispatch(input string) bool {
	fields := strings.Fields(input)
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		s.printHelp()
	case "ls":
		s.list(strings.Join(rest, " "))
	case "cd":
		s.changeNode(strings.Join(rest, " "))
	case "show":
		s.show(strings.Join(rest, " "))
	case "modes":
		for _, m := range s.report.Modes() {
			fmt.Println(m)
		}
	case "top":
		n := 10
		if len(rest) > 0 {
			if v, err := strconv.Atoi(rest[0]); err == nil && v > 0 {
				n = v
			}
		}
		s.top(n)
	default:
		fmt.Println(ErrorStyle.Render("unknown command: " + cmd + " (try help)"))
	}
	return false
}

func (s *shellState) printHelp() {
	fmt.Print(`Commands:
  ls [path]     List children of the current (or given) node
  cd <path>     Move into a node; "cd .." up, "cd /" to the root
  show <name>   Show the comparisons under a child node
  modes         List measurement modes
  top [n]       Largest speedup gaps across the document
  help          This text
  exit          Leave the shell
`)
}

// resolve interprets a path argument relative to the current node:
// "/" and ".." are navigation, everything else walks child names.
func (s *shellState) resolve(path string) *analysis.Node {
	switch path {
	case "", ".":
		return s.current
	case "/":
		return s.report.Tree
	case "..":
		parent := filepath.Dir(s.current.Path)
		if parent == "." || parent == "/" || s.current.Path == "" {
			return s.report.Tree
		}
		return analysis.FindNode(s.report.Tree, parent)
	}
	if strings.HasPrefix(path, "/") {
		return analysis.FindNode(s.report.Tree, path)
	}
	base := s.current.Path
	if base == "" {
		return analysis.FindNode(s.report.Tree, path)
	}
	return analysis.FindNode(s.report.Tree, base+"/"+path)
}

func (s *shellState) list(path string) {
	node := s.resolve(path)
	if node == nil {
		fmt.Println(ErrorStyle.Render("no such node: " + path))
		return
	}
	if node.IsLeaf() {
		s.printComparisons(node)
		return
	}
	for _, child := range node.Children {
		suffix := fmt.Sprintf("(%d)", len(child.Comparisons))
		fmt.Printf("%s %s\n", ValueStyle.Render(child.Name), DimStyle.Render(suffix))
	}
}

func (s *shellState) changeNode(path string) {
	node := s.resolve(path)
	if node == nil {
		fmt.Println(ErrorStyle.Render("no such node: " + path))
		return
	}
	s.current = node
}

func (s *shellState) show(path string) {
	node := s.resolve(path)
	if node == nil {
		fmt.Println(ErrorStyle.Render("no such node: " + path))
		return
	}
	s.printComparisons(node)
}

func (s *shellState) printComparisons(node *analysis.Node) {
	for _, c := range node.Comparisons {
		ratio, ok := c.Speedup()
		fmt.Printf("%s %s %s %s %s\n",
			util.PadRight(c.Label(), 44),
			util.PadLeft(scoreCell(c.Baseline), 12),
			util.PadLeft(scoreCell(c.Alternate), 12),
			RenderSpeedup(util.PadLeft(util.FormatSpeedup(ratio, ok), 9), ratio, ok),
			DimStyle.Render(c.ScoreUnit))
	}
}

// top prints the comparisons with the largest deviation from parity,
// both directions.
func (s *shellState) top(n int) {
	type scored struct {
		c     *analysis.Comparison
		ratio float64
	}
	var items []scored
	for _, c := range s.report.Comparisons {
		if ratio, ok := c.Speedup(); ok {
			items = append(items, scored{c, ratio})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		di := items[i].ratio
		if di < 1 && di > 0 {
			di = 1 / di
		}
		dj := items[j].ratio
		if dj < 1 && dj > 0 {
			dj = 1 / dj
		}
		return di > dj
	})
	if n > len(items) {
		n = len(items)
	}
	for _, item := range items[:n] {
		fmt.Printf("%s %s\n",
			RenderSpeedup(util.PadLeft(util.FormatSpeedup(item.ratio, true), 8), item.ratio, true),
			item.c.Label())
	}
}

// complete offers child names of the current node for ls/cd/show.
func (s *shellState) complete(line string) []string {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) < 2 {
		var out []string
		for _, cmd := range []string{"ls", "cd", "show", "modes", "top", "help", "exit"} {
			if strings.HasPrefix(cmd, line) {
				out = append(out, cmd)
			}
		}
		return out
	}

	cmd, partial := fields[0], fields[1]
	if cmd != "ls" && cmd != "cd" && cmd != "show" {
		return nil
	}
	var out []string
	for _, child := range s.current.Children {
		if strings.HasPrefix(child.Name, partial) {
			out = append(out, cmd+" "+child.Name)
		}
	}
	return out
}
