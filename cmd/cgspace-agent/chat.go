// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cgspace-agent/internal/search"
	"github.com/pdiddy/cgspace-agent/internal/session"
	"github.com/pdiddy/cgspace-agent/pkg/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session against CGSpace",
	Long: `Chat reads queries from stdin, one per line, and answers each with a
summary of the matching documents plus a filterable results panel.

Panel commands:
  /backend local|remote   switch the search source
  /years MIN MAX          keep only documents within the year range
  /countries a,b,c        keep only documents from the listed countries
  /filters off            clear the year and country filters
  /quit                   end the session`,
	RunE: runChat,
}

// panelFilters holds the display-side filter state. Filters never touch
// the session's result set; they narrow a copy on every render.
type panelFilters struct {
	minYear, maxYear int
	countries        []string
}

func (f *panelFilters) apply(records []types.Record) []types.Record {
	if f.minYear > 0 {
		// A single distinct year means every dated record already matches,
		// so the range is only meaningful with two or more.
		if len(search.DistinctYears(records)) > 1 {
			records = search.FilterByYearRange(records, f.minYear, f.maxYear)
		}
	}
	return search.FilterByCountries(records, f.countries)
}

func runChat(cmd *cobra.Command, args []string) error {
	backendName, _ := cmd.Flags().GetString("backend")
	kind := session.BackendLocal
	if backendName == "remote" {
		kind = session.BackendRemote
	}

	local, remote, err := buildBackends(appConfig())
	if err != nil {
		return err
	}

	ctrl := session.NewController(local, remote, kind)
	fmt.Printf("cgspace-agent chat (backend: %s). Type a topic, or /quit to exit.\n", ctrl.Backend())

	var filters panelFilters
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := handleCommand(line, ctrl, &filters, os.Stdout); quit {
				break
			}
			renderPanel(ctrl.Current(), &filters, os.Stdout)
			continue
		}

		reply := ctrl.ProcessTurn(cmd.Context(), line)
		fmt.Println()
		fmt.Println(reply)
		fmt.Println()
		renderPanel(ctrl.Current(), &filters, os.Stdout)
	}
	return scanner.Err()
}

// handleCommand processes a /-prefixed panel command. It returns true
// when the session should end.
func handleCommand(line string, ctrl *session.Controller, filters *panelFilters, w io.Writer) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true

	case "/backend":
		if len(fields) != 2 || (fields[1] != "local" && fields[1] != "remote") {
			fmt.Fprintln(w, "usage: /backend local|remote")
			return false
		}
		ctrl.SetBackend(session.BackendKind(fields[1]))
		fmt.Fprintf(w, "backend switched to %s\n", fields[1])

	case "/years":
		if len(fields) != 3 {
			fmt.Fprintln(w, "usage: /years MIN MAX")
			return false
		}
		min, err1 := strconv.Atoi(fields[1])
		max, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || min > max {
			fmt.Fprintln(w, "usage: /years MIN MAX (MIN <= MAX)")
			return false
		}
		filters.minYear, filters.maxYear = min, max

	case "/countries":
		if len(fields) != 2 {
			fmt.Fprintln(w, "usage: /countries a,b,c")
			return false
		}
		filters.countries = strings.Split(fields[1], ",")

	case "/filters":
		if len(fields) == 2 && fields[1] == "off" {
			*filters = panelFilters{}
			fmt.Fprintln(w, "filters cleared")
		} else {
			fmt.Fprintln(w, "usage: /filters off")
		}

	default:
		fmt.Fprintf(w, "unknown command %s\n", fields[0])
	}
	return false
}

// renderPanel prints the metrics, per-year chart, and document table for
// the current (filtered) result set.
func renderPanel(records []types.Record, filters *panelFilters, w io.Writer) {
	filtered := filters.apply(records)
	if len(filtered) == 0 {
		fmt.Fprintln(w, "No documents to show. Try topics like coffee, agroecology, climate change, or Colombia.")
		return
	}
	search.FormatMetrics(filtered, w)
	fmt.Fprintln(w)
	search.FormatYearChart(search.CountByYear(filtered), w)
	fmt.Fprintln(w)
	search.FormatTable(filtered, w)
}

func init() {
	chatCmd.Flags().String("backend", "local", "initial search backend: local or remote")

	rootCmd.AddCommand(chatCmd)
}
