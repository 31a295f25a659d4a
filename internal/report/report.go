package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/adamchlebek/RL-Dash/internal/cars"
	"github.com/adamchlebek/RL-Dash/internal/model"
)

var (
	cMVP    = color.New(color.FgYellow, color.Bold)
	cBlue   = color.New(color.FgBlue, color.Bold)
	cOrange = color.New(color.FgRed, color.Bold)
	cMuted  = color.New(color.Faint)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, s model.Summary) {
	ot := ""
	if s.Overtime {
		ot = fmt.Sprintf(" (OT +%ds)", s.OvertimeSeconds)
	}
	fmt.Fprintf(w, "\n%s  |  Map: %s  |  Type: %s  |  Date: %s  |  %s %d – %d %s  |  Length: %s%s\n",
		s.Title, s.MapName, s.MatchType, s.Date,
		cBlue.Sprint("BLUE"), s.Score.Team0, s.Score.Team1, cOrange.Sprint("ORANGE"),
		FormatDuration(s.Duration), ot)
	cMuted.Fprintf(w, "id %s  generated %s\n\n", s.ID, s.Created)
}

// PrintTeamTable prints one roster. If focusName is non-empty, that player's
// row is marked with ">".
func PrintTeamTable(w io.Writer, t model.Team, focusName string) {
	label := cBlue
	if t.Color == "orange" {
		label = cOrange
	}
	label.Fprintf(w, "%s\n", t.Name)

	if len(t.Players) == 0 {
		cMuted.Fprintln(w, "  (no players)")
		return
	}

	table := newTable(w)
	table.Header(" ", "NAME", "PLATFORM", "CAR", "SCORE", "G", "A", "SV", "SH", "SH%", "MVP")

	for _, p := range t.Players {
		marker := " "
		if focusName != "" && p.Name == focusName {
			marker = ">"
		}
		mvp := ""
		if p.Stats.Core.MVP {
			mvp = cMVP.Sprint("★")
		}
		core := p.Stats.Core
		table.Append(
			marker,
			p.Name,
			p.ID.Platform,
			p.CarName,
			strconv.Itoa(core.Score),
			strconv.Itoa(core.Goals),
			strconv.Itoa(core.Assists),
			strconv.Itoa(core.Saves),
			strconv.Itoa(core.Shots),
			fmt.Sprintf("%d%%", core.ShootingPercentage),
			mvp,
		)
	}
	table.Render()
}

// PrintSummary prints the header line followed by both rosters.
func PrintSummary(w io.Writer, s model.Summary, focusName string) {
	PrintMatchSummary(w, s)
	PrintTeamTable(w, s.Blue, focusName)
	fmt.Fprintln(w)
	PrintTeamTable(w, s.Orange, focusName)
}

// PrintBasic prints the compact summary.
func PrintBasic(w io.Writer, b model.BasicSummary) {
	fmt.Fprintf(w, "\nType: %s  |  Score: %d – %d\n\n", b.MatchType, b.Score.Team0, b.Score.Team1)

	table := newTable(w)
	table.Header("NAME", "TEAM", "SCORE", "G", "A", "SV", "SH")
	for _, p := range b.Players {
		table.Append(
			p.Name,
			strconv.Itoa(p.Team),
			strconv.Itoa(p.Score),
			strconv.Itoa(p.Goals),
			strconv.Itoa(p.Assists),
			strconv.Itoa(p.Saves),
			strconv.Itoa(p.Shots),
		)
	}
	table.Render()
}

// PrintCarTable prints the car body table.
func PrintCarTable(w io.Writer, list []cars.Car) {
	table := newTable(w)
	table.Header("ID", "NAME")
	for _, c := range list {
		table.Append(strconv.FormatUint(uint64(c.ID), 10), c.Name)
	}
	table.Render()
}
