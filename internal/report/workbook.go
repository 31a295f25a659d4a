package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/adamchlebek/RL-Dash/internal/model"
)

const (
	sheetMatches = "Matches"
	sheetPlayers = "Players"
)

var (
	matchColumns = []interface{}{
		"ID", "Title", "Map", "Type", "Playlist", "Date", "Duration",
		"Overtime", "OT Seconds", "Blue", "Orange", "MVP",
	}
	playerColumns = []interface{}{
		"Match ID", "Team", "Name", "Platform", "Player ID", "Car",
		"Score", "Goals", "Assists", "Saves", "Shots", "SH%", "MVP",
	}
)

// WriteWorkbook writes summaries as an xlsx workbook with one row per match
// on "Matches" and one row per player on "Players".
func WriteWorkbook(w io.Writer, summaries []model.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetMatches)
	f.NewSheet(sheetPlayers)

	if err := f.SetSheetRow(sheetMatches, "A1", &matchColumns); err != nil {
		return fmt.Errorf("write match header: %w", err)
	}
	if err := f.SetSheetRow(sheetPlayers, "A1", &playerColumns); err != nil {
		return fmt.Errorf("write player header: %w", err)
	}

	playerRow := 2
	for i, s := range summaries {
		mvp := ""
		if p, ok := s.MVP(); ok {
			mvp = p.Name
		}
		row := []interface{}{
			s.ID, s.Title, s.MapName, s.MatchType, s.PlaylistName, s.Date,
			FormatDuration(s.Duration), s.Overtime, s.OvertimeSeconds,
			s.Score.Team0, s.Score.Team1, mvp,
		}
		if err := setRow(f, sheetMatches, i+2, row); err != nil {
			return err
		}

		for _, team := range []model.Team{s.Blue, s.Orange} {
			for _, p := range team.Players {
				core := p.Stats.Core
				row := []interface{}{
					s.ID, team.Color, p.Name, p.ID.Platform, p.ID.ID, p.CarName,
					core.Score, core.Goals, core.Assists, core.Saves, core.Shots,
					core.ShootingPercentage, core.MVP,
				}
				if err := setRow(f, sheetPlayers, playerRow, row); err != nil {
					return err
				}
				playerRow++
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
