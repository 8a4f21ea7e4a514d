package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bet-advisor/internal/model"
)

// Per-sport CSV file names expected under the data directory.
const (
	BasketballFile = "basketball.csv"
	FootballFile   = "football.csv"
	HockeyFile     = "hockey.csv"
)

// LoadCSVDir builds a provider from the per-sport CSV files in dir. A missing
// file leaves that sport's table empty (the engine reports insufficient data
// at lookup time); a malformed file is an error. Blank or non-numeric cells
// load as nil, never as zero.
func LoadCSVDir(dir string) (*StaticProvider, error) {
	p := NewStaticProvider()

	if err := loadFile(filepath.Join(dir, BasketballFile), func(row csvRow) {
		p.PutBasketball(model.BasketballStats{
			Team:           row.str("team"),
			PointsPerGame:  row.num("points_per_game"),
			PointsAllowed:  row.num("points_allowed"),
			FieldGoalPct:   row.num("field_goal_pct"),
			ReboundMargin:  row.num("rebound_margin"),
			TurnoverMargin: row.num("turnover_margin"),
		})
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dir, FootballFile), func(row csvRow) {
		p.PutFootball(model.FootballStats{
			Team:           row.str("team"),
			PointsPerGame:  row.num("points_per_game"),
			PointsAllowed:  row.num("points_allowed"),
			OffensiveYards: row.num("offensive_yards"),
			DefensiveYards: row.num("defensive_yards"),
			TurnoverDiff:   row.num("turnover_diff"),
		})
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dir, HockeyFile), func(row csvRow) {
		p.PutHockey(model.HockeyStats{
			Team:                    row.str("team"),
			XGF60:                   row.num("xgf_60"),
			XGA60:                   row.num("xga_60"),
			GSAx60:                  row.num("gsax_60"),
			HDCF60:                  row.num("hdcf_60"),
			PP:                      row.num("pp_pct"),
			PK:                      row.num("pk_pct"),
			TimesShorthandedPerGame: row.num("times_shorthanded_per_game"),
		})
	}); err != nil {
		return nil, err
	}

	return p, nil
}

// csvRow is one record keyed by lowercased header name.
type csvRow map[string]string

func (r csvRow) str(col string) string {
	return strings.TrimSpace(r[col])
}

// num parses a cell into an optional float. Absent, blank, and unparseable
// cells are all nil: the models must see "no data", not a fabricated zero.
func (r csvRow) num(col string) *float64 {
	s := strings.TrimSpace(r[col])
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func loadFile(path string, add func(csvRow)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("stats file missing, sport will have no data", "path", path)
			return nil
		}
		return fmt.Errorf("opening stats file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header of %s: %w", path, err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		row := make(csvRow, len(cols))
		for i, c := range cols {
			if i < len(rec) {
				row[c] = rec[i]
			}
		}
		if row.str("team") == "" {
			continue
		}
		add(row)
		rows++
	}

	slog.Info("loaded stats file", "path", path, "teams", rows)
	return nil
}
