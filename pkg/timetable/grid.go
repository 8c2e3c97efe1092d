package timetable

import (
	"sort"

	"github.com/campusdesk/timetable-engine/pkg/model"
)

// GridConfig describes the weekly rendering grid: which day columns to
// draw, where the time window starts, and how fine the rows are.
type GridConfig struct {
	Days       []string `json:"days"`
	FirstHour  int      `json:"firstHour"`
	RowMinutes int      `json:"rowMinutes"`
	RowCount   int      `json:"rowCount"`
}

// DefaultGridConfig covers 7:00 to 21:00 in 30-minute rows across the
// full week.
func DefaultGridConfig() GridConfig {
	days := make([]string, len(Weekdays))
	copy(days, Weekdays)
	return GridConfig{
		Days:       days,
		FirstHour:  7,
		RowMinutes: 30,
		RowCount:   28,
	}
}

// Placement anchors one block at its starting cell. The block visually
// overflows downward across RowSpan rows; those rows get no placement of
// their own.
type Placement struct {
	Block   model.ConsolidatedBlock `json:"block"`
	Col     int                     `json:"col"`
	Row     int                     `json:"row"`
	RowSpan int                     `json:"rowSpan"`
}

type cellKey struct {
	col int
	row int
}

// GridLayout maps consolidated blocks onto grid cells. Several blocks
// may share a starting cell (a teacher's combined view, say); stacking
// them is the renderer's problem, not the mapper's.
type GridLayout struct {
	Config  GridConfig
	cells   map[cellKey][]Placement
	covered map[cellKey]bool
}

// Layout positions blocks on the grid. Blocks whose day is not a
// configured column or whose start falls outside the time window are
// skipped here; they remain valid blocks for other consumers.
func Layout(blocks []model.ConsolidatedBlock, cfg GridConfig) *GridLayout {
	colOf := make(map[string]int, len(cfg.Days))
	for i, d := range cfg.Days {
		colOf[d] = i
	}

	g := &GridLayout{
		Config:  cfg,
		cells:   make(map[cellKey][]Placement),
		covered: make(map[cellKey]bool),
	}
	base := cfg.FirstHour * 60
	for _, b := range blocks {
		col, ok := colOf[b.Day]
		if !ok || b.StartMinutes < base {
			continue
		}
		row := (b.StartMinutes - base) / cfg.RowMinutes
		if row >= cfg.RowCount {
			continue
		}
		span := (b.Duration() + cfg.RowMinutes - 1) / cfg.RowMinutes
		p := Placement{Block: b, Col: col, Row: row, RowSpan: span}
		g.cells[cellKey{col, row}] = append(g.cells[cellKey{col, row}], p)
		for r := row + 1; r < row+span && r < cfg.RowCount; r++ {
			g.covered[cellKey{col, r}] = true
		}
	}
	return g
}

// At returns the placements starting in the given cell.
func (g *GridLayout) At(col, row int) []Placement {
	return g.cells[cellKey{col, row}]
}

// Covered reports whether a cell is spanned by a block that started
// above it. Renderers skip the internal horizontal gridline for covered
// cells so spanning blocks draw as one piece.
func (g *GridLayout) Covered(col, row int) bool {
	return g.covered[cellKey{col, row}]
}

// Placements returns every placement in column-then-row order, for
// serialization to a rendering surface.
func (g *GridLayout) Placements() []Placement {
	var out []Placement
	for _, ps := range g.cells {
		out = append(out, ps...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Col != out[j].Col {
			return out[i].Col < out[j].Col
		}
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return lessBlocks(out[i].Block, out[j].Block)
	})
	return out
}
