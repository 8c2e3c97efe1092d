package main

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusdesk/timetable-engine/internal/config"
	"github.com/campusdesk/timetable-engine/internal/csvio"
	"github.com/campusdesk/timetable-engine/pkg/model"
	"github.com/campusdesk/timetable-engine/pkg/timetable"
)

type server struct {
	cfg   *config.Config
	store *datasetStore
	log   *zap.Logger
}

type blockView struct {
	model.ConsolidatedBlock
	Color string `json:"color"`
}

type placementView struct {
	timetable.Placement
	Color string `json:"color"`
}

func (s *server) handlePostAllocations(ctx *gin.Context) {
	file, err := ctx.FormFile("allocations")
	if err != nil {
		ctx.String(http.StatusBadRequest, "missing allocations file")
		return
	}

	id := uuid.NewString()
	path := filepath.Join(s.cfg.UploadDir, id+"-"+filepath.Base(file.Filename))
	if err := ctx.SaveUploadedFile(file, path); err != nil {
		s.log.Error("save upload", zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}

	records, err := csvio.LoadAllocations(path, s.cfg.Delim())
	if err != nil {
		s.log.Warn("rejected upload", zap.String("file", file.Filename), zap.Error(err))
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	s.store.put(id, records)
	s.log.Info("stored allocation dataset",
		zap.String("id", id),
		zap.Int("records", len(records)))

	ctx.JSON(http.StatusOK, gin.H{
		"id":      id,
		"records": len(records),
	})
}

func (s *server) handleListAllocations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"datasetIds": s.store.ids(),
	})
}

func (s *server) handleGetTimetable(ctx *gin.Context) {
	records, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	records = filterRecords(records, ctx)

	cons, err := s.consolidator(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	blocks, dropped := cons.Consolidate(records)

	// Room-centric views color by room so one room reads as one hue;
	// everything else colors by course code.
	roomView := ctx.Query("view") == "room"
	colorOf := func(b model.ConsolidatedBlock) string {
		if roomView {
			if b.IsOnline {
				return timetable.OnlineColor
			}
			return timetable.ColorFor(b.Room)
		}
		return timetable.BlockColor(b)
	}

	grid := timetable.Layout(blocks, s.gridConfig())

	blockViews := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		blockViews = append(blockViews, blockView{ConsolidatedBlock: b, Color: colorOf(b)})
	}
	placements := grid.Placements()
	placementViews := make([]placementView, 0, len(placements))
	for _, p := range placements {
		placementViews = append(placementViews, placementView{Placement: p, Color: colorOf(p.Block)})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"grid":       grid.Config,
		"blocks":     blockViews,
		"placements": placementViews,
		"dropped":    dropped,
	})
}

func (s *server) handleExportTimetable(ctx *gin.Context) {
	records, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	records = filterRecords(records, ctx)

	cons, err := s.consolidator(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	out, err := csvio.ExportBlocksString(cons, records)
	if err != nil {
		s.log.Error("export timetable", zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="timetable.csv"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(out))
}

func (s *server) handleGetOccupancy(ctx *gin.Context) {
	records, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	room := ctx.Query("room")
	if room == "" {
		ctx.String(http.StatusBadRequest, "missing room parameter")
		return
	}

	now := timetable.ClockAt(time.Now())
	// ?day= and ?at= override the wall clock, mostly for testing.
	if day := ctx.Query("day"); day != "" {
		now.Weekday = strings.ToLower(day)
	}
	if at := ctx.Query("at"); at != "" {
		minutes, err := timetable.ParseTimeOfDay(at)
		if err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
		now.Minutes = minutes
	}

	occ := timetable.CheckRoom(room, records, now)
	resp := gin.H{
		"room":  room,
		"state": occ.State.String(),
	}
	if occ.Current != nil {
		resp["current"] = occ.Current
	}
	ctx.JSON(http.StatusOK, resp)
}

// filterRecords narrows a dataset by the optional room/section/teacher
// query parameters before consolidation.
func filterRecords(records []model.AllocationRecord, ctx *gin.Context) []model.AllocationRecord {
	room := ctx.Query("room")
	section := ctx.Query("section")
	teacher := ctx.Query("teacher")
	if room == "" && section == "" && teacher == "" {
		return records
	}
	filtered := make([]model.AllocationRecord, 0, len(records))
	for _, r := range records {
		if room != "" && r.Room != room {
			continue
		}
		if section != "" && r.Section != section {
			continue
		}
		if teacher != "" && r.TeacherName != teacher {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// consolidator builds the consolidator for a request, honoring an
// optional ?cap= override of the configured merge cap.
func (s *server) consolidator(ctx *gin.Context) (timetable.Consolidator, error) {
	cons := timetable.Consolidator{MaxSpanMinutes: s.cfg.MergeCapMinutes}
	if capParam := ctx.Query("cap"); capParam != "" {
		minutes, err := strconv.Atoi(capParam)
		if err != nil || minutes < 0 {
			return cons, errBadCap
		}
		cons.MaxSpanMinutes = minutes
	}
	return cons, nil
}

func (s *server) gridConfig() timetable.GridConfig {
	cfg := timetable.DefaultGridConfig()
	if s.cfg.GridFirstHour > 0 {
		cfg.FirstHour = s.cfg.GridFirstHour
	}
	if s.cfg.GridRowMinutes > 0 {
		cfg.RowMinutes = s.cfg.GridRowMinutes
	}
	if s.cfg.GridRowCount > 0 {
		cfg.RowCount = s.cfg.GridRowCount
	}
	return cfg
}
