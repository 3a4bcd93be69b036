package web

// handlers.go implements the upload and analysis API.
//
// All endpoints are scoped to a browser tab via the X-Tab-ID header; each tab
// holds one uploaded table in the session store. The analysis endpoints
// (summary, shots, target-data) recompute from the stored table on every call
// so that filter changes never need a re-upload.

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"siusscore/internal/logging"
	"siusscore/internal/session"
	"siusscore/internal/sius"
)

// handleIndex serves the single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// tabID returns the session key for a read request. Tabs that do not send
// the header share the "default" session, matching single-user desktop use.
func tabID(r *http.Request) string {
	if id := r.Header.Get("X-Tab-ID"); id != "" {
		return id
	}
	return "default"
}

// uploadResponse is the wire shape for a successful upload. TabID echoes the
// session key the table was stored under; clients that sent no X-Tab-ID must
// adopt it for the analysis calls.
type uploadResponse struct {
	TabID          string   `json:"tab_id"`
	Headers        []string `json:"headers"`
	StartNR        string   `json:"start_nr"`
	PrimaryScore   string   `json:"primary_score"`
	SecondaryScore string   `json:"secondary_score"`
	RowCount       int      `json:"row_count"`
	Relays         []string `json:"relays"`
	StartNRs       []string `json:"start_nrs"`
}

// handleUpload ingests a SIUS export (headerless CSV or xlsx workbook),
// assigns canonical column names from the fields reference and stores the
// table for the requesting tab.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	defer file.Close()

	var rows [][]string
	if sius.IsWorkbookName(header.Filename) {
		rows, err = sius.RowsFromWorkbook(file)
		if err != nil {
			s.respondError(w, r, err, http.StatusBadRequest)
			return
		}
	} else {
		content, err := io.ReadAll(sius.NewExportReader(file))
		if err != nil {
			s.respondError(w, r, err, http.StatusBadRequest)
			return
		}
		rows, _, err = sius.ParseRows(string(content), 0)
		if err != nil {
			s.respondError(w, r, err, http.StatusBadRequest)
			return
		}
	}

	if len(rows) == 0 {
		s.respondError(w, r, sius.ErrEmptyFile, http.StatusBadRequest)
		return
	}
	numColumns := sius.MaxColumns(rows)
	if numColumns == 0 {
		s.respondError(w, r, sius.ErrNoColumns, http.StatusBadRequest)
		return
	}

	fieldNames, err := sius.LoadFieldNames(s.cfg.Fields.Path)
	if err != nil || len(fieldNames) == 0 {
		s.respondError(w, r, sius.ErrFieldsUnavailable, http.StatusBadRequest)
		return
	}
	headers := sius.HeadersFromFieldNames(numColumns, fieldNames)

	key := r.Header.Get("X-Tab-ID")
	if key == "" {
		key = s.sessions.NewKey()
	}
	s.sessions.Put(key, session.Snapshot{Headers: headers, Rows: rows})

	t := sius.NewTable(headers, rows)
	suggested := sius.SuggestColumns(headers)

	relays := []string{}
	if idx, ok := t.Column(sius.FieldRelay); ok {
		relays = sius.UniqueColumnValues(rows, idx)
	}
	startNRs := []string{}
	if idx, ok := t.Column(sius.FieldStartNR); ok {
		startNRs = sius.UniqueColumnValues(rows, idx)
	}

	logger.Info("upload stored",
		"session", key,
		"filename", header.Filename,
		"rows", len(rows),
		"columns", numColumns,
	)

	writeJSON(w, uploadResponse{
		TabID:          key,
		Headers:        headers,
		StartNR:        suggested.StartNR,
		PrimaryScore:   suggested.PrimaryScore,
		SecondaryScore: suggested.SecondaryScore,
		RowCount:       len(rows),
		Relays:         relays,
		StartNRs:       startNRs,
	})
}

// analysisRequest carries the filter parameters shared by the analysis
// endpoints. StartNRs distinguishes absent (no filtering) from empty
// (match nothing), so it must stay a plain slice decoded from JSON.
type analysisRequest struct {
	Relay           *string  `json:"relay"`
	StartNRs        []string `json:"start_nrs"`
	ExcludedIndices []int    `json:"excluded_indices"`
	StartNR         string   `json:"start_nr"`
}

func decodeAnalysisRequest(r *http.Request) analysisRequest {
	var req analysisRequest
	// An absent or empty body means no filters, same as an empty JSON object.
	json.NewDecoder(r.Body).Decode(&req)
	return req
}

func (req analysisRequest) filter(withExclusions bool) sius.ShotFilter {
	f := sius.ShotFilter{Relay: req.Relay, StartNRs: req.StartNRs}
	if withExclusions && len(req.ExcludedIndices) > 0 {
		f.ExcludedIndices = make(map[int]bool, len(req.ExcludedIndices))
		for _, i := range req.ExcludedIndices {
			f.ExcludedIndices[i] = true
		}
	}
	return f
}

// loadTable returns the stored table for the requesting tab.
func (s *Server) loadTable(r *http.Request) (*sius.Table, error) {
	snap, ok := s.sessions.Get(tabID(r))
	if !ok || len(snap.Headers) == 0 || len(snap.Rows) == 0 {
		return nil, sius.ErrNoSession
	}
	return sius.NewTable(snap.Headers, snap.Rows), nil
}

// resolveColumns maps the table's headers to the identifier and score
// columns. A table without a primary score column cannot be analyzed.
func resolveColumns(headers []string) (id, primary, secondary string, err error) {
	suggested := sius.SuggestColumns(headers)
	if suggested.PrimaryScore == "" {
		return "", "", "", sius.ErrNoPrimaryScore
	}
	return suggested.StartNR, suggested.PrimaryScore, suggested.SecondaryScore, nil
}

// timeColumn picks the time column: the canonical "Time" header when present,
// else the first header containing "time".
func timeColumn(headers []string) string {
	for _, h := range headers {
		if h == sius.FieldTime {
			return h
		}
	}
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), "time") {
			return h
		}
	}
	return sius.FieldTime
}

// summaryJSON is the wire shape of one per-competitor summary row. The keys
// double as display column names in the UI table.
type summaryJSON struct {
	StartNR     string   `json:"Start NR"`
	Count       int      `json:"count"`
	DecimalSum  *float64 `json:"Decimal score_sum"`
	DecimalMean *float64 `json:"Decimal score_mean"`
	IntegerSum  *int64   `json:"Integer score_sum"`
	IntegerMean *float64 `json:"Integer score_mean"`
}

// summaryColumns is the display order of summary columns.
var summaryColumns = []string{
	"Start NR", "count",
	"Decimal score_sum", "Decimal score_mean",
	"Integer score_sum", "Integer score_mean",
}

// handleSummary returns the per-competitor decimal/integer summary over the
// currently filtered rows.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	t, err := s.loadTable(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	id, primary, secondary, err := resolveColumns(t.Headers)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	req := decodeAnalysisRequest(r)
	rows := req.filter(true).Apply(t)

	records, err := sius.SummarizeDecimalInteger(t, rows, id, primary, secondary)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	summary := make([]summaryJSON, 0, len(records))
	for _, rec := range records {
		summary = append(summary, summaryJSON{
			StartNR:     rec.StartNR,
			Count:       rec.Count,
			DecimalSum:  rec.DecimalSum,
			DecimalMean: rec.DecimalMean,
			IntegerSum:  rec.IntegerSum,
			IntegerMean: rec.IntegerMean,
		})
	}
	var columns []string
	if len(summary) > 0 {
		columns = summaryColumns
	}
	writeJSON(w, map[string]any{"summary": summary, "columns": columns})
}

// shotJSON is the wire shape of one shot row.
type shotJSON struct {
	Index     int      `json:"index"`
	Time      string   `json:"Time"`
	Primary   string   `json:"Primary score"`
	Secondary string   `json:"Secondary score"`
	Decimal   *float64 `json:"Decimal score"`
	Integer   *int64   `json:"Integer score"`
}

// handleShots returns the shots for one start number from the relay/start-NR
// filtered rows, newest first. Manual exclusions do not apply here; the shot
// list is where the official decides them.
func (s *Server) handleShots(w http.ResponseWriter, r *http.Request) {
	t, err := s.loadTable(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	id, primary, secondary, err := resolveColumns(t.Headers)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	req := decodeAnalysisRequest(r)
	if req.StartNR == "" {
		s.respondError(w, r, sius.ErrStartNRRequired, http.StatusBadRequest)
		return
	}
	rows := req.filter(false).Apply(t)

	shots, err := sius.ShotsForStartNR(t, rows, id, primary, secondary, timeColumn(t.Headers), req.StartNR)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	out := make([]shotJSON, 0, len(shots))
	for _, sh := range shots {
		out = append(out, shotJSON{
			Index:     sh.Index,
			Time:      sh.Time,
			Primary:   sh.Primary,
			Secondary: sh.Secondary,
			Decimal:   sh.Decimal,
			Integer:   sh.Integer,
		})
	}
	writeJSON(w, map[string]any{"shots": out})
}

// targetShotJSON is the wire shape of one plotted shot.
type targetShotJSON struct {
	ShotNum      int      `json:"shot_num"`
	X            *float64 `json:"x"`
	Y            *float64 `json:"y"`
	DecimalScore *float64 `json:"decimal_score"`
}

// handleTargetData returns the included shots for one start number with
// their X/Y impact coordinates for the target plot.
func (s *Server) handleTargetData(w http.ResponseWriter, r *http.Request) {
	t, err := s.loadTable(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	id, primary, secondary, err := resolveColumns(t.Headers)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	req := decodeAnalysisRequest(r)
	if req.StartNR == "" {
		s.respondError(w, r, sius.ErrStartNRRequired, http.StatusBadRequest)
		return
	}
	rows := req.filter(true).Apply(t)

	shots, err := sius.TargetShots(t, rows, id, primary, secondary, req.StartNR)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	out := make([]targetShotJSON, 0, len(shots))
	for _, sh := range shots {
		out = append(out, targetShotJSON{
			ShotNum:      sh.ShotNum,
			X:            sh.X,
			Y:            sh.Y,
			DecimalScore: sh.DecimalScore,
		})
	}
	writeJSON(w, map[string]any{"start_nr": req.StartNR, "shots": out})
}
