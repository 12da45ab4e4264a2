package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/solver"
	"github.com/daniel-ldg/simple-nonogram-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func toHints(in [][]int) []domain.Hints {
	out := make([]domain.Hints, len(in))
	for i, hs := range in {
		out[i] = domain.Hints(hs)
	}
	return out
}

// ---- Solve ----

type solveReq struct {
	Rows [][]int `json:"rows"`
	Cols [][]int `json:"cols"`
}

type solveResp struct {
	Grid       [][]bool `json:"grid,omitempty"`
	Height     int      `json:"height,omitempty"`
	Width      int      `json:"width,omitempty"`
	Status     string   `json:"status"`
	Iterations int      `json:"iterations,omitempty"`
	Probes     int      `json:"probes,omitempty"`
	DurationMs int64    `json:"durationMs,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Status: "error", Error: "invalid JSON: " + err.Error()})
		return
	}
	board, st, err := h.UC.Solve(r.Context(), toHints(req.Rows), toHints(req.Cols))
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, solver.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(solveResp{
			Status:     solver.StatusOf(err).String(),
			Iterations: st.Iterations,
			Probes:     st.Probes,
			DurationMs: st.Duration.Milliseconds(),
			Error:      err.Error(),
		})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Grid:       board.FilledMask(),
		Height:     board.Height,
		Width:      board.Width,
		Status:     solver.StatusOf(nil).String(),
		Iterations: st.Iterations,
		Probes:     st.Probes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateReq struct {
	Rows [][]int `json:"rows"`
	Cols [][]int `json:"cols"`
}
type validateResp struct {
	OK        bool             `json:"ok"`
	Conflicts []domain.LineRef `json:"conflicts,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), toHints(req.Rows), toHints(req.Cols))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Rows  [][]int `json:"rows"`
	Cols  [][]int `json:"cols"`
	Cells [][]int `json:"cells,omitempty"` // 0 unknown, 1 empty, 2 filled; omitted means blank board
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	p := &domain.Puzzle{Rows: toHints(req.Rows), Cols: toHints(req.Cols)}
	if len(p.Rows) == 0 || len(p.Cols) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "missing hints"})
		return
	}
	board := domain.NewBoard(len(p.Rows), len(p.Cols))
	for ri, row := range req.Cells {
		if ri >= board.Height {
			break
		}
		for ci, v := range row {
			if ci >= board.Width {
				break
			}
			if v == int(domain.Empty) || v == int(domain.Filled) {
				board.Cells[ri][ci] = domain.Cell(v)
			}
		}
	}
	hh, ok, err := h.UC.Hint(r.Context(), p, board)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(p.Rows) == 0 || len(p.Cols) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "missing hints"})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}
