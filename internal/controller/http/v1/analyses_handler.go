package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
)

type AnalysesRepository interface {
	Analyses(ctx context.Context, limit, offset uint64) ([]*domain.Analysis, int, error)
}

type FileSummariesRepository interface {
	FileSummaries(ctx context.Context, analysisIDs ...uuid.UUID) (map[uuid.UUID][]domain.FileSummary, error)
}

type AnalysesHandler struct {
	analysesRepository      AnalysesRepository
	fileSummariesRepository FileSummariesRepository
}

// NewAnalysesHandler serves the analysis journal. With a nil repository
// every request is answered with 503.
func NewAnalysesHandler(analysesRepository AnalysesRepository, fileSummariesRepository FileSummariesRepository) *AnalysesHandler {
	return &AnalysesHandler{
		analysesRepository:      analysesRepository,
		fileSummariesRepository: fileSummariesRepository,
	}
}

type GetAnalysesResponse struct {
	Analyses   []*domain.Analysis `json:"analyses"`
	Pagination Pagination         `json:"pagination"`
}

func (h *AnalysesHandler) GetAnalyses(w http.ResponseWriter, r *http.Request) {
	if h.analysesRepository == nil {
		respondError(w, r, http.StatusServiceUnavailable, "analysis journal is disabled")
		return
	}

	page, limit, err := h.parsePagination(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	analyses, total, err := h.analysesRepository.Analyses(r.Context(), limit, offset)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if h.fileSummariesRepository != nil && len(analyses) > 0 {
		ids := make([]uuid.UUID, len(analyses))
		for i, a := range analyses {
			ids[i] = a.ID
		}

		files, err := h.fileSummariesRepository.FileSummaries(r.Context(), ids...)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		for _, a := range analyses {
			a.Files = files[a.ID]
		}
	}

	if analyses == nil {
		analyses = []*domain.Analysis{}
	}

	render.JSON(w, r, GetAnalysesResponse{
		Analyses:   analyses,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *AnalysesHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}
