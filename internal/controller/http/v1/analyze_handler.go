package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/kurochkinivan/sheet_analyzer/internal/domain"
	"github.com/kurochkinivan/sheet_analyzer/internal/pipeline"
)

const multipartMemory = 8 << 20

type Analyzer interface {
	AnalyzeSingle(ctx context.Context, file *domain.File, userContext string) (*domain.AnalysisResult, error)
	AnalyzeBatch(ctx context.Context, files []*domain.File, userContext string) (*domain.AnalysisResult, error)
}

type AnalyzeConfig struct {
	UploadDir     string
	OutputDir     string
	MaxUploadSize int64
}

type AnalyzeHandler struct {
	log      *slog.Logger
	cfg      AnalyzeConfig
	analyzer Analyzer
}

func NewAnalyzeHandler(log *slog.Logger, cfg AnalyzeConfig, analyzer Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:      log,
		cfg:      cfg,
		analyzer: analyzer,
	}
}

func (h *AnalyzeHandler) AnalyzeSingle(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	defer form.RemoveAll()

	headers := form.File["file"]
	if len(headers) == 0 {
		// Parts sent without a file name end up among the plain values.
		if _, present := form.Value["file"]; present {
			respondError(w, r, http.StatusBadRequest, "No selected file")
			return
		}
		respondError(w, r, http.StatusBadRequest, "No file part")
		return
	}

	header := headers[0]
	if header.Filename == "" {
		respondError(w, r, http.StatusBadRequest, "No selected file")
		return
	}

	if !allowedFile(header.Filename) {
		respondError(w, r, http.StatusBadRequest, "File type not allowed: "+header.Filename)
		return
	}

	file, err := h.save(header)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to save upload", slog.String("err", err.Error()))
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := h.analyzer.AnalyzeSingle(r.Context(), file, formValue(form, "context"))
	h.respondResult(w, r, result, err)
}

func (h *AnalyzeHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseForm(w, r)
	if !ok {
		return
	}
	defer form.RemoveAll()

	headers := form.File["files"]
	if len(headers) == 0 {
		if _, present := form.Value["files"]; present {
			respondError(w, r, http.StatusBadRequest, "No files selected")
			return
		}
		respondError(w, r, http.StatusBadRequest, "No files uploaded")
		return
	}

	for _, header := range headers {
		if header.Filename != "" && !allowedFile(header.Filename) {
			respondError(w, r, http.StatusBadRequest, "File type not allowed: "+header.Filename)
			return
		}
	}

	files := make([]*domain.File, 0, len(headers))
	for _, header := range headers {
		if header.Filename == "" {
			continue
		}

		file, err := h.save(header)
		if err != nil {
			h.log.WarnContext(r.Context(), "failed to save upload",
				slog.String("filename", header.Filename),
				slog.String("err", err.Error()),
			)
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		respondError(w, r, http.StatusBadRequest, "No valid files to process")
		return
	}

	result, err := h.analyzer.AnalyzeBatch(r.Context(), files, formValue(form, "context"))
	h.respondResult(w, r, result, err)
}

// Download serves a generated report as an attachment.
func (h *AnalyzeHandler) Download(w http.ResponseWriter, r *http.Request) {
	path, name, ok := h.resolve(w, r, h.cfg.OutputDir)
	if !ok {
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	http.ServeFile(w, r, path)
}

// Upload serves a previously uploaded file inline.
func (h *AnalyzeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	path, _, ok := h.resolve(w, r, h.cfg.UploadDir)
	if !ok {
		return
	}

	http.ServeFile(w, r, path)
}

func (h *AnalyzeHandler) parseForm(w http.ResponseWriter, r *http.Request) (*multipart.Form, bool) {
	tooLarge := fmt.Sprintf("File too large, the limit is %d bytes", h.cfg.MaxUploadSize)

	if r.ContentLength > h.cfg.MaxUploadSize {
		respondError(w, r, http.StatusRequestEntityTooLarge, tooLarge)
		return nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, tooLarge)
			return nil, false
		}

		respondError(w, r, http.StatusBadRequest, "No file part")
		return nil, false
	}

	return r.MultipartForm, true
}

func (h *AnalyzeHandler) save(header *multipart.FileHeader) (_ *domain.File, err error) {
	name := secureFilename(header.Filename)
	if name == "" {
		return nil, fmt.Errorf("invalid file name %q", header.Filename)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { err = errors.Join(err, src.Close()) }()

	path := filepath.Join(h.cfg.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", name, err)
	}
	defer func() { err = errors.Join(err, dst.Close()) }()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to store %q: %w", name, err)
	}

	return &domain.File{
		OriginalName: header.Filename,
		Name:         name,
		Path:         path,
	}, nil
}

func (h *AnalyzeHandler) respondResult(w http.ResponseWriter, r *http.Request, result *domain.AnalysisResult, err error) {
	switch {
	case errors.Is(err, pipeline.ErrNoValidData):
		respondError(w, r, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		h.log.ErrorContext(r.Context(), "analysis failed", slog.String("err", err.Error()))
		respondError(w, r, http.StatusInternalServerError, err.Error())
	default:
		render.JSON(w, r, result)
	}
}

// resolve maps the filename route parameter to a regular file inside dir.
// Names that would leave dir are reported as not found.
func (h *AnalyzeHandler) resolve(w http.ResponseWriter, r *http.Request, dir string) (string, string, bool) {
	name, err := url.PathUnescape(chi.URLParam(r, "filename"))
	if err != nil || name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		respondError(w, r, http.StatusNotFound, "File not found")
		return "", "", false
	}

	path := filepath.Join(dir, name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		respondError(w, r, http.StatusNotFound, "File not found")
		return "", "", false
	}

	return path, name, true
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}
