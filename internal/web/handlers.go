package web

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmvcosta/vcfkit/internal/core"
	"github.com/jmvcosta/vcfkit/internal/logging"
	"github.com/jmvcosta/vcfkit/internal/transform"
	"github.com/jmvcosta/vcfkit/internal/vcard"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger uploads spill to temp files.
const maxMultipartMemory = 4 << 20

// handleHealthz reports liveness and limiter state.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{"status": "ok"}
	if l := s.service.Limiter(); l != nil {
		status["processing"] = l.Status()
	}
	respondJSON(w, status)
}

// transformInfo is the JSON shape of one catalog entry.
type transformInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// handleListTransforms returns the transform catalog in pipeline order.
func (s *Server) handleListTransforms(w http.ResponseWriter, r *http.Request) {
	defs := s.service.Transforms()
	infos := make([]transformInfo, len(defs))
	for i, def := range defs {
		infos[i] = transformInfo{Key: def.Key, Label: def.Label}
	}
	respondJSON(w, infos)
}

// handleProcess accepts a multipart VCF upload plus operation flags and
// responds with the processed document as a .vcf attachment.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, r, fmt.Errorf("parse multipart form: %w", err), statusForError(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, fmt.Errorf("no file attached: %w", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	opts := optionsFromForm(r)
	jobID := uuid.New().String()
	logger := logging.WithFields(r.Context(),
		"job_id", jobID,
		"file", header.Filename,
		"size", header.Size,
	)

	output, stats, err := s.service.ProcessReader(r.Context(), file, opts)
	if err != nil {
		respondError(w, r, err, statusForError(err))
		return
	}

	logger.Info("processing complete",
		"records", stats.Records,
		"applied", strings.Join(stats.Applied, ","),
		"sorted", stats.Sorted,
	)

	w.Header().Set("X-Job-ID", jobID)
	w.Header().Set("X-Record-Count", strconv.Itoa(stats.Records))
	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment",
		map[string]string{"filename": outputFilename(header.Filename, s.cfg.Output.ProcessedSuffix)}))
	w.Write([]byte(output))
}

// optionsFromForm reads the operation flags from form or query values.
// Flag names match the transform registry keys, plus "sort".
func optionsFromForm(r *http.Request) transform.Options {
	flag := func(name string) bool {
		v := strings.ToLower(strings.TrimSpace(r.FormValue(name)))
		return v == "1" || v == "true" || v == "on" || v == "yes"
	}

	return transform.Options{
		Readable:       flag("readable"),
		RemovePictures: flag("remove-pictures"),
		RemoveTypes:    flag("remove-types"),
		FormatNumbers:  flag("format-numbers"),
		FormatNames:    flag("format-names"),
		AutoSetTypes:   flag("auto-set-types"),
		UpgradeVersion: flag("update-version"),
		Sort:           flag("sort"),
	}
}

// statusForError maps processing errors to HTTP status codes.
func statusForError(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, core.ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, core.ErrNoOperations),
		errors.Is(err, vcard.ErrMalformedDocument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// outputFilename derives the attachment name from the uploaded name,
// stripping any client-supplied path components.
func outputFilename(uploaded, suffix string) string {
	base := filepath.Base(strings.ReplaceAll(uploaded, "\\", "/"))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || stem == "." {
		stem = "contacts"
	}
	// filepath.Ext(".") is "." which is not a usable extension.
	if ext == "" || ext == "." {
		ext = ".vcf"
	}
	return stem + suffix + ext
}
