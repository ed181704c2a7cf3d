package importer

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/takziv/takziv/internal/rest"
)

type ImportHandler struct {
	importService ImportService
	maxFileSize   int64
}

func NewImportHandler(importService ImportService, maxFileSize int64) *ImportHandler {
	return &ImportHandler{importService: importService, maxFileSize: maxFileSize}
}

// Upload accepts a multipart form with a single "file" field, runs the
// import pipeline and returns the import summary. A rejected file yields a
// 400 with every reason listed; the store is left untouched.
func (handler *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(handler.maxFileSize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Read one byte past the ceiling so oversized uploads are still
	// reported by the file pre-check rather than silently truncated.
	content, err := io.ReadAll(io.LimitReader(file, handler.maxFileSize+1))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary, err := handler.importService.Import(header.Filename, content)
	if err != nil {
		var rejection *Rejection
		if errors.As(err, &rejection) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:  "Import rejected",
				Errors: rejection.Reasons,
			}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		log.Errorf("import failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
