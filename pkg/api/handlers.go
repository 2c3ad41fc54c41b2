package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution"
	"github.com/hadesxkore/bhss-distribution/pkg/distribution/models"
)

var validate = validator.New()

// batchItem is one row of a save-batch request.
type batchItem struct {
	ID           string             `json:"id"`
	Municipality string             `json:"municipality" validate:"required"`
	School       string             `json:"school" validate:"required"`
	Quantities   map[string]float64 `json:"quantities" validate:"required"`
}

// saveBatchRequest is the body of POST /batches.
type saveBatchRequest struct {
	BHSSKitchenName string      `json:"bhssKitchenName" validate:"required"`
	SheetName       string      `json:"sheetName"`
	SourceFileName  string      `json:"sourceFileName"`
	HeaderTotal     *float64    `json:"headerTotal"`
	Items           []batchItem `json:"items" validate:"required,min=1,dive"`
}

// updateRowRequest is the body of PATCH /rows/{id}.
type updateRowRequest struct {
	Field string  `json:"field" validate:"required"`
	Value float64 `json:"value"`
}

func (s *Server) commodity(w http.ResponseWriter, r *http.Request) (distribution.Commodity, bool) {
	c, err := distribution.ParseCommodity(chi.URLParam(r, "commodity"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_commodity", err.Error())
		return "", false
	}
	return c, true
}

// handleImport parses an uploaded workbook and returns the parsed batch
// preview. Nothing is persisted; the front-end reviews the rows and
// saves them as a batch separately.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	c, ok := s.commodity(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_upload", "invalid multipart upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_upload", `missing "file" part`)
		return
	}
	defer file.Close()

	res, err := distribution.ParseReader(file, c, r.FormValue("sheet"))
	if err != nil {
		writeParseError(w, err)
		return
	}
	res.SourceFileName = header.Filename

	writeJSON(w, http.StatusOK, res)
}

// handleSaveBatch persists a batch, replacing the commodity's previous
// one. Quantity field names are checked against the commodity's field
// set so a stray key cannot slip into storage.
func (s *Server) handleSaveBatch(w http.ResponseWriter, r *http.Request) {
	c, ok := s.commodity(w, r)
	if !ok {
		return
	}

	var req saveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_batch", err.Error())
		return
	}
	for i, item := range req.Items {
		for field := range item.Quantities {
			if !c.HasQuantityField(field) {
				msg := fmt.Sprintf("items[%d]: unknown quantity field %q for %s", i, field, c)
				writeError(w, http.StatusUnprocessableEntity, "unknown_field", msg)
				return
			}
		}
	}

	batch := &models.Batch{
		ID:              uuid.NewString(),
		Commodity:       c.String(),
		BHSSKitchenName: req.BHSSKitchenName,
		SheetName:       req.SheetName,
		SourceFileName:  req.SourceFileName,
		HeaderTotal:     req.HeaderTotal,
		Items:           make([]models.Row, len(req.Items)),
		CreatedAt:       time.Now().UTC(),
	}
	for i, item := range req.Items {
		id := item.ID
		if id == "" {
			id = models.RowID(item.Municipality, item.School, i)
		}
		batch.Items[i] = models.Row{
			ID:           id,
			Municipality: item.Municipality,
			School:       item.School,
			Quantities:   item.Quantities,
		}
	}

	if err := s.store.SaveBatch(r.Context(), batch); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, batch)
}

// handleLatestBatch returns the batch a distribution page loads on open.
func (s *Server) handleLatestBatch(w http.ResponseWriter, r *http.Request) {
	c, ok := s.commodity(w, r)
	if !ok {
		return
	}

	batch, err := s.store.LatestBatch(r.Context(), c.String())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

// handleUpdateRow applies a single-cell edit to the latest batch.
func (s *Server) handleUpdateRow(w http.ResponseWriter, r *http.Request) {
	c, ok := s.commodity(w, r)
	if !ok {
		return
	}
	rowID := chi.URLParam(r, "rowID")

	var req updateRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_update", err.Error())
		return
	}
	if !c.HasQuantityField(req.Field) {
		msg := fmt.Sprintf("unknown quantity field %q for %s", req.Field, c)
		writeError(w, http.StatusUnprocessableEntity, "unknown_field", msg)
		return
	}

	if err := s.store.UpdateRow(r.Context(), c.String(), rowID, req.Field, req.Value); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
