// Package v1 provides the operations API: triggering syncs, inspecting the
// skip ledger and sync runs, and raising data requests.
package v1

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/schoolgis/schoolsync/internal/api/common"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
)

// Store is the persistence the operations API reads and writes.
type Store interface {
	store.SkipLedger
	store.RunStore
	store.DataRequestStore
}

// Defaults fill the detail sync fields a request leaves out.
type Defaults struct {
	YearID    int
	ChunkSize int
	Strict    bool
}

// Routes holds the handlers of the operations API
type Routes struct {
	manager  pkgsync.Manager
	store    Store
	defaults Defaults
}

// NewRoutes creates a new Routes instance
func NewRoutes(manager pkgsync.Manager, st Store, defaults Defaults) *Routes {
	return &Routes{manager: manager, store: st, defaults: defaults}
}

// Router creates the router of the operations API
func Router(manager pkgsync.Manager, st Store, defaults Defaults) http.Handler {
	routes := NewRoutes(manager, st, defaults)

	r := chi.NewRouter()

	r.Post("/sync/directory", routes.syncDirectory)
	r.Post("/sync/details", routes.syncDetails)

	r.Get("/skipped", routes.listSkipped)
	r.Get("/skipped/summary", routes.skippedSummary)

	r.Get("/runs/{id}", routes.getRun)

	r.Post("/requests", routes.createRequest)
	r.Get("/requests/{id}", routes.getRequest)

	return r
}

// DirectorySyncRequest is the body of POST /v1/sync/directory
type DirectorySyncRequest struct {
	StateCode    string `json:"stateCode"`
	DistrictCode string `json:"districtCode"`
}

// DetailSyncRequest is the body of POST /v1/sync/details. Unset fields take the configured defaults.
type DetailSyncRequest struct {
	StateCode    string   `json:"stateCode"`
	DistrictCode string   `json:"districtCode"`
	YearID       int      `json:"yearId,omitempty"`
	Identifiers  []string `json:"identifiers,omitempty"`
	ChunkSize    int      `json:"chunkSize,omitempty"`
	Strict       *bool    `json:"strict,omitempty"`
}

// DataRequestBody is the body of POST /v1/requests
type DataRequestBody struct {
	UserID        string   `json:"userId"`
	StateCode     string   `json:"stateCode"`
	DistrictCodes []string `json:"districtCodes"`
}

// CreatedResponse is returned when a data request is stored
type CreatedResponse struct {
	ID int64 `json:"id"`
}

func (rr *Routes) syncDirectory(w http.ResponseWriter, r *http.Request) {
	var body DirectorySyncRequest
	if err := common.DecodeJSONBody(w, r, &body); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	region := schools.NewRegion(body.StateCode, body.DistrictCode)
	if err := region.Validate(); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := rr.manager.SyncDirectory(r.Context(), region)
	if err != nil {
		writeSyncError(w, "directory", region, err)
		return
	}
	common.WriteJSONResponse(w, result, http.StatusOK)
}

func (rr *Routes) syncDetails(w http.ResponseWriter, r *http.Request) {
	var body DetailSyncRequest
	if err := common.DecodeJSONBody(w, r, &body); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := pkgsync.DetailRequest{
		Region:      schools.NewRegion(body.StateCode, body.DistrictCode),
		YearID:      body.YearID,
		Identifiers: body.Identifiers,
		ChunkSize:   body.ChunkSize,
		Strict:      rr.defaults.Strict,
	}
	if req.YearID <= 0 {
		req.YearID = rr.defaults.YearID
	}
	if req.ChunkSize <= 0 {
		req.ChunkSize = rr.defaults.ChunkSize
	}
	if body.Strict != nil {
		req.Strict = *body.Strict
	}
	if len(body.Identifiers) == 0 {
		if err := req.Region.Validate(); err != nil {
			common.WriteErrorResponse(w, "identifiers or a region are required: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	result, err := rr.manager.SyncDetails(r.Context(), req)
	if err != nil {
		writeSyncError(w, "detail", req.Region, err)
		return
	}
	common.WriteJSONResponse(w, result, http.StatusOK)
}

func writeSyncError(w http.ResponseWriter, kind string, region schools.Region, err error) {
	if errors.Is(err, pkgsync.ErrRegionLocked) {
		common.WriteErrorResponse(w, err.Error(), http.StatusConflict)
		return
	}
	slog.Error("Sync request failed", "kind", kind, "region", region.String(), "error", err)
	common.WriteErrorResponse(w, fmt.Sprintf("%s sync failed: %v", kind, err), http.StatusInternalServerError)
}

func (rr *Routes) listSkipped(w http.ResponseWriter, r *http.Request) {
	page, err := common.QueryInt(r, "page", 1)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := common.QueryInt(r, "limit", store.DefaultPageSize)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	result, err := rr.store.List(r.Context(), store.SkipFilter{
		StateCode:    strings.TrimSpace(q.Get("stateCode")),
		DistrictCode: strings.TrimSpace(q.Get("districtCode")),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		slog.Error("Failed to list skipped schools", "error", err)
		common.WriteErrorResponse(w, "Failed to list skipped schools", http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, result, http.StatusOK)
}

func (rr *Routes) skippedSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := rr.store.Summary(r.Context())
	if err != nil {
		slog.Error("Failed to summarize skipped schools", "error", err)
		common.WriteErrorResponse(w, "Failed to summarize skipped schools", http.StatusInternalServerError)
		return
	}
	if summary == nil {
		summary = []store.SkipSummary{}
	}
	common.WriteJSONResponse(w, summary, http.StatusOK)
}

func (rr *Routes) getRun(w http.ResponseWriter, r *http.Request) {
	raw, err := common.GetAndValidateURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		common.WriteErrorResponse(w, "id must be a UUID", http.StatusBadRequest)
		return
	}

	run, err := rr.store.GetRun(r.Context(), id)
	if err != nil {
		writeLookupError(w, "sync run", err)
		return
	}
	common.WriteJSONResponse(w, run, http.StatusOK)
}

// createRequest stores a data request unless a pending one already covers one of its districts.
func (rr *Routes) createRequest(w http.ResponseWriter, r *http.Request) {
	var body DataRequestBody
	if err := common.DecodeJSONBody(w, r, &body); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	stateCode := strings.TrimSpace(body.StateCode)
	districts := make([]string, 0, len(body.DistrictCodes))
	for _, d := range body.DistrictCodes {
		if d = strings.TrimSpace(d); d != "" {
			districts = append(districts, d)
		}
	}
	if stateCode == "" || len(districts) == 0 {
		common.WriteErrorResponse(w, "stateCode and at least one districtCode are required", http.StatusBadRequest)
		return
	}

	for _, d := range districts {
		pending, err := rr.store.FindOverlappingPending(r.Context(), schools.Region{StateCode: stateCode, DistrictCode: d})
		if err != nil {
			slog.Error("Failed to check pending data requests", "error", err)
			common.WriteErrorResponse(w, "Failed to check pending requests", http.StatusInternalServerError)
			return
		}
		if len(pending) > 0 {
			common.WriteErrorResponse(w,
				fmt.Sprintf("request %d is already pending for district %s", pending[0].ID, d),
				http.StatusConflict)
			return
		}
	}

	id, err := rr.store.CreateRequest(r.Context(), strings.TrimSpace(body.UserID), stateCode, districts)
	if err != nil {
		slog.Error("Failed to create data request", "error", err)
		common.WriteErrorResponse(w, "Failed to create data request", http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, CreatedResponse{ID: id}, http.StatusCreated)
}

func (rr *Routes) getRequest(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetAndValidateURLParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		common.WriteErrorResponse(w, "id must be a positive integer", http.StatusBadRequest)
		return
	}

	req, err := rr.store.GetRequest(r.Context(), n)
	if err != nil {
		writeLookupError(w, "data request", err)
		return
	}
	common.WriteJSONResponse(w, req, http.StatusOK)
}

func writeLookupError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		common.WriteErrorResponse(w, what+" not found", http.StatusNotFound)
		return
	}
	slog.Error("Lookup failed", "what", what, "error", err)
	common.WriteErrorResponse(w, "Failed to get "+what, http.StatusInternalServerError)
}
