package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/angristan/homeshowcase/internal/models"
	"github.com/angristan/homeshowcase/internal/store"
	"github.com/gorilla/mux"
)

const (
	defaultPageSize = 20
	maxBodyBytes    = 64 << 10
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetDefaultProperty(r.Context())
	if err != nil {
		s.storeError(w, err, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) getPropertyWithRooms(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetDefaultPropertyWithRooms(r.Context())
	if err != nil {
		s.storeError(w, err, "Property not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) listRooms(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := queryInt(w, r, "property_id", 0, 1, -1)
	if !ok {
		return
	}

	if propertyID == 0 {
		p, err := s.store.GetDefaultProperty(r.Context())
		if err != nil {
			s.storeError(w, err, "No property found")
			return
		}
		propertyID = int(p.ID)
	}

	rooms, err := s.store.ListRooms(r.Context(), int64(propertyID))
	if err != nil {
		s.storeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	room, err := s.store.GetRoom(r.Context(), id)
	if err != nil {
		s.storeError(w, err, "Room not found")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) createViewingRequest(w http.ResponseWriter, r *http.Request) {
	var req models.ViewingRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeValidation(w, fieldError{Loc: []string{"body"}, Msg: "Invalid JSON body: " + err.Error()})
		return
	}

	if err := req.Validate(s.now()); err != nil {
		var fieldErrs models.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeValidation(w, bodyErrors(fieldErrs)...)
			return
		}
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stored, err := s.store.CreateViewingRequest(r.Context(), &req)
	if err != nil {
		s.storeError(w, err, "Property not found")
		return
	}

	slog.Info("viewing request received",
		"id", stored.ID,
		"property_id", stored.PropertyID,
		"preferred_date", stored.PreferredDate,
	)
	writeJSON(w, http.StatusCreated, stored)
}

// viewingRequestList is a page of viewing requests
type viewingRequestList struct {
	Requests []*models.ViewingRequest `json:"requests"`
	Total    int                      `json:"total"`
}

func (s *Server) listViewingRequests(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := queryInt(w, r, "property_id", 0, 1, -1)
	if !ok {
		return
	}
	skip, ok := queryInt(w, r, "skip", 0, 0, -1)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", defaultPageSize, 1, store.MaxPageSize)
	if !ok {
		return
	}

	requests, total, err := s.store.ListViewingRequests(r.Context(), int64(propertyID), skip, limit)
	if err != nil {
		s.storeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, viewingRequestList{Requests: requests, Total: total})
}

func (s *Server) updateViewingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeValidation(w, fieldError{Loc: []string{"body"}, Msg: "Invalid JSON body: " + err.Error()})
		return
	}

	updated, err := s.store.UpdateViewingStatus(r.Context(), id, body.Status)
	if errors.Is(err, models.ErrInvalidStatus) {
		writeValidation(w, fieldError{Loc: []string{"body", "status"}, Msg: "Invalid status"})
		return
	}
	if err != nil {
		s.storeError(w, err, "Viewing request not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// storeError maps store failures to responses. notFound is the detail used
// for store.ErrNotFound.
func (s *Server) storeError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, store.ErrNotFound) && notFound != "" {
		writeDetail(w, http.StatusNotFound, notFound)
		return
	}
	slog.Error("store request failed", "error", err)
	writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeValidation(w, fieldError{Loc: []string{"path", "id"}, Msg: "Input should be a valid integer"})
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter. A negative hi means
// no upper bound.
func queryInt(w http.ResponseWriter, r *http.Request, name string, def, lo, hi int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		writeValidation(w, fieldError{Loc: []string{"query", name}, Msg: "Input should be a valid integer"})
		return 0, false
	}
	if v < lo {
		writeValidation(w, fieldError{Loc: []string{"query", name}, Msg: "Input should be greater than or equal to " + strconv.Itoa(lo)})
		return 0, false
	}
	if hi >= 0 && v > hi {
		writeValidation(w, fieldError{Loc: []string{"query", name}, Msg: "Input should be less than or equal to " + strconv.Itoa(hi)})
		return 0, false
	}
	return v, true
}
