package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/umputun/trackscope/pkg/repository"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// itemsHandler returns collected items of one kind, newest first
func (s *Server) itemsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind := r.PathValue("kind")
	switch kind {
	case repository.KindPeople, repository.KindCompanies, repository.KindNews:
	default:
		renderError(w, r, fmt.Errorf("unknown kind %q", kind), http.StatusBadRequest)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = val
	}

	items, err := s.items.GetItems(ctx, kind, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get %s items: %v", kind, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	total, err := s.items.CountItems(ctx, kind)
	if err != nil {
		log.Printf("[ERROR] failed to count %s items: %v", kind, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []repository.Item{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"kind":  kind,
		"total": total,
		"items": items,
	})
}

// latestDigestHandler returns the most recent digest
func (s *Server) latestDigestHandler(w http.ResponseWriter, r *http.Request) {
	digest, err := s.digests.LatestDigest(r.Context())
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("no digest yet"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get latest digest: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, digest)
}

// digestByDateHandler returns the digest for a specific day
func (s *Server) digestByDateHandler(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if !dateRe.MatchString(date) {
		renderError(w, r, fmt.Errorf("invalid date %q, use YYYY-MM-DD", date), http.StatusBadRequest)
		return
	}

	digest, err := s.digests.DigestByDate(r.Context(), date)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("no digest for %s", date), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get digest for %s: %v", date, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, digest)
}
