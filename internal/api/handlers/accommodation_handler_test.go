package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/backend/internal/domain/entities"
	"github.com/travelease/backend/internal/domain/repositories"
	apperrors "github.com/travelease/backend/pkg/errors"
)

type stubAccommodationService struct {
	filter  repositories.AccommodationFilter
	gotID   int64
	results []*entities.Accommodation
	single  *entities.Accommodation
	err     error
}

func (s *stubAccommodationService) Search(_ context.Context, filter repositories.AccommodationFilter) ([]*entities.Accommodation, error) {
	s.filter = filter
	return s.results, s.err
}

func (s *stubAccommodationService) Get(_ context.Context, id int64) (*entities.Accommodation, error) {
	s.gotID = id
	return s.single, s.err
}

func TestSearchPassesFilter(t *testing.T) {
	svc := &stubAccommodationService{results: []*entities.Accommodation{
		{ID: 1, Name: "Cozy Central Hostel", City: "Bangalore"},
	}}
	handler := NewAccommodationHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accommodations/search?city=bangalore&type=hostel", nil)
	handler.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bangalore", svc.filter.City)
	assert.Equal(t, "hostel", svc.filter.Type)
	assert.Contains(t, rec.Body.String(), "Cozy Central Hostel")
}

func TestSearchIgnoresTypeAll(t *testing.T) {
	svc := &stubAccommodationService{}
	handler := NewAccommodationHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accommodations/search?type=all", nil)
	handler.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.filter.Type)
}

func TestGetAccommodation(t *testing.T) {
	svc := &stubAccommodationService{single: &entities.Accommodation{
		ID:           2,
		Name:         "Backpacker Paradise",
		SafetyRating: 4,
		Verified:     true,
	}}
	handler := NewAccommodationHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accommodations/2", nil)
	req.SetPathValue("id", "2")
	handler.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), svc.gotID)
	assert.Contains(t, rec.Body.String(), "Backpacker Paradise")
	assert.Contains(t, rec.Body.String(), `"verified":true`)
}

func TestGetAccommodationInvalidID(t *testing.T) {
	handler := NewAccommodationHandler(&stubAccommodationService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accommodations/abc", nil)
	req.SetPathValue("id", "abc")
	handler.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid accommodation id")
}

func TestGetAccommodationNotFound(t *testing.T) {
	svc := &stubAccommodationService{err: apperrors.NewNotFoundError("accommodation not found")}
	handler := NewAccommodationHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accommodations/99", nil)
	req.SetPathValue("id", "99")
	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "accommodation not found")
}
