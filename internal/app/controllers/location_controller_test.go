package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
)

func setupLocationRouter(service *mockLocationService) *gin.Engine {
	router := gin.New()
	controller := NewLocationController(service)

	api := router.Group("/api")
	api.GET("/locations", controller.GetLocations)
	api.POST("/locations", controller.CreateLocation)
	api.PUT("/locations/:id", controller.UpdateLocation)
	api.DELETE("/locations/:id", controller.DeleteLocation)
	return router
}

func TestGetLocations(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		GetAllLocationsFunc: func(ctx context.Context) ([]*models.Location, error) {
			return []*models.Location{
				{ID: "ab1-block", Label: "AB1 Block", Type: "location"},
			}, nil
		},
	})

	w := performRequest(router, http.MethodGet, "/api/locations", "")
	require.Equal(t, http.StatusOK, w.Code)

	var locations []models.Location
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "ab1-block", locations[0].ID)
}

func TestGetLocations_EmptyReturnsArray(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		GetAllLocationsFunc: func(ctx context.Context) ([]*models.Location, error) {
			return []*models.Location{}, nil
		},
	})

	w := performRequest(router, http.MethodGet, "/api/locations", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateLocation_Returns201(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		CreateLocationFunc: func(ctx context.Context, req *dto.LocationCreateRequest) (*models.Location, error) {
			return &models.Location{ID: req.ID, Label: req.Label, Type: "location"}, nil
		},
	})

	w := performRequest(router, http.MethodPost, "/api/locations",
		`{"id":"ab1-block","label":"AB1 Block"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var location models.Location
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &location))
	assert.Equal(t, "ab1-block", location.ID)
	assert.Equal(t, "location", location.Type)
}

func TestCreateLocation_MissingLabel(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{})

	w := performRequest(router, http.MethodPost, "/api/locations", `{"id":"ab1-block"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Detail)
}

func TestCreateLocation_DuplicateIDReturns400(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		CreateLocationFunc: func(ctx context.Context, req *dto.LocationCreateRequest) (*models.Location, error) {
			return nil, apperrors.NewConflictError("Location ID 'ab1-block' already exists.")
		},
	})

	w := performRequest(router, http.MethodPost, "/api/locations",
		`{"id":"ab1-block","label":"AB1 Block"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Location ID 'ab1-block' already exists.", resp.Detail)
}

func TestUpdateLocation_NotFoundReturns404(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		UpdateLocationFunc: func(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error) {
			return nil, apperrors.ErrLocationNotFound
		},
	})

	w := performRequest(router, http.MethodPut, "/api/locations/missing", `{"label":"New"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Location not found", resp.Detail)
}

func TestUpdateLocation_DistinguishesAbsentFromNull(t *testing.T) {
	var gotPatch *models.LocationPatch
	router := setupLocationRouter(&mockLocationService{
		UpdateLocationFunc: func(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error) {
			gotPatch = patch
			return &models.Location{ID: id, Label: "AB1 Block", Type: "location"}, nil
		},
	})

	w := performRequest(router, http.MethodPut, "/api/locations/ab1-block",
		`{"label":"AB1 Block","subtitle":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, gotPatch)
	assert.True(t, gotPatch.Label.Present)
	assert.False(t, gotPatch.Label.Null)
	assert.Equal(t, "AB1 Block", gotPatch.Label.Val)
	assert.True(t, gotPatch.Subtitle.Present, "subtitle was sent as null")
	assert.True(t, gotPatch.Subtitle.Null)
	assert.False(t, gotPatch.Type.Present, "type was not in the payload")
}

func TestDeleteLocation_Success(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		DeleteLocationFunc: func(ctx context.Context, id string) error {
			return nil
		},
	})

	w := performRequest(router, http.MethodDelete, "/api/locations/ab1-block", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DeleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Location deleted successfully", resp.Message)
}

func TestDeleteLocation_InUseReturns400(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		DeleteLocationFunc: func(ctx context.Context, id string) error {
			return apperrors.NewConflictError("Cannot delete location: It is currently assigned to one or more faculty members.")
		},
	})

	w := performRequest(router, http.MethodDelete, "/api/locations/ab1-block", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cannot delete location: It is currently assigned to one or more faculty members.", resp.Detail)
}

func TestDeleteLocation_StoreErrorReturns500(t *testing.T) {
	router := setupLocationRouter(&mockLocationService{
		DeleteLocationFunc: func(ctx context.Context, id string) error {
			return errors.New("connection refused")
		},
	})

	w := performRequest(router, http.MethodDelete, "/api/locations/ab1-block", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Detail, "raw store errors must not leak")
}
