package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
	"github.com/insider-navs/backend/internal/pkg/optional"
)

func TestCreateFaculty_Defaults(t *testing.T) {
	var created *models.Faculty
	repo := &mockFacultyRepository{
		CreateFunc: func(ctx context.Context, faculty *models.Faculty) error {
			created = faculty
			return nil
		},
	}
	service := NewFacultyService(repo)

	faculty, err := service.CreateFaculty(context.Background(), &dto.FacultyCreateRequest{
		Name: "Dr. Priya Sharma",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, faculty.Availability, "availability should default to true")
	assert.NotNil(t, faculty.CoursesTaken, "courses_taken should default to an empty list, not nil")
	assert.Empty(t, faculty.CoursesTaken)
	assert.Nil(t, faculty.LocationID)
}

func TestCreateFaculty_ExplicitlyUnavailable(t *testing.T) {
	repo := &mockFacultyRepository{
		CreateFunc: func(ctx context.Context, faculty *models.Faculty) error {
			return nil
		},
	}
	service := NewFacultyService(repo)

	faculty, err := service.CreateFaculty(context.Background(), &dto.FacultyCreateRequest{
		Name:         "Dr. Priya Sharma",
		Availability: boolPtr(false),
		CoursesTaken: []string{"CSE1001"},
	})
	require.NoError(t, err)
	assert.False(t, faculty.Availability)
	assert.Equal(t, []string{"CSE1001"}, faculty.CoursesTaken)
}

func TestCreateFaculty_UnknownLocation(t *testing.T) {
	repo := &mockFacultyRepository{
		CreateFunc: func(ctx context.Context, faculty *models.Faculty) error {
			return apperrors.ErrFacultyLocationMissing
		},
	}
	service := NewFacultyService(repo)

	_, err := service.CreateFaculty(context.Background(), &dto.FacultyCreateRequest{
		Name:       "Dr. Priya Sharma",
		LocationID: strPtr("ghost-block"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "Location ID 'ghost-block' does not exist.", err.Error())
}

func TestGetFacultyByID_NotFound(t *testing.T) {
	repo := &mockFacultyRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Faculty, error) {
			return nil, apperrors.ErrFacultyNotFound
		},
	}
	service := NewFacultyService(repo)

	_, err := service.GetFacultyByID(context.Background(), 42)
	assert.True(t, errors.Is(err, apperrors.ErrFacultyNotFound))
}

func TestUpdateProfile_EmptyPatch(t *testing.T) {
	service := NewFacultyService(&mockFacultyRepository{})

	_, err := service.UpdateProfile(context.Background(), 1, &models.FacultyPatch{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Equal(t, "No update data provided", err.Error())
}

func TestUpdateProfile_PassesPatchThrough(t *testing.T) {
	var gotID int64
	var gotPatch *models.FacultyPatch
	repo := &mockFacultyRepository{
		UpdateProfileFunc: func(ctx context.Context, id int64, patch *models.FacultyPatch) (*models.Faculty, error) {
			gotID = id
			gotPatch = patch
			return &models.Faculty{ID: id, Name: "Dr. Priya Sharma", CoursesTaken: []string{}}, nil
		},
	}
	service := NewFacultyService(repo)

	patch := &models.FacultyPatch{
		CabinNumber:  optional.OfNull[string](),
		CoursesTaken: optional.Of([]string{"CSE1001", "CSE2004"}),
	}
	_, err := service.UpdateProfile(context.Background(), 7, patch)
	require.NoError(t, err)
	assert.Equal(t, int64(7), gotID)
	require.NotNil(t, gotPatch)
	assert.True(t, gotPatch.CabinNumber.Null)
	assert.Equal(t, []string{"CSE1001", "CSE2004"}, gotPatch.CoursesTaken.Val)
	assert.False(t, gotPatch.Name.Present)
}

func TestUpdateAvailability(t *testing.T) {
	repo := &mockFacultyRepository{
		UpdateAvailabilityFunc: func(ctx context.Context, id int64, availability bool) (*models.Faculty, error) {
			return &models.Faculty{ID: id, Name: "Dr. Priya Sharma", Availability: availability, CoursesTaken: []string{}}, nil
		},
	}
	service := NewFacultyService(repo)

	faculty, err := service.UpdateAvailability(context.Background(), 7, false)
	require.NoError(t, err)
	assert.False(t, faculty.Availability)
}

func TestUpdateAvailability_NotFound(t *testing.T) {
	repo := &mockFacultyRepository{
		UpdateAvailabilityFunc: func(ctx context.Context, id int64, availability bool) (*models.Faculty, error) {
			return nil, apperrors.ErrFacultyNotFound
		},
	}
	service := NewFacultyService(repo)

	_, err := service.UpdateAvailability(context.Background(), 42, true)
	assert.True(t, errors.Is(err, apperrors.ErrFacultyNotFound))
}

func TestDeleteFaculty_NotFound(t *testing.T) {
	repo := &mockFacultyRepository{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return apperrors.ErrFacultyNotFound
		},
	}
	service := NewFacultyService(repo)

	err := service.DeleteFaculty(context.Background(), 42)
	assert.True(t, errors.Is(err, apperrors.ErrFacultyNotFound))
}
