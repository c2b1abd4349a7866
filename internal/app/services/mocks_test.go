package services

import (
	"context"

	"github.com/insider-navs/backend/internal/app/models"
)

// Function-field mocks for the repository interfaces. Each test assigns only
// the functions it needs; unassigned calls panic, which points straight at
// the unexpected call.

type mockLocationRepository struct {
	GetAllFunc  func(ctx context.Context) ([]*models.Location, error)
	GetByIDFunc func(ctx context.Context, id string) (*models.Location, error)
	CreateFunc  func(ctx context.Context, location *models.Location) error
	UpdateFunc  func(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockLocationRepository) GetAll(ctx context.Context) ([]*models.Location, error) {
	return m.GetAllFunc(ctx)
}

func (m *mockLocationRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockLocationRepository) Create(ctx context.Context, location *models.Location) error {
	return m.CreateFunc(ctx, location)
}

func (m *mockLocationRepository) Update(ctx context.Context, id string, patch *models.LocationPatch) (*models.Location, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockLocationRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockFacultyRepository struct {
	GetAllFunc             func(ctx context.Context) ([]*models.Faculty, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*models.Faculty, error)
	CreateFunc             func(ctx context.Context, faculty *models.Faculty) error
	UpdateProfileFunc      func(ctx context.Context, id int64, patch *models.FacultyPatch) (*models.Faculty, error)
	UpdateAvailabilityFunc func(ctx context.Context, id int64, availability bool) (*models.Faculty, error)
	DeleteFunc             func(ctx context.Context, id int64) error
}

func (m *mockFacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	return m.GetAllFunc(ctx)
}

func (m *mockFacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockFacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return m.CreateFunc(ctx, faculty)
}

func (m *mockFacultyRepository) UpdateProfile(ctx context.Context, id int64, patch *models.FacultyPatch) (*models.Faculty, error) {
	return m.UpdateProfileFunc(ctx, id, patch)
}

func (m *mockFacultyRepository) UpdateAvailability(ctx context.Context, id int64, availability bool) (*models.Faculty, error) {
	return m.UpdateAvailabilityFunc(ctx, id, availability)
}

func (m *mockFacultyRepository) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type mockFlashNewsRepository struct {
	GetAllFunc func(ctx context.Context) ([]*models.FlashNews, error)
	CreateFunc func(ctx context.Context, message string) (*models.FlashNews, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (m *mockFlashNewsRepository) GetAll(ctx context.Context) ([]*models.FlashNews, error) {
	return m.GetAllFunc(ctx)
}

func (m *mockFlashNewsRepository) Create(ctx context.Context, message string) (*models.FlashNews, error) {
	return m.CreateFunc(ctx, message)
}

func (m *mockFlashNewsRepository) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type mockUserRepository struct {
	GetAdminByUsernameFunc       func(ctx context.Context, username string) (*models.AdminUser, error)
	CreateAdminFunc              func(ctx context.Context, username, passwordHash string) error
	GetFacultyUserByUsernameFunc func(ctx context.Context, username string) (*models.FacultyUser, error)
}

func (m *mockUserRepository) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return m.GetAdminByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) CreateAdmin(ctx context.Context, username, passwordHash string) error {
	return m.CreateAdminFunc(ctx, username, passwordHash)
}

func (m *mockUserRepository) GetFacultyUserByUsername(ctx context.Context, username string) (*models.FacultyUser, error) {
	return m.GetFacultyUserByUsernameFunc(ctx, username)
}

type mockAnalyticsRepository struct {
	GetCountsFunc func(ctx context.Context) (*models.AnalyticsCounts, error)
}

func (m *mockAnalyticsRepository) GetCounts(ctx context.Context) (*models.AnalyticsCounts, error) {
	return m.GetCountsFunc(ctx)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
