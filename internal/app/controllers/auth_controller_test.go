package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insider-navs/backend/internal/app/models/dto"
)

func setupAuthRouter(service *mockAuthService) *gin.Engine {
	router := gin.New()
	controller := NewAuthController(service, zerolog.Nop())

	api := router.Group("/api")
	api.POST("/admin/login", controller.AdminLogin)
	api.POST("/faculty/login", controller.FacultyLogin)
	return router
}

func TestAdminLogin_SuccessReturns200(t *testing.T) {
	username := "admin"
	router := setupAuthRouter(&mockAuthService{
		AdminLoginFunc: func(ctx context.Context, req *dto.AdminLoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{Success: true, Message: "Login successful", Username: &username}, nil
		},
	})

	w := performRequest(router, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Username)
	assert.Equal(t, "admin", *resp.Username)
}

func TestAdminLogin_FailureStillReturns200(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{
		AdminLoginFunc: func(ctx context.Context, req *dto.AdminLoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{Success: false, Message: "Invalid username or password"}, nil
		},
	})

	w := performRequest(router, http.MethodPost, "/api/admin/login",
		`{"username":"ghost","password":"wrong"}`)
	require.Equal(t, http.StatusOK, w.Code, "a failed login is not an HTTP error")

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid username or password", resp.Message)
	assert.Nil(t, resp.Username)
}

func TestAdminLogin_MissingPassword(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{})

	w := performRequest(router, http.MethodPost, "/api/admin/login", `{"username":"admin"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFacultyLogin_SuccessReturnsFacultyID(t *testing.T) {
	facultyID := int64(7)
	router := setupAuthRouter(&mockAuthService{
		FacultyLoginFunc: func(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{Success: true, Message: "Login successful", FacultyID: &facultyID}, nil
		},
	})

	w := performRequest(router, http.MethodPost, "/api/faculty/login",
		`{"username":"priya.sharma"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.FacultyID)
	assert.Equal(t, int64(7), *resp.FacultyID)
}

func TestFacultyLogin_UnknownUsernameStillReturns200(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{
		FacultyLoginFunc: func(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{Success: false, Message: "Invalid faculty username"}, nil
		},
	})

	w := performRequest(router, http.MethodPost, "/api/faculty/login", `{"username":"ghost"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.FacultyID)
}

func TestFacultyLogin_MissingUsername(t *testing.T) {
	router := setupAuthRouter(&mockAuthService{})

	w := performRequest(router, http.MethodPost, "/api/faculty/login", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
