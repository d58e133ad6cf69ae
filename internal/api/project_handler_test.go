package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"webintake-backend-go/internal/auth"
	"webintake-backend-go/internal/core"
	"webintake-backend-go/internal/db"
	"webintake-backend-go/internal/models"
	"webintake-backend-go/pkg/cache"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := db.NewStore(t.TempDir())
	require.NoError(t, err)
	userRepo := db.NewFileUserRepository(store)
	projectRepo := db.NewFileProjectRepository(store)

	userService := core.NewUserService(userRepo, core.UserServiceConfig{
		AllowedEmailDomain:  "gmail.com",
		MaxAccountsPerEmail: 10,
		AdminUsername:       "admin",
		AdminPassword:       "test-admin-pass",
	})
	projectService := core.NewProjectService(projectRepo, nil, core.ProjectServiceConfig{
		AdvanceRate: 0.4,
		IDPolicy:    core.IDPolicyName,
	})

	tokens := auth.NewManager("test-secret", time.Hour)
	denylist := cache.NewMemoryCache()

	router := gin.New()
	SetupRoutes(router, zap.NewNop(), tokens, denylist, time.Hour, userService, projectService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signUpAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", models.SignUpRequest{
		Name:     "Pratik Preetam",
		Username: "pratik",
		Email:    "pratik@gmail.com",
		Password: "hunter2hunter2",
		Phone:    "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "pratik", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func adminLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "admin", Password: "test-admin-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func createProject(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/projects", token, models.CreateProjectRequest{
		WebsiteType:    "portfolio",
		Complexity:     "medium",
		WebsiteName:    "My Portfolio",
		Description:    "Five pages with a contact form",
		DeliveryOption: "1day",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp CreateProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 30500, resp.TotalCost)
	require.Equal(t, 12200, resp.AdvanceAmount)
	return resp.ProjectID
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "healthy")
}

func TestCreateProject_RequiresSession(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/projects", "", models.CreateProjectRequest{})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProject_ValidationListsFields(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := signUpAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/projects", token, models.CreateProjectRequest{
		WebsiteType: "portfolio",
		Complexity:  "medium",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []string{"websiteName", "description", "deliveryOption"}, resp.Fields)
}

func TestProjectListing_Visibility(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	userToken := signUpAndLogin(t, router)
	createProject(t, router, userToken)

	// Regular users cannot use the admin listing.
	w := doJSON(t, router, http.MethodGet, "/api/projects", userToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// But see their own records.
	w = doJSON(t, router, http.MethodGet, "/api/projects/user", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var own []*models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))
	require.Len(t, own, 1)

	adminToken := adminLogin(t, router)
	w = doJSON(t, router, http.MethodGet, "/api/projects", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []*models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
}

func TestUpdateProject_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	userToken := signUpAndLogin(t, router)
	projectID := createProject(t, router, userToken)
	adminToken := adminLogin(t, router)

	// Unknown keys in the patch body are silently ignored; known keys apply.
	patch := map[string]interface{}{
		"status":       "in_progress",
		"notAField":    "ignored",
		"anotherBogus": 42,
	}
	w := doJSON(t, router, http.MethodPut, "/api/projects/"+projectID, adminToken, patch)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/projects/"+projectID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.Equal(t, "in_progress", project.Status)
	require.Equal(t, 30500, project.TotalCost) // untouched
}

func TestBillAndPaymentFlow(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	userToken := signUpAndLogin(t, router)
	projectID := createProject(t, router, userToken)
	adminToken := adminLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/projects/"+projectID+"/bill", adminToken,
		models.GenerateBillRequest{WebsiteURL: "https://example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/projects/"+projectID+"/payment", adminToken,
		models.PaymentRequest{Type: "advance"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/projects/"+projectID+"/payment", adminToken,
		models.PaymentRequest{Type: "full"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/projects/"+projectID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.True(t, project.BillGenerated)
	require.True(t, project.AdvancePaid)
	require.True(t, project.FullPaid)
	require.Equal(t, models.PaymentCompleted, project.PaymentStatus)
	require.Equal(t, "https://example.com", project.WebsiteURL)

	// Payments against an unknown project are a 404.
	w = doJSON(t, router, http.MethodPost, "/api/projects/NOPE0000/payment", adminToken,
		models.PaymentRequest{Type: "advance"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	token := signUpAndLogin(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
