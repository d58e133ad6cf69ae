package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webintake-backend-go/internal/core"
	"webintake-backend-go/internal/middleware"
	"webintake-backend-go/internal/models"
)

// ProjectHandler handles API endpoints related to project submissions.
type ProjectHandler struct {
	projectService core.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(ps core.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), middleware.IdentityFromContext(c), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateProjectResponse{
		Success:         true,
		ProjectID:       project.ID,
		Message:         "Project submitted successfully!",
		TotalCost:       project.TotalCost,
		AdvanceAmount:   project.AdvanceAmount,
		FinalAmount:     project.FinalAmount,
		EditCount:       project.EditCount,
		DeliveryCharges: project.DeliveryCharges,
		Project:         project,
	})
}

// ListAll handles GET /api/projects (admin: every record).
func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context(), middleware.IdentityFromContext(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListOwn handles GET /api/projects/user (the caller's own records).
func (h *ProjectHandler) ListOwn(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context(), middleware.IdentityFromContext(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:projectId.
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID := c.Param("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Project ID is required"})
		return
	}
	project, err := h.projectService.Get(c.Request.Context(), middleware.IdentityFromContext(c), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Update handles PUT /api/projects/:projectId (admin patch).
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID := c.Param("projectId")
	var patch models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), middleware.IdentityFromContext(c), projectID, patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project updated successfully", "project": project})
}

// GenerateBill handles POST /api/projects/:projectId/bill.
func (h *ProjectHandler) GenerateBill(c *gin.Context) {
	projectID := c.Param("projectId")
	var req models.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	project, err := h.projectService.GenerateBill(c.Request.Context(), middleware.IdentityFromContext(c), projectID, req.WebsiteURL)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bill generated successfully", "project": project})
}

// MarkPayment handles POST /api/projects/:projectId/payment.
func (h *ProjectHandler) MarkPayment(c *gin.Context) {
	projectID := c.Param("projectId")
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	project, err := h.projectService.MarkPayment(c.Request.Context(), middleware.IdentityFromContext(c), projectID, req.Type)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": req.Type + " payment marked as paid", "project": project})
}
