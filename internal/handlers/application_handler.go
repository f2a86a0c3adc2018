package handlers

import (
	"net/http"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		// Student routes
		applications.POST("/internship/:internshipId", middleware.RoleMiddleware(models.UserRoleStudent), h.Apply)
		applications.GET("/student/my", middleware.RoleMiddleware(models.UserRoleStudent), h.GetMyApplications)

		// Employer routes
		applications.GET("/internship/:internshipId/employer", middleware.RoleMiddleware(models.UserRoleEmployer), h.GetInternshipApplications)
		applications.PUT("/:applicationId/status", middleware.RoleMiddleware(models.UserRoleEmployer), h.UpdateApplicationStatus)
	}
}

// --- Student handlers ---

func (h *ApplicationHandler) Apply(c *gin.Context) {
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	internshipID := c.Param("internshipId")

	application, err := h.applicationService.Apply(c.Request.Context(), internshipID, studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	// id студента всегда берем из токена, а не из запроса
	studentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.GetStudentApplications(c.Request.Context(), studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

// --- Employer handlers ---

func (h *ApplicationHandler) GetInternshipApplications(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	internshipID := c.Param("internshipId")

	applications, err := h.applicationService.GetInternshipApplications(c.Request.Context(), internshipID, employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applicationID := c.Param("applicationId")

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), applicationID, employerID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
