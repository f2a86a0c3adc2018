package handlers

import (
	"net/http"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	*BaseHandler
	internshipService services.InternshipService
}

func NewInternshipHandler(base *BaseHandler, internshipService services.InternshipService) *InternshipHandler {
	return &InternshipHandler{
		BaseHandler:       base,
		internshipService: internshipService,
	}
}

func (h *InternshipHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/internships")
	{
		public.GET("", h.SearchInternships)
		public.GET("/:internshipId", h.GetInternship)
	}

	// Protected routes - Employer only
	internships := r.Group("/internships")
	internships.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		internships.POST("", h.CreateInternship)
		internships.PUT("/:internshipId", h.UpdateInternship)
		internships.DELETE("/:internshipId", h.DeleteInternship)
	}
}

// --- Public handlers ---

func (h *InternshipHandler) SearchInternships(c *gin.Context) {
	var criteria dto.SearchInternshipsRequest
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	internships, err := h.internshipService.SearchInternships(c.Request.Context(), &criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"internships": internships,
		"total":       len(internships),
	})
}

func (h *InternshipHandler) GetInternship(c *gin.Context) {
	internshipID := c.Param("internshipId")

	internship, err := h.internshipService.GetInternship(c.Request.Context(), internshipID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internship)
}

// --- Employer handlers ---

func (h *InternshipHandler) CreateInternship(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	internship, err := h.internshipService.CreateInternship(c.Request.Context(), employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, internship)
}

func (h *InternshipHandler) UpdateInternship(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	internshipID := c.Param("internshipId")

	var req dto.UpdateInternshipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	internship, err := h.internshipService.UpdateInternship(c.Request.Context(), internshipID, employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internship)
}

func (h *InternshipHandler) DeleteInternship(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	internshipID := c.Param("internshipId")

	if err := h.internshipService.DeleteInternship(c.Request.Context(), internshipID, employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Internship removed"})
}
