package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ExperienceHandler struct {
	*BaseHandler
	experienceService services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler:       base,
		experienceService: experienceService,
	}
}

func (h *ExperienceHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/experience", h.List)
}

func (h *ExperienceHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/experience", h.Create)
	rg.PUT("/experience/:id", h.Update)
	rg.DELETE("/experience/:id", h.Delete)
}

func (h *ExperienceHandler) List(c *gin.Context) {
	items, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req dto.ExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	exp, err := h.experienceService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req dto.ExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	exp, err := h.experienceService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
}
