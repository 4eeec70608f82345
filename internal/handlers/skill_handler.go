package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.List)
}

func (h *SkillHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/skills", h.Create)
	rg.PUT("/skills/:id", h.Update)
	rg.DELETE("/skills/:id", h.Delete)
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.SkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req dto.SkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
