package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.List)
	rg.GET("/projects/:id", h.Get)
}

func (h *ProjectHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.Create)
	rg.PUT("/projects/:id", h.Update)
	rg.DELETE("/projects/:id", h.Delete)
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)

	response, err := h.projectService.List(c.Request.Context(), page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// projectInput reads the multipart project form shared by create and update.
func (h *ProjectHandler) projectInput(c *gin.Context) (*dto.ProjectInput, bool) {
	images, ok := h.FormFiles(c, "images")
	if !ok {
		return nil, false
	}

	featured, _ := strconv.ParseBool(c.PostForm("featured"))

	return &dto.ProjectInput{
		Name:         c.PostForm("name"),
		Description:  c.PostForm("description"),
		DemoURL:      c.PostForm("demoUrl"),
		CodeURL:      c.PostForm("codeUrl"),
		Technologies: c.PostFormArray("technologies"),
		Featured:     featured,
		Images:       images,
		OldImages:    c.PostFormArray("oldImages"),
	}, true
}

func (h *ProjectHandler) Create(c *gin.Context) {
	input, ok := h.projectInput(c)
	if !ok {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	input, ok := h.projectInput(c)
	if !ok {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
