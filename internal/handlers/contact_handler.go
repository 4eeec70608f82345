package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

func (h *ContactHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/contacts", h.List)
	rg.PATCH("/contacts", h.UpdateStatus)
	rg.POST("/contacts/reply", h.Reply)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req dto.ContactStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Reply(c *gin.Context) {
	var req dto.ContactReplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	contact, err := h.contactService.Reply(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}
