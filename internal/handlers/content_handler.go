package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/services"
	"portfolio_backend/internal/services/dto"
)

// ContentHandler serves the hero, about and settings singletons.
type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

func (h *ContentHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.GetHome)
	rg.GET("/about", h.GetAbout)
	rg.GET("/website-settings", h.GetSettings)
}

func (h *ContentHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/home", h.UpdateHome)
	rg.PUT("/about", h.UpdateAbout)
	rg.PUT("/website-settings", h.UpdateSettings)
}

func (h *ContentHandler) GetHome(c *gin.Context) {
	home, err := h.contentService.GetHome(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

func (h *ContentHandler) UpdateHome(c *gin.Context) {
	profileImage, ok := h.FormFile(c, "profileImage")
	if !ok {
		return
	}

	input := &dto.HomeUpdateInput{
		Name:            c.PostForm("name"),
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		CvURL:           c.PostForm("cvUrl"),
		GithubURL:       c.PostForm("githubUrl"),
		LinkedinURL:     c.PostForm("linkedinUrl"),
		ProfileImage:    profileImage,
		OldProfileImage: c.PostForm("oldProfileImage"),
	}

	home, err := h.contentService.UpdateHome(c.Request.Context(), input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

func (h *ContentHandler) GetAbout(c *gin.Context) {
	about, err := h.contentService.GetAbout(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

func (h *ContentHandler) UpdateAbout(c *gin.Context) {
	imageFile, ok := h.FormFile(c, "imageFile")
	if !ok {
		return
	}

	input := &dto.AboutUpdateInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Details:      c.PostForm("details"),
		BulletPoints: c.PostFormArray("bulletPoints"),
		ImageURL:     c.PostForm("image"),
		ImageFile:    imageFile,
	}

	about, err := h.contentService.UpdateAbout(c.Request.Context(), input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

func (h *ContentHandler) GetSettings(c *gin.Context) {
	settings, err := h.contentService.GetSettings(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	logo, ok := h.FormFile(c, "logo")
	if !ok {
		return
	}
	favicon, ok := h.FormFile(c, "favicon")
	if !ok {
		return
	}

	input := &dto.SettingsUpdateInput{
		WebsiteName:        c.PostForm("websiteName"),
		WebsiteDescription: c.PostForm("websiteDescription"),
		PrimaryColor:       c.PostForm("primaryColor"),
		SecondaryColor:     c.PostForm("secondaryColor"),
		Email:              c.PostForm("email"),
		Phone:              c.PostForm("contactNumber"),
		Address:            c.PostForm("address"),
		FooterText:         c.PostForm("footerText"),
		SocialLinksJSON:    c.PostForm("socialLinks"),
		SEOJSON:            c.PostForm("seo"),
		Logo:               logo,
		Favicon:            favicon,
	}

	settings, err := h.contentService.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
