package handlers

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("request", "Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid user ID in context"))
		return "", false
	}
	return userID, true
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParsePagination reads page/limit query params with the list defaults.
func ParsePagination(c *gin.Context) (page int, limit int) {
	const defaultPage = 1
	const defaultLimit = 10
	const maxLimit = 100

	page = ParseQueryInt(c, "page", defaultPage)
	if page <= 0 {
		page = defaultPage
	}

	limit = ParseQueryInt(c, "limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

func readFormFile(fh *multipart.FileHeader) (*dto.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &dto.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// FormFile reads an optional multipart file field. A missing field yields
// (nil, true); a read failure responds 400 and yields false.
func (h *BaseHandler) FormFile(c *gin.Context, field string) (*dto.File, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, true
	}

	file, err := readFormFile(fh)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("request", "Failed to read uploaded file: "+field))
		return nil, false
	}
	return file, true
}

// FormFiles reads every file uploaded under field.
func (h *BaseHandler) FormFiles(c *gin.Context, field string) ([]*dto.File, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, true
	}

	files := make([]*dto.File, 0, len(form.File[field]))
	for _, fh := range form.File[field] {
		file, err := readFormFile(fh)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("request", "Failed to read uploaded file: "+field))
			return nil, false
		}
		files = append(files, file)
	}
	return files, true
}
