package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"homedrive-api/internal/application/ports"
	"homedrive-api/internal/application/services"
	"homedrive-api/internal/infrastructure/jwt"
	"homedrive-api/internal/interface/api/rest/dto/file"
	"homedrive-api/internal/interface/api/rest/dto/share"
	"homedrive-api/internal/interface/api/rest/middleware"
	"homedrive-api/internal/interface/api/rest/validator"
)

type ShareController struct {
	shareService ports.ShareService
	logger       *zap.Logger
}

func NewShareController(
	r *gin.Engine,
	shareService ports.ShareService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ShareController {
	sc := &ShareController{
		shareService: shareService,
		logger:       logger,
	}

	r.POST(RouteShares, middleware.AuthMiddleware(jwtService), sc.CreateShareHandler)
	r.DELETE(RouteShares, middleware.AuthMiddleware(jwtService), sc.DeleteShareHandler)
	r.GET(RouteUserShared, middleware.AuthMiddleware(jwtService), sc.GetSharedFilesHandler)

	return sc
}

func (sc *ShareController) CreateShareHandler(c *gin.Context) {
	req, fileUUID, ok := sc.bindShareRequest(c)
	if !ok {
		return
	}

	s, err := sc.shareService.Create(c.Request.Context(), c.GetString(middleware.CtxAuthID), fileUUID, req.RecipientEmail)
	if err != nil {
		sc.respondShareError(c, err, "failed to create share", "Create()")
		return
	}

	c.JSON(http.StatusOK, share.ToResponseShare(*s))
}

// DeleteShareHandler revokes a grant. Deleting a grant that does not exist
// is a no-op success with a null body.
func (sc *ShareController) DeleteShareHandler(c *gin.Context) {
	req, fileUUID, ok := sc.bindShareRequest(c)
	if !ok {
		return
	}

	s, err := sc.shareService.Delete(c.Request.Context(), c.GetString(middleware.CtxAuthID), fileUUID, req.RecipientEmail)
	if err != nil {
		sc.respondShareError(c, err, "failed to delete share", "Delete()")
		return
	}

	if s == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, share.ToResponseShare(*s))
}

func (sc *ShareController) GetSharedFilesHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	files, err := sc.shareService.SharedWithUser(c.Request.Context(), c.GetString(middleware.CtxAuthID), userUUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get shared files"},
			)
			sc.logger.Error("SharedWithUser() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToResponseFiles(files),
	})
}

func (sc *ShareController) bindShareRequest(c *gin.Context) (share.Request, uuid.UUID, bool) {
	var req share.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return req, uuid.Nil, false
	}
	if errs := validator.ValidateShare(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return req, uuid.Nil, false
	}
	fileUUID, err := uuid.Parse(strings.TrimSpace(req.FileID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": map[string]string{"file_id": "file_id must be a valid UUID"},
		})
		return req, uuid.Nil, false
	}

	return req, fileUUID, true
}

func (sc *ShareController) respondShareError(c *gin.Context, err error, fallback, op string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrFileNotFound),
		errors.Is(err, services.ErrRecipientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
		sc.logger.Error(op+" error", zap.Error(err))
	}
}
