package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homedrive-api/internal/application/ports"
	"homedrive-api/internal/application/services"
	"homedrive-api/internal/infrastructure/jwt"
	"homedrive-api/internal/interface/api/rest/dto/file"
	"homedrive-api/internal/interface/api/rest/middleware"
	"homedrive-api/internal/interface/api/rest/validator"
)

// 100MB
const maxSize = int64(100 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	r.POST(RouteFiles, middleware.AuthMiddleware(jwtService), fc.UploadFileHandler)
	r.GET(RouteFile, middleware.AuthMiddleware(jwtService), fc.DownloadURLHandler)
	r.DELETE(RouteFile, middleware.AuthMiddleware(jwtService), fc.DeleteFileHandler)
	r.GET(RouteUserFiles, middleware.AuthMiddleware(jwtService), fc.GetUserFilesHandler)

	return fc
}

func (fc *FileController) UploadFileHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	f, err := fc.fileService.Upload(c.Request.Context(), c.GetString(middleware.CtxAuthID), fh)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to upload file"},
		)
		fc.logger.Error("Upload() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, file.ToResponseFile(*f))
}

// DownloadURLHandler hands out a time-limited payload link, for the owner
// or a share grant recipient.
func (fc *FileController) DownloadURLHandler(c *gin.Context) {
	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	url, err := fc.fileService.DownloadURL(c.Request.Context(), c.GetString(middleware.CtxAuthID), fileUUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get download URL"},
			)
			fc.logger.Error("DownloadURL() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	err := fc.fileService.Delete(c.Request.Context(), c.GetString(middleware.CtxAuthID), fileUUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to delete file"},
			)
			fc.logger.Error("Delete() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUserFilesHandler lists the caller's own files; the path user id must
// match the session identity.
func (fc *FileController) GetUserFilesHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	files, err := fc.fileService.OwnFiles(c.Request.Context(), c.GetString(middleware.CtxAuthID), userUUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get files"},
			)
			fc.logger.Error("OwnFiles() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToResponseFiles(files),
	})
}
