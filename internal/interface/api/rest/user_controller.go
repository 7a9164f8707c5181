package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homedrive-api/internal/application/ports"
	"homedrive-api/internal/application/services"
	"homedrive-api/internal/infrastructure/jwt"
	"homedrive-api/internal/interface/api/rest/dto/user"
	"homedrive-api/internal/interface/api/rest/middleware"
	"homedrive-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteUsers, middleware.AuthMiddleware(jwtService), uc.ResolveUserHandler)
	r.PATCH(RouteUsers, middleware.AuthMiddleware(jwtService), uc.RenameUserHandler)

	return uc
}

// ResolveUserHandler returns the user record behind the session, creating
// it on first sight.
func (uc *UserController) ResolveUserHandler(c *gin.Context) {
	authID := c.GetString(middleware.CtxAuthID)
	email := c.GetString(middleware.CtxEmail)
	if authID == "" || email == "" {
		c.JSON(
			http.StatusUnprocessableEntity,
			gin.H{"error": "invalid user details"},
		)
		return
	}

	u, err := uc.userService.ResolveUser(c.Request.Context(), authID, email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to resolve user"},
		)
		uc.logger.Error("ResolveUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) RenameUserHandler(c *gin.Context) {
	var req user.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateName(req.Name); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.RenameUser(c.Request.Context(), c.GetString(middleware.CtxAuthID), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to rename user"},
		)
		uc.logger.Error("RenameUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
