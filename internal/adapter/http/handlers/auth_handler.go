package handlers

import (
	"errors"
	"net/http"

	request "ordemfacil/internal/adapter/http/dto/request"
	response "ordemfacil/internal/adapter/http/dto/response"
	"ordemfacil/internal/adapter/http/middleware"
	"ordemfacil/internal/usecase"
	"ordemfacil/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid authentication payload", http.StatusBadRequest)

// AuthHandler handles login sessions and account self-service.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Authenticate a technician or admin
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Nome, payload.Senha, payload.Remember)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// Logout godoc
// @Summary  End the current session
// @Tags     auth
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.MessageResponse
// @Router   /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middleware.Token(c)); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// ChangePassword godoc
// @Summary  Change the current account's password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload body request.ChangePasswordRequest true "current and new password"
// @Success  200 {object} response.MessageResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /account/password [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ChangePassword(c.Request.Context(), middleware.Token(c), payload.SenhaAtual, payload.NovaSenha); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}

// ChangeUsername godoc
// @Summary  Rename the current account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    payload body request.ChangeUsernameRequest true "new name and password confirmation"
// @Success  200 {object} response.MessageResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /account/username [patch]
func (h *AuthHandler) ChangeUsername(c *gin.Context) {
	var payload request.ChangeUsernameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ChangeUsername(c.Request.Context(), middleware.Token(c), payload.NovoNome, payload.Senha); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "username updated"})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrWrongPassword):
		return pkg.NewDomainErrorSimple("WRONG_PASSWORD", "Current password does not match", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNameTaken):
		return pkg.NewDomainErrorSimple("NAME_TAKEN", "Username already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidName), errors.Is(err, usecase.ErrInvalidPassword):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
