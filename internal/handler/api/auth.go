package api

import (
	"net/http"

	reqdto "movie-booking/internal/handler/dto/request"
	resdto "movie-booking/internal/handler/dto/response"
	"movie-booking/internal/handler/httperr"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Sign up
// @Description Register a new user with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required")
		return
	}

	if _, err := h.cmds.Signup(c.Request.Context(), req); err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailAlreadyRegistered):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email already registered")
		case errs.Is(err, commands.ErrInvalidSignup):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or password")
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: "User registered successfully"})
}

// @Summary Log in
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} resdto.LoginResponse
// @Failure 500 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email or password incorrect")
		case errs.Is(err, commands.ErrInvalidCredentials):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, resdto.LoginRejected())
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginSucceeded(result.UserID, result.Token))
}
