package handler

import (
	"errors"
	"net/http"

	"github.com/Andr3sPonc3M/AskWorld/internal/auth"
	"github.com/Andr3sPonc3M/AskWorld/internal/middleware"
	"github.com/Andr3sPonc3M/AskWorld/internal/models"
	"github.com/Andr3sPonc3M/AskWorld/internal/store"
	"github.com/Andr3sPonc3M/AskWorld/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the authentication endpoints.
type AuthHandler struct {
	Service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{Service: service}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func publicUser(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.Service.Register(auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		authError(c, err)
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"message": "user registered successfully",
		"token":   token,
		"user":    publicUser(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		authError(c, err)
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": "login successful",
		"token":   token,
		"user":    publicUser(user),
	})
}

// Me handles GET /api/auth/me. Identity comes from the access guard; the
// user is re-read so the response reflects the current record.
func (h *AuthHandler) Me(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authorized, please log in")
		return
	}

	user, err := h.Service.CurrentUser(current.ID)
	if err != nil {
		authError(c, err)
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"role":       user.Role,
			"avatar":     user.Avatar,
			"created_at": user.CreatedAt,
		},
	})
}

// Logout handles POST /api/auth/logout. There is no server-side token
// state, so this always succeeds; the client drops its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	_ = h.Service.Logout()
	util.Success(c, http.StatusOK, util.Response{
		"message": "logged out successfully",
	})
}

// Verify handles GET /api/auth/verify, a reachability stub. With
// OptionalAuth in front it also reports whether the caller presented a
// usable token.
func (h *AuthHandler) Verify(c *gin.Context) {
	_, authenticated := middleware.CurrentUser(c)
	util.Success(c, http.StatusOK, util.Response{
		"message":       "auth service reachable",
		"authenticated": authenticated,
	})
}

// authError maps service errors to HTTP responses. Anything unrecognized
// becomes a generic 500 so raw store or crypto errors never leak.
func authError(c *gin.Context, err error) {
	var verr *auth.ValidationError
	switch {
	case errors.As(err, &verr):
		util.ErrorList(c, http.StatusBadRequest, verr.Errors)
	case errors.Is(err, auth.ErrEmailTaken):
		util.Error(c, http.StatusBadRequest, "email already registered")
	case errors.Is(err, auth.ErrInvalidCredentials):
		util.Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, auth.ErrAccountDisabled):
		util.Error(c, http.StatusUnauthorized, "your account is disabled, contact an administrator")
	case errors.Is(err, store.ErrUserNotFound):
		util.Error(c, http.StatusNotFound, "user not found")
	default:
		util.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
