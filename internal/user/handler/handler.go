package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/auth"
	"github.com/partsbaypro/baypro-api/internal/user"
	"github.com/partsbaypro/baypro-api/internal/user/dto"
	"github.com/partsbaypro/baypro-api/pkg/response"
)

type UserHandler struct {
	uc     user.UseCase
	codec  *auth.Codec
	logger *zap.Logger
}

func NewUserHandler(uc user.UseCase, codec *auth.Codec, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, codec: codec, logger: log}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	errs := map[string][]string{}
	if input.Name == "" {
		errs["name"] = []string{"Name is required"}
	}
	if input.Email == "" {
		errs["email"] = []string{"Email is required"}
	}
	if input.Password == "" {
		errs["password"] = []string{"Password is required"}
	}
	if len(errs) > 0 {
		response.ValidationError(c, "Validation failed", errs)
		return
	}

	u, err := h.uc.Register(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			response.ValidationError(c, "Validation failed", map[string][]string{
				"email": {"Email already registered"},
			})
			return
		}
		h.logger.Error("register failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := h.codec.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"user":  u,
		"token": token,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		response.ValidationError(c, "Email and password are required", map[string][]string{
			"email":    {"Email is required"},
			"password": {"Password is required"},
		})
		return
	}

	u, err := h.uc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := h.codec.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":  u,
		"token": token,
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	u, err := h.uc.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("me lookup failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, "Success", gin.H{"user": u})
}

// Logout exists for symmetry with the client; tokens are stateless, so the
// client just discards its copy.
func (h *UserHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.uc.UpdateProfile(c.Request.Context(), claims.UserID, &input)
	if err != nil {
		h.logger.Error("profile update failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Profile update failed")
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", gin.H{"user": u})
}

func (h *UserHandler) Addresses(c *gin.Context) {
	claims := auth.ClaimsFrom(c)

	addresses, err := h.uc.ListAddresses(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("address list failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load addresses")
		return
	}

	response.Success(c, http.StatusOK, "Success", addresses)
}
