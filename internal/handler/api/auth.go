package api

import (
	"net/http"

	reqdto "eatyaar/internal/handler/dto/request"
	resdto "eatyaar/internal/handler/dto/response"
	"eatyaar/internal/handler/httperr"
	"eatyaar/internal/handler/middleware"
	"eatyaar/internal/usecase"
	"eatyaar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	userQueries queries.UserQueries
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase, userQueries: userQueries}
}

func (h *AuthHandler) SendCode(c *gin.Context) {
	var req reqdto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.authUseCase.SendCode(c.Request.Context(), req.Phone); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.authUseCase.VerifyCode(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.authUseCase.CompleteProfile(c.Request.Context(), userID, req.Name, req.Email, req.City, req.Area); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// UpdateProfile applies a partial edit on top of the stored profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	existing, err := h.userQueries.Profile(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	name, email, city, area := req.Apply(existing)
	if err := h.authUseCase.CompleteProfile(c.Request.Context(), userID, name, email, city, area); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
