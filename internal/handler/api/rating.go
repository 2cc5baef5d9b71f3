package api

import (
	"net/http"

	reqdto "eatyaar/internal/handler/dto/request"
	resdto "eatyaar/internal/handler/dto/response"
	"eatyaar/internal/handler/httperr"
	"eatyaar/internal/handler/middleware"
	"eatyaar/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	cmds commands.RatingCommands
}

func NewRatingHandler(cmds commands.RatingCommands) *RatingHandler {
	return &RatingHandler{cmds: cmds}
}

func (h *RatingHandler) Submit(c *gin.Context) {
	raterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SubmitRating(c.Request.Context(), req.ToCommand(), raterID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SubmitRatingResponse{
		RatingID:   result.RatingID,
		TrustScore: result.TrustScore,
	})
}
