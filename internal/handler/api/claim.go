package api

import (
	"context"
	"net/http"

	reqdto "eatyaar/internal/handler/dto/request"
	resdto "eatyaar/internal/handler/dto/response"
	"eatyaar/internal/handler/httperr"
	"eatyaar/internal/handler/middleware"
	"eatyaar/internal/usecase/commands"
	"eatyaar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	cmds commands.ClaimCommands
	q    queries.ClaimQueries
}

func NewClaimHandler(cmds commands.ClaimCommands, q queries.ClaimQueries) *ClaimHandler {
	return &ClaimHandler{cmds: cmds, q: q}
}

func (h *ClaimHandler) Create(c *gin.Context) {
	claimantID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateClaim(c.Request.Context(), req.ListingID, claimantID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"claim_id": result.ClaimID})
}

func (h *ClaimHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.Approve, "Claim approved")
}

func (h *ClaimHandler) Reject(c *gin.Context) {
	h.transition(c, h.cmds.Reject, "Claim rejected")
}

func (h *ClaimHandler) MarkPickedUp(c *gin.Context) {
	h.transition(c, h.cmds.MarkPickedUp, "Pickup confirmed")
}

func (h *ClaimHandler) transition(c *gin.Context, fn func(ctx context.Context, claimID, actorID uuid.UUID) error, msg string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	if err := fn(c.Request.Context(), id, actorID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *ClaimHandler) MyClaims(c *gin.Context) {
	claimantID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	items, err := h.q.MyClaims(c.Request.Context(), claimantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": resdto.FromClaimList(items, claimantID)})
}

func (h *ClaimHandler) ReceivedClaims(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	items, err := h.q.ReceivedClaims(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": resdto.FromClaimList(items, ownerID)})
}
