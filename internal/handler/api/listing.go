package api

import (
	"net/http"

	domclaim "eatyaar/internal/domain/claim"
	reqdto "eatyaar/internal/handler/dto/request"
	resdto "eatyaar/internal/handler/dto/response"
	"eatyaar/internal/handler/httperr"
	"eatyaar/internal/handler/middleware"
	"eatyaar/internal/usecase/commands"
	"eatyaar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

func (h *ListingHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateListing(c.Request.Context(), req.ToCommand(), ownerID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ListingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListingView(view, ownerID, false))
}

func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	viewerID, _ := middleware.GetUserID(c)
	disclosed := false
	if viewerID != uuid.Nil && viewerID != view.OwnerID {
		status, found, serr := h.q.ViewerClaimStatus(c.Request.Context(), id, viewerID)
		if serr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, serr, "Internal error", nil)
			return
		}
		disclosed = found && domclaim.Status(status).AddressVisible()
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view, viewerID, disclosed))
}

func (h *ListingHandler) ListAvailable(c *gin.Context) {
	filter := queries.ListingFilter{
		City: c.Query("city"),
		Area: c.Query("area"),
	}
	items, err := h.q.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	viewerID, _ := middleware.GetUserID(c)
	c.JSON(http.StatusOK, gin.H{"listings": resdto.FromListingList(items, viewerID)})
}

func (h *ListingHandler) MyListings(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": resdto.FromListingList(items, ownerID)})
}

func (h *ListingHandler) Expire(c *gin.Context) {
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
	if err := h.cmds.ExpireListing(c.Request.Context(), id, actorID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing expired"})
}

func (h *ListingHandler) Delete(c *gin.Context) {
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
	if err := h.cmds.DeleteListing(c.Request.Context(), id, actorID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ListingHandler) GlobalStats(c *gin.Context) {
	stats, err := h.q.GlobalStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGlobalStats(stats))
}
