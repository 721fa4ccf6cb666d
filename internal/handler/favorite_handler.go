package handler

import (
	"net/http"
	"strconv"

	"holocron/internal/models"
	"holocron/internal/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// FavoriteRequest covers both route shapes: when the target id is not in
// the path it comes from the matching <kind>_id body field.
type FavoriteRequest struct {
	UserID      uint `json:"user_id" binding:"required"`
	PlanetID    uint `json:"planet_id"`
	CharacterID uint `json:"character_id"`
	StarshipID  uint `json:"starship_id"`
}

func (req *FavoriteRequest) targetFor(kind models.TargetKind) uint {
	switch kind {
	case models.KindPlanet:
		return req.PlanetID
	case models.KindCharacter:
		return req.CharacterID
	default:
		return req.StarshipID
	}
}

func (h *FavoriteHandler) bind(c *gin.Context) (userID uint, kind models.TargetKind, targetID uint, ok bool) {
	kind, valid := models.ParseTargetKind(c.Param("kind"))
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "unknown favorite kind"})
		return 0, "", 0, false
	}
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, "", 0, false
	}
	targetID = req.targetFor(kind)
	if raw := c.Param("target_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target id"})
			return 0, "", 0, false
		}
		targetID = uint(id)
	}
	if targetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + string(kind) + "_id"})
		return 0, "", 0, false
	}
	return req.UserID, kind, targetID, true
}

func (h *FavoriteHandler) respondLookupError(c *gin.Context, kind models.TargetKind, err error) {
	switch err {
	case service.ErrUserAndTargetNotFound:
		c.JSON(http.StatusBadRequest, gin.H{"msg": "user and " + string(kind) + " do not exist"})
	case service.ErrUserNotFound:
		c.JSON(http.StatusBadRequest, gin.H{"msg": "user does not exist"})
	case service.ErrTargetNotFound:
		c.JSON(http.StatusBadRequest, gin.H{"msg": string(kind) + " does not exist"})
	case service.ErrUnknownKind:
		c.JSON(http.StatusBadRequest, gin.H{"msg": "unknown favorite kind"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "favorites lookup failed"})
	}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, kind, targetID, ok := h.bind(c)
	if !ok {
		return
	}
	fav, outcome, err := h.svc.Add(userID, kind, targetID)
	if err != nil {
		h.respondLookupError(c, kind, err)
		return
	}
	if outcome == service.FavoriteAlreadyExists {
		c.JSON(http.StatusOK, gin.H{"msg": "already a favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": fav})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, kind, targetID, ok := h.bind(c)
	if !ok {
		return
	}
	outcome, err := h.svc.Remove(userID, kind, targetID)
	if err != nil {
		h.respondLookupError(c, kind, err)
		return
	}
	if outcome == service.FavoriteNothingToDelete {
		c.JSON(http.StatusOK, gin.H{"msg": "nothing to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok, its deleted"})
}

func (h *FavoriteHandler) ListForUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	favorites, err := h.svc.ListForUser(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if len(favorites) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "no favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": favorites})
}
