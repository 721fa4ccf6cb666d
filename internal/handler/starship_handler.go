package handler

import (
	"errors"
	"net/http"
	"strconv"

	"holocron/internal/models"
	"holocron/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StarshipHandler struct {
	repo *repository.StarshipRepository
}

func NewStarshipHandler(repo *repository.StarshipRepository) *StarshipHandler {
	return &StarshipHandler{repo: repo}
}

type CreateStarshipRequest struct {
	Model         string `json:"model" binding:"required,max=250"`
	Manufacturer  string `json:"manufacturer"`
	Crew          int    `json:"crew"`
	Passengers    int    `json:"passengers"`
	Consumables   string `json:"consumables"`
	CostInCredits int64  `json:"cost_in_credits"`
}

type UpdateStarshipRequest struct {
	Model         string  `json:"model" binding:"required"`
	Manufacturer  *string `json:"manufacturer"`
	Crew          *int    `json:"crew"`
	Passengers    *int    `json:"passengers"`
	Consumables   *string `json:"consumables"`
	CostInCredits *int64  `json:"cost_in_credits"`
}

type DeleteStarshipRequest struct {
	Model string `json:"model" binding:"required"`
}

func (h *StarshipHandler) List(c *gin.Context) {
	starships, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if len(starships) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "no starships yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": starships})
}

func (h *StarshipHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "that starship does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": s})
}

func (h *StarshipHandler) Create(c *gin.Context) {
	var req CreateStarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.repo.GetByModel(req.Model); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "already exists"})
		return
	}
	s := &models.Starship{
		Model:         req.Model,
		Manufacturer:  req.Manufacturer,
		Crew:          req.Crew,
		Passengers:    req.Passengers,
		Consumables:   req.Consumables,
		CostInCredits: req.CostInCredits,
	}
	if err := h.repo.Create(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": s})
}

func (h *StarshipHandler) Update(c *gin.Context) {
	var req UpdateStarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.repo.GetByModel(req.Model)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"msg": "that starship does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if req.Manufacturer != nil {
		s.Manufacturer = *req.Manufacturer
	}
	if req.Crew != nil {
		s.Crew = *req.Crew
	}
	if req.Passengers != nil {
		s.Passengers = *req.Passengers
	}
	if req.Consumables != nil {
		s.Consumables = *req.Consumables
	}
	if req.CostInCredits != nil {
		s.CostInCredits = *req.CostInCredits
	}
	if err := h.repo.Update(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": s})
}

func (h *StarshipHandler) Delete(c *gin.Context) {
	var req DeleteStarshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.repo.DeleteByModel(req.Model); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"msg": "that starship does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok, its deleted"})
}

func (h *StarshipHandler) DeleteAll(c *gin.Context) {
	removed, err := h.repo.DeleteAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if removed == 0 {
		c.JSON(http.StatusOK, gin.H{"msg": "no starships to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok, all starships deleted"})
}
