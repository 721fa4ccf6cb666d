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

type PlanetHandler struct {
	repo *repository.PlanetRepository
}

func NewPlanetHandler(repo *repository.PlanetRepository) *PlanetHandler {
	return &PlanetHandler{repo: repo}
}

type CreatePlanetRequest struct {
	Name           string `json:"name" binding:"required,max=250"`
	Climate        string `json:"climate"`
	Population     int64  `json:"population"`
	OrbitalPeriod  int    `json:"orbital_period"`
	RotationPeriod int    `json:"rotation_period"`
	Diameter       int    `json:"diameter"`
}

type UpdatePlanetRequest struct {
	Name           string  `json:"name" binding:"required"`
	Climate        *string `json:"climate"`
	Population     *int64  `json:"population"`
	OrbitalPeriod  *int    `json:"orbital_period"`
	RotationPeriod *int    `json:"rotation_period"`
	Diameter       *int    `json:"diameter"`
}

type DeletePlanetRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *PlanetHandler) List(c *gin.Context) {
	planets, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if len(planets) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "no planets yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": planets})
}

func (h *PlanetHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "that planet does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": p})
}

func (h *PlanetHandler) Create(c *gin.Context) {
	var req CreatePlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.repo.GetByName(req.Name); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "already exists"})
		return
	}
	p := &models.Planet{
		Name:           req.Name,
		Climate:        req.Climate,
		Population:     req.Population,
		OrbitalPeriod:  req.OrbitalPeriod,
		RotationPeriod: req.RotationPeriod,
		Diameter:       req.Diameter,
	}
	if err := h.repo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": p})
}

func (h *PlanetHandler) Update(c *gin.Context) {
	var req UpdatePlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.repo.GetByName(req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"msg": "that planet does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if req.Climate != nil {
		p.Climate = *req.Climate
	}
	if req.Population != nil {
		p.Population = *req.Population
	}
	if req.OrbitalPeriod != nil {
		p.OrbitalPeriod = *req.OrbitalPeriod
	}
	if req.RotationPeriod != nil {
		p.RotationPeriod = *req.RotationPeriod
	}
	if req.Diameter != nil {
		p.Diameter = *req.Diameter
	}
	if err := h.repo.Update(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": p})
}

func (h *PlanetHandler) Delete(c *gin.Context) {
	var req DeletePlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.repo.DeleteByName(req.Name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"msg": "that planet does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok, its deleted"})
}

func (h *PlanetHandler) DeleteAll(c *gin.Context) {
	removed, err := h.repo.DeleteAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if removed == 0 {
		c.JSON(http.StatusOK, gin.H{"msg": "no planets to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok, all planets deleted"})
}
