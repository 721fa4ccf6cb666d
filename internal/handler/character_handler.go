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

type CharacterHandler struct {
	repo *repository.CharacterRepository
}

func NewCharacterHandler(repo *repository.CharacterRepository) *CharacterHandler {
	return &CharacterHandler{repo: repo}
}

type CreateCharacterRequest struct {
	Name      string `json:"name" binding:"required,max=250"`
	Height    int    `json:"height"`
	Mass      int    `json:"mass"`
	HairColor string `json:"hair_color"`
	EyeColor  string `json:"eye_color"`
	Gender    string `json:"gender"`
	BirthYear string `json:"birth_year"`
}

type UpdateCharacterRequest struct {
	Name      string  `json:"name" binding:"required"`
	Height    *int    `json:"height"`
	Mass      *int    `json:"mass"`
	HairColor *string `json:"hair_color"`
	EyeColor  *string `json:"eye_color"`
	Gender    *string `json:"gender"`
	BirthYear *string `json:"birth_year"`
}

type DeleteCharacterRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CharacterHandler) List(c *gin.Context) {
	characters, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	if len(characters) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "no characters yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": characters})
}

func (h *CharacterHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ch, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "that character does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": ch})
}

func (h *CharacterHandler) Create(c *gin.Context) {
	var req CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.repo.GetByName(req.Name); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "already exists"})
		return
	}
	ch := &models.Character{
		Name:      req.Name,
		Height:    req.Height,
		Mass:      req.Mass,
		HairColor: req.HairColor,
		EyeColor:  req.EyeColor,
		Gender:    req.Gender,
		BirthYear: req.BirthYear,
	}
	if err := h.repo.Create(ch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": ch})
}

func (h *CharacterHandler) Update(c *gin.Context) {
	var req UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ch, err := h.repo.GetByName(req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"msg": "that character does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if req.Height != nil {
		ch.Height = *req.Height
	}
	if req.Mass != nil {
		ch.Mass = *req.Mass
	}
	if req.HairColor != nil {
		ch.HairColor = *req.HairColor
	}
	if req.EyeColor != nil {
		ch.EyeColor = *req.EyeColor
	}
	if req.Gender != nil {
		ch.Gender = *req.Gender
	}
	if req.BirthYear != nil {
		ch.BirthYear = *req.BirthYear
	}
	if err := h.repo.Update(ch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": ch})
}

func (h *CharacterHandler) Delete(c *gin.Context) {
	var req DeleteCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.repo.DeleteByName(req.Name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"msg": "that character does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok, its deleted"})
}

func (h *CharacterHandler) DeleteAll(c *gin.Context) {
	removed, err := h.repo.DeleteAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if removed == 0 {
		c.JSON(http.StatusOK, gin.H{"msg": "no characters to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok, all characters deleted"})
}
