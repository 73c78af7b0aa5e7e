package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/backend/internal/database"
	"github.com/cardfolio/backend/internal/models"
	"github.com/cardfolio/backend/internal/services"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 200
)

type CardHandler struct {
	priceWorker *services.PriceWorker
}

func NewCardHandler(priceWorker *services.PriceWorker) *CardHandler {
	return &CardHandler{priceWorker: priceWorker}
}

// SearchCards filters the card catalog by name, set, rarity, supertype,
// type and generation.
func (h *CardHandler) SearchCards(c *gin.Context) {
	db := database.GetDB()
	query := db.Model(&models.Card{})

	if q := c.Query("q"); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}
	if setID := c.Query("set"); setID != "" {
		query = query.Where("set_id = ?", setID)
	}
	if rarity := c.Query("rarity"); rarity != "" {
		query = query.Where("rarity = ?", rarity)
	}
	if supertype := c.Query("supertype"); supertype != "" {
		query = query.Where("supertype = ?", supertype)
	}
	if cardType := c.Query("type"); cardType != "" {
		// Types is stored as a JSON array; match the quoted element.
		query = query.Where("types LIKE ?", "%\""+cardType+"\"%")
	}
	if gen := c.Query("generation"); gen != "" {
		generation, err := strconv.Atoi(gen)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid generation"})
			return
		}
		query = query.Where("generation = ?", generation)
	}

	limit := defaultSearchLimit
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	var cards []models.Card
	// Fetch one extra row to detect whether more results exist.
	if err := query.Order("name ASC").Limit(limit + 1).Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hasMore := len(cards) > limit
	if hasMore {
		cards = cards[:limit]
	}

	c.JSON(http.StatusOK, models.CardSearchResult{
		Cards:      cards,
		TotalCount: len(cards),
		HasMore:    hasMore,
	})
}

func (h *CardHandler) GetCard(c *gin.Context) {
	db := database.GetDB()

	var card models.Card
	if err := db.First(&card, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}

	c.JSON(http.StatusOK, card)
}

// RefreshCardPrice queues the card for a priority quote refresh.
func (h *CardHandler) RefreshCardPrice(c *gin.Context) {
	cardID := c.Param("id")

	db := database.GetDB()
	var card models.Card
	if err := db.First(&card, "id = ?", cardID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}

	position := h.priceWorker.QueueRefresh(cardID)
	c.JSON(http.StatusAccepted, gin.H{
		"message":        "refresh queued",
		"queue_position": position,
	})
}

// GetPriceStatus reports the background refresh worker state.
func (h *CardHandler) GetPriceStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.priceWorker.GetStatus())
}
