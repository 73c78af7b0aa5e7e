package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/backend/internal/database"
	"github.com/cardfolio/backend/internal/models"
	"github.com/cardfolio/backend/internal/services"
)

// Maximum quantity allowed per collection stack
const maxQuantity = 9999

type CollectionHandler struct {
	stats        *services.StatsService
	achievements *services.AchievementService
}

func NewCollectionHandler(stats *services.StatsService, achievements *services.AchievementService) *CollectionHandler {
	return &CollectionHandler{stats: stats, achievements: achievements}
}

// CollectionMutationResponse wraps a mutated item with the achievement
// diff the mutation triggered.
type CollectionMutationResponse struct {
	Item         *models.CollectionItem           `json:"item,omitempty"`
	Message      string                           `json:"message,omitempty"`
	Achievements *services.AchievementCheckResult `json:"achievements,omitempty"`
}

func (h *CollectionHandler) GetCollection(c *gin.Context) {
	db := database.GetDB()
	userID := c.Param("userId")

	var items []models.CollectionItem
	query := db.Preload("Card").Where("user_id = ?", userID).Order("added_at DESC")

	if variant := c.Query("variant"); variant != "" {
		query = query.Where("variant = ?", variant)
	}
	if condition := c.Query("condition"); condition != "" {
		query = query.Where("condition = ?", condition)
	}

	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddToCollection adds cards to the user's collection. An existing
// stack with the same card, variant and condition absorbs the new
// quantity instead of creating a duplicate record.
func (h *CollectionHandler) AddToCollection(c *gin.Context) {
	userID := c.Param("userId")

	var req models.AddToCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()

	var card models.Card
	if err := db.First(&card, "id = ?", req.CardID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card not found, please search for it first"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}
	if quantity > maxQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity exceeds maximum allowed (9999)"})
		return
	}

	condition := req.Condition
	if condition == "" {
		condition = models.ConditionNearMint
	}
	if !models.IsValidCondition(condition) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown condition"})
		return
	}
	variant := req.Variant
	if variant == "" {
		variant = models.VariantNormal
	}
	if !models.IsValidVariant(variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variant"})
		return
	}

	// Merge into an existing stack when one matches.
	var existing models.CollectionItem
	err := db.Where("user_id = ? AND card_id = ? AND condition = ? AND variant = ?",
		userID, req.CardID, condition, variant).
		First(&existing).Error

	status := http.StatusCreated
	var item models.CollectionItem
	if err == nil {
		existing.Quantity += quantity
		if err := db.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		item = existing
		status = http.StatusOK
	} else {
		item = models.CollectionItem{
			UserID:    userID,
			CardID:    req.CardID,
			Quantity:  quantity,
			Condition: condition,
			Variant:   variant,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	db.Preload("Card").First(&item, item.ID)

	c.JSON(status, CollectionMutationResponse{
		Item:         &item,
		Achievements: h.runCheck(userID),
	})
}

func (h *CollectionHandler) UpdateCollectionItem(c *gin.Context) {
	userID := c.Param("userId")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()

	var item models.CollectionItem
	if err := db.Where("user_id = ?", userID).First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
			return
		}
		if *req.Quantity > maxQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity exceeds maximum allowed (9999)"})
			return
		}
		item.Quantity = *req.Quantity
	}

	newCondition := item.Condition
	if req.Condition != nil {
		if !models.IsValidCondition(*req.Condition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown condition"})
			return
		}
		newCondition = *req.Condition
	}
	newVariant := item.Variant
	if req.Variant != nil {
		if !models.IsValidVariant(*req.Variant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown variant"})
			return
		}
		newVariant = *req.Variant
	}

	// A variant/condition change may collide with an existing stack;
	// merge the quantities and drop this record when it does.
	if newCondition != item.Condition || newVariant != item.Variant {
		var target models.CollectionItem
		err := db.Where("user_id = ? AND card_id = ? AND condition = ? AND variant = ? AND id != ?",
			userID, item.CardID, newCondition, newVariant, item.ID).
			First(&target).Error
		if err == nil {
			target.Quantity += item.Quantity
			if err := db.Save(&target).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			db.Preload("Card").First(&target, target.ID)
			c.JSON(http.StatusOK, CollectionMutationResponse{
				Item:         &target,
				Message:      "merged into existing stack",
				Achievements: h.runCheck(userID),
			})
			return
		}
		item.Condition = newCondition
		item.Variant = newVariant
	}

	if err := db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	db.Preload("Card").First(&item, item.ID)
	c.JSON(http.StatusOK, CollectionMutationResponse{
		Item:         &item,
		Achievements: h.runCheck(userID),
	})
}

func (h *CollectionHandler) DeleteCollectionItem(c *gin.Context) {
	userID := c.Param("userId")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	db := database.GetDB()

	result := db.Where("user_id = ?", userID).Delete(&models.CollectionItem{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	c.JSON(http.StatusOK, CollectionMutationResponse{
		Message:      "deleted",
		Achievements: h.runCheck(userID),
	})
}

func (h *CollectionHandler) GetStats(c *gin.Context) {
	stats, err := h.stats.ComputeStats(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// runCheck re-evaluates achievements after a mutation. Evaluation
// failure never fails the mutation; the diff is simply omitted.
func (h *CollectionHandler) runCheck(userID string) *services.AchievementCheckResult {
	check, err := h.achievements.RunCheck(userID)
	if err != nil {
		log.Printf("Collection: achievement check failed for %s: %v", userID, err)
		return nil
	}
	return check
}
