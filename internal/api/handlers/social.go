package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardfolio/backend/internal/database"
	"github.com/cardfolio/backend/internal/models"
	"github.com/cardfolio/backend/internal/services"
)

// SocialHandler covers the friend graph, trades and login recording.
// Trade completion and login recording feed the activity counters, so
// both trigger an achievement check for the affected users.
type SocialHandler struct {
	achievements *services.AchievementService
}

func NewSocialHandler(achievements *services.AchievementService) *SocialHandler {
	return &SocialHandler{achievements: achievements}
}

func (h *SocialHandler) AddFriend(c *gin.Context) {
	userID := c.Param("userId")
	friendID := c.Param("friendId")

	if userID == friendID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot befriend yourself"})
		return
	}

	db := database.GetDB()

	var friend models.User
	if err := db.First(&friend, "id = ?", friendID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	// Friendship is stored as two directed edges.
	err := db.Transaction(func(tx *gorm.DB) error {
		edges := []models.Friendship{
			{UserID: userID, FriendID: friendID},
			{UserID: friendID, FriendID: userID},
		}
		for i := range edges {
			err := tx.Where("user_id = ? AND friend_id = ?", edges[i].UserID, edges[i].FriendID).
				FirstOrCreate(&edges[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "friend added",
		"achievements": h.runCheck(userID),
	})
}

func (h *SocialHandler) RemoveFriend(c *gin.Context) {
	userID := c.Param("userId")
	friendID := c.Param("friendId")

	db := database.GetDB()

	result := db.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, friendID, friendID, userID).
		Delete(&models.Friendship{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "friendship not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "friend removed",
		"achievements": h.runCheck(userID),
	})
}

func (h *SocialHandler) ListFriends(c *gin.Context) {
	db := database.GetDB()

	var friends []models.User
	err := db.Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", c.Param("userId")).
		Order("users.username ASC").
		Find(&friends).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, friends)
}

func (h *SocialHandler) CreateTrade(c *gin.Context) {
	userID := c.Param("userId")

	var req models.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReceiverID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot trade with yourself"})
		return
	}

	db := database.GetDB()

	var receiver models.User
	if err := db.First(&receiver, "id = ?", req.ReceiverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "receiver not found"})
		return
	}

	trade := models.Trade{
		ProposerID: userID,
		ReceiverID: req.ReceiverID,
		Status:     models.TradeStatusPending,
	}
	if err := db.Create(&trade).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, trade)
}

// CompleteTrade marks a pending trade completed and re-evaluates
// achievements for both parties.
func (h *SocialHandler) CompleteTrade(c *gin.Context) {
	userID := c.Param("userId")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	db := database.GetDB()

	var trade models.Trade
	if err := db.First(&trade, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
		return
	}
	if trade.ProposerID != userID && trade.ReceiverID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a trade participant"})
		return
	}
	if trade.Status != models.TradeStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "trade is not pending"})
		return
	}

	now := time.Now()
	trade.Status = models.TradeStatusCompleted
	trade.CompletedAt = &now
	if err := db.Save(&trade).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The counterparty's achievement state changes too; their diff is
	// applied but only the caller's diff is returned.
	counterparty := trade.ProposerID
	if counterparty == userID {
		counterparty = trade.ReceiverID
	}
	if _, err := h.achievements.RunCheck(counterparty); err != nil {
		log.Printf("Social: achievement check failed for counterparty %s: %v", counterparty, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"trade":        trade,
		"achievements": h.runCheck(userID),
	})
}

func (h *SocialHandler) ListTrades(c *gin.Context) {
	userID := c.Param("userId")

	db := database.GetDB()

	var trades []models.Trade
	query := db.Where("proposer_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&trades).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trades)
}

// RecordLogin records today's login (idempotent per day) and
// re-evaluates achievements so streak unlocks land immediately.
func (h *SocialHandler) RecordLogin(c *gin.Context) {
	userID := c.Param("userId")

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	event := models.LoginEvent{
		UserID: userID,
		Day:    time.Now().Format("2006-01-02"),
	}
	err := db.Where("user_id = ? AND day = ?", event.UserID, event.Day).
		FirstOrCreate(&event).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"day":          event.Day,
		"achievements": h.runCheck(userID),
	})
}

func (h *SocialHandler) runCheck(userID string) *services.AchievementCheckResult {
	check, err := h.achievements.RunCheck(userID)
	if err != nil {
		log.Printf("Social: achievement check failed for %s: %v", userID, err)
		return nil
	}
	return check
}
