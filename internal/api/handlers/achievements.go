package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/backend/internal/services"
)

type AchievementHandler struct {
	achievements *services.AchievementService
}

func NewAchievementHandler(achievements *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// ListAchievements returns the catalog annotated with the user's
// unlock state. Hidden achievements appear only once unlocked.
func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	list, err := h.achievements.ListWithStatus(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements": list,
		"count":        len(list),
	})
}

// CheckAchievements re-evaluates the user's achievements on demand and
// returns the resulting diff.
func (h *AchievementHandler) CheckAchievements(c *gin.Context) {
	check, err := h.achievements.RunCheck(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, check)
}
