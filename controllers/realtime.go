// controllers/realtime.go
package controllers

import (
	"net/http"

	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// RealtimeToken exchanges the caller's session for a short-lived token the
// browser presents when opening its websocket. Either principal works; with
// both set in one session the admin identity wins.
func RealtimeToken(c *gin.Context) {
	if id, ok := utils.AdminID(c); ok {
		token, err := utils.GenerateRealtimeToken(utils.RoleAdmin, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
		return
	}

	if id, ok := utils.CustomerID(c); ok {
		token, err := utils.GenerateRealtimeToken(utils.RoleCustomer, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
}
