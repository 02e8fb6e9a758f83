package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Health pings the store so load balancers see connection loss, not just
// process liveness.
func Health(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			log.Println("[HEALTH] [ERROR] mongo ping failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Unable to connect to MongoDB",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
