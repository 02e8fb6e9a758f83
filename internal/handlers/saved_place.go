package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smifffystuff/paw-places/internal/store"
)

type savedPlaceCreateRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
	Tags  string `json:"tags"`
}

// savedPlaceUpdateRequest only recognizes the four updatable fields; unknown
// keys in the payload are dropped by the decoder without error.
type savedPlaceUpdateRequest struct {
	Name    *string `json:"name"`
	Notes   *string `json:"notes"`
	Tags    *string `json:"tags"`
	Visited *bool   `json:"visited"`
}

func (r savedPlaceUpdateRequest) toUpdate() store.SavedPlaceUpdate {
	return store.SavedPlaceUpdate{
		Name:    r.Name,
		Notes:   r.Notes,
		Tags:    r.Tags,
		Visited: r.Visited,
	}
}

func ListSavedPlaces(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /my-places"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		places, err := store.ListSavedPlaces(ctx, db, userID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Unable to fetch saved places")
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": places})
	}
}

func CreateSavedPlace(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /my-places"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req savedPlaceCreateRequest
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Invalid JSON payload")
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			respondWithError(c, http.StatusBadRequest, route, "Place name is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		place, err := store.CreateSavedPlace(ctx, db, userID, store.SavedPlaceInput{
			Name:  req.Name,
			Notes: req.Notes,
			Tags:  req.Tags,
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Unable to save place")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"data": place})
	}
}

func UpdateSavedPlace(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /my-places/:id"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "Invalid place identifier")
			return
		}

		var req savedPlaceUpdateRequest
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Invalid JSON payload")
			return
		}

		update := req.toUpdate()
		if update.IsEmpty() {
			respondWithError(c, http.StatusBadRequest, route, "No valid updates provided")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		place, err := store.UpdateSavedPlace(ctx, db, userID, id, update)
		if err == store.ErrInvalidID {
			respondWithError(c, http.StatusBadRequest, route, "Invalid place identifier")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Unable to update place")
			return
		}
		if place == nil {
			respondWithError(c, http.StatusNotFound, route, "Place not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": place})
	}
}

func DeleteSavedPlace(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /my-places/:id"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "Invalid place identifier")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		deleted, err := store.DeleteSavedPlace(ctx, db, userID, id)
		if err == store.ErrInvalidID {
			respondWithError(c, http.StatusBadRequest, route, "Invalid place identifier")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Unable to delete place")
			return
		}
		if !deleted {
			respondWithError(c, http.StatusNotFound, route, "Place not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
	}
}
