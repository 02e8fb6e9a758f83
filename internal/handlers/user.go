package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smifffystuff/paw-places/internal/models"
)

type profileRequest struct {
	Name      string `json:"name" binding:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

type petRequest struct {
	Name     string `json:"name" binding:"required"`
	Species  string `json:"species" binding:"required"`
	Breed    string `json:"breed"`
	PhotoURL string `json:"photoUrl"`
}

// GetUserProfile returns a profile together with the pets it owns.
func GetUserProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/:clerkId"
		defer handlePanic(c, route)

		clerkID := strings.TrimSpace(c.Param("clerkId"))
		if clerkID == "" {
			respondWithError(c, http.StatusBadRequest, route, "invalid user id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err := db.Collection("users").FindOne(ctx, bson.M{"clerkId": clerkID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "User not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch user")
			return
		}

		cursor, err := db.Collection("pets").Find(ctx, bson.M{"userId": clerkID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch user")
			return
		}
		defer cursor.Close(ctx)

		pets := make([]models.Pet, 0)
		if err := cursor.All(ctx, &pets); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch user")
			return
		}

		user.Pets = pets
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// UpsertProfile creates the caller's profile on first write and updates it
// afterwards.
func UpsertProfile(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/profile"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] invalid body: %v", route, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		now := time.Now()
		_, err := db.Collection("users").UpdateOne(
			ctx,
			bson.M{"clerkId": userID},
			bson.M{
				"$set": bson.M{
					"name":      strings.TrimSpace(req.Name),
					"bio":       strings.TrimSpace(req.Bio),
					"avatarUrl": strings.TrimSpace(req.AvatarURL),
					"updatedAt": now,
				},
				"$setOnInsert": bson.M{
					"clerkId":   userID,
					"createdAt": now,
				},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to update profile")
			return
		}

		log.Printf("[%s] profile upserted for %s", route, userID)
		c.JSON(http.StatusOK, gin.H{"success": true, "userId": userID})
	}
}

func CreatePet(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users/pets"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req petRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] invalid body: %v", route, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		pet := models.Pet{
			UserID:    userID,
			Name:      strings.TrimSpace(req.Name),
			Species:   strings.TrimSpace(req.Species),
			Breed:     strings.TrimSpace(req.Breed),
			PhotoURL:  strings.TrimSpace(req.PhotoURL),
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("pets").InsertOne(ctx, pet)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to add pet")
			return
		}

		log.Printf("[%s] pet created: %v", route, result.InsertedID)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"petId":   result.InsertedID.(primitive.ObjectID).Hex(),
		})
	}
}
