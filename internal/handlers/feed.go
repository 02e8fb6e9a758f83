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

type postRequest struct {
	PlaceID  string `json:"placeId"`
	PhotoURL string `json:"photoUrl" binding:"required"`
	Caption  string `json:"caption"`
}

func GetFeed(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /feed"
		defer handlePanic(c, route)

		limit, skip, err := parseFeedParams(c.Query("limit"), c.Query("skip"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("posts").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch feed")
			return
		}
		defer cursor.Close(ctx)

		posts := make([]models.Post, 0)
		if err := cursor.All(ctx, &posts); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch feed")
			return
		}

		log.Printf("[%s] returning %d posts", route, len(posts))
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

func CreatePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /posts"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req postRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] invalid body: %v", route, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		var placeID *primitive.ObjectID
		if raw := strings.TrimSpace(req.PlaceID); raw != "" {
			parsed, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid placeId"})
				return
			}
			placeID = &parsed
		}

		post := models.Post{
			UserID:    userID,
			PlaceID:   placeID,
			PhotoURL:  req.PhotoURL,
			Caption:   strings.TrimSpace(req.Caption),
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("posts").InsertOne(ctx, post)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to create post")
			return
		}

		log.Printf("[%s] post created: %v", route, result.InsertedID)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"postId":  result.InsertedID.(primitive.ObjectID).Hex(),
		})
	}
}

// LikePost relies on the unique (postId, userId) index: the insert either wins
// or surfaces a duplicate-key error, so two racing likes cannot both persist.
func LikePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /like/:postId"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		postID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("postId")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid post id")
			return
		}

		like := models.Like{
			PostID:    postID,
			UserID:    userID,
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err = db.Collection("likes").InsertOne(ctx, like)
		if mongo.IsDuplicateKeyError(err) {
			respondWithError(c, http.StatusBadRequest, route, "Already liked")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to like post")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func UnlikePost(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /like/:postId"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		postID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("postId")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid post id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err = db.Collection("likes").DeleteOne(ctx, bson.M{
			"postId": postID,
			"userId": userID,
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to unlike post")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
