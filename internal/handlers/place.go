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

type placeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Geo         geoInput `json:"geo" binding:"required"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
}

type geoInput struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type reviewRequest struct {
	Text   string   `json:"text" binding:"required"`
	Rating float64  `json:"rating" binding:"required"`
	Photos []string `json:"photos"`
}

/*
GET /places
- near=lng,lat filters to a 10km radius via $near
- category filters by equality
*/
func GetPlaces(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /places"
		defer handlePanic(c, route)

		log.Printf("[%s] hit near=%s category=%s", route, c.Query("near"), c.Query("category"))

		filter := bson.M{}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		if near := strings.TrimSpace(c.Query("near")); near != "" {
			lng, lat, err := parseNear(near)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			filter["geo"] = bson.M{
				"$near": bson.M{
					"$geometry": bson.M{
						"type":        "Point",
						"coordinates": []float64{lng, lat},
					},
					"$maxDistance": nearbyRadiusMeters,
				},
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("places").Find(ctx, filter, options.Find().SetLimit(50))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch places")
			return
		}
		defer cursor.Close(ctx)

		places := make([]models.Place, 0)
		if err := cursor.All(ctx, &places); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch places")
			return
		}

		log.Printf("[%s] returning %d places", route, len(places))
		c.JSON(http.StatusOK, gin.H{"places": places})
	}
}

func GetPlace(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /places/:id"
		defer handlePanic(c, route)

		placeID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid place id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var place models.Place
		err = db.Collection("places").FindOne(ctx, bson.M{"_id": placeID}).Decode(&place)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "Place not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch place")
			return
		}

		c.JSON(http.StatusOK, gin.H{"place": place})
	}
}

func CreatePlace(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /places"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var req placeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] invalid body: %v", route, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		tags := req.Tags
		if tags == nil {
			tags = []string{}
		}
		photos := req.Photos
		if photos == nil {
			photos = []string{}
		}

		place := models.Place{
			Name:        strings.TrimSpace(req.Name),
			Category:    strings.TrimSpace(req.Category),
			Description: strings.TrimSpace(req.Description),
			Geo: models.GeoPoint{
				Type:        "Point",
				Coordinates: []float64{req.Geo.Lng, req.Geo.Lat},
			},
			Tags:      models.StringList(tags),
			Photos:    photos,
			AddedBy:   userID,
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("places").InsertOne(ctx, place)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to add place")
			return
		}

		log.Printf("[%s] place created: %v", route, result.InsertedID)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"placeId": result.InsertedID.(primitive.ObjectID).Hex(),
		})
	}
}

func GetPlaceReviews(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /places/:id/reviews"
		defer handlePanic(c, route)

		placeID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid place id")
			return
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("reviews").Find(ctx, bson.M{"placeId": placeID}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch reviews")
			return
		}
		defer cursor.Close(ctx)

		reviews := make([]models.Review, 0)
		if err := cursor.All(ctx, &reviews); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to fetch reviews")
			return
		}

		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

func CreateReview(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /places/:id/reviews"
		defer handlePanic(c, route)

		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		placeID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid place id")
			return
		}

		var req reviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] invalid body: %v", route, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		photos := req.Photos
		if photos == nil {
			photos = []string{}
		}

		review := models.Review{
			PlaceID:   placeID,
			UserID:    userID,
			Text:      req.Text,
			Rating:    req.Rating,
			Photos:    photos,
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("reviews").InsertOne(ctx, review)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Failed to add review")
			return
		}

		log.Printf("[%s] review created: %v", route, result.InsertedID)
		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"reviewId": result.InsertedID.(primitive.ObjectID).Hex(),
		})
	}
}
