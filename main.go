package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/smifffystuff/paw-places/internal/config"
	"github.com/smifffystuff/paw-places/internal/database"
	"github.com/smifffystuff/paw-places/internal/handlers"
	"github.com/smifffystuff/paw-places/internal/identity"
	"github.com/smifffystuff/paw-places/internal/middleware"
)

func main() {
	config.Load()

	if config.AppEnv.MongoURI == "" {
		log.Fatal("MONGODB_URI is required")
	}

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsurePlaceIndexes(db); err != nil {
		log.Printf("⚠️ place index warning: %v", err)
	}
	if err := database.EnsureLikeIndexes(db); err != nil {
		log.Printf("⚠️ like index warning: %v", err)
	}
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("⚠️ user index warning: %v", err)
	}
	if err := database.EnsureSavedPlaceIndexes(db); err != nil {
		log.Printf("⚠️ saved place index warning: %v", err)
	}
	if err := database.EnsureReviewIndexes(db); err != nil {
		log.Printf("⚠️ review index warning: %v", err)
	}

	verifier, err := buildVerifier()
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", handlers.Health(db))

	r.GET("/places", handlers.GetPlaces(db))
	r.GET("/places/:id", handlers.GetPlace(db))
	r.GET("/places/:id/reviews", handlers.GetPlaceReviews(db))
	r.GET("/feed", handlers.GetFeed(db))
	r.GET("/users/:clerkId", handlers.GetUserProfile(db))

	authed := r.Group("/")
	authed.Use(middleware.SessionAuth(verifier))
	{
		authed.POST("/places", handlers.CreatePlace(db))
		authed.POST("/places/:id/reviews", handlers.CreateReview(db))

		authed.POST("/posts", handlers.CreatePost(db))
		authed.POST("/like/:postId", handlers.LikePost(db))
		authed.DELETE("/like/:postId", handlers.UnlikePost(db))

		authed.POST("/users/profile", handlers.UpsertProfile(db))
		authed.POST("/users/pets", handlers.CreatePet(db))

		authed.GET("/my-places", handlers.ListSavedPlaces(db))
		authed.POST("/my-places", handlers.CreateSavedPlace(db))
		authed.PATCH("/my-places/:id", handlers.UpdateSavedPlace(db))
		authed.DELETE("/my-places/:id", handlers.DeleteSavedPlace(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func buildVerifier() (identity.Verifier, error) {
	if config.AppEnv.ClerkJWKSURL != "" {
		log.Println("auth: verifying sessions against JWKS:", config.AppEnv.ClerkJWKSURL)
		return identity.NewClerkVerifier(context.Background(), config.AppEnv.ClerkJWKSURL)
	}
	if config.AppEnv.SessionSecret != "" {
		log.Println("auth: CLERK_JWKS_URL not set, using shared-secret sessions")
		return identity.NewStaticVerifier(config.AppEnv.SessionSecret), nil
	}
	log.Fatal("auth not configured: set CLERK_JWKS_URL or SESSION_SECRET")
	return nil, nil
}
