package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsurePlaceIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("places").Indexes()

	geoIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "geo", Value: "2dsphere"}},
		Options: options.Index().SetName("geo_2dsphere"),
	}
	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("category_index"),
	}

	log.Println("EnsurePlaceIndexes: creating geo_2dsphere and category_index")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{geoIndex, categoryIndex})
	if err != nil {
		log.Println("EnsurePlaceIndexes: index error:", err)
		return err
	}
	log.Println("EnsurePlaceIndexes: indexes created")
	return nil
}

// EnsureLikeIndexes enforces at most one like per (postId, userId) at the
// store level, so concurrent like requests cannot both insert.
func EnsureLikeIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("likes").Indexes()

	uniqueLikeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "postId", Value: 1},
			{Key: "userId", Value: 1},
		},
		Options: options.Index().
			SetName("postId_userId_unique").
			SetUnique(true),
	}

	log.Println("EnsureLikeIndexes: creating postId_userId_unique index")
	_, err := indexes.CreateOne(ctx, uniqueLikeIndex)
	if err != nil {
		log.Println("EnsureLikeIndexes: like index error:", err)
		return err
	}
	log.Println("EnsureLikeIndexes: postId_userId_unique index created")
	return nil
}

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	clerkIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "clerkId", Value: 1}},
		Options: options.Index().
			SetName("clerkId_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating clerkId_unique index")
	_, err := indexes.CreateOne(ctx, clerkIDIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: clerkId index error:", err)
		return err
	}
	log.Println("EnsureUserIndexes: clerkId_unique index created")
	return nil
}

func EnsureSavedPlaceIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("my_places").Indexes()

	ownerIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("userId_createdAt"),
	}

	log.Println("EnsureSavedPlaceIndexes: creating userId_createdAt index")
	_, err := indexes.CreateOne(ctx, ownerIndex)
	if err != nil {
		log.Println("EnsureSavedPlaceIndexes: userId index error:", err)
		return err
	}
	log.Println("EnsureSavedPlaceIndexes: userId_createdAt index created")
	return nil
}

func EnsureReviewIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("reviews").Indexes()

	placeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "placeId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("placeId_createdAt"),
	}

	log.Println("EnsureReviewIndexes: creating placeId_createdAt index")
	_, err := indexes.CreateOne(ctx, placeIndex)
	if err != nil {
		log.Println("EnsureReviewIndexes: placeId index error:", err)
		return err
	}
	log.Println("EnsureReviewIndexes: placeId_createdAt index created")
	return nil
}
