package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smifffystuff/paw-places/internal/models"
)

// ErrInvalidID marks a syntactically malformed saved place id. Handlers map it
// to 400, distinct from not-found.
var ErrInvalidID = errors.New("invalid saved place id")

const savedPlacesCollection = "my_places"

// Timestamps are stored as fixed-width UTC ISO-8601 strings, so newest-first
// sorting on createdAt stays correct lexicographically.
const savedPlaceTimeLayout = "2006-01-02T15:04:05.000Z"

// SavedPlaceInput carries the fields accepted at creation.
type SavedPlaceInput struct {
	Name  string
	Notes string
	Tags  string
}

// SavedPlaceUpdate is a typed partial update. A nil field was absent from the
// request and leaves the stored value untouched.
type SavedPlaceUpdate struct {
	Name    *string
	Notes   *string
	Tags    *string
	Visited *bool
}

// IsEmpty reports whether no recognized field was provided.
func (u SavedPlaceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Notes == nil && u.Tags == nil && u.Visited == nil
}

func savedPlaceTimestamp() string {
	return time.Now().UTC().Format(savedPlaceTimeLayout)
}

func normalizeSavedPlaceDocument(document models.SavedPlace) models.SavedPlaceDTO {
	return models.SavedPlaceDTO{
		ID:        document.ID.Hex(),
		Name:      document.Name,
		Notes:     document.Notes,
		Tags:      document.Tags,
		Visited:   document.Visited,
		CreatedAt: document.CreatedAt,
		UpdatedAt: document.UpdatedAt,
	}
}

func newSavedPlaceDocument(userID string, input SavedPlaceInput) models.SavedPlace {
	timestamp := savedPlaceTimestamp()
	return models.SavedPlace{
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Notes:     strings.TrimSpace(input.Notes),
		Tags:      strings.TrimSpace(input.Tags),
		Visited:   false,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}
}

func buildSavedPlaceSet(update SavedPlaceUpdate, timestamp string) bson.M {
	set := bson.M{"updatedAt": timestamp}

	if update.Name != nil {
		set["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Notes != nil {
		set["notes"] = strings.TrimSpace(*update.Notes)
	}
	if update.Tags != nil {
		set["tags"] = strings.TrimSpace(*update.Tags)
	}
	if update.Visited != nil {
		set["visited"] = *update.Visited
	}

	return set
}

// ListSavedPlaces returns the caller's saved places, newest first.
func ListSavedPlaces(ctx context.Context, db *mongo.Database, userID string) ([]models.SavedPlaceDTO, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := db.Collection(savedPlacesCollection).Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var documents []models.SavedPlace
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}

	places := make([]models.SavedPlaceDTO, 0, len(documents))
	for _, document := range documents {
		places = append(places, normalizeSavedPlaceDocument(document))
	}
	return places, nil
}

// CreateSavedPlace inserts a new saved place for the caller and returns the
// normalized record including the assigned id.
func CreateSavedPlace(ctx context.Context, db *mongo.Database, userID string, input SavedPlaceInput) (models.SavedPlaceDTO, error) {
	document := newSavedPlaceDocument(userID, input)

	result, err := db.Collection(savedPlacesCollection).InsertOne(ctx, document)
	if err != nil {
		return models.SavedPlaceDTO{}, err
	}

	document.ID = result.InsertedID.(primitive.ObjectID)
	return normalizeSavedPlaceDocument(document), nil
}

// UpdateSavedPlace applies a partial update to one of the caller's saved
// places. It returns (nil, nil) when no owned record matches, and ErrInvalidID
// before touching the store when the id is not a valid ObjectID.
func UpdateSavedPlace(ctx context.Context, db *mongo.Database, userID, id string, update SavedPlaceUpdate) (*models.SavedPlaceDTO, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := buildSavedPlaceSet(update, savedPlaceTimestamp())

	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document models.SavedPlace
	err = db.Collection(savedPlacesCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "userId": userID},
		bson.M{"$set": set},
		findOptions,
	).Decode(&document)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dto := normalizeSavedPlaceDocument(document)
	return &dto, nil
}

// DeleteSavedPlace removes one of the caller's saved places. It reports false
// when no owned record matched; repeat deletes are not an error.
func DeleteSavedPlace(ctx context.Context, db *mongo.Database, userID, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	result, err := db.Collection(savedPlacesCollection).DeleteOne(ctx, bson.M{
		"_id":    objectID,
		"userId": userID,
	})
	if err != nil {
		return false, err
	}

	return result.DeletedCount == 1, nil
}
