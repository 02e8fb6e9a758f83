package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point, coordinates ordered [lng, lat].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Place is a shared discovery place visible to every user.
type Place struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Geo         GeoPoint           `bson:"geo" json:"geo"`
	Tags        StringList         `bson:"tags" json:"tags"`
	Photos      []string           `bson:"photos" json:"photos"`
	AddedBy     string             `bson:"addedBy" json:"addedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
