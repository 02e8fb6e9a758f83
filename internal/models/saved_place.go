package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SavedPlace is the stored shape of a personal saved place. Timestamps are
// ISO-8601 strings so documents written by earlier deployments keep decoding.
type SavedPlace struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Name      string             `bson:"name"`
	Notes     string             `bson:"notes"`
	Tags      string             `bson:"tags"`
	Visited   bool               `bson:"visited"`
	CreatedAt string             `bson:"createdAt"`
	UpdatedAt string             `bson:"updatedAt"`
}

// SavedPlaceDTO is the transport shape returned to callers. The store-assigned
// ObjectID never leaves the store package in its native form.
type SavedPlaceDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Notes     string `json:"notes"`
	Tags      string `json:"tags"`
	Visited   bool   `json:"visited"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
