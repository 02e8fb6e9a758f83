package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a feed entry. PlaceID is optional; posts do not have to reference a
// discovery place.
type Post struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    string              `bson:"userId" json:"userId"`
	PlaceID   *primitive.ObjectID `bson:"placeId" json:"placeId"`
	PhotoURL  string              `bson:"photoUrl" json:"photoUrl"`
	Caption   string              `bson:"caption" json:"caption"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// Like records that a user liked a post. A unique index on (postId, userId)
// keeps the pair unique.
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    string             `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
