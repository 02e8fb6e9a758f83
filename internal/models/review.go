package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlaceID   primitive.ObjectID `bson:"placeId" json:"placeId"`
	UserID    string             `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	Rating    float64            `bson:"rating" json:"rating"`
	Photos    []string           `bson:"photos" json:"photos"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
