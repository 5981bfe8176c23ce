package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	StartDate   time.Time          `bson:"start_date"`
	// EndDate stays unset at creation time. There is no
	// update path for it yet.
	EndDate *time.Time         `bson:"end_date,omitempty"`
	UserID  primitive.ObjectID `bson:"user_id"`
}
