package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status is a free-form string; clients may use any value.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	ProjectID   primitive.ObjectID `bson:"project_id"`
}
