package storage

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Markosdlpz02/Practica4/internal/models"
)

const tasksCollection = "Tareas"

type taskStoreImpl struct {
	logger zerolog.Logger
	coll   *mongo.Collection
}

func NewTaskStore(logger zerolog.Logger, db *mongo.Database) TaskStore {
	return &taskStoreImpl{
		logger: logger,
		coll:   db.Collection(tasksCollection),
	}
}

func (s *taskStoreImpl) ListTasks(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to find tasks")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	err = cursor.All(ctx, &tasks)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode tasks")
		return nil, err
	}

	return tasks, nil
}

func (s *taskStoreImpl) TaskByID(ctx context.Context, id string) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var task models.Task
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to find task")
		return nil, err
	}

	return &task, nil
}

func (s *taskStoreImpl) TasksByProjectID(ctx context.Context, projectID string) ([]models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, ErrInvalidID
	}

	cursor, err := s.coll.Find(ctx, bson.M{"project_id": oid})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("project_id", projectID).
			Msg("failed to find tasks by project")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	err = cursor.All(ctx, &tasks)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode tasks")
		return nil, err
	}

	return tasks, nil
}

func (s *taskStoreImpl) CreateTask(ctx context.Context, task *models.Task) error {
	task.ID = primitive.NewObjectID()
	task.CreatedAt = time.Now().UTC()

	_, err := s.coll.InsertOne(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return err
	}
	s.logger.Debug().
		Str("task_id", task.ID.Hex()).
		Msg("inserted task")

	return nil
}

func (s *taskStoreImpl) MoveTask(ctx context.Context, taskID, destinationProjectID string) error {
	taskOID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return ErrInvalidID
	}
	destOID, err := primitive.ObjectIDFromHex(destinationProjectID)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.coll.UpdateOne(
		ctx,
		bson.M{"_id": taskOID},
		bson.M{"$set": bson.M{"project_id": destOID}},
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Str("project_id", destinationProjectID).
			Msg("failed to update task project")
		return err
	}
	if result.ModifiedCount == 0 {
		return ErrTaskNotMoved
	}
	s.logger.Debug().
		Str("task_id", taskID).
		Str("project_id", destinationProjectID).
		Msg("moved task")

	return nil
}

func (s *taskStoreImpl) DeleteTask(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	s.logger.Debug().
		Str("task_id", id).
		Msg("deleted task")

	return nil
}
