package storage

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Markosdlpz02/Practica4/internal/models"
)

const projectsCollection = "Proyectos"

type projectStoreImpl struct {
	logger zerolog.Logger
	coll   *mongo.Collection
}

func NewProjectStore(logger zerolog.Logger, db *mongo.Database) ProjectStore {
	return &projectStoreImpl{
		logger: logger,
		coll:   db.Collection(projectsCollection),
	}
}

func (s *projectStoreImpl) ListProjects(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to find projects")
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	err = cursor.All(ctx, &projects)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode projects")
		return nil, err
	}

	return projects, nil
}

func (s *projectStoreImpl) ProjectByID(ctx context.Context, id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var project models.Project
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error().
			Err(err).
			Str("project_id", id).
			Msg("failed to find project")
		return nil, err
	}

	return &project, nil
}

func (s *projectStoreImpl) ProjectsByUserID(ctx context.Context, userID string) ([]models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	cursor, err := s.coll.Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to find projects by user")
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	err = cursor.All(ctx, &projects)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode projects")
		return nil, err
	}

	return projects, nil
}

func (s *projectStoreImpl) CreateProject(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()

	_, err := s.coll.InsertOne(ctx, project)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert project")
		return err
	}
	s.logger.Debug().
		Str("project_id", project.ID.Hex()).
		Msg("inserted project")

	return nil
}

func (s *projectStoreImpl) DeleteProject(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("project_id", id).
			Msg("failed to delete project")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	s.logger.Debug().
		Str("project_id", id).
		Msg("deleted project")

	return nil
}
