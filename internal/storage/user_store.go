package storage

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Markosdlpz02/Practica4/internal/models"
)

const usersCollection = "Usuarios"

type userStoreImpl struct {
	logger zerolog.Logger
	coll   *mongo.Collection
}

func NewUserStore(logger zerolog.Logger, db *mongo.Database) UserStore {
	coll := db.Collection(usersCollection)

	// The handler pre-checks the email before inserting, but that
	// check-then-insert sequence is not atomic. The unique index
	// closes the race at the storage level.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to ensure unique email index")
	}

	return &userStoreImpl{
		logger: logger,
		coll:   coll,
	}
}

func (s *userStoreImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to find users")
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	err = cursor.All(ctx, &users)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode users")
		return nil, err
	}

	return users, nil
}

func (s *userStoreImpl) UserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var user models.User
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		s.logger.Error().
			Err(err).
			Str("user_id", id).
			Msg("failed to find user")
		return nil, err
	}

	return &user, nil
}

func (s *userStoreImpl) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		s.logger.Error().
			Err(err).
			Msg("failed to find user by email")
		return nil, err
	}

	return &user, nil
}

func (s *userStoreImpl) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	_, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return err
	}
	s.logger.Debug().
		Str("user_id", user.ID.Hex()).
		Msg("inserted user")

	return nil
}

func (s *userStoreImpl) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", id).
			Msg("failed to delete user")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	s.logger.Debug().
		Str("user_id", id).
		Msg("deleted user")

	return nil
}
