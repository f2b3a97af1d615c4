package auth

import (
	"context"
	"fmt"
	"time"

	"labclinics-service/internal/app/models"
	"labclinics-service/internal/pkg/constvars"
	"labclinics-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type userMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewUserMongoRepository(db *mongo.Database, logger *zap.Logger) UserRepository {
	return &userMongoRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *userMongoRepository) collection() *mongo.Collection {
	return r.DB.Collection(constvars.MongoCollectionUsers)
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return user, nil
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}
	return insertedID.Hex(), nil
}
