package doctors

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type doctorMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewDoctorMongoRepository(db *mongo.Database, logger *zap.Logger) DoctorRepository {
	return &doctorMongoRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *doctorMongoRepository) collection() *mongo.Collection {
	return r.DB.Collection(constvars.MongoCollectionDoctors)
}

// FindAll reads the whole collection in stored order (last name ascending).
// Presentation order is applied by the query engine, not here.
func (r *doctorMongoRepository) FindAll(ctx context.Context) ([]*models.Doctor, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := []*models.Doctor{}
	for cursor.Next(ctx) {
		document := bson.M{}
		if err := cursor.Decode(&document); err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
		doctors = append(doctors, MapDoctorDocument(document))
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doctors, nil
}

func (r *doctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *doctorMongoRepository) FindBySlug(ctx context.Context, slug string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *doctorMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	document := bson.M{}
	err := r.collection().FindOne(ctx, filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return MapDoctorDocument(document), nil
}

func (r *doctorMongoRepository) CreateDoctor(ctx context.Context, payload map[string]interface{}) (string, error) {
	now := time.Now()
	payload["createdAt"] = now
	payload["updatedAt"] = now

	result, err := r.collection().InsertOne(ctx, bson.M(payload))
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}
	return insertedID.Hex(), nil
}

func (r *doctorMongoRepository) UpdateDoctor(ctx context.Context, doctorID string, payload map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	payload["updatedAt"] = time.Now()
	result, err := r.collection().UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M(payload)})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return nil
}

func (r *doctorMongoRepository) DeleteDoctor(ctx context.Context, doctorID string) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return nil
}

// WatchChanges opens a change stream over the collection and signals once
// per change event. The channel closes when the context is cancelled or the
// stream dies; callers decide how to re-read.
func (r *doctorMongoRepository) WatchChanges(ctx context.Context) (<-chan struct{}, error) {
	stream, err := r.collection().Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, exceptions.ErrMongoDBWatchStream(err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			select {
			case changes <- struct{}{}:
			default:
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			r.Log.Error("doctor change stream closed", zap.Error(err))
		}
	}()
	return changes, nil
}
