package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

// ErrRecordNotFound indicates the farmer document does not exist.
var ErrRecordNotFound = errors.New("farmer record not found")

// Repository defines the persistence operations for farmer records.
type Repository interface {
	NextFarmerID(ctx context.Context) (string, error)
	SaveRecord(ctx context.Context, record models.FarmerRecord) error
	AttachRating(ctx context.Context, farmerID string, rating int) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "farmers",
	}, nil
}

// NextFarmerID derives the next "Farmer N" identifier by counting existing
// documents. The count is not atomic with the subsequent insert; the id is a
// best-effort sequence number, not a guaranteed-unique key.
func (r *MongoDBRepository) NextFarmerID(ctx context.Context) (string, error) {
	count, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", fmt.Errorf("failed to count farmer records: %w", err)
	}
	return fmt.Sprintf("Farmer %d", count+1), nil
}

// SaveRecord upserts the farmer record keyed by its id.
func (r *MongoDBRepository) SaveRecord(ctx context.Context, record models.FarmerRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": record.FarmerID}, record, opts)
	if err != nil {
		return fmt.Errorf("failed to save farmer record %s: %w", record.FarmerID, err)
	}
	return nil
}

// AttachRating stores a 1-5 star rating on an existing farmer document.
func (r *MongoDBRepository) AttachRating(ctx context.Context, farmerID string, rating int) error {
	update := bson.M{"$set": bson.M{
		"rating":           rating,
		"rating_timestamp": time.Now().UTC(),
	}}

	result, err := r.collection().UpdateByID(ctx, farmerID, update)
	if err != nil {
		return fmt.Errorf("failed to attach rating to %s: %w", farmerID, err)
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}
