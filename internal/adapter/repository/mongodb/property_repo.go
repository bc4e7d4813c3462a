package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const propertyCollectionName = "properties"

type PropertyRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewPropertyRepository ensures the indexes used by the read path. Index
// failures are logged, not returned.
func NewPropertyRepository(db *mongo.Database, log *logger.Logger) *PropertyRepository {
	collection := db.Collection(propertyCollectionName)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "subcategory", Value: 1}}},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Error("Failed to create indexes for properties collection", zap.Error(err))
	}

	return &PropertyRepository{collection: collection, logger: log.Named("PropertyRepository")}
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	doc, err := toPropertyDocument(property)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Failed to insert property", zap.Error(err))
		return fmt.Errorf("db insert failed: %w", err)
	}
	property.ID = doc.ID.Hex()
	r.logger.Debug("Property inserted", zap.String("property_id", property.ID))
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var doc propertyDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("db find failed: %w", err)
	}
	return toDomainProperty(&doc), nil
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db find failed: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db cursor decode failed: %w", err)
	}
	return toDomainProperties(docs), nil
}
