package consultants

import (
	"context"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type consultantMongoRepository struct {
	consultants *mongo.Collection
}

func NewConsultantMongoRepository(client *mongo.Client, dbName string) contracts.ConsultantRepository {
	return &consultantMongoRepository{
		consultants: client.Database(dbName).Collection(constvars.MongoCollectionConsults),
	}
}

func (r *consultantMongoRepository) FindByID(ctx context.Context, consultantID string) (*models.ConsultantRef, error) {
	var consultant models.ConsultantRef
	err := r.consultants.FindOne(ctx, bson.M{"_id": consultantID}).Decode(&consultant)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrConsultantNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultant, nil
}
