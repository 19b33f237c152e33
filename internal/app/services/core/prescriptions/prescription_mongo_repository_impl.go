package prescriptions

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) ([]models.Prescription, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"appointmentId": appointmentID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}
