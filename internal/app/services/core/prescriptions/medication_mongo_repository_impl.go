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

type MedicationMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicationMongoRepository(db *mongo.Client, dbName string) contracts.MedicationRepository {
	return &MedicationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptionMedications),
	}
}

func (r *MedicationMongoRepository) FindByPrescriptionID(ctx context.Context, prescriptionID string) ([]models.PrescriptionMedication, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"prescriptionId": prescriptionID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.PrescriptionMedication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}
