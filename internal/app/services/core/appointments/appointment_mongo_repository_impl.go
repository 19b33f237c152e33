package appointments

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"userId": userID},
			{"primaryUserId": userID},
		},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
