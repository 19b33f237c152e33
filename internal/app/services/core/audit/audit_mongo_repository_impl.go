package audit

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditLogMongoRepository(db *mongo.Client, dbName string) contracts.AuditLogRepository {
	return &AuditLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAuditLogs),
	}
}

func (r *AuditLogMongoRepository) Insert(ctx context.Context, auditLog *models.AuditLog) error {
	_, err := r.Collection.InsertOne(ctx, auditLog)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AuditLogMongoRepository) FindAll(ctx context.Context, filter *requests.AuditLogFilter) ([]models.AuditLog, int, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.AppointmentID != "" {
		query["metadata"] = bson.M{"$regex": filter.AppointmentID}
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if filter.Pagination != nil {
		findOptions.
			SetSkip(int64((filter.Pagination.Page - 1) * filter.Pagination.PageSize)).
			SetLimit(int64(filter.Pagination.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var auditLogs []models.AuditLog
	if err := cursor.All(ctx, &auditLogs); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return auditLogs, int(total), nil
}
