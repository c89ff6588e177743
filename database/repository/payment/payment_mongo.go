package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a repository over the payments collection.
func NewMongoPaymentRepo(client *mongo.Client) PaymentRepository {
	coll := client.Database(database.DatabaseName).Collection("payments")
	return &MongoPaymentRepo{coll: coll}
}

// Insert stores a new payment document.
func (r *MongoPaymentRepo) Insert(payment *models.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("failed to record payment: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
