package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentOptionRepo implements AppointmentOptionRepository using MongoDB.
type MongoAppointmentOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentOptionRepo creates a repository over the
// appointment-options collection.
func NewMongoAppointmentOptionRepo(client *mongo.Client) AppointmentOptionRepository {
	coll := client.Database(database.DatabaseName).Collection("appointment-options")
	return &MongoAppointmentOptionRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves every appointment option (full documents).
func (r *MongoAppointmentOptionRepo) GetAll() ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return opts, nil
}

// GetNames retrieves all appointment options projected to {name: 1}.
func (r *MongoAppointmentOptionRepo) GetNames() ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	findOpts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return opts, nil
}

// AvailabilityByDate joins each option against the bookings for the given date
// and projects the set difference of slots and already-booked times. Ordering
// of the result slots is not guaranteed ($setDifference is a set operation).
func (r *MongoAppointmentOptionRepo) AvailabilityByDate(date string) ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, availabilityPipeline(date))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate availability: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode availability: %w", err)
	}
	return opts, nil
}

// availabilityPipeline builds the lookup/diff pipeline for a date.
func availabilityPipeline(date string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "bookings",
			"localField":   "name",
			"foreignField": "treatmentName",
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr": bson.M{"$eq": bson.A{"$appointmentDate", date}},
				}},
			},
			"as": "booked",
		}}},
		{{Key: "$project", Value: bson.M{
			"name":  1,
			"price": 1,
			"slots": 1,
			"booked": bson.M{"$map": bson.M{
				"input": "$booked",
				"as":    "book",
				"in":    "$$book.appointmentTime",
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"name":  1,
			"price": 1,
			"slots": bson.M{"$setDifference": bson.A{"$slots", "$booked"}},
		}}},
	}
}
