package applicantinfra

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roster-ats/roster/pkg/kernel"
	"github.com/roster-ats/roster/tracking/applicant"
)

// MongoApplicantRepository implements applicant.Repository on a MongoDB
// collection holding one document per applicant, comments embedded as a
// sub-array.
type MongoApplicantRepository struct {
	coll *mongo.Collection
}

// NewMongoApplicantRepository creates a repository over the given collection
func NewMongoApplicantRepository(coll *mongo.Collection) *MongoApplicantRepository {
	return &MongoApplicantRepository{
		coll: coll,
	}
}

// List retrieves all applicants in collection order
func (r *MongoApplicantRepository) List(ctx context.Context) ([]applicant.Applicant, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	applicants := make([]applicant.Applicant, 0)
	if err := cursor.All(ctx, &applicants); err != nil {
		return nil, fmt.Errorf("failed to decode applicants: %w", err)
	}

	return applicants, nil
}

// Insert persists a new applicant document
func (r *MongoApplicantRepository) Insert(ctx context.Context, a *applicant.Applicant) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert applicant %s: %w", a.ID, err)
	}
	return nil
}

// UpdateByID applies the supplied fields with a single $set and returns the
// updated document
func (r *MongoApplicantRepository) UpdateByID(ctx context.Context, id kernel.ApplicantID, req applicant.UpdateApplicantRequest) (*applicant.Applicant, error) {
	var updated applicant.Applicant

	set := setDocument(req)
	if len(set) == 0 {
		// Nothing to change, but the record must still exist
		err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, applicant.ErrApplicantNotFound().WithDetail("id", id.String())
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find applicant %s: %w", id, err)
		}
		return &updated, nil
	}

	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update applicant %s: %w", id, err)
	}

	return &updated, nil
}

// DeleteByID removes the matching document and returns it
func (r *MongoApplicantRepository) DeleteByID(ctx context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	var removed applicant.Applicant

	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&removed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete applicant %s: %w", id, err)
	}

	return &removed, nil
}

// DeleteAll removes every document and returns the removed set
func (r *MongoApplicantRepository) DeleteAll(ctx context.Context) ([]applicant.Applicant, error) {
	removed, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return nil, fmt.Errorf("failed to delete applicants: %w", err)
	}

	return removed, nil
}

// AddComment replaces any earlier comment by the same author, then appends
// the new one. The pull and push are two separate operations: a concurrent
// reader can observe the old comment removed before the new one lands.
func (r *MongoApplicantRepository) AddComment(ctx context.Context, id kernel.ApplicantID, c applicant.Comment) error {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"id": id},
		bson.M{"$pull": bson.M{"comments": bson.M{"person": c.Person}}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove earlier comment on applicant %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}

	if _, err := r.coll.UpdateOne(
		ctx,
		bson.M{"id": id},
		bson.M{"$push": bson.M{"comments": c}},
	); err != nil {
		return fmt.Errorf("failed to append comment on applicant %s: %w", id, err)
	}

	return nil
}

// setDocument builds the $set document from the supplied fields
func setDocument(req applicant.UpdateApplicantRequest) bson.M {
	set := bson.M{}
	if req.FullName != nil {
		set["fullName"] = *req.FullName
	}
	if req.LinkedinURL != nil {
		set["linkedinUrl"] = *req.LinkedinURL
	}
	if req.ExpectedSalary != nil {
		set["expectedSalary"] = *req.ExpectedSalary
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.ResumeName != nil {
		set["resumeName"] = *req.ResumeName
	}
	if req.ResumePath != nil {
		set["resumePath"] = *req.ResumePath
	}
	return set
}
