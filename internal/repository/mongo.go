package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"elevation-service/internal/config"
	"elevation-service/internal/repository/model"
	"elevation-service/internal/repository/registrytypes"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	databaseName = "elevation-service"

	playerCollectionName             = "players"
	trainerApplicationCollectionName = "trainer_applications"
	proApplicationCollectionName     = "pro_applications"

	queryTimeout = 5 * time.Second
)

type mongoRepository struct {
	database *mongo.Database

	playerCollection *mongo.Collection
	// applicationCollections holds one collection per elevated role.
	applicationCollections map[model.Role]*mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetRegistry(createCodecRegistry()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	database := client.Database(databaseName)
	repo := &mongoRepository{
		database:         database,
		playerCollection: database.Collection(playerCollectionName),
		applicationCollections: map[model.Role]*mongo.Collection{
			model.RoleTrainer: database.Collection(trainerApplicationCollectionName),
			model.RolePro:     database.Collection(proApplicationCollectionName),
		},
	}

	if err := repo.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongo", "error", err)
		}
	}()

	return repo, nil
}

func (m *mongoRepository) createIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	for role, coll := range m.applicationCollections {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "approved", Value: 1}, {Key: "rejectionReason", Value: 1}},
			Options: options.Index().SetName("approved_rejectionReason"),
		})
		if err != nil {
			return fmt.Errorf("index on %s applications: %w", role, err)
		}
	}
	return nil
}

func (m *mongoRepository) applicationCollection(role model.Role) (*mongo.Collection, error) {
	coll, ok := m.applicationCollections[role]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotElevatedRole, role)
	}
	return coll, nil
}

func (m *mongoRepository) GetPlayerRoles(ctx context.Context, playerId uuid.UUID) ([]model.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var result model.Player
	err := m.playerCollection.FindOne(ctx, bson.M{"_id": playerId}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []model.Role{}, nil
		}
		return nil, err
	}

	return result.Roles, nil
}

func (m *mongoRepository) HasRole(ctx context.Context, playerId uuid.UUID, role model.Role) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := m.playerCollection.CountDocuments(ctx, bson.M{"_id": playerId, "roles": role}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *mongoRepository) AddRoleToPlayer(ctx context.Context, playerId uuid.UUID, role model.Role) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var result *mongo.UpdateResult
	// concurrent upserts for a new player race on _id, the document exists on retry
	err := retryOnDuplicateKey(func() error {
		var err error
		result, err = m.playerCollection.UpdateOne(ctx,
			bson.M{"_id": playerId},
			bson.M{"$addToSet": bson.M{"roles": role}},
			options.Update().SetUpsert(true),
		)
		return err
	})
	if err != nil {
		return err
	}

	if result.ModifiedCount == 0 && result.UpsertedCount == 0 {
		return ErrAlreadyHasRole
	}

	return nil
}

// retryOnDuplicateKey runs op again once if it fails with a duplicate key error.
func retryOnDuplicateKey(op func() error) error {
	err := op()
	if mongo.IsDuplicateKeyError(err) {
		err = op()
	}
	return err
}

func (m *mongoRepository) GetApplication(ctx context.Context, playerId uuid.UUID, role model.Role) (*model.ApplicationRecord, error) {
	coll, err := m.applicationCollection(role)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var record model.ApplicationRecord
	if err := coll.FindOne(ctx, bson.M{"_id": playerId}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	record.Role = role

	return &record, nil
}

func (m *mongoRepository) GetApprovalStatus(ctx context.Context, playerId uuid.UUID, role model.Role) (*bool, error) {
	record, err := m.GetApplication(ctx, playerId, role)
	if err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record.Approved, nil
}

func (m *mongoRepository) CreateApplication(ctx context.Context, record *model.ApplicationRecord) error {
	coll, err := m.applicationCollection(record.Role)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := coll.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrApplicationExists
		}
		return err
	}

	return nil
}

func (m *mongoRepository) SetApproval(ctx context.Context, playerId uuid.UUID, role model.Role, approved bool, rejectionReason *string) error {
	coll, err := m.applicationCollection(role)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := coll.UpdateOne(ctx, bson.M{"_id": playerId}, bson.M{"$set": bson.M{
		"approved":        approved,
		"rejectionReason": rejectionReason,
		"updatedAt":       time.Now(),
	}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

func (m *mongoRepository) GetPendingApplications(ctx context.Context, role model.Role) ([]*model.ApplicationRecord, error) {
	return m.findApplications(ctx, role, bson.M{"approved": false, "rejectionReason": nil})
}

func (m *mongoRepository) GetApprovedApplications(ctx context.Context, role model.Role) ([]*model.ApplicationRecord, error) {
	return m.findApplications(ctx, role, bson.M{"approved": true})
}

func (m *mongoRepository) findApplications(ctx context.Context, role model.Role, filter bson.M) ([]*model.ApplicationRecord, error) {
	coll, err := m.applicationCollection(role)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var mongoResult []model.ApplicationRecord
	if err := cursor.All(ctx, &mongoResult); err != nil {
		return nil, err
	}

	slice := make([]*model.ApplicationRecord, len(mongoResult))
	for i := range mongoResult {
		mongoResult[i].Role = role
		slice[i] = &mongoResult[i]
	}

	return slice, nil
}

func createCodecRegistry() *bsoncodec.Registry {
	r := bson.NewRegistry()
	r.RegisterTypeEncoder(registrytypes.UUIDType, bsoncodec.ValueEncoderFunc(registrytypes.UuidEncodeValue))
	r.RegisterTypeDecoder(registrytypes.UUIDType, bsoncodec.ValueDecoderFunc(registrytypes.UuidDecodeValue))
	return r
}
