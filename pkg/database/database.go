package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ferrybus/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoDatabase = "ferrybus"

// Connect sets up the global MongoDB instance. The board archive is the only user of
// MongoDB so an unset FERRYBUS_MONGODB_CONNECTION leaves MongoGlobalInstance nil.
func Connect() error {
	env := util.GetEnvironmentVariables()

	connectionString := env["FERRYBUS_MONGODB_CONNECTION"]
	dbName := util.EnvironmentOrDefault(env, "FERRYBUS_MONGODB_DATABASE", defaultMongoDatabase)

	if connectionString == "" {
		log.Info().Msg("Skipping MongoDB setup")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	createIndexes()

	log.Info().Str("database", dbName).Msg("MongoDB client setup")

	return nil
}

func Connected() bool {
	return MongoGlobalInstance != nil
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}

func Disconnect() {
	if MongoGlobalInstance == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := MongoGlobalInstance.Client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("Disconnecting MongoDB")
	}

	MongoGlobalInstance = nil
}
