package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const FerryBoardsCollection = "ferry_boards"

func createIndexes() {
	createFerryBoardsIndexes()
}

func createFerryBoardsIndexes() {
	ferryBoardsCollection := GetCollection(FerryBoardsCollection)

	originDestinationIndexName := "OriginDestinationDate"
	_, err := ferryBoardsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "primaryidentifier", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Options: &options.IndexOptions{
				Name: &originDestinationIndexName,
			},
			Keys: bson.D{
				{Key: "originstop.primaryidentifier", Value: 1},
				{Key: "destinationstop.primaryidentifier", Value: 1},
				{Key: "date", Value: 1},
			},
		},
		{
			Keys:    bson.D{{Key: "modificationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(30 * 24 * 3600), // Expire after 30 days
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
