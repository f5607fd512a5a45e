package redis_client

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ferrybus/pkg/util"
)

var Client *redis.Client

const defaultConnectionPassword = ""
const defaultDatabase = 0

// Connect sets up the global client when FERRYBUS_REDIS_ADDRESS is set. Redis is optional
// so an unset address leaves Client nil.
func Connect() error {
	env := util.GetEnvironmentVariables()

	address := env["FERRYBUS_REDIS_ADDRESS"]
	password := util.EnvironmentOrDefault(env, "FERRYBUS_REDIS_PASSWORD", defaultConnectionPassword)
	database := defaultDatabase

	if address == "" {
		log.Info().Msg("Skipping Redis setup")
		return nil
	}

	if env["FERRYBUS_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["FERRYBUS_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	client, err := NewClient(address, password, database)
	if err != nil {
		return err
	}

	Client = client

	log.Info().Str("address", address).Msg("Redis client setup")

	return nil
}

func NewClient(address string, password string, database int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
