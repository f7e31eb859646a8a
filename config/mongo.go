package config

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// InitMongo connects to cfg.MongoURI and pings the primary.
func InitMongo(ctx context.Context, cfg *Config) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI).SetTimeout(cfg.MongoOpTimeout))
	if err != nil {
		return nil, errors.Wrap(err, "mongo connect")
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.MongoOpTimeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrapf(err, "mongo ping %s", cfg.MongoURI)
	}
	return client, nil
}
