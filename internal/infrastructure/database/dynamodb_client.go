package database

import (
	"context"
	"fmt"

	appconfig "pcbuild_configurator/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the DynamoDB client backing the build-session store.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, ClientOptions(cfg)...), nil
}

// NewAWSConfig loads the SDK config with static credentials. Local DynamoDB
// ignores credentials but the SDK still requires them.
func NewAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

// ClientOptions points the client at DYNAMODB_ENDPOINT when one is set.
func ClientOptions(cfg appconfig.DynamoDBConfig) []func(*dynamodb.Options) {
	if cfg.Endpoint == "" {
		return nil
	}
	endpoint := cfg.Endpoint
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		},
	}
}
