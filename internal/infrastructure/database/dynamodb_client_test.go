package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamoConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	cfg := DynamoConfigFromEnv()
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "local", cfg.AccessKey)
	assert.Equal(t, "http://dynamodb:8000", cfg.Endpoint)
}

func TestClientOptions(t *testing.T) {
	assert.Empty(t, clientOptions(DynamoConfig{}))

	opts := clientOptions(DynamoConfig{Endpoint: "http://localhost:8000"})
	require.Len(t, opts, 1)
	var o dynamodb.Options
	opts[0](&o)
	assert.Equal(t, "http://localhost:8000", aws.ToString(o.BaseEndpoint))
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), DynamoConfig{Region: "sa-east-1", AccessKey: "k", SecretKey: "s", Endpoint: "http://localhost:8000"})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", client.Options().Region)
}
