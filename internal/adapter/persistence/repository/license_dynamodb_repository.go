package repository

import (
	"context"
	"time"

	"outorga_monitor/internal/domain/entities"
	"outorga_monitor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLicensesTableName = "licenses"

type licenseItem struct {
	ID         string `dynamodbav:"id"`
	Number     string `dynamodbav:"number"`
	HolderName string `dynamodbav:"holder_name"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// LicenseDynamoRepository reads License entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LicenseDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILicenseRepository = (*LicenseDynamoRepository)(nil)

func NewLicenseDynamoRepository(ddb DynamoAPI) *LicenseDynamoRepository {
	return &LicenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LICENSES_TABLE", defaultLicensesTableName),
	}
}

func (r *LicenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.License, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.License{}, err
	}
	if len(out.Item) == 0 {
		return entities.License{}, nil
	}

	var it licenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.License{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.License{
		ID:         it.ID,
		Number:     it.Number,
		HolderName: it.HolderName,
		CreatedAt:  createdAt,
	}, nil
}
