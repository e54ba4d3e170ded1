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
	"github.com/shopspring/decimal"
)

const (
	defaultReadingsTableName = "meter_readings"
	readingsLicenseIDIndex   = "license_id-index"
)

type meterReadingItem struct {
	ID              string `dynamodbav:"id"`
	LicenseID       string `dynamodbav:"license_id"`
	Month           int    `dynamodbav:"month"`
	Year            int    `dynamodbav:"year"`
	Status          string `dynamodbav:"status"`
	HydrometerValue string `dynamodbav:"hydrometer_value,omitempty"`
	HourMeterValue  string `dynamodbav:"hour_meter_value,omitempty"`
	DynamicLevel    string `dynamodbav:"dynamic_level,omitempty"`
	StaticLevel     string `dynamodbav:"static_level,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// MeterReadingDynamoRepository reads monthly readings from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: license_id-index (PK: license_id)

type MeterReadingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMeterReadingRepository = (*MeterReadingDynamoRepository)(nil)

func NewMeterReadingDynamoRepository(ddb DynamoAPI) *MeterReadingDynamoRepository {
	return &MeterReadingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("READINGS_TABLE", defaultReadingsTableName),
	}
}

func (r *MeterReadingDynamoRepository) ListFinalizedByLicense(ctx context.Context, licenseID string) ([]entities.MeterReading, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(readingsLicenseIDIndex),
		KeyConditionExpression: aws.String("license_id = :lid"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid":    &types.AttributeValueMemberS{Value: licenseID},
			":status": &types.AttributeValueMemberS{Value: string(entities.ReadingStatusFinalized)},
		},
	})

	var items []entities.MeterReading
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it meterReadingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMeterReadingItem(it))
		}
	}
	return items, nil
}

func fromMeterReadingItem(it meterReadingItem) entities.MeterReading {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.MeterReading{
		ID:              it.ID,
		LicenseID:       it.LicenseID,
		Month:           it.Month,
		Year:            it.Year,
		Status:          entities.ReadingStatus(it.Status),
		HydrometerValue: nullDecimal(it.HydrometerValue),
		HourMeterValue:  nullDecimal(it.HourMeterValue),
		DynamicLevel:    nullDecimal(it.DynamicLevel),
		StaticLevel:     nullDecimal(it.StaticLevel),
		CreatedAt:       createdAt,
	}
}

// nullDecimal treats missing or unparsable values as absent.
func nullDecimal(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
