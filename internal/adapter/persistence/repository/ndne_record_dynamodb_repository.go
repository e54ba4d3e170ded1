package repository

import (
	"context"
	"errors"
	"strings"
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
	defaultNDNETableName = "ndne_records"
	ndneContractIDIndex  = "contract_id-index"
	measuredOnLayout     = "2006-01-02"
)

type ndneRecordItem struct {
	ID              string `dynamodbav:"id"`
	ContractID      string `dynamodbav:"contract_id"`
	Period          string `dynamodbav:"period"`
	StaticLevel     string `dynamodbav:"static_level"`
	DynamicLevel    string `dynamodbav:"dynamic_level"`
	MeasuredOn      string `dynamodbav:"measured_on"`
	TechnicianID    string `dynamodbav:"technician_id"`
	ResponsibleName string `dynamodbav:"responsible_name"`
	Origin          string `dynamodbav:"origin"`
	OriginalOrigin  string `dynamodbav:"original_origin,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	CreatedBy       string `dynamodbav:"created_by"`
	EditedAt        string `dynamodbav:"edited_at,omitempty"`
	EditedBy        string `dynamodbav:"edited_by,omitempty"`
}

// automatedGuardItem claims the single automated slot of a (contract, period) pair.
// It has no contract_id, so it never shows up in contract_id-index.
type automatedGuardItem struct {
	ID       string `dynamodbav:"id"`
	RecordID string `dynamodbav:"record_id"`
}

func automatedGuardID(contractID string, period entities.Period) string {
	return "automated#" + contractID + "#" + string(period)
}

// NDNERecordDynamoRepository persists NDNERecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id, SK: measured_on)
//
// measured_on is stored as YYYY-MM-DD so the year filter is a BETWEEN on the sort key.
// The automated record of a (contract, period) is resolved through a guard item
// (id automated#{contract}#{period}) read with ConsistentRead, never through the GSI.

type NDNERecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INDNERecordRepository = (*NDNERecordDynamoRepository)(nil)

func NewNDNERecordDynamoRepository(ddb DynamoAPI) *NDNERecordDynamoRepository {
	return &NDNERecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NDNE_TABLE", defaultNDNETableName),
	}
}

// Create inserts a record. An automated record first claims the guard of its
// (contract, period); interfaces.ErrAutomatedRecordConflict means another automated
// record holds it.
func (r *NDNERecordDynamoRepository) Create(ctx context.Context, rec entities.NDNERecord) (entities.NDNERecord, error) {
	if rec.Origin == entities.OriginAutomated {
		if err := r.claimAutomated(ctx, rec); err != nil {
			return entities.NDNERecord{}, err
		}
	}

	av, err := attributevalue.MarshalMap(toNDNERecordItem(rec))
	if err != nil {
		return entities.NDNERecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.NDNERecord{}, err
	}
	return rec, nil
}

func (r *NDNERecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.NDNERecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.NDNERecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.NDNERecord{}, nil
	}

	var it ndneRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.NDNERecord{}, err
	}
	return fromNDNERecordItem(it), nil
}

// Update overwrites the mutable attributes of an existing record. A missing record
// yields a zero value, not an error. An automated write only lands on a record that is
// still automated; once edited, the record is left alone and a zero value is returned.
func (r *NDNERecordDynamoRepository) Update(ctx context.Context, rec entities.NDNERecord) (entities.NDNERecord, error) {
	it := toNDNERecordItem(rec)

	set := []string{
		"#period = :period",
		"#static_level = :static_level",
		"#dynamic_level = :dynamic_level",
		"#measured_on = :measured_on",
		"#technician_id = :technician_id",
		"#responsible_name = :responsible_name",
		"#origin = :origin",
	}
	names := map[string]string{
		"#period":           "period",
		"#static_level":     "static_level",
		"#dynamic_level":    "dynamic_level",
		"#measured_on":      "measured_on",
		"#technician_id":    "technician_id",
		"#responsible_name": "responsible_name",
		"#origin":           "origin",
	}
	values := map[string]types.AttributeValue{
		":period":           &types.AttributeValueMemberS{Value: it.Period},
		":static_level":     &types.AttributeValueMemberS{Value: it.StaticLevel},
		":dynamic_level":    &types.AttributeValueMemberS{Value: it.DynamicLevel},
		":measured_on":      &types.AttributeValueMemberS{Value: it.MeasuredOn},
		":technician_id":    &types.AttributeValueMemberS{Value: it.TechnicianID},
		":responsible_name": &types.AttributeValueMemberS{Value: it.ResponsibleName},
		":origin":           &types.AttributeValueMemberS{Value: it.Origin},
	}
	if it.OriginalOrigin != "" {
		// Never replaces a stored original origin.
		set = append(set, "#original_origin = if_not_exists(#original_origin, :original_origin)")
		names["#original_origin"] = "original_origin"
		values[":original_origin"] = &types.AttributeValueMemberS{Value: it.OriginalOrigin}
	}
	if it.EditedAt != "" {
		set = append(set, "#edited_at = :edited_at", "#edited_by = :edited_by")
		names["#edited_at"] = "edited_at"
		names["#edited_by"] = "edited_by"
		values[":edited_at"] = &types.AttributeValueMemberS{Value: it.EditedAt}
		values[":edited_by"] = &types.AttributeValueMemberS{Value: it.EditedBy}
	}

	cond := "attribute_exists(#id)"
	if rec.Origin == entities.OriginAutomated {
		cond += " AND #origin = :origin"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: rec.ID},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String("SET " + strings.Join(set, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.NDNERecord{}, nil
		}
		return entities.NDNERecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.NDNERecord{}, nil
	}
	var updated ndneRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.NDNERecord{}, err
	}
	return fromNDNERecordItem(updated), nil
}

func (r *NDNERecordDynamoRepository) FindAutomated(ctx context.Context, contractID string, period entities.Period) (entities.NDNERecord, error) {
	guard, err := r.getGuard(ctx, contractID, period)
	if err != nil || guard.RecordID == "" {
		return entities.NDNERecord{}, err
	}
	rec, err := r.GetByID(ctx, guard.RecordID)
	if err != nil {
		return entities.NDNERecord{}, err
	}
	if !holdsGuard(rec, contractID, period) {
		return entities.NDNERecord{}, nil
	}
	return rec, nil
}

// claimAutomated points the (contract, period) guard at rec. A guard left behind by a
// record that was since edited to manual, or never written, is taken over.
func (r *NDNERecordDynamoRepository) claimAutomated(ctx context.Context, rec entities.NDNERecord) error {
	err := r.putGuard(ctx, rec, "")
	if !isConditionalCheckFailed(err) {
		return err
	}

	cur, err := r.getGuard(ctx, rec.ContractID, rec.Period)
	if err != nil {
		return err
	}
	if cur.RecordID == "" {
		return interfaces.ErrAutomatedRecordConflict
	}
	owner, err := r.GetByID(ctx, cur.RecordID)
	if err != nil {
		return err
	}
	if holdsGuard(owner, rec.ContractID, rec.Period) {
		return interfaces.ErrAutomatedRecordConflict
	}

	err = r.putGuard(ctx, rec, cur.RecordID)
	if isConditionalCheckFailed(err) {
		return interfaces.ErrAutomatedRecordConflict
	}
	return err
}

// putGuard writes the guard only if it is absent (prev == "") or still points at prev.
func (r *NDNERecordDynamoRepository) putGuard(ctx context.Context, rec entities.NDNERecord, prev string) error {
	av, err := attributevalue.MarshalMap(automatedGuardItem{
		ID:       automatedGuardID(rec.ContractID, rec.Period),
		RecordID: rec.ID,
	})
	if err != nil {
		return err
	}

	in := &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if prev != "" {
		in.ConditionExpression = aws.String("#record_id = :prev")
		in.ExpressionAttributeNames = map[string]string{"#record_id": "record_id"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberS{Value: prev},
		}
	}
	_, err = r.ddb.PutItem(ctx, in)
	return err
}

func (r *NDNERecordDynamoRepository) getGuard(ctx context.Context, contractID string, period entities.Period) (automatedGuardItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: automatedGuardID(contractID, period)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return automatedGuardItem{}, err
	}
	var g automatedGuardItem
	if len(out.Item) == 0 {
		return g, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return automatedGuardItem{}, err
	}
	return g, nil
}

func holdsGuard(rec entities.NDNERecord, contractID string, period entities.Period) bool {
	return rec.ID != "" &&
		rec.ContractID == contractID &&
		rec.Period == period &&
		rec.Origin == entities.OriginAutomated
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func (r *NDNERecordDynamoRepository) ListByContract(ctx context.Context, contractID string, filter entities.NDNEFilter) ([]entities.NDNERecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, buildNDNEQuery(r.tableName, contractID, filter))

	var items []entities.NDNERecord
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it ndneRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromNDNERecordItem(it))
		}
	}
	return items, nil
}

func buildNDNEQuery(table, contractID string, filter entities.NDNEFilter) *dynamodb.QueryInput {
	keyCond := "#contract_id = :cid"
	names := map[string]string{"#contract_id": "contract_id"}
	values := map[string]types.AttributeValue{
		":cid": &types.AttributeValueMemberS{Value: contractID},
	}
	if from, to, ok := filter.YearRange(); ok {
		keyCond += " AND #measured_on BETWEEN :from AND :to"
		names["#measured_on"] = "measured_on"
		values[":from"] = &types.AttributeValueMemberS{Value: from.Format(measuredOnLayout)}
		values[":to"] = &types.AttributeValueMemberS{Value: to.Format(measuredOnLayout)}
	}

	var conds []string
	if filter.Period != nil {
		conds = append(conds, "#period = :period")
		names["#period"] = "period"
		values[":period"] = &types.AttributeValueMemberS{Value: string(*filter.Period)}
	}
	if filter.Origin != nil {
		conds = append(conds, "#origin = :origin")
		names["#origin"] = "origin"
		values[":origin"] = &types.AttributeValueMemberS{Value: string(*filter.Origin)}
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(ndneContractIDIndex),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
	}
	return in
}

func toNDNERecordItem(r entities.NDNERecord) ndneRecordItem {
	it := ndneRecordItem{
		ID:              r.ID,
		ContractID:      r.ContractID,
		Period:          string(r.Period),
		StaticLevel:     r.StaticLevel.String(),
		DynamicLevel:    r.DynamicLevel.String(),
		MeasuredOn:      r.MeasuredOn.Format(measuredOnLayout),
		TechnicianID:    r.TechnicianID,
		ResponsibleName: r.ResponsibleName,
		Origin:          string(r.Origin),
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:       r.CreatedBy,
		EditedBy:        r.EditedBy,
	}
	if r.OriginalOrigin != nil {
		it.OriginalOrigin = string(*r.OriginalOrigin)
	}
	if r.EditedAt != nil {
		it.EditedAt = r.EditedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromNDNERecordItem(it ndneRecordItem) entities.NDNERecord {
	measuredOn, _ := time.Parse(measuredOnLayout, it.MeasuredOn)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	static, _ := decimal.NewFromString(it.StaticLevel)
	dynamic, _ := decimal.NewFromString(it.DynamicLevel)

	r := entities.NDNERecord{
		ID:              it.ID,
		ContractID:      it.ContractID,
		Period:          entities.Period(it.Period),
		StaticLevel:     static,
		DynamicLevel:    dynamic,
		MeasuredOn:      measuredOn,
		TechnicianID:    it.TechnicianID,
		ResponsibleName: it.ResponsibleName,
		Origin:          entities.Origin(it.Origin),
		CreatedAt:       createdAt,
		CreatedBy:       it.CreatedBy,
		EditedBy:        it.EditedBy,
	}
	if it.OriginalOrigin != "" {
		o := entities.Origin(it.OriginalOrigin)
		r.OriginalOrigin = &o
	}
	if it.EditedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.EditedAt); err == nil {
			r.EditedAt = &t
		}
	}
	return r
}
