package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records inputs and replays canned outputs.
type fakeDynamo struct {
	getOut    *dynamodb.GetItemOutput
	getErr    error
	putErr    error
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	pages     []*dynamodb.QueryOutput
	queryErr  error

	gets    []*dynamodb.GetItemInput
	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	queries []*dynamodb.QueryInput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	idx := len(f.queries) - 1
	if idx >= len(f.pages) {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.pages[idx], nil
}

// laggingTable is a base table whose secondary indexes never catch up: GetItem and
// PutItem see every write, Query sees none. It evaluates the condition expressions
// the repositories put on PutItem.
type laggingTable struct {
	items   map[string]map[string]types.AttributeValue
	queries int
}

func newLaggingTable() *laggingTable {
	return &laggingTable{items: map[string]map[string]types.AttributeValue{}}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (l *laggingTable) guardOwner(id string) string {
	return stringAttr(l.items[id], "record_id")
}

func (l *laggingTable) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: l.items[stringAttr(in.Key, "id")]}, nil
}

func (l *laggingTable) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := stringAttr(in.Item, "id")
	cur, exists := l.items[id]

	failed := false
	switch aws.ToString(in.ConditionExpression) {
	case "":
	case "attribute_not_exists(#id)":
		failed = exists
	case "#record_id = :prev":
		failed = !exists || stringAttr(cur, "record_id") != stringAttr(in.ExpressionAttributeValues, ":prev")
	default:
		return nil, errors.New("unsupported condition " + aws.ToString(in.ConditionExpression))
	}
	if failed {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	l.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (l *laggingTable) UpdateItem(context.Context, *dynamodb.UpdateItemInput, ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return nil, errors.New("laggingTable: UpdateItem not supported")
}

func (l *laggingTable) Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	l.queries++
	return &dynamodb.QueryOutput{}, nil
}
