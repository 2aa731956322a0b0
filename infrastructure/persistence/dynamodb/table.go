package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// API is the subset of the DynamoDB client the tables use. Tests provide a
// fake; production wires *dynamodb.Client.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Table implements ports.Repository for one resource table keyed by "id".
type Table[T any] struct {
	client   API
	name     string
	resource string
	logger   *zap.Logger
}

// NewTable creates a repository over the named table. resource is the
// human-readable noun used in not-found messages ("course", "question", ...).
func NewTable[T any](client API, name, resource string, logger *zap.Logger) *Table[T] {
	return &Table[T]{
		client:   client,
		name:     name,
		resource: resource,
		logger:   logger,
	}
}

// Put writes the full item
func (t *Table[T]) Put(ctx context.Context, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", t.resource, err)
	}

	_, err = t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})
	if err != nil {
		t.logger.Error("Failed to put item",
			zap.String("table", t.name),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Get retrieves the item with the given id
func (t *Table[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       idKey(id),
	})
	if err != nil {
		t.logger.Error("Failed to get item",
			zap.String("table", t.name),
			zap.String("id", id),
			zap.Error(err),
		)
		return zero, err
	}
	if out.Item == nil {
		return zero, apperrors.NewNotFoundError(t.resource)
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return zero, fmt.Errorf("failed to unmarshal %s: %w", t.resource, err)
	}
	return item, nil
}

// Update applies a partial attribute update and returns the new item state.
// The condition on "id" turns updates of missing items into
// ConditionalCheckFailedException, which maps to a 404.
func (t *Table[T]) Update(ctx context.Context, id string, set map[string]any) (T, error) {
	var zero T
	if len(set) == 0 {
		return zero, apperrors.NewValidationError("no fields to update")
	}

	update := expression.UpdateBuilder{}
	for name, value := range set {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return zero, fmt.Errorf("failed to build update expression: %w", err)
	}

	out, err := t.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       idKey(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		t.logger.Error("Failed to update item",
			zap.String("table", t.name),
			zap.String("id", id),
			zap.Error(err),
		)
		return zero, err
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return zero, fmt.Errorf("failed to unmarshal %s: %w", t.resource, err)
	}
	return item, nil
}

// Delete removes the item
func (t *Table[T]) Delete(ctx context.Context, id string) error {
	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build condition expression: %w", err)
	}

	_, err = t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(t.name),
		Key:                       idKey(id),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		t.logger.Error("Failed to delete item",
			zap.String("table", t.name),
			zap.String("id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// List scans one page of the table
func (t *Table[T]) List(ctx context.Context, p ports.Page) ([]T, string, error) {
	startKey, err := common.DecodeNextToken(p.NextToken)
	if err != nil {
		return nil, "", err
	}

	expr, err := expression.NewBuilder().
		WithFilter(statusFilter(p.Status)).
		Build()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build filter expression: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(t.name),
		Limit:                     aws.Int32(effectiveLimit(p.Limit)),
		ExclusiveStartKey:         startKey,
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	out, err := t.client.Scan(ctx, input)
	if err != nil {
		t.logger.Error("Failed to scan table",
			zap.String("table", t.name),
			zap.Error(err),
		)
		return nil, "", err
	}

	items := make([]T, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal %s list: %w", t.resource, err)
	}

	return items, common.EncodeNextToken(out.LastEvaluatedKey), nil
}

// QueryIndex queries a secondary index by key attribute equality
func (t *Table[T]) QueryIndex(ctx context.Context, index, attr, value string, p ports.Page) ([]T, string, error) {
	startKey, err := common.DecodeNextToken(p.NextToken)
	if err != nil {
		return nil, "", err
	}

	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(attr).Equal(expression.Value(value))).
		WithFilter(statusFilter(p.Status)).
		Build()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build query expression: %w", err)
	}

	out, err := t.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(effectiveLimit(p.Limit)),
		ExclusiveStartKey:         startKey,
	})
	if err != nil {
		t.logger.Error("Failed to query index",
			zap.String("table", t.name),
			zap.String("index", index),
			zap.Error(err),
		)
		return nil, "", err
	}

	items := make([]T, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal %s list: %w", t.resource, err)
	}

	return items, common.EncodeNextToken(out.LastEvaluatedKey), nil
}

// statusFilter keeps archived items out of listings unless the caller asks
// for a status explicitly.
func statusFilter(status string) expression.ConditionBuilder {
	if status != "" {
		return expression.Name("status").Equal(expression.Value(status))
	}
	return expression.Name("status").NotEqual(expression.Value(string(domain.StatusArchived)))
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func effectiveLimit(limit int32) int32 {
	if limit <= 0 {
		return common.DefaultPageSize
	}
	if limit > common.MaxPageSize {
		return common.MaxPageSize
	}
	return limit
}
