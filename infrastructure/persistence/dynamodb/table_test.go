package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

type testItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// fakeAPI records the last input of each call and returns canned outputs.
type fakeAPI struct {
	getIn  *dynamodb.GetItemInput
	getOut *dynamodb.GetItemOutput

	putIn *dynamodb.PutItemInput

	updateIn  *dynamodb.UpdateItemInput
	updateOut *dynamodb.UpdateItemOutput

	deleteIn *dynamodb.DeleteItemInput

	scanIn  *dynamodb.ScanInput
	scanOut *dynamodb.ScanOutput

	queryIn  *dynamodb.QueryInput
	queryOut *dynamodb.QueryOutput

	err error
}

func (f *fakeAPI) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, f.err
	}
	return f.getOut, f.err
}

func (f *fakeAPI) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeAPI) UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, f.err
	}
	return f.updateOut, f.err
}

func (f *fakeAPI) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = in
	return &dynamodb.DeleteItemOutput{}, f.err
}

func (f *fakeAPI) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = in
	if f.scanOut == nil {
		return &dynamodb.ScanOutput{}, f.err
	}
	return f.scanOut, f.err
}

func (f *fakeAPI) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = in
	if f.queryOut == nil {
		return &dynamodb.QueryOutput{}, f.err
	}
	return f.queryOut, f.err
}

func itemAttrs(id, name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: id},
		"name":   &types.AttributeValueMemberS{Value: name},
		"status": &types.AttributeValueMemberS{Value: "active"},
	}
}

func newTestTable(api *fakeAPI) *Table[testItem] {
	return NewTable[testItem](api, "courses-table", "course", zap.NewNop())
}

func TestTable_Get(t *testing.T) {
	api := &fakeAPI{getOut: &dynamodb.GetItemOutput{Item: itemAttrs("c1", "Algebra")}}
	table := newTestTable(api)

	item, err := table.Get(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, testItem{ID: "c1", Name: "Algebra", Status: "active"}, item)
	assert.Equal(t, "courses-table", *api.getIn.TableName)
	key := api.getIn.Key["id"].(*types.AttributeValueMemberS)
	assert.Equal(t, "c1", key.Value)
}

func TestTable_Get_NotFound(t *testing.T) {
	table := newTestTable(&fakeAPI{getOut: &dynamodb.GetItemOutput{}})

	_, err := table.Get(context.Background(), "missing")

	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "course")
}

func TestTable_Put(t *testing.T) {
	api := &fakeAPI{}
	table := newTestTable(api)

	err := table.Put(context.Background(), testItem{ID: "c1", Name: "Algebra", Status: "active"})

	require.NoError(t, err)
	require.NotNil(t, api.putIn)
	name := api.putIn.Item["name"].(*types.AttributeValueMemberS)
	assert.Equal(t, "Algebra", name.Value)
}

func TestTable_Update(t *testing.T) {
	api := &fakeAPI{updateOut: &dynamodb.UpdateItemOutput{Attributes: itemAttrs("c1", "Renamed")}}
	table := newTestTable(api)

	item, err := table.Update(context.Background(), "c1", map[string]any{"name": "Renamed"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", item.Name)
	require.NotNil(t, api.updateIn)
	assert.Equal(t, types.ReturnValueAllNew, api.updateIn.ReturnValues)
	// Update only applies to existing items.
	require.NotNil(t, api.updateIn.ConditionExpression)
	assert.Contains(t, *api.updateIn.ConditionExpression, "attribute_exists")
}

func TestTable_Update_NoFields(t *testing.T) {
	table := newTestTable(&fakeAPI{})

	_, err := table.Update(context.Background(), "c1", nil)

	assert.True(t, apperrors.IsValidation(err))
}

func TestTable_Delete(t *testing.T) {
	api := &fakeAPI{}
	table := newTestTable(api)

	require.NoError(t, table.Delete(context.Background(), "c1"))

	require.NotNil(t, api.deleteIn)
	require.NotNil(t, api.deleteIn.ConditionExpression)
	assert.Contains(t, *api.deleteIn.ConditionExpression, "attribute_exists")
}

func TestTable_List(t *testing.T) {
	api := &fakeAPI{scanOut: &dynamodb.ScanOutput{
		Items:            []map[string]types.AttributeValue{itemAttrs("c1", "Algebra"), itemAttrs("c2", "Geometry")},
		LastEvaluatedKey: itemAttrs("c2", "Geometry"),
	}}
	table := newTestTable(api)

	items, next, err := table.List(context.Background(), ports.Page{Limit: 2})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Geometry", items[1].Name)
	assert.NotEmpty(t, next)
	assert.Equal(t, int32(2), *api.scanIn.Limit)

	// The returned token must page the next scan from where this one stopped.
	_, _, err = table.List(context.Background(), ports.Page{NextToken: next})
	require.NoError(t, err)
	startID := api.scanIn.ExclusiveStartKey["id"].(*types.AttributeValueMemberS)
	assert.Equal(t, "c2", startID.Value)
}

func TestTable_List_StatusFilter(t *testing.T) {
	api := &fakeAPI{}
	table := newTestTable(api)

	_, _, err := table.List(context.Background(), ports.Page{Status: "archived"})

	require.NoError(t, err)
	require.NotNil(t, api.scanIn.FilterExpression)
	assert.NotContains(t, *api.scanIn.FilterExpression, "<>")
	assert.Contains(t, boundValues(t, api.scanIn.ExpressionAttributeValues), "archived")
	assert.Equal(t, int32(common.DefaultPageSize), *api.scanIn.Limit)
}

func TestTable_List_ExcludesArchivedByDefault(t *testing.T) {
	api := &fakeAPI{}
	table := newTestTable(api)

	_, _, err := table.List(context.Background(), ports.Page{})

	require.NoError(t, err)
	require.NotNil(t, api.scanIn.FilterExpression)
	assert.Contains(t, *api.scanIn.FilterExpression, "<>")
	assert.Contains(t, boundValues(t, api.scanIn.ExpressionAttributeValues), "archived")
}

func TestTable_QueryIndex_ExcludesArchivedByDefault(t *testing.T) {
	api := &fakeAPI{}
	table := newTestTable(api)

	_, _, err := table.QueryIndex(context.Background(), "courseId-index", "courseId", "c1", ports.Page{})

	require.NoError(t, err)
	require.NotNil(t, api.queryIn.FilterExpression)
	assert.Contains(t, *api.queryIn.FilterExpression, "<>")
	assert.Contains(t, boundValues(t, api.queryIn.ExpressionAttributeValues), "archived")
}

// boundValues flattens the string attribute values of an expression.
func boundValues(t *testing.T, values map[string]types.AttributeValue) []string {
	t.Helper()
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			out = append(out, s.Value)
		}
	}
	return out
}

func TestTable_List_BadToken(t *testing.T) {
	table := newTestTable(&fakeAPI{})

	_, _, err := table.List(context.Background(), ports.Page{NextToken: "not a token"})

	assert.True(t, apperrors.IsValidation(err))
}

func TestTable_QueryIndex(t *testing.T) {
	api := &fakeAPI{queryOut: &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{itemAttrs("s1", "Mechanics")},
	}}
	table := newTestTable(api)

	items, next, err := table.QueryIndex(context.Background(), "courseId-index", "courseId", "c1", ports.Page{Limit: 500})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, next)
	assert.Equal(t, "courseId-index", *api.queryIn.IndexName)
	require.NotNil(t, api.queryIn.KeyConditionExpression)
	assert.Equal(t, int32(common.MaxPageSize), *api.queryIn.Limit)
}
