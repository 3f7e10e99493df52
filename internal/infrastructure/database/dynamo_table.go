package database

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"urb_denuncias/internal/adapter/persistence/tabular"
)

// rowItem is one table row persisted in DynamoDB.
//
// Storage model:
//   - PK: sheet (logical table name)
//   - SK: idx   (0 = header row, 1..N = data rows)
type rowItem struct {
	Sheet string   `dynamodbav:"sheet"`
	Idx   int      `dynamodbav:"idx"`
	Cells []string `dynamodbav:"cells"`
}

// DynamoTable adapts DynamoDB to the rewrite-only tabular contract: rows are
// items under one partition, ReadAll is a consistent query, RewriteAll deletes
// the partition and batch-writes the new contents. DynamoDB could do per-item
// updates, but the record store never asks for them. The medium contract is
// the lowest common denominator shared with the spreadsheet backend.
type DynamoTable struct {
	ddb       *dynamodb.Client
	tableName string
	sheet     string
}

var _ tabular.Table = (*DynamoTable)(nil)

func NewDynamoTable(ddb *dynamodb.Client, tableName, sheet string) *DynamoTable {
	return &DynamoTable{ddb: ddb, tableName: tableName, sheet: sheet}
}

func (t *DynamoTable) ReadAll(ctx context.Context) ([]string, [][]string, error) {
	items, err := t.readItems(ctx)
	if err != nil {
		return nil, nil, err
	}

	var header []string
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		if it.Idx == 0 {
			header = it.Cells
			continue
		}
		rows = append(rows, it.Cells)
	}
	return header, rows, nil
}

func (t *DynamoTable) WriteHeader(ctx context.Context, header []string) error {
	return t.putItem(ctx, rowItem{Sheet: t.sheet, Idx: 0, Cells: header})
}

func (t *DynamoTable) Append(ctx context.Context, row []string) error {
	items, err := t.readItems(ctx)
	if err != nil {
		return err
	}
	next := 1
	for _, it := range items {
		if it.Idx >= next {
			next = it.Idx + 1
		}
	}
	return t.putItem(ctx, rowItem{Sheet: t.sheet, Idx: next, Cells: row})
}

func (t *DynamoTable) RewriteAll(ctx context.Context, header []string, rows [][]string) error {
	existing, err := t.readItems(ctx)
	if err != nil {
		return err
	}

	deletes := make([]types.WriteRequest, 0, len(existing))
	for _, it := range existing {
		key, err := attributevalue.MarshalMap(struct {
			Sheet string `dynamodbav:"sheet"`
			Idx   int    `dynamodbav:"idx"`
		}{Sheet: it.Sheet, Idx: it.Idx})
		if err != nil {
			return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
		}
		deletes = append(deletes, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: key}})
	}
	if err := t.batchWrite(ctx, deletes); err != nil {
		return err
	}

	puts := make([]types.WriteRequest, 0, len(rows)+1)
	all := []rowItem{{Sheet: t.sheet, Idx: 0, Cells: header}}
	for i, row := range rows {
		all = append(all, rowItem{Sheet: t.sheet, Idx: i + 1, Cells: row})
	}
	for _, it := range all {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
		}
		puts = append(puts, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return t.batchWrite(ctx, puts)
}

func (t *DynamoTable) readItems(ctx context.Context) ([]rowItem, error) {
	p := dynamodb.NewQueryPaginator(t.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(t.tableName),
		KeyConditionExpression: aws.String("#s = :sheet"),
		ExpressionAttributeNames: map[string]string{
			"#s": "sheet",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sheet": &types.AttributeValueMemberS{Value: t.sheet},
		},
		ConsistentRead: aws.Bool(true),
	})

	var items []rowItem
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
		}
		var page []rowItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
		}
		items = append(items, page...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Idx < items[j].Idx })
	return items, nil
}

func (t *DynamoTable) putItem(ctx context.Context, it rowItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
	}
	return nil
}

func (t *DynamoTable) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	const batchSize = 25
	for start := 0; start < len(reqs); start += batchSize {
		end := start + batchSize
		if end > len(reqs) {
			end = len(reqs)
		}
		pending := map[string][]types.WriteRequest{t.tableName: reqs[start:end]}
		for len(pending[t.tableName]) > 0 {
			out, err := t.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return fmt.Errorf("%w: %v", tabular.ErrTableUnavailable, err)
			}
			if len(out.UnprocessedItems) == 0 {
				break
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}
