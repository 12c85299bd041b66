package repository

import (
	"context"
	"time"

	"ordemfacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotsTableName = "snapshots"

type snapshotItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoSnapshotStore keeps one item per collection key and overwrites it
// wholesale on every save.
//
// Table requirements:
//   - PK: id (string)

type DynamoSnapshotStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.SnapshotStore = (*DynamoSnapshotStore)(nil)

func NewDynamoSnapshotStore(ddb *dynamodb.Client) *DynamoSnapshotStore {
	return &DynamoSnapshotStore{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *DynamoSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Payload), nil
}

func (r *DynamoSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	it := snapshotItem{
		ID:        key,
		Payload:   string(data),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
