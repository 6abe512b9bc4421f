package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	domain "github.com/depastori/clinica-psi/internal/domain/sequence"
)

type DynamoUpdater interface {
	UpdateItem(
		ctx context.Context,
		params *dynamodb.UpdateItemInput,
		optFns ...func(*dynamodb.Options),
	) (*dynamodb.UpdateItemOutput, error)
}

// DynamoAllocator: um item por (profissional, tipo), incrementado com ADD.
// Tabela com chave de partição "pk" (string).
type DynamoAllocator struct {
	client DynamoUpdater
	table  string
}

var _ domain.Allocator = (*DynamoAllocator)(nil)

type counterItem struct {
	Value int64 `dynamodbav:"value"`
}

func NewDynamoAllocator(client DynamoUpdater, table string) *DynamoAllocator {
	return &DynamoAllocator{client: client, table: table}
}

func (a *DynamoAllocator) Next(
	ctx context.Context,
	practitionerID uuid.UUID,
	kind domain.Kind,
) (int64, error) {

	key, err := attributevalue.MarshalMap(map[string]string{
		"pk": practitionerID.String() + "#" + string(kind),
	})
	if err != nil {
		return 0, err
	}

	out, err := a.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(a.table),
		Key:              key,
		UpdateExpression: aws.String("ADD #v :one SET updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("dynamodb update counter: %w", err)
	}

	var item counterItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return 0, fmt.Errorf("dynamodb decode counter: %w", err)
	}
	return item.Value, nil
}
