package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	// GSI1 looks registrations up by their payment reference.
	gsi1 = "GSI1"

	conditionalCheckFailed = "ConditionalCheckFailed"
	transactionConflict    = "TransactionConflict"

	transactionMaxTries = 4

	// Every single call to DynamoDB gets this long before it is reported as a
	// timeout.
	opTimeout = time.Second
)

type DB struct {
	dynamoClient *dynamodb.Client
	tableName    string
}

func NewDB(dynamoClient *dynamodb.Client, tableName string) *DB {
	return &DB{
		dynamoClient: dynamoClient,
		tableName:    tableName,
	}
}

// newEntityVersionConditional guards a first write: nothing stored under the
// key and the entity starting at version 1.
func newEntityVersionConditional(version int) expression.ConditionBuilder {
	return expression.Name("PK").AttributeNotExists().
		And(expression.Value(version).Equal(expression.Value(1)))
}

// existingEntityVersionConditional guards an update of the version the caller
// read, which is one below the version being written.
func existingEntityVersionConditional(version int) expression.ConditionBuilder {
	return expression.Name("PK").AttributeExists().
		And(expression.Name("Version").Equal(expression.Value(version - 1)))
}

func exprMustBuild(builder expression.Builder) expression.Expression {
	expr, err := builder.Build()
	if err != nil {
		panic(fmt.Sprintf("dynamo expression: %s", err))
	}
	return expr
}

// Key attributes of the single table. GSI1 is keyed by payment reference.
var (
	tableKeys = [2]string{"PK", "SK"}
	gsi1Keys  = [2]string{"GSI1PK", "GSI1SK"}
)

func keySchema(keys [2]string) []types.KeySchemaElement {
	return []types.KeySchemaElement{
		{AttributeName: aws.String(keys[0]), KeyType: types.KeyTypeHash},
		{AttributeName: aws.String(keys[1]), KeyType: types.KeyTypeRange},
	}
}

func stringAttributes(names ...string) []types.AttributeDefinition {
	defs := make([]types.AttributeDefinition, 0, len(names))
	for _, name := range names {
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return defs
}

// CreateTable creates the single table events and registrations share,
// including the payment reference index.
func CreateTable(ctx context.Context, client *dynamodb.Client, tableName string) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(tableName),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: stringAttributes(tableKeys[0], tableKeys[1], gsi1Keys[0], gsi1Keys[1]),
		KeySchema:            keySchema(tableKeys),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName:  aws.String(gsi1),
				KeySchema:  keySchema(gsi1Keys),
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create table %s: %w", tableName, err)
	}

	return nil
}

// EnsureTable creates the table only when it does not exist yet. Used for
// local DynamoDB, production tables are provisioned separately.
func EnsureTable(ctx context.Context, client *dynamodb.Client, tableName string) error {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("describe table %s: %w", tableName, err)
	}

	return CreateTable(ctx, client, tableName)
}
