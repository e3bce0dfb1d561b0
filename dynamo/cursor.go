package dynamo

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Cursors travel in query strings, so they use the URL-safe alphabet.
var cursorEncoding = base64.URLEncoding

func lastEvalKeyToCursor(lastEvalKey map[string]types.AttributeValue) (string, error) {
	bytesJSON, err := attributevalue.MarshalMapJSON(lastEvalKey)
	if err != nil {
		return "", fmt.Errorf("failed to encode to JSON: %w", err)
	}

	return cursorEncoding.EncodeToString(bytesJSON), nil
}

func cursorToLastEval(cursor string) (map[string]types.AttributeValue, error) {
	bytesJSON, err := cursorEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to b64 decode: %w", err)
	}

	outputJSON, err := attributevalue.UnmarshalMapJSON(bytesJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to json decode: %w", err)
	}

	return outputJSON, nil
}

func getKeyFromItem(key map[string]types.AttributeValue, item map[string]types.AttributeValue) map[string]types.AttributeValue {
	result := map[string]types.AttributeValue{}
	for k := range key {
		result[k] = item[k]
	}
	return result
}

// nextPageCursor reports whether a query that fetched limit+1 items has
// another page, and the cursor pointing just past the last item returned.
func nextPageCursor(limit int32, result *dynamodb.QueryOutput) (*string, bool) {
	hasNextPage := len(result.Items) > int(limit)
	if !hasNextPage || len(result.LastEvaluatedKey) == 0 {
		return nil, hasNextPage
	}

	// LastEvaluatedKey points at the extra item, which the caller never sees.
	lastItemGivenToUser := result.Items[limit-1]
	c, err := lastEvalKeyToCursor(getKeyFromItem(result.LastEvaluatedKey, lastItemGivenToUser))
	if err != nil {
		panic(fmt.Sprintf("failed to make cursor from lastEvalKey: %s", err))
	}

	return &c, true
}
