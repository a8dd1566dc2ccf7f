/*
# Module: storage/dynamodb.go
DynamoDB implementation of SearchLogRepository.

## Linked Modules
- [storage/repository](./repository.go) - Repository interfaces
- [types/search_record](../types/search_record.go) - Search record data structures

## Tags
storage, dynamodb, search-log, persistence

## Exports
SearchLogDynamoDBRepository, NewSearchLogDynamoDBRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/dynamodb.go" ;
    code:description "DynamoDB implementation of SearchLogRepository" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Repository interfaces"
    ], [
        code:name "types/search_record" ;
        code:path "../types/search_record.go" ;
        code:relationship "Search record data structures"
    ] ;
    code:exports :SearchLogDynamoDBRepository, :NewSearchLogDynamoDBRepository ;
    code:tags "storage", "dynamodb", "search-log", "persistence" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/kjanuda/cityget/types"
)

// SearchLogDynamoDBRepository implements SearchLogRepository using DynamoDB
type SearchLogDynamoDBRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewSearchLogDynamoDBRepository creates a new DynamoDB search log repository
func NewSearchLogDynamoDBRepository(client *dynamodb.Client, tableName string) *SearchLogDynamoDBRepository {
	return &SearchLogDynamoDBRepository{
		client:    client,
		tableName: tableName,
	}
}

// Save stores a search record in DynamoDB
func (r *SearchLogDynamoDBRepository) Save(record types.SearchRecord) error {
	if r.client == nil {
		return fmt.Errorf("DynamoDB client not initialized")
	}

	ctx := context.Background()

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal search record: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save search record to DynamoDB: %w", err)
	}

	log.Printf("💾 Search record saved to DynamoDB: id=%s city=%s", record.ID, record.CityName)
	return nil
}

// GetRecent retrieves the most recent search records (up to limit)
func (r *SearchLogDynamoDBRepository) GetRecent(limit int) ([]types.SearchRecord, error) {
	if r.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	ctx := context.Background()

	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan search records: %w", err)
	}

	records := make([]types.SearchRecord, 0, len(result.Items))
	for _, item := range result.Items {
		var record types.SearchRecord
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			log.Printf("⚠️  Failed to unmarshal search record: %v", err)
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
