// Package dynamostore keeps encoded price lists in a DynamoDB table keyed by agent_id.
package dynamostore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/osse101/BuyerMerchant_Go/internal/domain"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

const attrAgentID = "agent_id"

// API is the subset of the DynamoDB client the store uses.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Options configures the client. Endpoint points at DynamoDB Local when set.
type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewClient builds a DynamoDB client. Static credentials are used when given,
// otherwise the default AWS credential chain applies.
func NewClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

type item struct {
	AgentID   string `dynamodbav:"agent_id"`
	Data      []byte `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PriceListStore implements repository.PriceListStore on DynamoDB.
//
// Table requirements:
//   - PK: agent_id (string)
type PriceListStore struct {
	ddb   API
	table string
	now   func() time.Time
}

var _ repository.PriceListStore = (*PriceListStore)(nil)

// New creates a store on table.
func New(ddb API, table string) *PriceListStore {
	return &PriceListStore{ddb: ddb, table: table, now: time.Now}
}

func (s *PriceListStore) key(agentID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrAgentID: &types.AttributeValueMemberS{Value: agentID},
	}
}

// SavePriceList replaces the item with one PutItem
func (s *PriceListStore) SavePriceList(ctx context.Context, agentID string, data []byte) error {
	av, err := attributevalue.MarshalMap(item{
		AgentID:   agentID,
		Data:      data,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal price list for %s: %w", agentID, err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to save price list for %s: %w", agentID, err)
	}
	return nil
}

// LoadPriceList returns the stored list or domain.ErrNoPriceListOnBuyer
func (s *PriceListStore) LoadPriceList(ctx context.Context, agentID string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            s.key(agentID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load price list for %s: %w", agentID, err)
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoPriceListOnBuyer, agentID)
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal price list for %s: %w", agentID, err)
	}
	return it.Data, nil
}

// DeletePriceList removes the item
func (s *PriceListStore) DeletePriceList(ctx context.Context, agentID string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(agentID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete price list for %s: %w", agentID, err)
	}
	return nil
}

// Ping checks that the table exists and is reachable.
func (s *PriceListStore) Ping(ctx context.Context) error {
	_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)})
	if err != nil {
		return fmt.Errorf("failed to describe table %s: %w", s.table, err)
	}
	return nil
}
