/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/strictstore/datastore"
	"github.com/suparena/strictstore/registry"
	"github.com/suparena/strictstore/storagemodels"
)

// API is the subset of the DynamoDB client used by the driver.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// DefaultIndexMap lays every key of a namespace under one partition.
var DefaultIndexMap = map[string]string{
	"PK": "STORAGE#{Namespace}",
	"SK": "KEY#{Key}",
}

// DynamodbDriver implements datastore.Driver on a single DynamoDB table.
type DynamodbDriver struct {
	client    API
	tableName string
	namespace string
	indexMap  map[string]string
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills the {Namespace} and {Key} macros of every template in indexMap.
func expandMacros(indexMap map[string]string, namespace, key string) (map[string]string, error) {
	vars := map[string]string{
		"Namespace": namespace,
		"Key":       key,
	}

	res := make(map[string]string, len(indexMap))
	var unknown []string
	for fieldName, template := range indexMap {
		res[fieldName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			name := strings.Trim(macro, "{}")
			val, ok := vars[name]
			if !ok {
				unknown = append(unknown, name)
				return ""
			}
			return val
		})
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown macros in index map: %s", strings.Join(unknown, ", "))
	}
	return res, nil
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials. Empty keys fall back
// to the default credential chain.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" && awsSecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg)

	slog.Debug("DynamoDB client initialized", "region", awsRegion)
	return client, nil
}

// New constructs a driver for namespace on tableName. A nil indexMap uses DefaultIndexMap.
func New(client API, tableName, namespace string, indexMap map[string]string) (*DynamodbDriver, error) {
	if client == nil {
		return nil, errors.New("dynamodb client is required")
	}
	if tableName == "" {
		return nil, errors.New("table name is required")
	}
	if indexMap == nil {
		indexMap = DefaultIndexMap
	}
	if _, err := expandMacros(indexMap, namespace, ""); err != nil {
		return nil, err
	}
	for _, field := range []string{"PK", "SK"} {
		if _, ok := indexMap[field]; !ok {
			return nil, fmt.Errorf("index map is missing %s", field)
		}
	}

	return &DynamodbDriver{
		client:    client,
		tableName: tableName,
		namespace: namespace,
		indexMap:  indexMap,
	}, nil
}

func init() {
	registry.RegisterDriver("dynamodb", func(namespace string, opts registry.Options) (datastore.Driver, error) {
		client, err := NewDynamoDBClient(context.Background(),
			opts.Get("accessKey", ""), opts.Get("secretKey", ""), opts.Get("region", "us-east-1"))
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
		}
		indexMap := DefaultIndexMap
		if pk, sk := opts.Get("pk", ""), opts.Get("sk", ""); pk != "" && sk != "" {
			indexMap = map[string]string{"PK": pk, "SK": sk}
		}
		return New(client, opts.Get("table", ""), opts.Get("namespace", namespace), indexMap)
	})
}

// buildKey builds the DynamoDB primary key for key.
func (d *DynamodbDriver) buildKey(key string) (map[string]types.AttributeValue, map[string]string, error) {
	expanded, err := expandMacros(d.indexMap, d.namespace, key)
	if err != nil {
		return nil, nil, err
	}

	pk, sk := expanded["PK"], expanded["SK"]
	if pk == "" || sk == "" {
		return nil, nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, expanded, nil
}

// GetItem retrieves the stored value for key. A missing item reports found == false.
func (d *DynamodbDriver) GetItem(ctx context.Context, key string) (any, bool, error) {
	keyMap, _, err := d.buildKey(key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &d.tableName,
		Key:            keyMap,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, false, nil
	}

	var item storagemodels.DynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return item.Value, true, nil
}

// SetItem puts value under key. datastore.Undefined deletes the item.
func (d *DynamodbDriver) SetItem(ctx context.Context, key string, value any) error {
	keyMap, expanded, err := d.buildKey(key)
	if err != nil {
		return fmt.Errorf("failed to build key: %w", err)
	}

	if datastore.IsUndefined(value) {
		_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
			TableName: &d.tableName,
			Key:       keyMap,
		})
		if err != nil {
			return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
		}
		return nil
	}

	av, err := attributevalue.MarshalMap(storagemodels.DynamoItem{
		PK:        expanded["PK"],
		SK:        expanded["SK"],
		Namespace: d.namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

var _ datastore.Driver = (*DynamodbDriver)(nil)
