/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// Record is the persisted form of one key used by the file-backed drivers (bolt, sqlite).
type Record struct {
	// Key is the declared storage key.
	Key string `json:"key"`
	// Value is the JSON encoding of the stored value.
	Value json.RawMessage `json:"value"`
	// UpdatedAt is the time of the last acknowledged write.
	UpdatedAt strfmt.DateTime `json:"updatedAt"`
}

// NewRecord encodes value into a Record stamped with the current time.
func NewRecord(key string, value any) (*Record, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}
	return &Record{
		Key:       key,
		Value:     raw,
		UpdatedAt: strfmt.DateTime(time.Now().UTC()),
	}, nil
}

// Decode returns the stored value. JSON numbers decode as float64 and objects as
// map[string]interface{}.
func (r *Record) Decode() (any, error) {
	var value any
	if len(r.Value) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(r.Value, &value); err != nil {
		return nil, fmt.Errorf("failed to decode value for key %q: %w", r.Key, err)
	}
	return value, nil
}

// Marshal returns the JSON encoding of the whole record.
func (r *Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalRecord parses a record previously produced by Marshal.
func UnmarshalRecord(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &r, nil
}

// DynamoItem is the DynamoDB item layout of one key in a single-table design.
type DynamoItem struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Namespace string `dynamodbav:"Namespace"`
	Key       string `dynamodbav:"Key"`
	Value     any    `dynamodbav:"Value"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}
