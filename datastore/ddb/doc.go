/*
Package ddb provides a DynamoDB implementation of the Driver interface.

The DynamodbDriver supports:
  - Single-table design patterns: many storages share one table, one partition each
  - Macro-based key expansion ({Namespace} and {Key})
  - Strongly consistent reads, so a storage initialized right after a write sees it
  - Deletion of the item when datastore.Undefined is written

Key Features:

Macro Expansion:
Keys are built from templates filled with the storage namespace and the declared key:

	indexMap := map[string]string{
	    "PK": "STORAGE#{Namespace}",  // Becomes "STORAGE#profile"
	    "SK": "KEY#{Key}",            // Becomes "KEY#user"
	}

	client, _ := ddb.NewDynamoDBClient(ctx, accessKey, secretKey, "us-east-1")
	driver, _ := ddb.New(client, "settings-table", "profile", indexMap)

Values are written with attributevalue.MarshalMap, so they read back as the generic
DynamoDB decodings: numbers as float64, maps as map[string]interface{}.
*/
package ddb
