/*
Package storagemodels defines the persisted data structures shared by StrictStore drivers.

Key Types:

Record:
The JSON envelope written by the bolt and sqlite drivers:

	rec, err := storagemodels.NewRecord("user", "user001")
	data, err := rec.Marshal()   // {"key":"user","value":"user001","updatedAt":"2025-..."}

	rec, err = storagemodels.UnmarshalRecord(data)
	value, err := rec.Decode()   // "user001"

DynamoItem:
The item layout written by the DynamoDB driver, with partition and sort keys expanded
from the driver's key templates:

	item := storagemodels.DynamoItem{
	    PK:    "STORAGE#profile",
	    SK:    "KEY#user",
	    Key:   "user",
	    Value: "user001",
	}

Values go through JSON (or DynamoDB attribute values), so numbers come back as float64 and
objects as map[string]interface{}.
*/
package storagemodels
