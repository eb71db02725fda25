package validators

import "go.mongodb.org/mongo-driver/bson"

var SlotLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "expiresAt"},

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},
			"expiresAt": bson.M{
				"bsonType": "date",
			},
			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
