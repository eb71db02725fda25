package validators

import "go.mongodb.org/mongo-driver/bson"

// BookingValidator enforces the booking document shape at the store:
// quarter-hour time labels, a calendar date string and the identity
// fields every booking carries.
var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"roomId",
			"date",
			"startTime",
			"endTime",
			"name",
			"ownerId",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"roomId": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"startTime": bson.M{
				"bsonType": "string",
				"pattern":  `^([01]\d|2[0-3]):(00|15|30|45)$`,
			},

			"endTime": bson.M{
				"bsonType": "string",
				"pattern":  `^([01]\d|2[0-3]):(00|15|30|45|59)$`,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"company": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"ownerId": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
