package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextSequence atomically allocates the next sequential id for name from
// the counters collection. Like a SQL sequence, an allocation consumed by
// a failed insert is simply skipped, never reused.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	res := db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, classify("next sequence "+name, err)
	}
	return counter.Seq, nil
}
