package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationTypeLike    int8 = 1
	NotificationTypeComment int8 = 2
	NotificationTypeReply   int8 = 3
)

// Notification is one entry in a user's inbox. Written by the CDC consumers,
// never on the request path.
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiver_id"`
	SenderID   uint64             `bson:"sender_id" json:"sender_id"`
	Type       int8               `bson:"type" json:"type"`
	TargetID   uint64             `bson:"target_id" json:"target_id"` // post or comment id
	Content    string             `bson:"content" json:"content"`
	Payload    map[string]any     `bson:"payload" json:"payload"`
	IsRead     bool               `bson:"is_read" json:"is_read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
