package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminLog is one audit-trail entry in the admin_logs collection.
type AdminLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AdminID   string             `bson:"admin_id"`
	Action    string             `bson:"action"`
	Details   map[string]any     `bson:"details"`
	Timestamp time.Time          `bson:"timestamp"`
	IPAddress string             `bson:"ip_address,omitempty"`
}
