package models

import "time"

// Tour is a scheduled property visit requested by a buyer.
type Tour struct {
	ID            string    `bson:"id" json:"id"`
	PropertyID    string    `bson:"property_id" json:"property_id"`
	Street        string    `bson:"street" json:"street"`
	City          string    `bson:"city" json:"city"`
	State         string    `bson:"state" json:"state"`
	Zip           string    `bson:"zip" json:"zip"`
	ScheduledDate string    `bson:"scheduled_date" json:"scheduled_date"`
	ScheduledTime string    `bson:"scheduled_time" json:"scheduled_time"`
	Notes         string    `bson:"notes" json:"notes"`
	Status        string    `bson:"status" json:"status"`
	BuyerID       string    `bson:"buyer_id" json:"buyer_id"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
