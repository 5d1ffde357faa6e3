package models

import "time"

// FarmerRecord is the document persisted after each successful calculation.
// The FarmerID is a best-effort "Farmer N" sequence derived from counting
// existing documents; it is not guaranteed unique under concurrent writers.
type FarmerRecord struct {
	FarmerID        string                     `bson:"_id" json:"farmer_id"`
	Timestamp       time.Time                  `bson:"timestamp" json:"timestamp"`
	TotalAnimals    int                        `bson:"total_animals" json:"total_animals"`
	AnimalDetails   map[AnimalGroup][]SubGroup `bson:"animal_details" json:"animal_details"`
	FodderSelection FeedSelection              `bson:"fodder_selection" json:"fodder_selection"`
	Rating          int                        `bson:"rating,omitempty" json:"rating,omitempty"`
	RatingTimestamp time.Time                  `bson:"rating_timestamp,omitempty" json:"rating_timestamp,omitempty"`
}
