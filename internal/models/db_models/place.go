package db_models

import "github.com/lib/pq"

// Place is one immutable catalog record. Category is a free-form string
// coming from external data sources; the engine treats unknown values as
// zero-weight rather than rejecting them.
type Place struct {
	BaseModel
	Name                 string
	Category             string
	Latitude             float64
	Longitude            float64
	Rating               float64
	PriceLevel           int
	Tags                 pq.StringArray `gorm:"type:text[]"`
	TransportModes       pq.StringArray `gorm:"type:text[]"`
	SocialModes          pq.StringArray `gorm:"type:text[]"`
	FoodTypes            pq.StringArray `gorm:"type:text[]"`
	WheelchairAccessible bool
	PetFriendly          bool
	KidFriendly          bool
	Address              string
	OpeningHours         string
}
