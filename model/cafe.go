package model

// Cafe is one row of the cafe directory.
type Cafe struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:250;uniqueIndex;not null"`
	MapURL       string `json:"map_url" gorm:"size:500;not null"`
	ImgURL       string `json:"img_url" gorm:"size:500;not null"`
	Location     string `json:"location" gorm:"size:250;not null"`
	Seats        string `json:"seats" gorm:"size:250;not null"`
	HasToilet    bool   `json:"has_toilet" gorm:"not null"`
	HasWifi      bool   `json:"has_wifi" gorm:"not null"`
	HasSockets   bool   `json:"has_sockets" gorm:"not null"`
	CanTakeCalls bool   `json:"can_take_calls" gorm:"not null"`
	CoffeePrice  string `json:"coffee_price"`
}

// CafeFields lists the payload keys in declaration order. ToMap must stay
// in sync with this list; the payload tests check them against each other.
var CafeFields = []string{
	"id", "name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price",
}

// ToMap builds the JSON payload for one cafe from an explicit field list,
// so the wire shape never depends on struct reflection order.
func (c *Cafe) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":             c.ID,
		"name":           c.Name,
		"map_url":        c.MapURL,
		"img_url":        c.ImgURL,
		"location":       c.Location,
		"seats":          c.Seats,
		"has_toilet":     c.HasToilet,
		"has_wifi":       c.HasWifi,
		"has_sockets":    c.HasSockets,
		"can_take_calls": c.CanTakeCalls,
		"coffee_price":   c.CoffeePrice,
	}
}
