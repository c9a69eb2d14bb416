package models

// State is a top-level geographic unit.
type State struct {
	Code string `json:"code" gorm:"primaryKey"`
	Name string `json:"name"`
}

// District belongs to exactly one state. Latitude/Longitude hold the
// district centroid used for heatmap pins.
type District struct {
	Code      string  `json:"code" gorm:"primaryKey"`
	Name      string  `json:"name"`
	StateCode string  `json:"state_code" gorm:"index"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
