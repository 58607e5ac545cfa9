package models

// Locations partitions the places found in a free-text location string.
type Locations struct {
	Countries   []string `json:"countries"`
	Cities      []string `json:"cities"`
	CustomTerms []string `json:"custom_terms"`
}

// NewLocations returns a Locations with empty, non-nil lists.
func NewLocations() Locations {
	return Locations{
		Countries:   []string{},
		Cities:      []string{},
		CustomTerms: []string{},
	}
}
