package model

// Service is a catalog entry; Duration and Price are the defaults applied
// to a booking when the service is selected.
type Service struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Duration    int     `json:"duration"` // in minutes
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}

type Professional struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	Active    bool   `json:"active"`
}
