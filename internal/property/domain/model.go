package domain

import "time"

// Coordinates is a resolved device position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Category is one node of the two-level taxonomy.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// Property is a persisted listing.
type Property struct {
	ID string `json:"_id,omitempty"`

	Type             string `json:"type"`
	BHK              string `json:"bhk"`
	Bathrooms        string `json:"bathrooms"`
	SuperBuiltupArea string `json:"superBuiltupArea"`
	CarpetArea       string `json:"carpetArea,omitempty"`
	Furnishing       string `json:"furnishing,omitempty"`
	ProjectStatus    string `json:"projectStatus,omitempty"`
	ListedBy         string `json:"listedBy,omitempty"`
	Maintenance      string `json:"maintenance,omitempty"`
	TotalFloors      string `json:"totalFloors,omitempty"`
	FloorNo          string `json:"floorNo,omitempty"`
	CarParking       string `json:"carParking,omitempty"`
	Facing           string `json:"facing,omitempty"`
	ProjectName      string `json:"projectName,omitempty"`

	AdTitle     string  `json:"adTitle"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	State       string       `json:"state"`
	Location    string       `json:"location,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`

	Images []string `json:"images"`

	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
