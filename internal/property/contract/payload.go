// Package contract is the wire shape shared by the form engine's submit step and
// the API's create handler. Field names live here and nowhere else.
package contract

import (
	"strings"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
)

const (
	FieldType             = "type"
	FieldBHK              = "bhk"
	FieldBathrooms        = "bathrooms"
	FieldSuperBuiltupArea = "superBuiltupArea"
	FieldCarpetArea       = "carpetArea"
	FieldFurnishing       = "furnishing"
	FieldProjectStatus    = "projectStatus"
	FieldListedBy         = "listedBy"
	FieldMaintenance      = "maintenance"
	FieldTotalFloors      = "totalFloors"
	FieldFloorNo          = "floorNo"
	FieldCarParking       = "carParking"
	FieldFacing           = "facing"
	FieldProjectName      = "projectName"
	FieldAdTitle          = "adTitle"
	FieldDescription      = "description"
	FieldPrice            = "price"
	FieldState            = "state"
	FieldName             = "name"
	FieldPhoneNumber      = "phoneNumber"
)

// Requirement describes one required field and the message shown when it is
// missing. StateField requirements only apply while no coordinates were resolved.
type Requirement struct {
	Field      string
	Message    string
	StateField bool
}

// Required lists required fields in display order.
var Required = []Requirement{
	{Field: FieldType, Message: "Property type is required"},
	{Field: FieldBHK, Message: "BHK is required"},
	{Field: FieldBathrooms, Message: "Number of bathrooms is required"},
	{Field: FieldSuperBuiltupArea, Message: "Super built-up area is required"},
	{Field: FieldAdTitle, Message: "Ad title is required"},
	{Field: FieldDescription, Message: "Description is required"},
	{Field: FieldPrice, Message: "Price is required"},
	{Field: FieldState, Message: "State is required", StateField: true},
	{Field: FieldName, Message: "Name is required"},
	{Field: FieldPhoneNumber, Message: "Phone number is required"},
}

// PropertyPayload is the body of POST /api/properties.
type PropertyPayload struct {
	Type             string `json:"type"`
	BHK              string `json:"bhk"`
	Bathrooms        string `json:"bathrooms"`
	SuperBuiltupArea string `json:"superBuiltupArea"`
	CarpetArea       string `json:"carpetArea"`
	Furnishing       string `json:"furnishing"`
	ProjectStatus    string `json:"projectStatus"`
	ListedBy         string `json:"listedBy"`
	Maintenance      string `json:"maintenance"`
	TotalFloors      string `json:"totalFloors"`
	FloorNo          string `json:"floorNo"`
	CarParking       string `json:"carParking"`
	Facing           string `json:"facing"`
	ProjectName      string `json:"projectName"`

	AdTitle     string   `json:"adTitle"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`

	State       string              `json:"state"`
	Location    string              `json:"location"`
	Coordinates *domain.Coordinates `json:"coordinates"`

	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`

	Images []string `json:"images"`

	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Featured    bool   `json:"featured"`
}

// SubmitResponse is the body returned by POST /api/properties.
type SubmitResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Error    string           `json:"error,omitempty"`
	Property *domain.Property `json:"property,omitempty"`
}

// CategoriesResponse is the body of GET /api/categories. Categories is a pointer
// so a body without the key can be told apart from an empty tree.
type CategoriesResponse struct {
	Categories *[]domain.Category `json:"categories"`
}

type ListResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Properties []*domain.Property `json:"properties"`
}

type GetResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Property *domain.Property `json:"property,omitempty"`
}

// Value returns the string form of a required field, "" when unset.
func (p *PropertyPayload) Value(field string) string {
	switch field {
	case FieldType:
		return p.Type
	case FieldBHK:
		return p.BHK
	case FieldBathrooms:
		return p.Bathrooms
	case FieldSuperBuiltupArea:
		return p.SuperBuiltupArea
	case FieldAdTitle:
		return p.AdTitle
	case FieldDescription:
		return p.Description
	case FieldPrice:
		if p.Price == nil {
			return ""
		}
		return "set"
	case FieldState:
		return p.State
	case FieldName:
		return p.Name
	case FieldPhoneNumber:
		return p.PhoneNumber
	}
	return ""
}

// Missing returns the messages of the required fields absent from p, in the
// order of Required. Category and subcategory are also required by the store.
func (p *PropertyPayload) Missing() []string {
	var missing []string
	for _, req := range Required {
		if req.StateField && p.Coordinates != nil {
			continue
		}
		if strings.TrimSpace(p.Value(req.Field)) == "" {
			missing = append(missing, req.Message)
		}
	}
	if p.Category == "" || p.Subcategory == "" {
		missing = append(missing, "Category is required")
	}
	return missing
}

// ToProperty converts the payload into a record ready to be stored.
func (p *PropertyPayload) ToProperty() *domain.Property {
	var price float64
	if p.Price != nil {
		price = *p.Price
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &domain.Property{
		Type:             p.Type,
		BHK:              p.BHK,
		Bathrooms:        p.Bathrooms,
		SuperBuiltupArea: p.SuperBuiltupArea,
		CarpetArea:       p.CarpetArea,
		Furnishing:       p.Furnishing,
		ProjectStatus:    p.ProjectStatus,
		ListedBy:         p.ListedBy,
		Maintenance:      p.Maintenance,
		TotalFloors:      p.TotalFloors,
		FloorNo:          p.FloorNo,
		CarParking:       p.CarParking,
		Facing:           p.Facing,
		ProjectName:      p.ProjectName,
		AdTitle:          p.AdTitle,
		Description:      p.Description,
		Price:            price,
		State:            p.State,
		Location:         p.Location,
		Coordinates:      p.Coordinates,
		Name:             p.Name,
		PhoneNumber:      p.PhoneNumber,
		Images:           images,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		Featured:         p.Featured,
	}
}
