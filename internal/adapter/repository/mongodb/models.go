package mongodb

import (
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type coordinatesDocument struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

// propertyDocument is how a Property is stored. Field names match the JSON
// contract so documents written by older clients stay readable.
type propertyDocument struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Type             string               `bson:"type"`
	BHK              string               `bson:"bhk"`
	Bathrooms        string               `bson:"bathrooms"`
	SuperBuiltupArea string               `bson:"superBuiltupArea"`
	CarpetArea       string               `bson:"carpetArea,omitempty"`
	Furnishing       string               `bson:"furnishing,omitempty"`
	ProjectStatus    string               `bson:"projectStatus,omitempty"`
	ListedBy         string               `bson:"listedBy,omitempty"`
	Maintenance      string               `bson:"maintenance,omitempty"`
	TotalFloors      string               `bson:"totalFloors,omitempty"`
	FloorNo          string               `bson:"floorNo,omitempty"`
	CarParking       string               `bson:"carParking,omitempty"`
	Facing           string               `bson:"facing,omitempty"`
	ProjectName      string               `bson:"projectName,omitempty"`
	AdTitle          string               `bson:"adTitle"`
	Description      string               `bson:"description"`
	Price            float64              `bson:"price"`
	State            string               `bson:"state"`
	Location         string               `bson:"location,omitempty"`
	Coordinates      *coordinatesDocument `bson:"coordinates,omitempty"`
	Name             string               `bson:"name"`
	PhoneNumber      string               `bson:"phoneNumber"`
	Images           []string             `bson:"images"`
	Category         string               `bson:"category"`
	Subcategory      string               `bson:"subcategory"`
	Featured         bool                 `bson:"featured"`
	CreatedAt        time.Time            `bson:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt"`
}

// toPropertyDocument converts the domain model. An empty ID stays NilObjectID so
// the repository can assign one on insert.
func toPropertyDocument(p *domain.Property) (*propertyDocument, error) {
	if p == nil {
		return nil, nil
	}

	docID := primitive.NilObjectID
	if p.ID != "" {
		var err error
		docID, err = primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("toPropertyDocument: invalid ID format '%s': %w", p.ID, domain.ErrInvalidID)
		}
	}

	var coords *coordinatesDocument
	if p.Coordinates != nil {
		coords = &coordinatesDocument{Latitude: p.Coordinates.Latitude, Longitude: p.Coordinates.Longitude}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return &propertyDocument{
		ID:               docID,
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
		Price:            p.Price,
		State:            p.State,
		Location:         p.Location,
		Coordinates:      coords,
		Name:             p.Name,
		PhoneNumber:      p.PhoneNumber,
		Images:           images,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		Featured:         p.Featured,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

func toDomainProperty(d *propertyDocument) *domain.Property {
	if d == nil {
		return nil
	}
	var coords *domain.Coordinates
	if d.Coordinates != nil {
		coords = &domain.Coordinates{Latitude: d.Coordinates.Latitude, Longitude: d.Coordinates.Longitude}
	}
	return &domain.Property{
		ID:               d.ID.Hex(),
		Type:             d.Type,
		BHK:              d.BHK,
		Bathrooms:        d.Bathrooms,
		SuperBuiltupArea: d.SuperBuiltupArea,
		CarpetArea:       d.CarpetArea,
		Furnishing:       d.Furnishing,
		ProjectStatus:    d.ProjectStatus,
		ListedBy:         d.ListedBy,
		Maintenance:      d.Maintenance,
		TotalFloors:      d.TotalFloors,
		FloorNo:          d.FloorNo,
		CarParking:       d.CarParking,
		Facing:           d.Facing,
		ProjectName:      d.ProjectName,
		AdTitle:          d.AdTitle,
		Description:      d.Description,
		Price:            d.Price,
		State:            d.State,
		Location:         d.Location,
		Coordinates:      coords,
		Name:             d.Name,
		PhoneNumber:      d.PhoneNumber,
		Images:           d.Images,
		Category:         d.Category,
		Subcategory:      d.Subcategory,
		Featured:         d.Featured,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toDomainProperties(docs []*propertyDocument) []*domain.Property {
	out := make([]*domain.Property, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toDomainProperty(doc))
	}
	return out
}
