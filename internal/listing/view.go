package listing

import (
	"math"
	"strconv"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/taxonomy"
)

// Detail-page fallbacks for fields a listing left empty.
const (
	FallbackType          = "Flats / Apartments"
	FallbackFurnishing    = "Unfurnished"
	FallbackListedBy      = "Builder"
	FallbackProjectStatus = "Ready to Move"
	PriceOnRequest        = "Price on request"
)

// Card is one entry of a listing page.
type Card struct {
	ID       string
	Title    string
	Price    string
	Location string
	Badge    string
	Image    string
	Featured bool
}

// Detail is the full detail page of one listing.
type Detail struct {
	Card
	Type             string
	BHK              string
	Bathrooms        string
	SuperBuiltupArea string
	CarpetArea       string
	Furnishing       string
	ProjectStatus    string
	ListedBy         string
	Maintenance      string
	FloorNo          string
	TotalFloors      string
	CarParking       string
	Facing           string
	ProjectName      string
	Description      string
	SellerName       string
	PhoneNumber      string
	Carousel         *Carousel
}

// NewCard builds a card. The badge is empty for categories not in tree.
func NewCard(p *domain.Property, tree taxonomy.Tree) Card {
	image := PlaceholderImage
	for _, img := range p.Images {
		if img != "" {
			image = img
			break
		}
	}
	return Card{
		ID:       p.ID,
		Title:    p.AdTitle,
		Price:    FormatPrice(p.Price),
		Location: p.Location,
		Badge:    taxonomy.Badge(tree, p.Category, p.Subcategory),
		Image:    image,
		Featured: p.Featured,
	}
}

func NewDetail(p *domain.Property, tree taxonomy.Tree) Detail {
	return Detail{
		Card:             NewCard(p, tree),
		Type:             orDefault(p.Type, FallbackType),
		BHK:              p.BHK,
		Bathrooms:        p.Bathrooms,
		SuperBuiltupArea: p.SuperBuiltupArea,
		CarpetArea:       p.CarpetArea,
		Furnishing:       orDefault(p.Furnishing, FallbackFurnishing),
		ProjectStatus:    orDefault(p.ProjectStatus, FallbackProjectStatus),
		ListedBy:         orDefault(p.ListedBy, FallbackListedBy),
		Maintenance:      p.Maintenance,
		FloorNo:          p.FloorNo,
		TotalFloors:      p.TotalFloors,
		CarParking:       p.CarParking,
		Facing:           p.Facing,
		ProjectName:      p.ProjectName,
		Description:      p.Description,
		SellerName:       p.Name,
		PhoneNumber:      p.PhoneNumber,
		Carousel:         NewCarousel(p.Images),
	}
}

// FormatPrice renders a price in rupees with Indian digit grouping. Paise are
// dropped; NaN and infinities render as PriceOnRequest.
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return PriceOnRequest
	}
	whole := strconv.FormatFloat(math.Trunc(price), 'f', 0, 64)
	if whole == "-0" {
		whole = "0"
	}
	neg := false
	if whole[0] == '-' {
		neg = true
		whole = whole[1:]
	}
	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		grouped := ""
		for len(head) > 2 {
			grouped = "," + head[len(head)-2:] + grouped
			head = head[:len(head)-2]
		}
		whole = head + grouped + "," + tail
	}
	if neg {
		whole = "-" + whole
	}
	return "₹ " + whole
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
