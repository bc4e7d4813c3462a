package usecase

import (
	"fmt"
	"os"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CategoryUsecase serves the taxonomy. The tree is fixed for the life of the
// process.
type CategoryUsecase struct {
	categories []domain.Category
	logger     *logger.Logger
}

func NewCategoryUsecase(categories []domain.Category, log *logger.Logger) *CategoryUsecase {
	return &CategoryUsecase{categories: categories, logger: log.Named("CategoryUsecase")}
}

// Categories returns a copy of the tree.
func (uc *CategoryUsecase) Categories() []domain.Category {
	out := make([]domain.Category, len(uc.categories))
	for i, c := range uc.categories {
		out[i] = domain.Category{Name: c.Name, Subcategories: append([]string(nil), c.Subcategories...)}
	}
	return out
}

type categoriesFile struct {
	Categories []domain.Category `yaml:"categories"`
}

// LoadCategories reads a YAML taxonomy from path. An empty path yields the
// built-in tree.
func LoadCategories(path string, log *logger.Logger) ([]domain.Category, error) {
	if path == "" {
		return DefaultCategories(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCategories: read %s: %w", path, err)
	}
	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("LoadCategories: parse %s: %w", path, err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("LoadCategories: %s has no categories", path)
	}
	log.Info("Loaded categories from file", zap.String("path", path), zap.Int("count", len(f.Categories)))
	return f.Categories, nil
}

// DefaultCategories is the taxonomy the marketplace launched with.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{Name: "Cars", Subcategories: []string{"Motorcycles", "Scooters", "Spare Parts", "Bicycles"}},
		{Name: "Properties", Subcategories: []string{
			"For Sale: Houses & Apartments",
			"For Rent: Houses & Apartments",
			"Lands & Plots",
			"For Rent: Shops & Offices",
			"For Sale: Shops & Offices",
			"PG & Guest Houses",
		}},
		{Name: "Electronics & Appliances", Subcategories: []string{
			"TVs, Video - Audio",
			"Kitchen & Other Appliances",
			"Computers & Laptops",
			"Cameras & Lenses",
			"Games & Entertainment",
			"Fridges",
			"Computer Accessories",
			"Hard Disks, Printers & Monitors",
			"ACs",
			"Washing Machines",
		}},
		{Name: "Mobiles", Subcategories: []string{"Mobile Phones", "Accessories", "Tablets"}},
		{Name: "Commercial Vehicles & Spares", Subcategories: []string{"Commercial & Other Vehicles", "Spare Parts"}},
		{Name: "Jobs", Subcategories: []string{
			"Data entry & Back office",
			"Sales & Marketing",
			"BPO & Telecaller",
			"Driver",
			"Office Assistant",
			"Delivery & Collection",
			"Teacher",
			"Cook",
			"Receptionist & Front office",
			"Operator & Technician",
			"IT Engineer & Developer",
			"Hotel & Travel Executive",
			"Accountant",
			"Designer",
			"Other Jobs",
		}},
		{Name: "Furniture", Subcategories: []string{
			"Sofa & Dining",
			"Beds & Wardrobes",
			"Home Decor & Garden",
			"Kids Furniture",
			"Other Household Items",
		}},
		{Name: "Fashion", Subcategories: []string{"Men", "Women", "Kids"}},
		{Name: "Pets", Subcategories: []string{
			"Fishes & Aquarium",
			"Pet Food & Accessories",
			"Dogs",
			"Other Pets",
		}},
		{Name: "Books, Sports & Hobbies", Subcategories: []string{
			"Books",
			"Gym & Fitness",
			"Musical Instruments",
			"Sports Equipment",
			"Other Hobbies",
		}},
		{Name: "Services", Subcategories: []string{
			"Education & Classes",
			"Tours & Travel",
			"Electronics Repair & Services",
			"Health & Beauty",
			"Home Renovation & Repair",
			"Cleaning & Pest Control",
			"Legal & Documentation Services",
			"Packers & Movers",
			"Other Services",
		}},
	}
}
