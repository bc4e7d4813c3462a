// Package taxonomy holds the category tree the navigation surfaces and the
// ad form read from. A Tree is immutable once loaded.
package taxonomy

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
)

// Fetcher is the part of the transport the taxonomy needs.
type Fetcher interface {
	FetchCategories(ctx context.Context) (*contract.CategoriesResponse, error)
}

var (
	ErrMissingCategories = errors.New("response has no categories key")
	ErrDuplicateCategory = errors.New("duplicate category name")
	ErrEmptySubcategory  = errors.New("empty subcategory")
)

// FetchError wraps every failure of Load.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "taxonomy fetch failed: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// Tree is an ordered, read-only category tree.
type Tree struct {
	categories []domain.Category
	index      map[string]int
}

// NewTree validates categories and copies them into a Tree.
func NewTree(categories []domain.Category) (Tree, error) {
	t := Tree{
		categories: make([]domain.Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		if _, dup := t.index[c.Name]; dup {
			return Tree{}, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name)
		}
		subs := make([]string, len(c.Subcategories))
		for i, s := range c.Subcategories {
			if s == "" {
				return Tree{}, fmt.Errorf("%w in category %q", ErrEmptySubcategory, c.Name)
			}
			subs[i] = s
		}
		t.index[c.Name] = len(t.categories)
		t.categories = append(t.categories, domain.Category{Name: c.Name, Subcategories: subs})
	}
	return t, nil
}

// Load fetches and validates the tree. It does not retry.
func Load(ctx context.Context, f Fetcher) (Tree, error) {
	resp, err := f.FetchCategories(ctx)
	if err != nil {
		return Tree{}, &FetchError{Err: err}
	}
	if resp == nil || resp.Categories == nil {
		return Tree{}, &FetchError{Err: ErrMissingCategories}
	}
	t, err := NewTree(*resp.Categories)
	if err != nil {
		return Tree{}, &FetchError{Err: err}
	}
	return t, nil
}

func (t Tree) Len() int { return len(t.categories) }

// Lookup returns a copy of the named category.
func (t Tree) Lookup(name string) (domain.Category, bool) {
	i, ok := t.index[name]
	if !ok {
		return domain.Category{}, false
	}
	return clone(t.categories[i]), true
}

// Contains reports whether subcategory is listed under category.
func (t Tree) Contains(category, subcategory string) bool {
	i, ok := t.index[category]
	if !ok {
		return false
	}
	for _, s := range t.categories[i].Subcategories {
		if s == subcategory {
			return true
		}
	}
	return false
}

// FirstN returns the first n categories in source order.
func FirstN(t Tree, n int) []domain.Category {
	if n <= 0 {
		return []domain.Category{}
	}
	if n > len(t.categories) {
		n = len(t.categories)
	}
	out := make([]domain.Category, n)
	for i := 0; i < n; i++ {
		out[i] = clone(t.categories[i])
	}
	return out
}

// All returns every category in source order.
func All(t Tree) []domain.Category {
	return FirstN(t, len(t.categories))
}

// Badge is the "Category / Subcategory" label shown on the form and cards.
// It is empty when the pair is not in the tree.
func Badge(t Tree, category, subcategory string) string {
	if !t.Contains(category, subcategory) {
		return ""
	}
	return category + " / " + subcategory
}

func clone(c domain.Category) domain.Category {
	subs := make([]string, len(c.Subcategories))
	copy(subs, c.Subcategories)
	return domain.Category{Name: c.Name, Subcategories: subs}
}
