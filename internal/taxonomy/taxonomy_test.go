package taxonomy

import (
	"context"
	"errors"
	"testing"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetcherFunc func(ctx context.Context) (*contract.CategoriesResponse, error)

func (f fetcherFunc) FetchCategories(ctx context.Context) (*contract.CategoriesResponse, error) {
	return f(ctx)
}

func respond(cats []domain.Category) Fetcher {
	return fetcherFunc(func(context.Context) (*contract.CategoriesResponse, error) {
		return &contract.CategoriesResponse{Categories: &cats}, nil
	})
}

func sample() []domain.Category {
	return []domain.Category{
		{Name: "Cars", Subcategories: []string{"Cars"}},
		{Name: "Properties", Subcategories: []string{"For Sale: Houses & Apartments", "For Rent: Houses & Apartments"}},
		{Name: "Mobiles", Subcategories: []string{"Mobile Phones", "Tablets"}},
	}
}

func TestLoad_PreservesOrder(t *testing.T) {
	tree, err := Load(context.Background(), respond(sample()))
	require.NoError(t, err)

	if diff := cmp.Diff(sample(), All(tree)); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		fetcher Fetcher
		wantErr error
	}{
		{
			name: "unreachable",
			fetcher: fetcherFunc(func(context.Context) (*contract.CategoriesResponse, error) {
				return nil, errors.New("connection refused")
			}),
		},
		{
			name: "missing key",
			fetcher: fetcherFunc(func(context.Context) (*contract.CategoriesResponse, error) {
				return &contract.CategoriesResponse{}, nil
			}),
			wantErr: ErrMissingCategories,
		},
		{
			name: "duplicate name",
			fetcher: respond([]domain.Category{
				{Name: "Cars", Subcategories: []string{"Cars"}},
				{Name: "Cars", Subcategories: []string{"Spare Parts"}},
			}),
			wantErr: ErrDuplicateCategory,
		},
		{
			name:    "empty subcategory",
			fetcher: respond([]domain.Category{{Name: "Cars", Subcategories: []string{""}}}),
			wantErr: ErrEmptySubcategory,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.fetcher)
			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFirstN(t *testing.T) {
	tree, err := NewTree(sample())
	require.NoError(t, err)

	assert.Empty(t, FirstN(tree, 0))
	assert.Empty(t, FirstN(tree, -1))
	assert.Equal(t, []string{"Cars", "Properties"}, names(FirstN(tree, 2)))
	assert.Len(t, FirstN(tree, 7), 3)
}

func TestTree_IsNotAliased(t *testing.T) {
	src := sample()
	tree, err := NewTree(src)
	require.NoError(t, err)

	src[0].Subcategories[0] = "changed"
	got := All(tree)
	got[1].Subcategories[0] = "changed too"

	cat, ok := tree.Lookup("Properties")
	require.True(t, ok)
	assert.Equal(t, "For Sale: Houses & Apartments", cat.Subcategories[0])
	assert.True(t, tree.Contains("Cars", "Cars"))
}

func TestBadge(t *testing.T) {
	tree, err := NewTree(sample())
	require.NoError(t, err)

	assert.Equal(t, "Properties / For Sale: Houses & Apartments", Badge(tree, "Properties", "For Sale: Houses & Apartments"))
	assert.Equal(t, "", Badge(tree, "Boats", "Yachts"))
	assert.Equal(t, "", Badge(tree, "Cars", "Yachts"))
}

func TestSource_RefreshKeepsOldTreeOnFailure(t *testing.T) {
	fail := false
	f := fetcherFunc(func(context.Context) (*contract.CategoriesResponse, error) {
		if fail {
			return nil, errors.New("server down")
		}
		cats := sample()
		return &contract.CategoriesResponse{Categories: &cats}, nil
	})
	src := NewSource(f, nil)
	assert.Equal(t, 0, src.Tree().Len())

	require.NoError(t, src.Refresh(context.Background()))
	assert.Equal(t, 3, src.Tree().Len())

	fail = true
	assert.Error(t, src.Refresh(context.Background()))
	assert.Equal(t, 3, src.Tree().Len())
}

func TestSource_DegradedIsEmptyOnFailure(t *testing.T) {
	src := NewSource(fetcherFunc(func(context.Context) (*contract.CategoriesResponse, error) {
		return nil, errors.New("server down")
	}), nil)

	tree := src.Degraded(context.Background())
	assert.Empty(t, All(tree))
}

func names(cats []domain.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}
