package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/adform"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDraft = `category: Properties
subcategory: "For Rent: Houses & Apartments"
fields:
  type: Flats / Apartments
  bhk: "2"
  adTitle: Nice flat
  price: "1500000"
photos:
  - front.png
  - ""
coordinates:
  latitude: 19.075
  longitude: 72.8777
`

func writeDraft(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDraft), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "front.png"), []byte("\x89PNG\r\n\x1a\n"), 0o600))
	return path
}

func TestLoadDraft(t *testing.T) {
	path := writeDraft(t)

	d, err := loadDraft(path)
	require.NoError(t, err)
	assert.Equal(t, "For Rent: Houses & Apartments", d.Subcategory)
	assert.Equal(t, "2", d.Fields[contract.FieldBHK])
	assert.Equal(t, filepath.Join(filepath.Dir(path), "front.png"), d.Photos[0])
	require.NotNil(t, d.Coordinates)
	assert.Equal(t, 72.8777, d.Coordinates.Longitude)
}

func TestReadPhotos_KeepsEmptySlots(t *testing.T) {
	d, err := loadDraft(writeDraft(t))
	require.NoError(t, err)

	files, err := readPhotos(context.Background(), d.Photos)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "front.png", files[0].Name)
	assert.Nil(t, files[1])
}

func TestReadPhotos_MissingFile(t *testing.T) {
	_, err := readPhotos(context.Background(), []string{filepath.Join(t.TempDir(), "nope.png")})
	assert.Error(t, err)
}

func TestDraftApply(t *testing.T) {
	d, err := loadDraft(writeDraft(t))
	require.NoError(t, err)
	e, err := adform.New(adform.Config{}, nil, selection.NewStore(), nil)
	require.NoError(t, err)
	defer e.Cancel()

	require.NoError(t, d.apply(e))
	assert.Equal(t, "Flats / Apartments", e.Field(contract.FieldType))
	assert.Equal(t, "For Rent: Houses & Apartments", e.Selection().Subcategory)

	d.Fields["bhk"] = "7"
	assert.ErrorIs(t, d.apply(e), adform.ErrUnknownOption)
}
