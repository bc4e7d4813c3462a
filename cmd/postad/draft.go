package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/adform"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// draftFile is the yaml form of an ad posted from the command line.
type draftFile struct {
	Category    string              `yaml:"category"`
	Subcategory string              `yaml:"subcategory"`
	Fields      map[string]string   `yaml:"fields"`
	Photos      []string            `yaml:"photos"`
	Coordinates *domain.Coordinates `yaml:"coordinates"`
}

func loadDraft(path string) (*draftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	var d draftFile
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse draft %s: %w", path, err)
	}
	// Photo paths are relative to the draft file.
	dir := filepath.Dir(path)
	for i, p := range d.Photos {
		if p != "" && !filepath.IsAbs(p) {
			d.Photos[i] = filepath.Join(dir, p)
		}
	}
	return &d, nil
}

// readPhotos loads every photo concurrently. Empty entries stay empty slots.
func readPhotos(ctx context.Context, paths []string) ([]*adform.File, error) {
	files := make([]*adform.File, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, p := range paths {
		i, p := i, p
		if p == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("photo %d: %w", i+1, err)
			}
			files[i] = &adform.File{Name: filepath.Base(p), Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// apply copies the draft into e. Toggle fields go through SetField so an
// option outside the form's choices is reported.
func (d *draftFile) apply(e *adform.Engine) error {
	if d.Category != "" {
		if err := e.ChangeCategory(d.Category, d.Subcategory); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(d.Fields))
	for name := range d.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := e.SetField(name, d.Fields[name]); err != nil {
			return err
		}
	}
	return nil
}
