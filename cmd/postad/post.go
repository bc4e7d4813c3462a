package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/adform"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/selection"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var noWait bool

var postCmd = &cobra.Command{
	Use:   "post <draft.yaml>",
	Short: "Validate and submit a property ad",
	Args:  cobra.ExactArgs(1),
	RunE:  runPost,
}

func init() {
	postCmd.Flags().BoolVar(&noWait, "no-wait", false, "exit right after submitting instead of waiting for the form to close")
}

func runPost(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	draft, err := loadDraft(args[0])
	if err != nil {
		return err
	}
	if len(draft.Photos) > a.cfg.PhotoSlots {
		return fmt.Errorf("draft has %d photos, form has %d slots", len(draft.Photos), a.cfg.PhotoSlots)
	}

	cfg := adform.Config{
		PhotoSlots:         a.cfg.PhotoSlots,
		GeolocationTimeout: a.cfg.GeolocationTimeout,
		AutoCloseDelay:     a.cfg.AutoCloseDelay,
		Tree:               a.taxonomy.Degraded(ctx),
		OnClose: func(v selection.View) {
			fmt.Fprintf(out, "Form closed, back to %s view.\n", v)
		},
	}
	if c := draft.Coordinates; c != nil {
		coords := *c
		cfg.Locator = adform.LocatorFunc(func(context.Context) (domain.Coordinates, error) {
			return coords, nil
		})
	}

	store := selection.NewStore()
	store.SelectFrom(selection.ViewHome, draft.Category, draft.Subcategory)
	if draft.Category == "" {
		store.Clear()
	}
	engine, err := adform.New(cfg, a.client, store, a.log.Logger)
	if err != nil {
		return err
	}
	defer engine.Wait()

	if err := draft.apply(engine); err != nil {
		engine.Cancel()
		return err
	}
	if badge := engine.Badge(); badge != "" {
		fmt.Fprintln(out, "Category:", badge)
	}

	files, err := readPhotos(ctx, draft.Photos)
	if err != nil {
		engine.Cancel()
		return err
	}
	for slot, f := range files {
		if f == nil {
			continue
		}
		if err := engine.UploadPhoto(slot, *f); err != nil {
			a.log.Warn("Photo rejected", zap.Int("slot", slot), zap.String("file", f.Name), zap.Error(err))
			fmt.Fprintf(out, "Skipping %s: %v\n", f.Name, err)
		}
	}
	engine.Wait()

	if draft.Coordinates != nil {
		st := engine.RequestCurrentLocation(ctx)
		if st.Message != "" {
			fmt.Fprintln(out, st.Message)
		}
	}

	outcome, err := engine.Submit(ctx)
	var missing adform.ValidationErrors
	if errors.As(err, &missing) {
		fmt.Fprintln(out, "The ad is incomplete:")
		for _, m := range missing {
			fmt.Fprintf(out, "  - %s\n", m.Message)
		}
		engine.Cancel()
		return fmt.Errorf("%d required fields missing", len(missing))
	}
	if err != nil {
		engine.Cancel()
		return err
	}

	switch outcome.Status {
	case adform.Succeeded:
		fmt.Fprintln(out, outcome.Message)
		if outcome.Property != nil {
			fmt.Fprintln(out, "Listing id:", outcome.Property.ID)
		}
		if noWait {
			engine.Cancel()
			return nil
		}
		select {
		case <-engine.Done():
		case <-ctx.Done():
			engine.Cancel()
		}
		return nil
	default:
		engine.Cancel()
		return errors.New(outcome.Message)
	}
}
