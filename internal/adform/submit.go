package adform

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.uber.org/zap"
)

type Status int

const (
	Idle Status = iota
	InFlight
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

const (
	msgInvalidPrice   = "Price must be a number"
	msgNetworkError   = "Network error. Please try again."
	msgSubmitFailed   = "Failed to submit property"
	msgSubmitAccepted = "Property listed successfully!"
)

// Outcome is the submission state. Message is set for Failed and Succeeded.
type Outcome struct {
	Status   Status
	Message  string
	Property *domain.Property
}

func (e *Engine) Outcome() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outcome
}

// Payload builds the request body for the current draft.
func (e *Engine) Payload() (*contract.PropertyPayload, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.payloadLocked()
}

func (e *Engine) payloadLocked() (*contract.PropertyPayload, error) {
	f := e.fields
	p := &contract.PropertyPayload{
		Type:             f[contract.FieldType],
		BHK:              f[contract.FieldBHK],
		Bathrooms:        f[contract.FieldBathrooms],
		SuperBuiltupArea: f[contract.FieldSuperBuiltupArea],
		CarpetArea:       f[contract.FieldCarpetArea],
		Furnishing:       f[contract.FieldFurnishing],
		ProjectStatus:    f[contract.FieldProjectStatus],
		ListedBy:         f[contract.FieldListedBy],
		Maintenance:      f[contract.FieldMaintenance],
		TotalFloors:      f[contract.FieldTotalFloors],
		FloorNo:          f[contract.FieldFloorNo],
		CarParking:       f[contract.FieldCarParking],
		Facing:           f[contract.FieldFacing],
		ProjectName:      f[contract.FieldProjectName],
		AdTitle:          f[contract.FieldAdTitle],
		Description:      f[contract.FieldDescription],
		State:            f[contract.FieldState],
		Name:             f[contract.FieldName],
		PhoneNumber:      f[contract.FieldPhoneNumber],
		Images:           e.imagesLocked(),
		Category:         e.selection.Category,
		Subcategory:      e.selection.Subcategory,
		Featured:         false,
	}
	if p.State != "" {
		p.Location = p.State + ", India"
	}
	if c := e.location.coordinates; c != nil {
		cp := *c
		p.Coordinates = &cp
	}

	if raw := strings.TrimSpace(f[contract.FieldPrice]); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
		}
		p.Price = &price
	}
	return p, nil
}

// Submit sends the draft. Missing fields are returned together as
// ValidationErrors and leave the outcome as it was. While a submission is in
// flight, or after one succeeded, Submit returns the current outcome without
// sending anything. A failed submission keeps the draft so it can be retried.
func (e *Engine) Submit(ctx context.Context) (Outcome, error) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return Outcome{}, ErrClosed
	}
	if e.outcome.Status == InFlight || e.outcome.Status == Succeeded {
		out := e.outcome
		e.mu.Unlock()
		return out, nil
	}
	if missing := Validate(e.snapshotLocked()); len(missing) > 0 {
		out := e.outcome
		e.mu.Unlock()
		return out, missing
	}

	e.outcome = Outcome{Status: InFlight}
	payload, err := e.payloadLocked()
	if err != nil {
		e.outcome = Outcome{Status: Failed, Message: msgInvalidPrice}
		out := e.outcome
		e.mu.Unlock()
		return out, nil
	}
	e.mu.Unlock()

	start := time.Now()
	resp, err := e.submitter.SubmitProperty(ctx, payload)

	e.mu.Lock()
	defer e.mu.Unlock()
	// A draft cancelled mid-flight still records the result; it just never
	// arms the auto-close.
	switch {
	case err != nil || resp == nil:
		e.outcome = Outcome{Status: Failed, Message: msgNetworkError}
		e.logger.Warn("Submission failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
	case !resp.Success:
		msg := resp.Message
		if msg == "" {
			msg = msgSubmitFailed
		}
		e.outcome = Outcome{Status: Failed, Message: msg}
		e.logger.Warn("Submission rejected", zap.String("message", msg))
	default:
		msg := resp.Message
		if msg == "" {
			msg = msgSubmitAccepted
		}
		e.outcome = Outcome{Status: Succeeded, Message: msg, Property: resp.Property}
		if !e.closed {
			e.closeTimer = time.AfterFunc(e.cfg.AutoCloseDelay, func() { e.close("submitted") })
		}
		e.logger.Info("Property submitted",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("images", len(payload.Images)))
	}
	return e.outcome, nil
}
