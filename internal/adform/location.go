package adform

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.uber.org/zap"
)

// Locator reports the device position.
type Locator interface {
	CurrentPosition(ctx context.Context) (domain.Coordinates, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (domain.Coordinates, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context) (domain.Coordinates, error) {
	return f(ctx)
}

type LocationMode int

const (
	ListMode LocationMode = iota
	AttemptingGeolocation
	ResolvedGeolocation
	// ListModeWithoutState is accepted in a validation Snapshot and treated as
	// ListMode. The engine never enters it; LocationStatus.StateChosen
	// carries whether a state has been picked.
	ListModeWithoutState
)

func (m LocationMode) String() string {
	switch m {
	case ListMode:
		return "list"
	case AttemptingGeolocation:
		return "attempting-geolocation"
	case ResolvedGeolocation:
		return "resolved-geolocation"
	case ListModeWithoutState:
		return "list-without-state"
	}
	return fmt.Sprintf("LocationMode(%d)", int(m))
}

// Cause says why the last geolocation attempt fell back to the list.
type Cause int

const (
	CauseNone Cause = iota
	CausePermissionDenied
	CauseUnavailable
	CauseTimeout
	CauseUnknown
	CauseUnsupported
)

const locationErrorPrefix = "Unable to get your current location. "

// Message is the text shown to the user for c.
func (c Cause) Message() string {
	switch c {
	case CausePermissionDenied:
		return locationErrorPrefix + "Please allow location access in your browser settings and try again."
	case CauseUnavailable:
		return locationErrorPrefix + "Location information is unavailable. Please select from the list."
	case CauseTimeout:
		return locationErrorPrefix + "Location request timed out. Please try again or select from the list."
	case CauseUnknown:
		return locationErrorPrefix + "An unknown error occurred. Please select from the list."
	case CauseUnsupported:
		return "Geolocation is not supported by this browser. Please select a state from the list."
	}
	return ""
}

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CausePermissionDenied:
		return "permission-denied"
	case CauseUnavailable:
		return "unavailable"
	case CauseTimeout:
		return "timeout"
	case CauseUnknown:
		return "unknown"
	case CauseUnsupported:
		return "unsupported"
	}
	return fmt.Sprintf("Cause(%d)", int(c))
}

// LocatorError lets a Locator say why it failed. Other errors count as
// CauseUnknown, deadline errors as CauseTimeout.
type LocatorError struct {
	Cause Cause
	Err   error
}

func (e *LocatorError) Error() string {
	if e.Err != nil {
		return e.Cause.String() + ": " + e.Err.Error()
	}
	return e.Cause.String()
}

func (e *LocatorError) Unwrap() error { return e.Err }

func causeOf(err error) Cause {
	var le *LocatorError
	switch {
	case errors.As(err, &le):
		return le.Cause
	case errors.Is(err, context.DeadlineExceeded):
		return CauseTimeout
	}
	return CauseUnknown
}

type locationState struct {
	mode        LocationMode
	coordinates *domain.Coordinates
	cause       Cause
}

// LocationStatus is what the location section renders.
type LocationStatus struct {
	Mode LocationMode
	// Coordinates survive a switch back to the list.
	Coordinates *domain.Coordinates
	Cause       Cause
	Message     string
	StateChosen bool
}

// LocationState reports the current location mode.
func (e *Engine) LocationState() LocationStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locationStatusLocked()
}

func (e *Engine) locationStatusLocked() LocationStatus {
	st := LocationStatus{
		Mode:        e.location.mode,
		Cause:       e.location.cause,
		Message:     e.location.cause.Message(),
		StateChosen: e.fields[contract.FieldState] != "",
	}
	if c := e.location.coordinates; c != nil {
		cp := *c
		st.Coordinates = &cp
	}
	return st
}

// RequestCurrentLocation asks the Locator for a position, waiting at most the
// configured geolocation timeout. Success moves to ResolvedGeolocation; any
// failure returns to ListMode with a cause. A call made while an attempt is
// running returns the current status without starting another.
func (e *Engine) RequestCurrentLocation(ctx context.Context) LocationStatus {
	e.mu.Lock()
	if e.closed || e.location.mode == AttemptingGeolocation {
		st := e.locationStatusLocked()
		e.mu.Unlock()
		return st
	}
	if e.cfg.Locator == nil {
		e.location.mode = ListMode
		e.location.cause = CauseUnsupported
		st := e.locationStatusLocked()
		e.mu.Unlock()
		return st
	}
	e.location.mode = AttemptingGeolocation
	e.location.cause = CauseNone
	e.bg.Add(1)
	e.mu.Unlock()

	type result struct {
		coords domain.Coordinates
		err    error
	}
	ctx, cancel := context.WithTimeout(ctx, e.cfg.GeolocationTimeout)
	defer cancel()

	// Buffered so a Locator that ignores ctx can finish after we gave up.
	ch := make(chan result, 1)
	go func() {
		defer e.bg.Done()
		c, err := e.cfg.Locator.CurrentPosition(ctx)
		ch <- result{coords: c, err: err}
	}()

	var res result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return e.locationStatusLocked()
	}
	if res.err != nil {
		e.location.mode = ListMode
		e.location.cause = causeOf(res.err)
		e.logger.Info("Geolocation failed",
			zap.Stringer("cause", e.location.cause), zap.Error(res.err))
		return e.locationStatusLocked()
	}
	coords := res.coords
	e.location = locationState{mode: ResolvedGeolocation, coordinates: &coords}
	e.logger.Debug("Geolocation resolved",
		zap.Float64("latitude", coords.Latitude), zap.Float64("longitude", coords.Longitude))
	return e.locationStatusLocked()
}

// OpenListTab switches from a resolved location back to the state list. The
// resolved coordinates are kept.
func (e *Engine) OpenListTab() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.location.mode == ResolvedGeolocation {
		e.location.mode = ListMode
	}
}
