package adform

import (
	"fmt"
	"unicode/utf8"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
)

const (
	DefaultContactName = "OLX User"
	MaxAdTitleLength   = 70
	MaxDescription     = 4096
)

// ToggleOptions lists the choices of each click-to-set, click-to-unset field.
var ToggleOptions = map[string][]string{
	contract.FieldType:          {"Flats / Apartments", "Independent / Builder Floors", "Farm House", "House & Villas"},
	contract.FieldBHK:           {"1", "2", "3", "4", "4+"},
	contract.FieldBathrooms:     {"1", "2", "3", "4", "4+"},
	contract.FieldFurnishing:    {"Furnished", "Semi Furnished", "Unfurnished"},
	contract.FieldProjectStatus: {"New Launch", "Ready to Move", "Under Construction"},
	contract.FieldListedBy:      {"Builder", "Dealer", "Owner"},
	contract.FieldCarParking:    {"0", "1", "2", "3", "3+"},
}

// TextFields are set with SetField. Order matches the form.
var TextFields = []string{
	contract.FieldSuperBuiltupArea,
	contract.FieldCarpetArea,
	contract.FieldMaintenance,
	contract.FieldTotalFloors,
	contract.FieldFloorNo,
	contract.FieldFacing,
	contract.FieldProjectName,
	contract.FieldAdTitle,
	contract.FieldDescription,
	contract.FieldPrice,
	contract.FieldState,
	contract.FieldName,
	contract.FieldPhoneNumber,
}

// FacingOptions are the suggestions offered for the facing field.
var FacingOptions = []string{"North", "East", "South", "West", "North-East", "North-West", "South-East", "South-West"}

var maxLengths = map[string]int{
	contract.FieldAdTitle:     MaxAdTitleLength,
	contract.FieldDescription: MaxDescription,
}

func isToggle(name string) bool {
	_, ok := ToggleOptions[name]
	return ok
}

func isText(name string) bool {
	for _, f := range TextFields {
		if f == name {
			return true
		}
	}
	return false
}

func offers(name, option string) bool {
	for _, o := range ToggleOptions[name] {
		if o == option {
			return true
		}
	}
	return false
}

func newDraft() map[string]string {
	d := make(map[string]string, len(ToggleOptions)+len(TextFields))
	for f := range ToggleOptions {
		d[f] = ""
	}
	for _, f := range TextFields {
		d[f] = ""
	}
	d[contract.FieldName] = DefaultContactName
	return d
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// SetField overwrites a field. Toggle fields accept only one of their options
// or "". Ad title and description are cut to their maximum length.
func (e *Engine) SetField(name, value string) error {
	switch {
	case isToggle(name):
		if value != "" && !offers(name, value) {
			return fmt.Errorf("%w: %s=%q", ErrUnknownOption, name, value)
		}
	case isText(name):
		if limit, ok := maxLengths[name]; ok {
			value = truncateRunes(value, limit)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.fields[name] = value
	return nil
}

// ToggleSelection sets a toggle field to option, or clears it when option is
// already the current value.
func (e *Engine) ToggleSelection(name, option string) error {
	if !isToggle(name) {
		if isText(name) {
			return fmt.Errorf("%w: %s", ErrNotToggleField, name)
		}
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if !offers(name, option) {
		return fmt.Errorf("%w: %s=%q", ErrUnknownOption, name, option)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.fields[name] == option {
		e.fields[name] = ""
	} else {
		e.fields[name] = option
	}
	return nil
}

// Field returns the current value of name, "" for unknown names.
func (e *Engine) Field(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fields[name]
}

// Fields returns a copy of the draft.
func (e *Engine) Fields() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}
