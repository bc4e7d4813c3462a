package adform

import (
	"strings"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
)

// Snapshot is the part of a draft validation looks at.
type Snapshot struct {
	Fields   map[string]string
	Location LocationMode
}

// Validate lists the missing required fields of s in display order. State is
// not required once a location has been resolved.
func Validate(s Snapshot) ValidationErrors {
	var missing ValidationErrors
	for _, req := range contract.Required {
		if req.StateField && s.Location == ResolvedGeolocation {
			continue
		}
		if strings.TrimSpace(s.Fields[req.Field]) == "" {
			missing = append(missing, MissingFieldError{Field: req.Field, Message: req.Message})
		}
	}
	return missing
}

// Snapshot copies the fields and location mode validation needs.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	fields := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		fields[k] = v
	}
	return Snapshot{Fields: fields, Location: e.locationStatusLocked().Mode}
}

// Validate runs Validate on the current draft.
func (e *Engine) Validate() ValidationErrors {
	return Validate(e.Snapshot())
}
