package adform

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// MaxPhotoBytes is the largest accepted upload.
const MaxPhotoBytes = 5 << 20

// File is a picked photo.
type File struct {
	Name string
	// MediaType is sniffed from Data when empty.
	MediaType string
	Data      []byte
}

func (f *File) Size() int64 { return int64(len(f.Data)) }

func (f *File) mediaType() string {
	mt := f.MediaType
	if mt == "" {
		mt = http.DetectContentType(f.Data)
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// Slot is one photo position. The zero Slot is empty.
type Slot struct {
	// DataURL is the displayable form sent as an image in the payload.
	DataURL string
	File    *File
}

func (s Slot) Empty() bool { return s.File == nil }

// UploadPhoto checks f and, when accepted, decodes it into slot in the
// background. The slot changes only once the decode finishes; a decode that
// finishes after the slot was cleared or uploaded again is dropped.
func (e *Engine) UploadPhoto(slot int, f File) error {
	mt := f.mediaType()
	if !strings.HasPrefix(mt, "image/") {
		return &ValidationError{Code: CodeUnsupportedType, Slot: slot, Message: "Please select an image file"}
	}
	if f.Size() > MaxPhotoBytes {
		return &ValidationError{Code: CodeTooLarge, Slot: slot, Message: "File size should be less than 5MB"}
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if slot < 0 || slot >= len(e.slots) {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	e.gens[slot]++
	gen := e.gens[slot]
	e.bg.Add(1)
	e.mu.Unlock()

	file := f
	file.MediaType = mt
	go func() {
		defer e.bg.Done()
		url := "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(file.Data)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || e.gens[slot] != gen {
			e.logger.Debug("Dropping stale photo decode", zap.Int("slot", slot), zap.Uint64("generation", gen))
			return
		}
		e.slots[slot] = Slot{DataURL: url, File: &file}
	}()
	return nil
}

// RemovePhoto empties slot. Removing an empty slot is a no-op.
func (e *Engine) RemovePhoto(slot int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if slot < 0 || slot >= len(e.slots) {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	e.gens[slot]++
	e.slots[slot] = Slot{}
	return nil
}

// Photos returns a copy of the slot array.
func (e *Engine) Photos() []Slot {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Slot, len(e.slots))
	copy(out, e.slots)
	return out
}

func (e *Engine) imagesLocked() []string {
	images := []string{}
	for _, s := range e.slots {
		if !s.Empty() {
			images = append(images, s.DataURL)
		}
	}
	return images
}
