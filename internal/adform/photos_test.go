package adform

import (
	"errors"
	"strings"
	"testing"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func pngFile(name string) File {
	return File{Name: name, Data: append([]byte{}, pngHeader...)}
}

func TestUploadPhoto_WritesDataURL(t *testing.T) {
	e := newEngine(t, Config{}, nil)

	require.NoError(t, e.UploadPhoto(3, pngFile("front.png")))
	e.Wait()

	slots := e.Photos()
	require.False(t, slots[3].Empty())
	assert.True(t, strings.HasPrefix(slots[3].DataURL, "data:image/png;base64,"))
	assert.Equal(t, "front.png", slots[3].File.Name)
	for i, s := range slots {
		if i != 3 {
			assert.True(t, s.Empty(), "slot %d", i)
		}
	}
}

func TestUploadPhoto_TooLargeLeavesSlotUnchanged(t *testing.T) {
	e := newEngine(t, Config{}, nil)
	require.NoError(t, e.UploadPhoto(0, pngFile("small.png")))
	e.Wait()
	before := e.Photos()[0]

	err := e.UploadPhoto(0, File{Name: "big.jpg", MediaType: "image/jpeg", Data: make([]byte, 6<<20)})
	e.Wait()

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, CodeTooLarge, ve.Code)
	assert.Equal(t, before, e.Photos()[0])
}

func TestUploadPhoto_ExactlyFiveMiBIsAccepted(t *testing.T) {
	e := newEngine(t, Config{}, nil)
	require.NoError(t, e.UploadPhoto(0, File{MediaType: "image/jpeg", Data: make([]byte, MaxPhotoBytes)}))
	e.Wait()
	assert.False(t, e.Photos()[0].Empty())
}

func TestUploadPhoto_RejectsNonImages(t *testing.T) {
	e := newEngine(t, Config{}, nil)

	err := e.UploadPhoto(0, File{Name: "notes.txt", Data: []byte("hello world")})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, CodeUnsupportedType, ve.Code)

	err = e.UploadPhoto(1, File{Name: "clip.mp4", MediaType: "video/mp4", Data: []byte{0}})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, CodeUnsupportedType, ve.Code)

	e.Wait()
	assert.True(t, e.Photos()[0].Empty())
}

func TestUploadPhoto_SlotOutOfRange(t *testing.T) {
	e := newEngine(t, Config{PhotoSlots: 2}, nil)
	assert.ErrorIs(t, e.UploadPhoto(2, pngFile("a.png")), ErrSlotOutOfRange)
	assert.ErrorIs(t, e.UploadPhoto(-1, pngFile("a.png")), ErrSlotOutOfRange)
	assert.ErrorIs(t, e.RemovePhoto(5), ErrSlotOutOfRange)
}

func TestRemovePhoto_StaleDecodeIsDropped(t *testing.T) {
	e := newEngine(t, Config{}, nil)

	require.NoError(t, e.UploadPhoto(4, pngFile("a.png")))
	require.NoError(t, e.RemovePhoto(4))
	e.Wait()

	assert.True(t, e.Photos()[4].Empty())
}

func TestUploadPhoto_LastUploadWins(t *testing.T) {
	e := newEngine(t, Config{}, nil)

	require.NoError(t, e.UploadPhoto(1, pngFile("first.png")))
	require.NoError(t, e.UploadPhoto(1, pngFile("second.png")))
	e.Wait()

	assert.Equal(t, "second.png", e.Photos()[1].File.Name)
}

func TestRemovePhoto_NoShifting(t *testing.T) {
	e := newEngine(t, Config{}, nil)
	for i, name := range []string{"a.png", "b.png", "c.png"} {
		require.NoError(t, e.UploadPhoto(i, pngFile(name)))
	}
	e.Wait()

	require.NoError(t, e.RemovePhoto(1))
	require.NoError(t, e.RemovePhoto(1))

	slots := e.Photos()
	assert.Equal(t, "a.png", slots[0].File.Name)
	assert.True(t, slots[1].Empty())
	assert.Equal(t, "c.png", slots[2].File.Name)

	fillValidDraft(t, e)
	p, err := e.Payload()
	require.NoError(t, err)
	assert.Equal(t, []string{slots[0].DataURL, slots[2].DataURL}, p.Images)
	assert.Equal(t, "Maharashtra", p.Value(contract.FieldState))
}
