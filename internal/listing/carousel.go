package listing

import "fmt"

// PlaceholderImage stands in for a listing without photos.
const PlaceholderImage = "/placeholder.svg"

const thumbnailCount = 5

// Carousel is the detail view's image pager. An empty image list behaves as
// a single placeholder.
type Carousel struct {
	images  []string
	current int
}

func NewCarousel(images []string) *Carousel {
	imgs := make([]string, 0, len(images))
	for _, img := range images {
		if img != "" {
			imgs = append(imgs, img)
		}
	}
	if len(imgs) == 0 {
		imgs = append(imgs, PlaceholderImage)
	}
	return &Carousel{images: imgs}
}

func (c *Carousel) Len() int { return len(c.images) }

func (c *Carousel) Index() int { return c.current }

func (c *Carousel) Current() string { return c.images[c.current] }

func (c *Carousel) Next() int {
	c.current = (c.current + 1) % len(c.images)
	return c.current
}

func (c *Carousel) Previous() int {
	c.current = (c.current - 1 + len(c.images)) % len(c.images)
	return c.current
}

// Select jumps to i, clamped to the image range.
func (c *Carousel) Select(i int) int {
	switch {
	case i < 0:
		i = 0
	case i >= len(c.images):
		i = len(c.images) - 1
	}
	c.current = i
	return c.current
}

// Thumbnails are the first five images.
func (c *Carousel) Thumbnails() []string {
	n := len(c.images)
	if n > thumbnailCount {
		n = thumbnailCount
	}
	out := make([]string, n)
	copy(out, c.images[:n])
	return out
}

// Counter is the "i/n" label, 1-based.
func (c *Carousel) Counter() string {
	return fmt.Sprintf("%d/%d", c.current+1, len(c.images))
}
