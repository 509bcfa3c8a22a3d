package models

// ImageRef is a stored image path such as "/src/assets/846_2160.jpg".
// Only its final path segment is meaningful for display.
type ImageRef string

// Collection is an ordered list of images. Order defines navigation and
// thumbnail order.
type Collection []ImageRef

// Len returns the number of images
func (c Collection) Len() int {
	return len(c)
}

// At returns the image at i, or "" when i is out of range
func (c Collection) At(i int) ImageRef {
	if i < 0 || i >= len(c) {
		return ""
	}
	return c[i]
}

// Concat returns a new collection holding c followed by every other collection
func Concat(c Collection, others ...Collection) Collection {
	n := len(c)
	for _, o := range others {
		n += len(o)
	}
	out := make(Collection, 0, n)
	out = append(out, c...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}
