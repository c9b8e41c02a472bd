package graphics

// Image is a decoded bitmap handle. Loading and decoding belong to the host;
// layout only needs the intrinsic size.
type Image struct {
	Name string
	Size Size
}

// NewImage returns an image handle with the given intrinsic size.
func NewImage(name string, width, height float64) *Image {
	return &Image{Name: name, Size: Size{Width: width, Height: height}}
}
