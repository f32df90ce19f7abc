package core

// Framebuffer holds linear radiance per pixel in row-major order, top row first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color // Pixels[y*Width + x]
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// At returns the color at pixel (x, y)
func (fb *Framebuffer) At(x, y int) Color {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color at pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c Color) {
	fb.Pixels[y*fb.Width+x] = c
}

// Row returns the slice backing scanline y
func (fb *Framebuffer) Row(y int) []Color {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}
