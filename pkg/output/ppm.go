package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// WritePPM writes the framebuffer as a plain-text (P3) PPM image, one pixel per line, top row first
func WritePPM(w io.Writer, fb *core.Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	for _, p := range fb.Pixels {
		r, g, b := ToRGB8(p)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("write ppm pixel: %w", err)
		}
	}

	return bw.Flush()
}
