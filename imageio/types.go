package imageio

import (
	"errors"
	"fmt"
)

// Sentinel errors for image I/O.
var (
	// ErrUnsupportedFormat is returned by Encode for an unknown file extension.
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")
	// ErrSizeMismatch is returned when stacked images differ in size.
	ErrSizeMismatch = errors.New("imageio: images differ in size")
	// ErrNoImages is returned by LoadStack and Stack for an empty input.
	ErrNoImages = errors.New("imageio: no images")
)

// ColorMode selects how a decoded image becomes pixel vectors.
type ColorMode int

const (
	// ColorAuto uses Gray for grayscale sources and RGB otherwise.
	ColorAuto ColorMode = iota
	// ColorGray yields one luma channel.
	ColorGray
	// ColorRGB yields three channels.
	ColorRGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorGray:
		return "gray"
	case ColorRGB:
		return "rgb"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode maps "auto", "gray" and "rgb" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "gray":
		return ColorGray, nil
	case "rgb":
		return ColorRGB, nil
	default:
		return 0, fmt.Errorf("imageio: unknown color mode %q", s)
	}
}
