package graphics

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/rowkit/pkg/errors"
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightLight    FontWeight = 300
	FontWeightRegular  FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightLight:
		return "light"
	case FontWeightRegular:
		return "regular"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// ParseFontWeight maps a weight name to a FontWeight.
func ParseFontWeight(name string) (FontWeight, bool) {
	switch name {
	case "light":
		return FontWeightLight, true
	case "", "regular", "normal":
		return FontWeightRegular, true
	case "medium":
		return FontWeightMedium, true
	case "semibold":
		return FontWeightSemibold, true
	case "bold":
		return FontWeightBold, true
	}
	return 0, false
}

// Font describes a system font by point size and weight.
type Font struct {
	Size   float64
	Weight FontWeight
}

// SystemFont returns the system font at the given size and weight.
func SystemFont(size float64, weight FontWeight) Font {
	return Font{Size: size, Weight: weight}
}

// String returns the font as "17pt regular".
func (f Font) String() string {
	return fmt.Sprintf("%gpt %s", f.Size, f.Weight)
}

// FontManager resolves faces for fonts and measures single-line text.
// Faces are cached by font; all methods are safe for concurrent use.
type FontManager struct {
	mu    sync.Mutex
	fonts map[FontWeight]*opentype.Font
	faces map[Font]font.Face
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager parses the bundled Go fonts.
func NewFontManager() (*FontManager, error) {
	sources := map[FontWeight][]byte{
		FontWeightRegular: goregular.TTF,
		FontWeightMedium:  gomedium.TTF,
		FontWeightBold:    gobold.TTF,
	}
	m := &FontManager{
		fonts: make(map[FontWeight]*opentype.Font, len(sources)),
		faces: make(map[Font]font.Face),
	}
	for weight, data := range sources {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s font: %w", weight, err)
		}
		m.fonts[weight] = f
	}
	return m, nil
}

// DefaultFontManagerErr returns the shared font manager and any error from
// its initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.Error{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns the shared font manager, or nil if the bundled
// fonts could not be loaded.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// Measure returns the single-line size of text set in f.
// Empty text measures as zero.
func (m *FontManager) Measure(text string, f Font) (Size, error) {
	if text == "" {
		return Size{}, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	face, err := m.face(f)
	if err != nil {
		return Size{}, err
	}
	advance := font.MeasureString(face, text)
	return Size{
		Width:  math.Ceil(fixedToFloat(advance)),
		Height: math.Ceil(fixedToFloat(face.Metrics().Height)),
	}, nil
}

func (m *FontManager) face(f Font) (font.Face, error) {
	if face, ok := m.faces[f]; ok {
		return face, nil
	}
	size := f.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := opentype.NewFace(m.fonts[faceWeight(f.Weight)], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %s: %w", f, err)
	}
	m.faces[f] = face
	return face, nil
}

// faceWeight picks the closest bundled face.
func faceWeight(w FontWeight) FontWeight {
	switch {
	case w >= FontWeightSemibold:
		return FontWeightBold
	case w >= FontWeightMedium:
		return FontWeightMedium
	default:
		return FontWeightRegular
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// DefaultFontSize is used when a font has no positive size.
const DefaultFontSize = 17
