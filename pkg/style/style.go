// Package style loads row catalogs from YAML and applies them to rows.
//
// A catalog file lists named rows:
//
//	rows:
//	  - name: account
//	    title: {text: Account, weight: semibold}
//	    subtitle: {text: "**** 4821", color: "#666666"}
//	    left: {image: card, width: 40, height: 40, style: rounded, radius: 8}
//	    right: {image: chevron, width: 12, height: 12}
//	    shows_divider: true
//
// Absent or zero fields keep the row's defaults.
package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the catalog file looked up at a project root.
const DefaultFileName = "rowview.yaml"

var (
	ErrUnknownTextOrder   = errors.New("unknown text order")
	ErrUnknownCornerStyle = errors.New("unknown corner style")
	ErrUnknownFontWeight  = errors.New("unknown font weight")
	ErrInvalidColor       = errors.New("invalid color")
	ErrRowNotFound        = errors.New("row not found")
)

// Catalog is a set of named row documents.
type Catalog struct {
	Rows []Row `yaml:"rows"`
}

// Row describes one row's content and style.
type Row struct {
	Name         string    `yaml:"name"`
	Title        Text      `yaml:"title,omitempty"`
	Subtitle     Text      `yaml:"subtitle,omitempty"`
	TextOrder    string    `yaml:"text_order,omitempty"`
	ShowsDivider bool      `yaml:"shows_divider,omitempty"`
	Spacing      *float64  `yaml:"spacing,omitempty"`
	Insets       *Insets   `yaml:"insets,omitempty"`
	Left         Accessory `yaml:"left,omitempty"`
	Right        Accessory `yaml:"right,omitempty"`
	Loading      bool      `yaml:"loading,omitempty"`
}

// Text styles a label.
type Text struct {
	Text   string  `yaml:"text,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
	Weight string  `yaml:"weight,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

// Insets are the content insets of a row.
type Insets struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

// Accessory describes an icon slot. Width and Height size the image view;
// Style and Radius only apply to the left slot.
type Accessory struct {
	Image  string  `yaml:"image,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Style  string  `yaml:"style,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
}

// Parse decodes and validates a catalog. Unknown keys are rejected. An
// empty document is an empty catalog.
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse row catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the catalog at path.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("row catalog %s not found: %w", path, err)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("row catalog path %s is a directory", path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("unable to read row catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ToFile writes the catalog as YAML.
func (c *Catalog) ToFile(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0o644)
}

// Validate checks every row and reports all problems found.
func (c *Catalog) Validate() error {
	var errs []error
	for i, r := range c.Rows {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("row %d (%s): %w", i, r.Name, err))
		}
	}
	dupes := lo.FindDuplicates(lo.Map(c.Rows, func(r Row, _ int) string { return r.Name }))
	for _, name := range dupes {
		errs = append(errs, fmt.Errorf("duplicate row name %q", name))
	}
	return errors.Join(errs...)
}

// Find returns the row named name.
func (c *Catalog) Find(name string) (Row, error) {
	r, ok := lo.Find(c.Rows, func(r Row) bool { return r.Name == name })
	if !ok {
		return Row{}, fmt.Errorf("%w: %q", ErrRowNotFound, name)
	}
	return r, nil
}

// Names returns the row names in file order.
func (c *Catalog) Names() []string {
	return lo.Map(c.Rows, func(r Row, _ int) string { return r.Name })
}
