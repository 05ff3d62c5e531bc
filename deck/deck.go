package deck

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// boundsEpsilon absorbs float rounding on literal inch coordinates.
const boundsEpsilon = 1e-6

// Color is a 24-bit RGB color.
type Color struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}

// RGB returns a pointer to a color, convenient for optional fields.
func RGB(r, g, b uint8) *Color {
	return &Color{R: r, G: g, B: b}
}

// Hex returns the color as RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the color as an opaque AARRGGBB string.
func (c Color) ARGB() string {
	return "FF" + c.Hex()
}

// ElementKind identifies what an element draws.
type ElementKind string

const (
	KindRect      ElementKind = "rect"
	KindRoundRect ElementKind = "roundRect"
	KindTextBox   ElementKind = "textbox"
)

// Align is the horizontal paragraph alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Rect is a box on the canvas, in inches.
type Rect struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	W float64 `yaml:"w" json:"w"`
	H float64 `yaml:"h" json:"h"`
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether the interiors of r and o intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X-boundsEpsilon && o.Y >= r.Y-boundsEpsilon &&
		o.Right() <= r.Right()+boundsEpsilon && o.Bottom() <= r.Bottom()+boundsEpsilon
}

// Paragraph is one line of text inside a text box.
type Paragraph struct {
	Text        string `yaml:"text" json:"text"`
	Size        int    `yaml:"size" json:"size"` // points
	Bold        bool   `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty" json:"italic,omitempty"`
	Color       *Color `yaml:"color,omitempty" json:"color,omitempty"` // nil keeps the theme color
	Align       Align  `yaml:"align,omitempty" json:"align,omitempty"`
	SpaceBefore int    `yaml:"space_before,omitempty" json:"space_before,omitempty"` // points
}

// Element is a shape or text box placed on a slide.
type Element struct {
	Kind       ElementKind `yaml:"kind" json:"kind"`
	Box        Rect        `yaml:"box" json:"box"`
	Fill       *Color      `yaml:"fill,omitempty" json:"fill,omitempty"`
	Line       *Color      `yaml:"line,omitempty" json:"line,omitempty"`
	NoLine     bool        `yaml:"no_line,omitempty" json:"no_line,omitempty"`
	WordWrap   bool        `yaml:"word_wrap,omitempty" json:"word_wrap,omitempty"`
	Paragraphs []Paragraph `yaml:"paragraphs,omitempty" json:"paragraphs,omitempty"`
}

// Slide is the static description of one slide, drawn in element order.
type Slide struct {
	Name     string    `yaml:"name" json:"name"`
	Elements []Element `yaml:"elements" json:"elements"`
}

// Texts returns every paragraph string on the slide in drawing order.
func (s Slide) Texts() []string {
	var out []string
	for _, e := range s.Elements {
		for _, p := range e.Paragraphs {
			out = append(out, p.Text)
		}
	}
	return out
}

// TextBoxes returns the text box elements of the slide.
func (s Slide) TextBoxes() []Element {
	var out []Element
	for _, e := range s.Elements {
		if e.Kind == KindTextBox {
			out = append(out, e)
		}
	}
	return out
}

// Shapes returns the elements of the given kind.
func (s Slide) Shapes(kind ElementKind) []Element {
	var out []Element
	for _, e := range s.Elements {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Deck is the whole presentation: canvas size plus ordered slides.
type Deck struct {
	Title   string  `yaml:"title" json:"title"`
	Creator string  `yaml:"creator,omitempty" json:"creator,omitempty"`
	Width   float64 `yaml:"width" json:"width"`   // inches
	Height  float64 `yaml:"height" json:"height"` // inches
	Slides  []Slide `yaml:"slides" json:"slides"`
}

// Canvas returns the slide area as a Rect anchored at the origin.
func (d *Deck) Canvas() Rect {
	return Rect{W: d.Width, H: d.Height}
}

// SlideNames returns the slide names in order.
func (d *Deck) SlideNames() []string {
	names := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		names[i] = s.Name
	}
	return names
}

// Slide returns the slide with the given name.
func (d *Deck) Slide(name string) (Slide, bool) {
	for _, s := range d.Slides {
		if s.Name == name {
			return s, true
		}
	}
	return Slide{}, false
}

// MaxCanvasInches is the largest slide edge PowerPoint accepts.
const MaxCanvasInches = 56

var (
	ErrEmptyCanvas    = errors.New("canvas has no area")
	ErrCanvasTooLarge = errors.New("canvas exceeds 56 inches")
	ErrNoSlides       = errors.New("deck has no slides")
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks that the deck can be rendered: a real canvas, at least one
// slide, known element kinds, text boxes with text, and everything on canvas.
func (d *Deck) Validate() error {
	if !finite(d.Width, d.Height) || d.Width <= 0 || d.Height <= 0 {
		return ErrEmptyCanvas
	}
	if d.Width > MaxCanvasInches || d.Height > MaxCanvasInches {
		return fmt.Errorf("%w: %.3fx%.3f", ErrCanvasTooLarge, d.Width, d.Height)
	}
	if len(d.Slides) == 0 {
		return ErrNoSlides
	}
	canvas := d.Canvas()
	for i, s := range d.Slides {
		if s.Name == "" {
			return fmt.Errorf("slide %d: missing name", i+1)
		}
		for j, e := range s.Elements {
			switch e.Kind {
			case KindRect, KindRoundRect:
				if e.Fill == nil {
					return fmt.Errorf("slide %q element %d: %s without fill", s.Name, j, e.Kind)
				}
			case KindTextBox:
				if len(e.Paragraphs) == 0 {
					return fmt.Errorf("slide %q element %d: text box without paragraphs", s.Name, j)
				}
				if e.Fill != nil {
					return fmt.Errorf("slide %q element %d: text box with fill", s.Name, j)
				}
				for _, p := range e.Paragraphs {
					if p.Size <= 0 {
						return fmt.Errorf("slide %q element %d: font size %d", s.Name, j, p.Size)
					}
					switch p.Align {
					case "", AlignLeft, AlignCenter:
					default:
						return fmt.Errorf("slide %q element %d: unknown align %q", s.Name, j, p.Align)
					}
				}
			default:
				return fmt.Errorf("slide %q element %d: unknown kind %q", s.Name, j, e.Kind)
			}
			if !finite(e.Box.X, e.Box.Y, e.Box.W, e.Box.H) {
				return fmt.Errorf("slide %q element %d: box %+v not finite", s.Name, j, e.Box)
			}
			if e.Box.W <= 0 || e.Box.H <= 0 {
				return fmt.Errorf("slide %q element %d: empty box", s.Name, j)
			}
			if !canvas.Contains(e.Box) {
				return fmt.Errorf("slide %q element %d: box %+v outside %.3fx%.3f canvas",
					s.Name, j, e.Box, d.Width, d.Height)
			}
		}
	}
	return nil
}

// CheckOrder verifies that the deck carries exactly the named slides, in order.
func (d *Deck) CheckOrder(order []string) error {
	got := d.SlideNames()
	if len(got) != len(order) {
		return fmt.Errorf("expected %d slides, got %d", len(order), len(got))
	}
	for i := range order {
		if got[i] != order[i] {
			return fmt.Errorf("slide %d: expected %q, got %q (order %s)",
				i+1, order[i], got[i], strings.Join(got, ","))
		}
	}
	return nil
}
