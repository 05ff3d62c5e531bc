package deck

import "fmt"

// Feature is one card on the features slide.
type Feature struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Feature card geometry, in inches.
const (
	cardWidth  = 3.8
	cardHeight = 2.5

	iconOffsetY  = 0.2
	titleOffsetY = 0.85
	descOffsetY  = 1.4
)

var (
	gridColumns = [3]float64{0.5, 4.6, 8.7}
	gridRows    = [2]float64{1.6, 4.4}
)

// FeatureCardCount is the number of cards in the grid.
const FeatureCardCount = len(gridColumns) * len(gridRows)

// FeatureGridOrigins returns the card origins in row-major order: the top row
// left to right, then the bottom row left to right.
func FeatureGridOrigins() [FeatureCardCount][2]float64 {
	var out [FeatureCardCount][2]float64
	for i := range out {
		out[i] = [2]float64{gridColumns[i%len(gridColumns)], gridRows[i/len(gridColumns)]}
	}
	return out
}

// FeatureCardBox returns the rounded-rectangle box for card i.
func FeatureCardBox(i int) Rect {
	o := FeatureGridOrigins()[i]
	return Rect{X: o[0], Y: o[1], W: cardWidth, H: cardHeight}
}

// FeatureCards lays the six features out on the grid. Each card expands into
// four elements: the rounded container, the icon, the bold title and the
// wrapped description.
func FeatureCards(features []Feature) []Element {
	if len(features) != FeatureCardCount {
		panic(fmt.Sprintf("deck: feature grid holds %d cards, got %d", FeatureCardCount, len(features)))
	}

	elements := make([]Element, 0, 4*len(features))
	for i, f := range features {
		card := FeatureCardBox(i)
		x, y := card.X, card.Y

		elements = append(elements,
			Element{
				Kind: KindRoundRect,
				Box:  card,
				Fill: colorRef(LightGray),
				Line: RGB(200, 200, 200),
			},
			Element{
				Kind: KindTextBox,
				Box:  Rect{X: x + 0.1, Y: y + iconOffsetY, W: 3.5, H: 0.6},
				Paragraphs: []Paragraph{
					{Text: f.Icon, Size: 36, Align: AlignCenter},
				},
			},
			Element{
				Kind: KindTextBox,
				Box:  Rect{X: x + 0.1, Y: y + titleOffsetY, W: 3.5, H: 0.5},
				Paragraphs: []Paragraph{
					{Text: f.Title, Size: 18, Bold: true, Color: colorRef(DarkText), Align: AlignCenter},
				},
			},
			Element{
				Kind:     KindTextBox,
				Box:      Rect{X: x + 0.2, Y: y + descOffsetY, W: 3.3, H: 1},
				WordWrap: true,
				Paragraphs: []Paragraph{
					{Text: f.Description, Size: 14, Color: RGB(100, 100, 100), Align: AlignCenter},
				},
			},
		)
	}
	return elements
}
