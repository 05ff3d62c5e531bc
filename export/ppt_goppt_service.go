package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
	"go.uber.org/zap"

	"github.com/shashikant800/Hands-Free-Web/deck"
)

// GoPPTService renders deck descriptors with GoPPT (pure Go)
type GoPPTService struct {
	log *zap.Logger
}

// NewGoPPTService creates a new GoPPT service
func NewGoPPTService(log *zap.Logger) *GoPPTService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GoPPTService{log: log}
}

const (
	emuPerInch = 914400

	// paragraph spacing is stored in hundredths of a point
	hundredthsPerPoint = 100

	// 0.75 pt
	outlineWidthEMU = 9525
)

// emu converts inches to EMU, truncating toward zero.
func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

// helper: create a solid fill
func solidFill(c deck.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// setCanvas resizes the presentation layout to the deck canvas.
func setCanvas(p *ppt.Presentation, width, height float64) {
	p.GetLayout().SetCustomLayout(emu(width), emu(height))
}

// BuildPresentation turns a validated deck into an in-memory GoPPT presentation.
func (s *GoPPTService) BuildPresentation(d *deck.Deck) (*ppt.Presentation, error) {
	if d == nil {
		return nil, fmt.Errorf("nil deck")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Creator
	setCanvas(p, d.Width, d.Height)

	for i, sd := range d.Slides {
		// ppt.New starts with one blank slide
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		for _, e := range sd.Elements {
			switch e.Kind {
			case deck.KindRect:
				s.addRect(slide, e)
			case deck.KindRoundRect:
				s.addRoundRect(slide, e)
			case deck.KindTextBox:
				s.addTextBox(slide, e)
			}
		}
		s.log.Debug("slide built",
			zap.Int("index", i+1),
			zap.String("name", sd.Name),
			zap.Int("elements", len(sd.Elements)))
	}
	return p, nil
}

// addRect draws a filled rectangle as an empty rich text shape, the way the
// dashboard decorative bars are drawn.
func (s *GoPPTService) addRect(slide *ppt.Slide, e deck.Element) {
	rect := slide.CreateRichTextShape()
	rect.SetOffsetX(emu(e.Box.X)).SetOffsetY(emu(e.Box.Y))
	rect.SetWidth(emu(e.Box.W)).SetHeight(emu(e.Box.H))
	rect.SetFill(solidFill(*e.Fill))
	applyLine(&rect.BaseShape, e)
}

// addRoundRect draws a feature-card style rounded rectangle.
func (s *GoPPTService) addRoundRect(slide *ppt.Slide, e deck.Element) {
	card := slide.CreateAutoShape()
	card.SetAutoShapeType(ppt.AutoShapeRoundedRect).SetSolidFill(ppt.NewColor(e.Fill.ARGB()))
	card.SetPosition(emu(e.Box.X), emu(e.Box.Y))
	card.SetSize(emu(e.Box.W), emu(e.Box.H))
	applyLine(&card.BaseShape, e)
}

func applyLine(b *ppt.BaseShape, e deck.Element) {
	switch {
	case e.NoLine:
		b.GetBorder().Style = ppt.BorderNone
	case e.Line != nil:
		b.GetBorder().SetSolidFill(ppt.NewColor(e.Line.ARGB())).SetWidth(outlineWidthEMU)
	}
}

func (s *GoPPTService) addTextBox(slide *ppt.Slide, e deck.Element) {
	box := slide.CreateRichTextShape()
	box.SetOffsetX(emu(e.Box.X)).SetOffsetY(emu(e.Box.Y))
	box.SetWidth(emu(e.Box.W)).SetHeight(emu(e.Box.H))
	box.SetWordWrap(e.WordWrap)

	for i, pd := range e.Paragraphs {
		para := box.GetActiveParagraph()
		if i > 0 {
			para = box.CreateParagraph()
		}
		tr := para.CreateTextRun(pd.Text)
		font := tr.GetFont().SetSize(pd.Size).SetBold(pd.Bold)
		font.Italic = pd.Italic
		if pd.Color != nil {
			font.SetColor(ppt.NewColor(pd.Color.ARGB()))
		}
		if pd.Align == deck.AlignCenter {
			alignCenter(para)
		}
		if pd.SpaceBefore > 0 {
			para.SetSpaceBefore(pd.SpaceBefore * hundredthsPerPoint)
		}
	}
}

// ExportDeckToPPT renders the deck to PowerPoint 2007 (.pptx) bytes.
func (s *GoPPTService) ExportDeckToPPT(d *deck.Deck) ([]byte, error) {
	p, err := s.BuildPresentation(d)
	if err != nil {
		return nil, WrapError("GoPPT", "build", err)
	}

	// Save to buffer
	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, WrapError("GoPPT", "write", fmt.Errorf("failed to create PPT writer: %w", err))
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, WrapError("GoPPT", "write", fmt.Errorf("failed to save PPT: %w", err))
	}

	s.log.Debug("deck encoded", zap.Int("slides", len(d.Slides)), zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
