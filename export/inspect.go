package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideSummary is the text content read back from one slide.
type SlideSummary struct {
	Index      int      `json:"index" yaml:"index"`
	Texts      []string `json:"texts" yaml:"texts"`
	Shapes     int      `json:"shapes" yaml:"shapes"`
	RoundRects int      `json:"round_rects" yaml:"round_rects"`
}

// DeckSummary is what InspectPPT finds in a .pptx file.
type DeckSummary struct {
	Path   string         `json:"path" yaml:"path"`
	Slides []SlideSummary `json:"slides" yaml:"slides"`
}

// InspectPPT reads a PPTX file and lists the non-empty paragraphs of every slide
func InspectPPT(filePath string) (*DeckSummary, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(filePath)
	if err != nil {
		return nil, WrapError("PPTExport", "inspect", fmt.Errorf("failed to open PPT file: %w", err))
	}

	slides := pres.GetAllSlides()
	if len(slides) == 0 {
		return nil, WrapError("PPTExport", "inspect", fmt.Errorf("PPT file has no slides"))
	}

	summary := &DeckSummary{Path: filePath}
	for i, slide := range slides {
		ss := SlideSummary{Index: i + 1}
		for _, shape := range slide.GetShapes() {
			ss.Shapes++
			switch sh := shape.(type) {
			case *ppt.RichTextShape:
				ss.Texts = append(ss.Texts, paragraphTexts(sh.GetParagraphs())...)
			case *ppt.AutoShape:
				if sh.GetAutoShapeType() == ppt.AutoShapeRoundedRect {
					ss.RoundRects++
				}
				ss.Texts = append(ss.Texts, paragraphTexts(sh.GetParagraphs())...)
			}
		}
		summary.Slides = append(summary.Slides, ss)
	}
	return summary, nil
}

func paragraphTexts(paras []*ppt.Paragraph) []string {
	var out []string
	for _, para := range paras {
		var text string
		for _, elem := range para.GetElements() {
			if run, ok := elem.(*ppt.TextRun); ok {
				text += run.GetText()
			}
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, text)
	}
	return out
}
