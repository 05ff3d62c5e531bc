package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"
	"go.uber.org/zap"

	"github.com/shashikant800/Hands-Free-Web/deck"
)

// DefaultPreviewWidth is the PNG width used when none is configured.
const DefaultPreviewWidth = 1280

// RenderPreviews draws every slide of the deck to dir/slide-NN.png and returns
// the written paths in slide order.
func (s *PPTExportService) RenderPreviews(d *deck.Deck, dir string, width int) ([]string, error) {
	if width <= 0 {
		width = DefaultPreviewWidth
	}
	p, err := s.service.BuildPresentation(d)
	if err != nil {
		return nil, WrapError("PPTExport", "render", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, WrapError("PPTExport", "render", fmt.Errorf("failed to create preview directory: %w", err))
	}

	opts := &ppt.RenderOptions{
		Width:  width,
		Format: ppt.ImageFormatPNG,
	}

	paths := make([]string, 0, len(d.Slides))
	for i := range d.Slides {
		img, err := p.SlideToImage(i, opts)
		if err != nil {
			return paths, WrapError("PPTExport", "render", fmt.Errorf("slide %d: %w", i+1, err))
		}

		path := filepath.Join(dir, fmt.Sprintf("slide-%02d.png", i+1))
		if err := writePNG(path, img); err != nil {
			return paths, WrapError("PPTExport", "render", err)
		}
		paths = append(paths, path)
		s.log.Debug("preview rendered", zap.String("path", path))
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
