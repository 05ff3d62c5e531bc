package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/shashikant800/Hands-Free-Web/deck"
)

// PPTExportService handles PowerPoint generation using GoPPT (pure Go)
type PPTExportService struct {
	service *GoPPTService
	log     *zap.Logger
}

// NewPPTExportService creates a new PPT export service
func NewPPTExportService(log *zap.Logger) *PPTExportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PPTExportService{
		service: NewGoPPTService(log),
		log:     log,
	}
}

// ExportDeckToPPT renders the deck to PowerPoint format
func (s *PPTExportService) ExportDeckToPPT(d *deck.Deck) ([]byte, error) {
	return s.service.ExportDeckToPPT(d)
}

// SaveDeck renders the deck and writes it to path, creating the parent
// directory when needed. Nothing is cleaned up on failure.
func (s *PPTExportService) SaveDeck(d *deck.Deck, path string) error {
	pptBytes, err := s.ExportDeckToPPT(d)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return WrapError("PPTExport", "save", fmt.Errorf("failed to create output directory: %w", err))
		}
	}
	if err := os.WriteFile(path, pptBytes, 0644); err != nil {
		return WrapError("PPTExport", "save", fmt.Errorf("failed to write PPT file: %w", err))
	}

	s.log.Info("PPT exported", zap.String("path", path), zap.Int("slides", len(d.Slides)), zap.Int("bytes", len(pptBytes)))
	return nil
}
