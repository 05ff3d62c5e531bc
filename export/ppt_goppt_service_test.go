package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shashikant800/Hands-Free-Web/deck"
)

func expectedTexts(s deck.Slide) []string {
	var out []string
	for _, text := range s.Texts() {
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// TestPPTNutshellExport generates the deck and checks it is a zip package.
func TestPPTNutshellExport(t *testing.T) {
	t.Log("🧪 Exporting Nutshell deck...")

	service := NewPPTExportService(zap.NewNop())
	pptBytes, err := service.ExportDeckToPPT(deck.Nutshell())
	require.NoError(t, err)
	require.NotEmpty(t, pptBytes)
	assert.True(t, bytes.HasPrefix(pptBytes, []byte("PK")), "pptx must be a zip package")

	t.Logf("📊 File size: %d bytes (%.2f KB)", len(pptBytes), float64(len(pptBytes))/1024)
}

func TestSaveDeckReadsBack(t *testing.T) {
	d := deck.Nutshell()
	path := filepath.Join(t.TempDir(), "out", "Nutshell.pptx")

	service := NewPPTExportService(nil)
	require.NoError(t, service.SaveDeck(d, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	summary, err := InspectPPT(path)
	require.NoError(t, err)
	require.Len(t, summary.Slides, 8)

	for i, s := range d.Slides {
		assert.Equal(t, expectedTexts(s), summary.Slides[i].Texts, "slide %d (%s)", i+1, s.Name)
		assert.Equal(t, i+1, summary.Slides[i].Index)
	}

	title := summary.Slides[0].Texts
	assert.Contains(t, title, "Nutshell")
	assert.Contains(t, title, "Hands-free browsing powered by head tracking & Chrome AI")

	features := summary.Slides[3]
	for _, f := range deck.Features {
		assert.Contains(t, features.Texts, f.Title)
		assert.Contains(t, features.Texts, f.Description)
	}
	// header band, header title, then four elements per card
	assert.Equal(t, 2+4*deck.FeatureCardCount, features.Shapes)
}

func packagePart(t *testing.T, pptBytes []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pptBytes), int64(len(pptBytes)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestExportUsesCustomWidescreenLayout(t *testing.T) {
	pptBytes, err := NewPPTExportService(nil).ExportDeckToPPT(deck.Nutshell())
	require.NoError(t, err)

	pres := packagePart(t, pptBytes, "ppt/presentation.xml")
	assert.Contains(t, pres, `cx="12191695"`)
	assert.Contains(t, pres, `cy="6858000"`)
	assert.NotContains(t, pres, "screen4x3")
}

func TestFeatureCardOutlineWidth(t *testing.T) {
	pptBytes, err := NewPPTExportService(nil).ExportDeckToPPT(deck.Nutshell())
	require.NoError(t, err)

	features := packagePart(t, pptBytes, "ppt/slides/slide4.xml")
	assert.GreaterOrEqual(t, strings.Count(features, `<a:ln w="9525"`), deck.FeatureCardCount)
}

func TestExportIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	service := NewPPTExportService(nil)

	var summaries []*DeckSummary
	for _, name := range []string{"a.pptx", "b.pptx"} {
		path := filepath.Join(dir, name)
		require.NoError(t, service.SaveDeck(deck.Nutshell(), path))
		summary, err := InspectPPT(path)
		require.NoError(t, err)
		summary.Path = ""
		summaries = append(summaries, summary)
	}
	assert.Equal(t, summaries[0], summaries[1])
}

func TestExportRejectsInvalidDeck(t *testing.T) {
	d := deck.Nutshell()
	d.Slides[0].Elements[1].Box.X = 20

	_, err := NewPPTExportService(nil).ExportDeckToPPT(d)
	require.Error(t, err)

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "build", se.Operation)
	assert.Contains(t, err.Error(), "outside")
}

func TestSaveDeckWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := NewPPTExportService(nil).SaveDeck(deck.Nutshell(), filepath.Join(blocker, "deck.pptx"))
	require.Error(t, err)

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "PPTExport", se.Service)
	assert.Equal(t, "save", se.Operation)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := InspectPPT(filepath.Join(t.TempDir(), "missing.pptx"))
	require.Error(t, err)

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "inspect", se.Operation)
}

func TestBuildPresentationNilDeck(t *testing.T) {
	_, err := NewGoPPTService(nil).BuildPresentation(nil)
	assert.Error(t, err)
}

func TestEMUConversion(t *testing.T) {
	assert.Equal(t, int64(914400), emu(1))
	assert.Equal(t, int64(12191695), emu(13.333))
	assert.Equal(t, int64(6858000), emu(7.5))
	assert.Equal(t, int64(457200), emu(0.5))
}

func TestRenderPreviews(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "previews")

	paths, err := NewPPTExportService(nil).RenderPreviews(deck.Nutshell(), dir, 320)
	require.NoError(t, err)
	require.Len(t, paths, 8)

	for i, p := range paths {
		assert.Equal(t, filepath.Join(dir, "slide-0"+string(rune('1'+i))+".png"), p)
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), p)
	}
}
