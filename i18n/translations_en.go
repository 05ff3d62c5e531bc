package i18n

var englishTranslations = map[string]string{
	"deck.creating":       "Creating Nutshell Hackathon Presentation...",
	"deck.saved":          "✅ Presentation saved to: %s",
	"deck.total_slides":   "📊 Total slides: %d",
	"deck.inspect_header": "%s: %d slides",
	"deck.inspect_slide":  "Slide %d (%d shapes)",
	"deck.preview_saved":  "🖼️ Preview written: %s",
	"deck.loaded_custom":  "Using deck descriptor: %s",
}
