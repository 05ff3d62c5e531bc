package deck

// Palette.
var (
	Primary   = Color{139, 69, 19}   // brown
	Accent    = Color{245, 166, 35}  // orange/gold
	DarkBG    = Color{30, 30, 30}
	White     = Color{255, 255, 255}
	LightGray = Color{240, 240, 240}
	DarkText  = Color{50, 50, 50}

	solutionGreen = Color{34, 139, 34}
	featuresBlue  = Color{70, 130, 180}
	techIndigo    = Color{75, 0, 130}
	archCrimson   = Color{220, 20, 60}
	innovOrange   = Color{255, 140, 0}
)

// Widescreen 16:9 canvas, inches.
const (
	CanvasWidth  = 13.333
	CanvasHeight = 7.5

	headerHeight = 1.3
)

// Slide names, in deck order.
const (
	SlideTitle        = "title"
	SlideProblem      = "problem"
	SlideSolution     = "solution"
	SlideFeatures     = "features"
	SlideTechStack    = "tech-stack"
	SlideArchitecture = "architecture"
	SlideInnovation   = "innovation"
	SlideThankYou     = "thank-you"
)

// SlideOrder is the fixed order of the Nutshell deck.
var SlideOrder = []string{
	SlideTitle, SlideProblem, SlideSolution, SlideFeatures,
	SlideTechStack, SlideArchitecture, SlideInnovation, SlideThankYou,
}

// Title slide strings.
const (
	DeckTitle    = "Nutshell"
	DeckSubtitle = "Hands-free browsing powered by head tracking & Chrome AI"
)

// Features is the feature grid content, row-major.
var Features = []Feature{
	{"👄", "Mouth-Open Click", "Calibrated to your facial structure with 800ms cooldown"},
	{"🎯", "Magnetic Snapping", "45px radius auto-targeting of clickable elements"},
	{"📺", "YouTube Support", "Caption extraction & video summarization"},
	{"⚡", "Real-time Streaming", "AI responses stream character by character"},
	{"📷", "Webcam-Based", "Works with any standard camera"},
	{"🔒", "Privacy-First", "100% local processing, zero data sent externally"},
}

func colorRef(c Color) *Color { return &c }

// Nutshell returns the eight-slide Nutshell pitch deck. Every call builds a
// fresh deck from the literal tables below.
func Nutshell() *Deck {
	return &Deck{
		Title:   "Nutshell - HackJNU 4.0",
		Creator: "Team Nutshell",
		Width:   CanvasWidth,
		Height:  CanvasHeight,
		Slides: []Slide{
			titleSlide(DeckTitle, DeckSubtitle),
			problemSlide(),
			solutionSlide(),
			featuresSlide(),
			techStackSlide(),
			architectureSlide(),
			innovationSlide(),
			thankYouSlide(),
		},
	}
}

func background(fill Color) Element {
	return Element{
		Kind:   KindRect,
		Box:    Rect{W: CanvasWidth, H: CanvasHeight},
		Fill:   colorRef(fill),
		NoLine: true,
	}
}

// header draws the colored band and the white title used by content slides.
func header(fill Color, title string) []Element {
	return []Element{
		{
			Kind:   KindRect,
			Box:    Rect{W: CanvasWidth, H: headerHeight},
			Fill:   colorRef(fill),
			NoLine: true,
		},
		textBox(Rect{X: 0.5, Y: 0.35, W: 12, H: 0.8}, false,
			Paragraph{Text: title, Size: 40, Bold: true, Color: colorRef(White)}),
	}
}

func textBox(box Rect, wrap bool, paragraphs ...Paragraph) Element {
	return Element{Kind: KindTextBox, Box: box, WordWrap: wrap, Paragraphs: paragraphs}
}

func centered(text string, size int, color *Color) Paragraph {
	return Paragraph{Text: text, Size: size, Color: color, Align: AlignCenter}
}

// column is a wrapped text box with a bold heading followed by list items.
func column(box Rect, heading string, headingSize int, headingColor Color,
	bullet string, items []string, itemSize, spaceBefore int) Element {
	paragraphs := []Paragraph{
		{Text: heading, Size: headingSize, Bold: true, Color: colorRef(headingColor)},
	}
	for _, item := range items {
		paragraphs = append(paragraphs, Paragraph{
			Text:        bullet + item,
			Size:        itemSize,
			Color:       colorRef(DarkText),
			SpaceBefore: spaceBefore,
		})
	}
	return textBox(box, true, paragraphs...)
}

func titleSlide(title, subtitle string) Slide {
	return Slide{
		Name: SlideTitle,
		Elements: []Element{
			background(DarkBG),
			textBox(Rect{X: 5.5, Y: 1.5, W: 2.5, H: 1.5}, false, centered("🥜", 120, nil)),
			textBox(Rect{X: 1, Y: 3.2, W: 11.333, H: 1.2}, false,
				Paragraph{Text: title, Size: 60, Bold: true, Color: colorRef(White), Align: AlignCenter}),
			textBox(Rect{X: 1, Y: 4.4, W: 11.333, H: 0.8}, false, centered(subtitle, 28, colorRef(Accent))),
			textBox(Rect{X: 1, Y: 5.8, W: 11.333, H: 0.6}, false,
				centered("HackJNU 4.0 | Team Nutshell", 20, RGB(180, 180, 180))),
		},
	}
}

func problemSlide() Slide {
	problems := []struct{ title, desc string }{
		{"♿ Accessibility Gap", "Millions with mobility impairments (ALS, cerebral palsy, RSI) cannot use traditional mouse/keyboard"},
		{"💰 Cost Barrier", "Eye-gaze systems cost $10,000+ requiring specialized hardware"},
		{"🔒 Privacy Concerns", "Existing solutions send data to cloud servers"},
		{"🌐 Browser Limitations", "Most assistive tools don't work within web browsers"},
		{"📚 Information Overload", "Clicking countless links just to preview content creates friction"},
	}

	elements := header(Primary, "🔴 The Problem")
	for i, p := range problems {
		y := 1.6 + float64(i)*1.1
		elements = append(elements, textBox(Rect{X: 0.8, Y: y, W: 11.5, H: 1}, true,
			Paragraph{Text: p.title, Size: 22, Bold: true, Color: colorRef(Primary)},
			Paragraph{Text: p.desc, Size: 18, Color: colorRef(DarkText)},
		))
	}
	return Slide{Name: SlideProblem, Elements: elements}
}

func solutionSlide() Slide {
	elements := header(solutionGreen, "💡 Our Solution: Nutshell")
	elements = append(elements,
		textBox(Rect{X: 0.5, Y: 1.6, W: 12, H: 0.5}, false, Paragraph{
			Text:   "Hands-free browsing powered by head tracking and Chrome Built-in AI",
			Size:   24,
			Italic: true,
			Color:  colorRef(DarkText),
			Align:  AlignCenter,
		}),
		column(Rect{X: 0.5, Y: 2.4, W: 5.8, H: 4.5}, "🎯 Head Tracking Control", 26, Primary, "• ", []string{
			"Move cursor with head movements",
			"Open mouth to click",
			"Dwell-to-click (hover activation)",
			"Auto-scroll zones (top/bottom)",
			"Browser navigation zones",
		}, 18, 8),
		column(Rect{X: 6.8, Y: 2.4, W: 5.8, H: 4.5}, "🤖 AI-Powered Summaries", 26, Primary, "• ", []string{
			"Hover over links for instant previews",
			"On-device AI (Gemini Nano)",
			"YouTube video summarization",
			"Web article key-points",
			"100% private - no cloud needed",
		}, 18, 8),
	)
	return Slide{Name: SlideSolution, Elements: elements}
}

func featuresSlide() Slide {
	elements := header(featuresBlue, "✨ Key Features")
	elements = append(elements, FeatureCards(Features)...)
	return Slide{Name: SlideFeatures, Elements: elements}
}

func techStackSlide() Slide {
	categories := []struct {
		title string
		items []string
	}{
		{"🎥 Computer Vision", []string{
			"Human.js - 468-point facial landmark detection",
			"One-Euro Filter - Jitter-free cursor movement",
			"WebGL - GPU-accelerated processing",
		}},
		{"🤖 AI Integration", []string{
			"Chrome Summarizer API - Key-point extraction",
			"Chrome Prompt API - Custom prompting",
			"Gemini Nano - On-device language model",
		}},
		{"🌐 Browser Integration", []string{
			"Manifest V3 - Modern extension architecture",
			"Side Panel API - Control interface",
			"Readability.js - Content extraction",
		}},
	}

	elements := header(techIndigo, "🛠️ Technology Stack")
	for i, c := range categories {
		x := 0.5 + float64(i)*4.2
		elements = append(elements,
			column(Rect{X: x, Y: 1.6, W: 4, H: 5}, c.title, 22, techIndigo, "• ", c.items, 15, 10))
	}
	elements = append(elements, textBox(Rect{X: 0.5, Y: 6, W: 12, H: 0.8}, false,
		centered("⚡ Lightweight Chrome Extension (~2MB) | Works offline after model download", 20, colorRef(Accent))))
	return Slide{Name: SlideTechStack, Elements: elements}
}

func architectureSlide() Slide {
	pipelines := []struct {
		y           float64
		title, flow string
	}{
		{1.6, "🎯 Head Tracking Pipeline",
			"Webcam → Face Detection → 468 Landmarks → Head Pose → One-Euro Filter → Screen Coords → Dwell → Action"},
		{3.5, "🤖 AI Summary Pipeline",
			"Link Hover (600ms) → Fetch HTML → Readability.js → Chrome AI API → Gemini Nano → Streaming Response → Tooltip"},
		{5.3, "📺 YouTube Special Pipeline",
			"Page Load → XHR Interceptor → Capture Captions → Parse Text → Combine with Description → Custom Prompt → Summary"},
	}

	elements := header(archCrimson, "⚙️ How It Works")
	for _, p := range pipelines {
		elements = append(elements, textBox(Rect{X: 0.5, Y: p.y, W: 12.5, H: 1.8}, true,
			Paragraph{Text: p.title, Size: 22, Bold: true, Color: colorRef(Primary)},
			Paragraph{Text: p.flow, Size: 16, Color: colorRef(DarkText), SpaceBefore: 8},
		))
	}
	return Slide{Name: SlideArchitecture, Elements: elements}
}

func innovationSlide() Slide {
	elements := header(innovOrange, "🚀 Innovation & Impact")
	elements = append(elements,
		column(Rect{X: 0.5, Y: 1.6, W: 6, H: 5}, "💡 What Makes It Innovative", 24, innovOrange, "✓ ", []string{
			"First to combine head tracking + on-device AI",
			"Zero cost ($0) vs. $10,000+ alternatives",
			"100% privacy - all processing is local",
			"Works with any standard webcam",
			"No specialized hardware required",
			"Instant responses - no network latency",
		}, 17, 10),
		column(Rect{X: 6.8, Y: 1.6, W: 6, H: 5}, "🌍 Real-World Impact", 24, innovOrange, "• ", []string{
			"Accessibility for mobility impairments",
			"RSI prevention & management",
			"Temporary disability support",
			"Hands-free research & productivity",
			"Democratizes assistive technology",
			"Works offline after initial setup",
		}, 17, 10),
	)
	return Slide{Name: SlideInnovation, Elements: elements}
}

func thankYouSlide() Slide {
	return Slide{
		Name: SlideThankYou,
		Elements: []Element{
			background(DarkBG),
			textBox(Rect{X: 5.5, Y: 1.2, W: 2.5, H: 1.2}, false, centered("🥜", 80, nil)),
			textBox(Rect{X: 1, Y: 2.7, W: 11.333, H: 1}, false,
				Paragraph{Text: "Thank You!", Size: 56, Bold: true, Color: colorRef(White), Align: AlignCenter}),
			textBox(Rect{X: 1, Y: 3.8, W: 11.333, H: 0.6}, false, Paragraph{
				Text:   "Browse hands-free, understand faster.",
				Size:   28,
				Italic: true,
				Color:  colorRef(Accent),
				Align:  AlignCenter,
			}),
			textBox(Rect{X: 1, Y: 4.8, W: 11.333, H: 0.6}, false,
				centered("🎥 Demo: youtu.be/KVOM2VvWypE", 22, colorRef(White))),
			textBox(Rect{X: 1, Y: 5.4, W: 11.333, H: 0.6}, false,
				centered("📦 GitHub: github.com/priyanshuharshbodhi1/Nutshell", 22, colorRef(White))),
			textBox(Rect{X: 1, Y: 6.4, W: 11.333, H: 0.5}, false,
				centered("HackJNU 4.0 | January 2026", 18, RGB(150, 150, 150))),
		},
	}
}
