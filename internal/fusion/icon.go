package fusion

import "github.com/rivo/uniseg"

// SanitizeIcon extracts the first emoji from a raw icon string. Providers
// sometimes return several concatenated symbols or stray text; only one
// glyph is wanted. Grapheme-cluster segmentation keeps variation selectors
// and skin-tone modifiers attached to their base symbol. When no emoji is
// present the neutral sparkle is returned.
func SanitizeIcon(raw string) string {
	gr := uniseg.NewGraphemes(raw)
	for gr.Next() {
		runes := gr.Runes()
		if len(runes) > 0 && isPictographic(runes[0]) {
			return gr.Str()
		}
	}
	return fallbackIcon
}

// isPictographic reports whether r starts an emoji glyph. The ranges cover
// the Unicode pictographic blocks plus the legacy symbol blocks commonly
// used as emoji.
func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // Misc Symbols and Pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // Emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // Transport and Map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // Supplemental Symbols and Pictographs
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // Symbols and Pictographs Extended-A
		return true
	case r >= 0x2600 && r <= 0x26FF: // Misc Symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // Dingbats
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // Regional Indicators
		return true
	case r == 0x2B50 || r == 0x2B55: // star, heavy circle
		return true
	case r == 0x2764: // heavy black heart
		return true
	}
	return false
}
