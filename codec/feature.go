package codec

import "strings"

// Curly quotes become straight ones so the text is valid feature syntax.
// Plist readers that already resolved the escapes hand over the curly runes
// themselves, so both spellings are mapped.
var featureUnescaper = strings.NewReplacer(
	`\012`, "\n",
	`\011`, "\t",
	`\U2018`, "'",
	`\U2019`, "'",
	`\U201C`, `"`,
	`\U201D`, `"`,
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// UnescapeFeatureSyntax replaces the escape sequences used for feature code.
// Unknown sequences are left as they are.
func UnescapeFeatureSyntax(s string) string { return featureUnescaper.Replace(s) }

// FeatureSyntax casts escaped feature code to plain text.
func FeatureSyntax(v any) (any, error) {
	s, err := text(v)
	if err != nil {
		return nil, err
	}
	return UnescapeFeatureSyntax(s), nil
}
