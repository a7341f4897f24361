package docxout

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// segment is one run of code sharing a single colour.
type segment struct {
	Text  string
	Color string // RRGGBB hex without '#'; empty for the default colour
}

// highlightCode tokenizes code with chroma and maps token types onto colours
// from the named style. Tokenization failures degrade to a single uncoloured
// segment; a code block must never abort serialization.
func highlightCode(code, language, styleName string) []segment {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iter, err := lexer.Tokenise(nil, code)
	if err != nil {
		return []segment{{Text: code}}
	}

	var segs []segment
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		entry := style.Get(tok.Type)
		var color string
		if entry.Colour.IsSet() {
			color = strings.TrimPrefix(entry.Colour.String(), "#")
		}
		segs = append(segs, segment{Text: tok.Value, Color: color})
	}
	if len(segs) == 0 {
		return []segment{{Text: code}}
	}
	return segs
}
