// Package highlight pretty-prints and syntax-highlights response bodies for
// the terminal.
package highlight

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/tidwall/gjson"
)

// DefaultStyle is used when a configured style is unknown.
const DefaultStyle = "solarized-dark"

// Styles is the cycle order offered by the settings screen.
var Styles = []string{DefaultStyle, "monokai", "dracula", "github-dark", "catppuccin-mocha"}

// NextStyle returns the style after current in Styles, wrapping around.
// An unknown current style yields the first entry.
func NextStyle(current string) string {
	for i, s := range Styles {
		if s == current {
			return Styles[(i+1)%len(Styles)]
		}
	}
	return Styles[0]
}

// IsJSON reports whether body is a JSON document.
func IsJSON(body string) bool {
	body = strings.TrimSpace(body)
	return body != "" && gjson.Valid(body)
}

// PrettyJSON indents body when it is valid JSON and returns it unchanged
// otherwise.
func PrettyJSON(body string) string {
	if !IsJSON(body) {
		return body
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(body)), "", "  "); err != nil {
		return body
	}
	return buf.String()
}

// Highlight renders text with ANSI colors. The lexer is chosen from
// contentType, then JSON detection, then content analysis. On any failure
// text is returned unchanged.
func Highlight(text, contentType, style string) string {
	if text == "" {
		return text
	}
	lexer := lexerFor(text, contentType)
	if lexer == nil {
		return text
	}
	lexer = chroma.Coalesce(lexer)

	// styles.Get never returns nil; unknown names map to Fallback.
	st := styles.Get(style)
	if st == styles.Fallback {
		st = styles.Get(DefaultStyle)
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var out strings.Builder
	if err := formatter.Format(&out, st, iterator); err != nil {
		return text
	}
	return out.String()
}

func lexerFor(text, contentType string) chroma.Lexer {
	if contentType != "" {
		mt := contentType
		if i := strings.Index(mt, ";"); i >= 0 {
			mt = mt[:i]
		}
		if l := lexers.MatchMimeType(strings.TrimSpace(mt)); l != nil {
			return l
		}
	}
	if IsJSON(text) {
		return lexers.Get("json")
	}
	return lexers.Analyse(text)
}
