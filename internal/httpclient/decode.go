package httpclient

import (
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var fallbackEncodings = []string{"windows-1252", "iso-8859-1", "shift-jis", "gbk", "big5"}

// Decode converts body to UTF-8 using the charset named in contentType.
// Bodies without a charset are assumed UTF-8; invalid UTF-8 is retried
// against a few common legacy encodings before invalid bytes are replaced.
func Decode(body []byte, contentType string) []byte {
	charset := "utf-8"
	if _, params, err := mime.ParseMediaType(contentType); err == nil && params["charset"] != "" {
		charset = params["charset"]
	}

	if strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		if utf8.Valid(body) {
			return body
		}
		if decoded := tryEncodings(body, fallbackEncodings); decoded != nil {
			return decoded
		}
		return []byte(strings.ToValidUTF8(string(body), "�"))
	}

	if decoded := tryEncodings(body, []string{charset}); decoded != nil {
		return decoded
	}
	return []byte(strings.ToValidUTF8(string(body), "�"))
}

func tryEncodings(input []byte, names []string) []byte {
	for _, name := range names {
		enc, err := htmlindex.Get(name)
		if err != nil {
			continue
		}
		decoded, _, err := transform.Bytes(enc.NewDecoder(), input)
		if err == nil && utf8.Valid(decoded) {
			return decoded
		}
	}
	return nil
}
