package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mkantor/node-json5-parser/token"
)

// decodeString resolves the escapes in a quoted string lexeme (including
// the surrounding quotes) per the table in spec.md §4.4. lexeme may be
// unterminated (missing its closing quote); decodeString still decodes as
// much as it can. The only errors it returns are InvalidEscapeCharacter and
// InvalidUnicode; UnexpectedEndOfString is attached by the scanner when it
// emits the partial token.
func decodeString(lexeme string) (string, token.ScanError) {
	if len(lexeme) == 0 {
		return "", token.NoScanError
	}
	quote := lexeme[0]
	body := lexeme[1:]
	// A missing closing quote (unterminated string) is reported by the
	// scanner's partial-match path; decode whatever body we do have.
	if len(body) > 0 && body[len(body)-1] == quote {
		body = body[:len(body)-1]
	}

	var b strings.Builder
	scanErr := token.NoScanError
	i := 0
	for i < len(body) {
		if body[i] != '\\' {
			r, w := utf8.DecodeRuneInString(body[i:])
			b.WriteRune(r)
			i += w
			continue
		}
		if i+1 >= len(body) {
			break
		}
		switch body[i+1] {
		case '\'':
			b.WriteByte('\'')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case 'b':
			b.WriteByte(0x08)
			i += 2
		case 'f':
			b.WriteByte(0x0C)
			i += 2
		case 'n':
			b.WriteByte(0x0A)
			i += 2
		case 'r':
			b.WriteByte(0x0D)
			i += 2
		case 't':
			b.WriteByte(0x09)
			i += 2
		case 'v':
			b.WriteByte(0x0B)
			i += 2
		case '0':
			if i+2 < len(body) && body[i+2] >= '0' && body[i+2] <= '9' {
				// not actually a \0 escape; fall through as literal
				b.WriteByte('0')
				i += 2
				continue
			}
			b.WriteByte(0)
			i += 2
		case 'x':
			if i+3 < len(body) {
				if v, err := strconv.ParseUint(body[i+2:i+4], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 4
					continue
				}
			}
			scanErr = token.InvalidEscapeCharacter
			i += 2
		case 'u':
			if i+5 < len(body) {
				if v, err := strconv.ParseUint(body[i+2:i+6], 16, 16); err == nil {
					b.WriteRune(rune(v))
					i += 6
					continue
				}
			}
			scanErr = token.InvalidUnicode
			i += 2
		case '\n':
			i += 2
		case '\r':
			if i+2 < len(body) && body[i+2] == '\n' {
				i += 3
			} else {
				i += 2
			}
		default:
			r, w := utf8.DecodeRuneInString(body[i+1:])
			if r == ' ' || r == ' ' { // LS, PS line continuation
				i += 1 + w
				continue
			}
			b.WriteRune(r)
			i += 1 + w
		}
	}
	return b.String(), scanErr
}
