package jsonval

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ParseRelaxed parses text under a relaxed JSON5-like grammar. On top of
// strict JSON it tolerates:
//
//   - unquoted object keys (identifier characters)
//   - trailing commas in objects and arrays
//   - single-quoted strings
//   - // line comments and /* block */ comments
//
// It is a separate grammar from ParseStrict rather than a flag on it, so
// failures stay attributable to the grammar that actually rejected the text.
func ParseRelaxed(text string) (Value, error) {
	p := &relaxedParser{src: text}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected trailing data")
	}
	return v, nil
}

type relaxedParser struct {
	src string
	pos int
}

func (p *relaxedParser) errorf(format string, a ...any) error {
	return fmt.Errorf("relaxed JSON error at offset %d: %s", p.pos, fmt.Sprintf(format, a...))
}

// skipSpace advances past whitespace and comments.
func (p *relaxedParser) skipSpace() {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end < 0 {
				p.pos = len(p.src)
				return
			}
			p.pos += 2 + end + 2
		default:
			return
		}
	}
}

func (p *relaxedParser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *relaxedParser) value() (Value, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input, expected a value")
	}

	switch {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"' || c == '\'':
		return p.quotedString(c)
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	case isIdentChar(c):
		return p.literal()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *relaxedParser) object() (Value, error) {
	p.pos++ // consume '{'
	obj := Object{}
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated object")
		}
		if c == '}' {
			p.pos++
			return obj, nil
		}

		key, err := p.objectKey(c)
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if c, ok := p.peek(); !ok || c != ':' {
			return nil, p.errorf("expected ':' after object key %q", key)
		}
		p.pos++

		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		obj = obj.set(key, val)

		p.skipSpace()
		c, ok = p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated object")
		case c == ',':
			p.pos++ // a trailing comma before '}' is allowed
		case c == '}':
			// handled at the top of the loop
		default:
			return nil, p.errorf("expected ',' or '}' in object, got %q", c)
		}
	}
}

func (p *relaxedParser) objectKey(c byte) (string, error) {
	if c == '"' || c == '\'' {
		s, err := p.quotedString(c)
		if err != nil {
			return "", err
		}
		return s.(string), nil
	}
	if !isIdentStart(c) {
		return "", p.errorf("expected object key, got %q", c)
	}

	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *relaxedParser) array() (Value, error) {
	p.pos++ // consume '['
	arr := Array{}
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated array")
		}
		if c == ']' {
			p.pos++
			return arr, nil
		}

		val, err := p.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		p.skipSpace()
		c, ok = p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unterminated array")
		case c == ',':
			p.pos++ // a trailing comma before ']' is allowed
		case c == ']':
			// handled at the top of the loop
		default:
			return nil, p.errorf("expected ',' or ']' in array, got %q", c)
		}
	}
}

// quotedString scans a string delimited by quote, handling the standard JSON
// escapes plus an escaped quote of either kind.
func (p *relaxedParser) quotedString(quote byte) (Value, error) {
	p.pos++ // consume opening quote
	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\':
			p.pos++
			if err := p.escape(&b); err != nil {
				return nil, err
			}
		case c == '\n':
			return nil, p.errorf("unescaped newline in string")
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

func (p *relaxedParser) escape(b *strings.Builder) error {
	if p.pos >= len(p.src) {
		return p.errorf("unterminated escape sequence")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '"', '\'', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := p.unicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
	default:
		p.pos--
		return p.errorf("invalid escape character %q", c)
	}
	return nil
}

// unicodeEscape decodes \uXXXX, combining UTF-16 surrogate pairs.
func (p *relaxedParser) unicodeEscape() (rune, error) {
	r1, err := p.hex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r1) {
		return r1, nil
	}
	if strings.HasPrefix(p.src[p.pos:], `\u`) {
		save := p.pos
		p.pos += 2
		r2, err := p.hex4()
		if err != nil {
			return 0, err
		}
		if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
			return r, nil
		}
		p.pos = save
	}
	return utf8.RuneError, nil
}

func (p *relaxedParser) hex4() (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorf("truncated unicode escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid unicode escape %q", p.src[p.pos:p.pos+4])
	}
	p.pos += 4
	return rune(n), nil
}

func (p *relaxedParser) number() (Value, error) {
	start := p.pos
	if c, ok := p.peek(); ok && (c == '-' || c == '+') {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
			((c == '-' || c == '+') && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E')) {
			p.pos++
			continue
		}
		break
	}

	raw := p.src[start:p.pos]
	literal := strings.TrimPrefix(raw, "+")
	if _, err := strconv.ParseFloat(literal, 64); err != nil {
		p.pos = start
		return nil, p.errorf("invalid number literal %q", raw)
	}
	return Number(literal), nil
}

// literal scans a bare word: true, false, or null. Any other word is an
// error rather than an implicit string.
func (p *relaxedParser) literal() (Value, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	switch word := p.src[start:p.pos]; word {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	default:
		p.pos = start
		return nil, p.errorf("unexpected word %q, expected true, false, or null", word)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
