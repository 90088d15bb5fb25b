// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package tinyjson

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Parse parses text as a single tinyjson value. A syntax error is wrapped
// with github.com/pkg/errors so a stack trace accompanies it — this is
// ordinary recoverable input validation, unlike the print engine's own
// fatal errors (package printer), and is reported to the demo host's caller
// the same way grafana/agent reports its own config-parsing errors.
func Parse(text string) (Value, error) {
	p := &parser{src: text}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, errors.Errorf("tinyjson: unexpected trailing input at offset %d", p.pos)
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	b, ok := p.peek()
	if !ok || b != c {
		return errors.Errorf("tinyjson: expected %q at offset %d", c, p.pos)
	}
	p.pos++
	return nil
}

func (p *parser) parseValue() (Value, error) {
	b, ok := p.peek()
	if !ok {
		return nil, errors.Errorf("tinyjson: unexpected end of input at offset %d", p.pos)
	}

	switch {
	case b == '{':
		return p.parseObject()
	case b == '[':
		return p.parseArray()
	case b == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case b == 't' || b == 'f':
		return p.parseBool()
	case b == 'n':
		return p.parseNull()
	case b == '-' || (b >= '0' && b <= '9'):
		return p.parseNumber()
	default:
		return nil, errors.Errorf("tinyjson: unexpected character %q at offset %d", b, p.pos)
	}
}

func (p *parser) parseObject() (Value, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	obj := &Object{}

	p.skipSpace()
	if b, ok := p.peek(); ok && b == '}' {
		p.pos++
		return obj, nil
	}

	for {
		p.skipSpace()
		key, err := p.parseString()
		if err != nil {
			return nil, errors.Wrap(err, "tinyjson: parsing object key")
		}
		p.skipSpace()
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, errors.Wrapf(err, "tinyjson: parsing value for key %q", key)
		}
		obj.Entries = append(obj.Entries, Entry{Key: key, Value: val})

		p.skipSpace()
		b, ok := p.peek()
		if !ok {
			return nil, errors.Errorf("tinyjson: unterminated object at offset %d", p.pos)
		}
		if b == ',' {
			p.pos++
			continue
		}
		if b == '}' {
			p.pos++
			return obj, nil
		}
		return nil, errors.Errorf("tinyjson: expected ',' or '}' at offset %d", p.pos)
	}
}

func (p *parser) parseArray() (Value, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	arr := &Array{}

	p.skipSpace()
	if b, ok := p.peek(); ok && b == ']' {
		p.pos++
		return arr, nil
	}

	for {
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, errors.Wrapf(err, "tinyjson: parsing array element %d", len(arr.Elements))
		}
		arr.Elements = append(arr.Elements, val)

		p.skipSpace()
		b, ok := p.peek()
		if !ok {
			return nil, errors.Errorf("tinyjson: unterminated array at offset %d", p.pos)
		}
		if b == ',' {
			p.pos++
			continue
		}
		if b == ']' {
			p.pos++
			return arr, nil
		}
		return nil, errors.Errorf("tinyjson: expected ',' or ']' at offset %d", p.pos)
	}
}

func (p *parser) parseString() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		b, ok := p.peek()
		if !ok {
			return "", errors.Errorf("tinyjson: unterminated string at offset %d", p.pos)
		}
		if b == '"' {
			p.pos++
			return sb.String(), nil
		}
		if b == '\\' {
			p.pos++
			esc, ok := p.peek()
			if !ok {
				return "", errors.Errorf("tinyjson: unterminated escape at offset %d", p.pos)
			}
			p.pos++
			switch esc {
			case '"', '\\', '/':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", errors.Errorf("tinyjson: unsupported escape %q at offset %d", esc, p.pos-1)
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		sb.WriteRune(r)
		p.pos += size
	}
}

func (p *parser) parseBool() (Value, error) {
	if strings.HasPrefix(p.src[p.pos:], "true") {
		p.pos += 4
		return Bool(true), nil
	}
	if strings.HasPrefix(p.src[p.pos:], "false") {
		p.pos += 5
		return Bool(false), nil
	}
	return nil, errors.Errorf("tinyjson: invalid literal at offset %d", p.pos)
}

func (p *parser) parseNull() (Value, error) {
	if strings.HasPrefix(p.src[p.pos:], "null") {
		p.pos += 4
		return Null{}, nil
	}
	return nil, errors.Errorf("tinyjson: invalid literal at offset %d", p.pos)
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	if b, ok := p.peek(); ok && b == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && isNumberByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, errors.Errorf("tinyjson: invalid number at offset %d", p.pos)
	}
	return Number(p.src[start:p.pos]), nil
}

func isNumberByte(b byte) bool {
	return unicode.IsDigit(rune(b)) || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-'
}
