package bencode

import (
	"bytes"
	"strconv"
)

// DefaultMaxDepth bounds how many lists and dictionaries may be nested
// inside one another before decoding fails with ErrNestingTooDeep.
const DefaultMaxDepth = 512

// Decoder decodes bencoded values. The zero Decoder uses DefaultMaxDepth.
type Decoder struct {
	MaxDepth int
}

// Decode decodes the first value in data and returns it together with the
// bytes that follow it.
func Decode(data []byte) (Value, []byte, error) {
	var d Decoder
	return d.Decode(data)
}

// Unmarshal decodes data, which must hold exactly one value.
func Unmarshal(data []byte) (Value, error) {
	var d Decoder
	return d.Unmarshal(data)
}

func (dec *Decoder) Decode(data []byte) (Value, []byte, error) {
	s := dec.newState(data)
	v, err := s.value(0)
	if err != nil {
		return Value{}, nil, err
	}
	return v, data[s.pos:], nil
}

func (dec *Decoder) Unmarshal(data []byte) (Value, error) {
	s := dec.newState(data)
	v, err := s.value(0)
	if err != nil {
		return Value{}, err
	}
	if s.pos != len(data) {
		return Value{}, syntaxErr(s.pos, ErrTrailingData)
	}
	return v, nil
}

func (dec *Decoder) newState(data []byte) *decodeState {
	maxDepth := dec.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &decodeState{data: data, maxDepth: maxDepth}
}

// decodeState walks data once; pos always points at the next unread byte.
type decodeState struct {
	data     []byte
	pos      int
	maxDepth int
}

func (s *decodeState) eof() bool { return s.pos >= len(s.data) }

func (s *decodeState) value(depth int) (Value, error) {
	if s.eof() {
		return Value{}, syntaxErr(s.pos, ErrUnrecognizedTag)
	}

	switch b := s.data[s.pos]; {
	case b == 'i':
		return s.integer()
	case b == 'l':
		return s.list(depth + 1)
	case b == 'd':
		return s.dict(depth + 1)
	case isDigit(b):
		return s.byteString()
	default:
		return Value{}, syntaxErr(s.pos, ErrUnrecognizedTag)
	}
}

func (s *decodeState) integer() (Value, error) {
	start := s.pos
	body := s.data[start+1:]
	end := bytes.IndexByte(body, 'e')
	if end < 0 {
		return Value{}, syntaxErr(start, ErrMalformedInteger)
	}
	digits := body[:end]
	if !canonicalInt(digits) {
		return Value{}, syntaxErr(start, ErrMalformedInteger)
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return Value{}, syntaxErr(start, ErrMalformedInteger)
	}
	s.pos = start + 1 + end + 1
	return Int(n), nil
}

// canonicalInt accepts an optional '-' followed by digits, rejecting
// leading zeros and negative zero.
func canonicalInt(digits []byte) bool {
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
		if len(digits) > 0 && digits[0] == '0' {
			return false
		}
	}
	if len(digits) == 0 || (digits[0] == '0' && len(digits) > 1) {
		return false
	}
	for _, c := range digits {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

func (s *decodeState) byteString() (Value, error) {
	start := s.pos
	colon := start
	for colon < len(s.data) && s.data[colon] != ':' {
		if !isDigit(s.data[colon]) {
			return Value{}, syntaxErr(start, ErrMalformedLength)
		}
		colon++
	}
	if colon == len(s.data) || colon == start {
		return Value{}, syntaxErr(start, ErrMalformedLength)
	}

	digits := s.data[start:colon]
	if digits[0] == '0' && len(digits) > 1 {
		return Value{}, syntaxErr(start, ErrMalformedLength)
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return Value{}, syntaxErr(start, ErrMalformedLength)
	}

	body := colon + 1
	if n > len(s.data)-body {
		return Value{}, syntaxErr(start, ErrTruncatedByteString)
	}
	s.pos = body + n
	return Bytes(s.data[body:s.pos]), nil
}

func (s *decodeState) list(depth int) (Value, error) {
	start := s.pos
	if depth > s.maxDepth {
		return Value{}, syntaxErr(start, ErrNestingTooDeep)
	}
	s.pos++

	items := []Value{}
	for {
		if s.eof() {
			return Value{}, syntaxErr(start, ErrUnterminatedList)
		}
		if s.data[s.pos] == 'e' {
			s.pos++
			return Value{kind: KindList, l: items}, nil
		}
		item, err := s.value(depth)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

func (s *decodeState) dict(depth int) (Value, error) {
	start := s.pos
	if depth > s.maxDepth {
		return Value{}, syntaxErr(start, ErrNestingTooDeep)
	}
	s.pos++

	var entries dictBuilder
	for {
		if s.eof() {
			return Value{}, syntaxErr(start, ErrUnterminatedDictionary)
		}
		if s.data[s.pos] == 'e' {
			s.pos++
			return entries.value(), nil
		}
		if !isDigit(s.data[s.pos]) {
			return Value{}, syntaxErr(s.pos, ErrNonStringDictKey)
		}
		key, err := s.byteString()
		if err != nil {
			return Value{}, err
		}
		if s.eof() {
			return Value{}, syntaxErr(start, ErrUnterminatedDictionary)
		}
		val, err := s.value(depth)
		if err != nil {
			return Value{}, err
		}
		entries.put(string(key.b), val)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
