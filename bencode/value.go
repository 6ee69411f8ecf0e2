package bencode

import (
	"bytes"
	"fmt"
	"sort"
)

// Kind identifies which of the four bencode types a Value holds.
type Kind uint8

const (
	KindBytes Kind = iota
	KindInt
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "byte string"
	case KindInt:
		return "integer"
	case KindList:
		return "list"
	case KindDict:
		return "dictionary"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a decoded bencode value. Only the field matching kind is set.
//
// The zero Value is the empty byte string, so every Value has an encoding.
type Value struct {
	kind Kind
	i    int64
	b    []byte
	l    []Value
	d    []Entry

	// index maps a dictionary key to its position in d.
	index map[string]int
}

// Entry is a single key/value pair of a dictionary.
type Entry struct {
	Key   string
	Value Value
}

func Int(n int64) Value {
	return Value{kind: KindInt, i: n}
}

// Bytes returns a byte string Value holding a copy of b.
func Bytes(b []byte) Value {
	return Value{kind: KindBytes, b: bytes.Clone(b)}
}

func String(s string) Value {
	return Value{kind: KindBytes, b: []byte(s)}
}

func NewList(items ...Value) Value {
	l := make([]Value, len(items))
	copy(l, items)
	return Value{kind: KindList, l: l}
}

// NewDict builds a dictionary from entries. A repeated key keeps the
// position of its first occurrence and the value of its last.
func NewDict(entries ...Entry) Value {
	var b dictBuilder
	b.entries = make([]Entry, 0, len(entries))
	for _, e := range entries {
		b.put(e.Key, e.Value)
	}
	return b.value()
}

type dictBuilder struct {
	entries []Entry
	index   map[string]int
}

func (b *dictBuilder) put(key string, v Value) {
	if i, ok := b.index[key]; ok {
		b.entries[i].Value = v
		return
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, Entry{Key: key, Value: v})
}

func (b *dictBuilder) value() Value {
	if b.entries == nil {
		b.entries = []Entry{}
	}
	return Value{kind: KindDict, d: b.entries, index: b.index}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Bytes returns the raw bytes of a byte string. The slice must not be modified.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.b, true
}

// Str returns a byte string as a Go string without checking its encoding.
func (v Value) Str() (string, bool) {
	if v.kind != KindBytes {
		return "", false
	}
	return string(v.b), true
}

func (v Value) List() ([]Value, bool) {
	return v.l, v.kind == KindList
}

// Entries returns dictionary entries in the order they were first seen.
func (v Value) Entries() ([]Entry, bool) {
	return v.d, v.kind == KindDict
}

// Get looks up key in a dictionary.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindDict {
		return Value{}, false
	}
	if v.index != nil {
		i, ok := v.index[key]
		if !ok {
			return Value{}, false
		}
		return v.d[i].Value, true
	}
	for _, e := range v.d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Len returns the byte length of a string, or the element count of a list
// or dictionary. It is 0 for integers.
func (v Value) Len() int {
	switch v.kind {
	case KindBytes:
		return len(v.b)
	case KindList:
		return len(v.l)
	case KindDict:
		return len(v.d)
	}
	return 0
}

// Keys returns the keys of a dictionary in ascending byte order.
func (v Value) Keys() []string {
	if v.kind != KindDict {
		return nil
	}
	keys := make([]string, len(v.d))
	for i, e := range v.d {
		keys[i] = e.Key
	}
	sort.Strings(keys)
	return keys
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("Integer(%d)", v.i)
	case KindBytes:
		return fmt.Sprintf("ByteString(%q)", v.b)
	case KindList:
		return fmt.Sprintf("List(%v)", v.l)
	case KindDict:
		return fmt.Sprintf("Dictionary(%v)", v.d)
	}
	return "Invalid"
}

// Equal reports whether a and b hold the same data. Dictionaries are
// compared as mappings, ignoring entry order.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindBytes:
		return bytes.Equal(a.b, b.b)
	case KindList:
		if len(a.l) != len(b.l) {
			return false
		}
		for i := range a.l {
			if !Equal(a.l[i], b.l[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(a.d) != len(b.d) {
			return false
		}
		for _, e := range a.d {
			other, ok := b.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}
