package bencode

import (
	"strconv"
	"testing"
	"time"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same int", Int(1), Int(1), true},
		{"different int", Int(1), Int(2), false},
		{"int vs string", Int(1), String("1"), false},
		{"nil vs empty bytes", Bytes(nil), String(""), true},
		{"list order matters", NewList(Int(1), Int(2)), NewList(Int(2), Int(1)), false},
		{"dict order ignored",
			NewDict(Entry{"a", Int(1)}, Entry{"b", Int(2)}),
			NewDict(Entry{"b", Int(2)}, Entry{"a", Int(1)}),
			true},
		{"dict value differs",
			NewDict(Entry{"a", Int(1)}),
			NewDict(Entry{"a", Int(2)}),
			false},
		{"dict key differs",
			NewDict(Entry{"a", Int(1)}),
			NewDict(Entry{"b", Int(1)}),
			false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	d := NewDict(
		Entry{"name", String("x")},
		Entry{"length", Int(100)},
		Entry{"name", String("y")},
	)
	if d.Kind() != KindDict {
		t.Fatalf("Kind = %v, want dictionary", d.Kind())
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
	name, ok := d.Get("name")
	if s, _ := name.Str(); !ok || s != "y" {
		t.Errorf("Get(name) = %v, want ByteString(y)", name)
	}
	if _, ok := d.Get("missing"); ok {
		t.Error("Get(missing) reported a value")
	}
	if keys := d.Keys(); len(keys) != 2 || keys[0] != "length" || keys[1] != "name" {
		t.Errorf("Keys = %q, want [length name]", keys)
	}
	if _, ok := d.Int(); ok {
		t.Error("Int on a dictionary reported ok")
	}
	if _, ok := Int(1).Bytes(); ok {
		t.Error("Bytes on an integer reported ok")
	}
}

func TestBytesCopiesInput(t *testing.T) {
	b := []byte("abc")
	v := Bytes(b)
	b[0] = 'z'
	if s, _ := v.Str(); s != "abc" {
		t.Errorf("Bytes did not copy its input: %q", s)
	}
}

func TestNewDictRepeatedKey(t *testing.T) {
	d := NewDict(Entry{"b", Int(1)}, Entry{"a", Int(2)}, Entry{"b", Int(3)})
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	entries, _ := d.Entries()
	if entries[0].Key != "b" || entries[1].Key != "a" {
		t.Errorf("entry order = %q, %q, want b, a", entries[0].Key, entries[1].Key)
	}
	if n, _ := entries[0].Value.Int(); n != 3 {
		t.Errorf("b = %d, want 3", n)
	}
	if v, _ := d.Get("b"); !Equal(v, Int(3)) {
		t.Errorf("Get(b) = %v, want 3", v)
	}
}

func TestEqualWideDictionaries(t *testing.T) {
	const n = 100000
	fwd := make([]Entry, n)
	rev := make([]Entry, n)
	for i := range fwd {
		fwd[i] = Entry{strconv.Itoa(i), Int(int64(i))}
		rev[n-1-i] = fwd[i]
	}
	a, b := NewDict(fwd...), NewDict(rev...)

	start := time.Now()
	if !Equal(a, b) {
		t.Error("Equal = false for the same mapping in reverse order")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("comparing %d keys took %v", n, elapsed)
	}

	rev[0] = Entry{rev[0].Key, Int(-1)}
	if Equal(a, NewDict(rev...)) {
		t.Error("Equal = true after changing one value")
	}
}
