package bencode

import (
	"bytes"
	"testing"

	jackpal "github.com/jackpal/bencode-go"
	zeebo "github.com/zeebo/bencode"
)

func sampleDict() (Value, map[string]interface{}) {
	v := NewDict(
		Entry{"spam", NewList(String("a"), Int(-7))},
		Entry{"piece length", Int(16384)},
		Entry{"cow", String("moo")},
		Entry{"nested", NewDict(Entry{"z", Int(0)}, Entry{"y", String("\x00\x01")})},
	)
	m := map[string]interface{}{
		"spam":         []interface{}{"a", int64(-7)},
		"piece length": int64(16384),
		"cow":          "moo",
		"nested":       map[string]interface{}{"z": int64(0), "y": "\x00\x01"},
	}
	return v, m
}

func TestEncodeMatchesZeebo(t *testing.T) {
	v, m := sampleDict()
	want, err := zeebo.EncodeBytes(m)
	if err != nil {
		t.Fatalf("zeebo.EncodeBytes: %v", err)
	}
	if got := Encode(v); !bytes.Equal(got, want) {
		t.Errorf("Encode = %q, zeebo = %q", got, want)
	}
}

func TestEncodeMatchesJackpal(t *testing.T) {
	v, m := sampleDict()
	var buf bytes.Buffer
	if err := jackpal.Marshal(&buf, m); err != nil {
		t.Fatalf("jackpal.Marshal: %v", err)
	}
	if got := Encode(v); !bytes.Equal(got, buf.Bytes()) {
		t.Errorf("Encode = %q, jackpal = %q", got, buf.Bytes())
	}
}

func TestDecodeAgreesWithJackpal(t *testing.T) {
	v, _ := sampleDict()
	data := Encode(v)

	decoded, err := jackpal.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jackpal.Decode: %v", err)
	}
	m, ok := decoded.(map[string]interface{})
	if !ok {
		t.Fatalf("jackpal decoded %T, want a map", decoded)
	}
	if m["cow"] != "moo" {
		t.Errorf("cow = %v, want moo", m["cow"])
	}
	if m["piece length"] != int64(16384) {
		t.Errorf("piece length = %v, want 16384", m["piece length"])
	}
}

func TestValueInsideZeeboStruct(t *testing.T) {
	type document struct {
		Announce string `bencode:"announce"`
		Info     Value  `bencode:"info"`
	}

	data := []byte("d8:announce12:http://x/ann4:infod6:lengthi5e4:name1:xee")
	var doc document
	if err := zeebo.DecodeBytes(data, &doc); err != nil {
		t.Fatalf("zeebo.DecodeBytes: %v", err)
	}
	if doc.Announce != "http://x/ann" {
		t.Errorf("Announce = %q", doc.Announce)
	}
	if n, ok := doc.Info.Get("length"); !ok {
		t.Errorf("info has no length: %v", doc.Info)
	} else if l, _ := n.Int(); l != 5 {
		t.Errorf("length = %d, want 5", l)
	}

	out, err := zeebo.EncodeBytes(doc)
	if err != nil {
		t.Fatalf("zeebo.EncodeBytes: %v", err)
	}
	want := "d8:announce12:http://x/ann4:infod6:lengthi5e4:name1:xee"
	if string(out) != want {
		t.Errorf("zeebo.EncodeBytes = %q, want %q", out, want)
	}
}
