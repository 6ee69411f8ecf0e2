package torrentparser

import (
	"fmt"
	"unicode/utf8"

	zeebo "github.com/zeebo/bencode"

	"github.com/givxl33t/torrentinfo/bencode"
)

type rawTorrent struct {
	// info is captured as a RawMessage so the original bytes can be
	// hashed even when the source dictionary is not canonical
	Info zeebo.RawMessage `bencode:"info"`
}

// Parse decodes a metainfo document.
func Parse(data []byte) (TorrentFile, error) {
	return ParseWith(&bencode.Decoder{}, data)
}

// ParseWith decodes a metainfo document using dec, which sets the nesting
// limit.
func ParseWith(dec *bencode.Decoder, data []byte) (TorrentFile, error) {
	root, err := dec.Unmarshal(data)
	if err != nil {
		return TorrentFile{}, fmt.Errorf("unmarshalling torrent: %w", err)
	}

	tf, err := FromValue(root)
	if err != nil {
		return TorrentFile{}, err
	}

	var raw rawTorrent
	if err := zeebo.DecodeBytes(data, &raw); err != nil {
		return TorrentFile{}, fmt.Errorf("capturing raw info dict: %w", err)
	}
	tf.RawInfo = []byte(raw.Info)

	return tf, nil
}

// FromValue builds a TorrentFile from an already decoded document.
func FromValue(root bencode.Value) (TorrentFile, error) {
	if root.Kind() != bencode.KindDict {
		return TorrentFile{}, fieldErr("<root>", ErrWrongType)
	}

	announceVal, err := require(root, "", "announce")
	if err != nil {
		return TorrentFile{}, err
	}
	announce, err := asText(announceVal, "announce")
	if err != nil {
		return TorrentFile{}, err
	}

	var announceList [][]string
	if v, ok := root.Get("announce-list"); ok {
		announceList, err = parseAnnounceList(v)
		if err != nil {
			return TorrentFile{}, err
		}
	}

	infoVal, err := require(root, "", "info")
	if err != nil {
		return TorrentFile{}, err
	}
	info, err := InfoFromValue(infoVal)
	if err != nil {
		return TorrentFile{}, err
	}

	return TorrentFile{
		Announce:     announce,
		AnnounceList: announceList,
		Info:         info,
	}, nil
}

func parseAnnounceList(v bencode.Value) ([][]string, error) {
	const field = "announce-list"
	tiers, ok := v.List()
	if !ok {
		return nil, fieldErr(field, ErrWrongType)
	}
	out := make([][]string, 0, len(tiers))
	for i, tier := range tiers {
		urls, err := asTextList(tier, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out = append(out, urls)
	}
	return out, nil
}

// keys of the info dictionary this package models; anything else ends up
// in Info.Extra
var infoKeys = map[string]bool{
	"name":         true,
	"piece length": true,
	"pieces":       true,
	"length":       true,
	"files":        true,
}

var fileKeys = map[string]bool{
	"length": true,
	"path":   true,
}

// InfoFromValue validates an info dictionary.
func InfoFromValue(v bencode.Value) (Info, error) {
	const parent = "info"
	if v.Kind() != bencode.KindDict {
		return Info{}, fieldErr(parent, ErrWrongType)
	}

	nameVal, err := require(v, parent, "name")
	if err != nil {
		return Info{}, err
	}
	name, err := asText(nameVal, "info.name")
	if err != nil {
		return Info{}, err
	}

	pieceLengthVal, err := require(v, parent, "piece length")
	if err != nil {
		return Info{}, err
	}
	pieceLength, err := asInt(pieceLengthVal, "info.piece length")
	if err != nil {
		return Info{}, err
	}
	if pieceLength <= 0 {
		return Info{}, fieldErr("info.piece length", ErrInvalidPieceLength)
	}

	piecesVal, err := require(v, parent, "pieces")
	if err != nil {
		return Info{}, err
	}
	blob, ok := piecesVal.Bytes()
	if !ok {
		return Info{}, fieldErr("info.pieces", ErrWrongType)
	}
	pieces, err := ParsePieceHashes(blob)
	if err != nil {
		return Info{}, fieldErr("info.pieces", err)
	}

	layout, err := parseLayout(v)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Name:        name,
		PieceLength: pieceLength,
		Pieces:      pieces,
		Layout:      layout,
		Extra:       extraEntries(v, infoKeys),
	}, nil
}

// parseLayout picks the file layout from whichever of length or files is
// present. Documents carrying both, or neither, are rejected.
func parseLayout(info bencode.Value) (Layout, error) {
	lengthVal, hasLength := info.Get("length")
	filesVal, hasFiles := info.Get("files")
	if hasLength == hasFiles {
		return nil, fieldErr("info", ErrConflictingFileLayout)
	}

	if hasLength {
		length, err := asLength(lengthVal, "info.length")
		if err != nil {
			return nil, err
		}
		return SingleFile{Length: length}, nil
	}

	list, ok := filesVal.List()
	if !ok {
		return nil, fieldErr("info.files", ErrWrongType)
	}
	files := make([]File, 0, len(list))
	for i, item := range list {
		f, err := parseFile(item, fmt.Sprintf("info.files[%d]", i))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return MultiFile{Files: files}, nil
}

func parseFile(v bencode.Value, field string) (File, error) {
	if v.Kind() != bencode.KindDict {
		return File{}, fieldErr(field, ErrWrongType)
	}

	lengthVal, err := require(v, field, "length")
	if err != nil {
		return File{}, err
	}
	length, err := asLength(lengthVal, field+".length")
	if err != nil {
		return File{}, err
	}

	pathVal, err := require(v, field, "path")
	if err != nil {
		return File{}, err
	}
	path, err := asTextList(pathVal, field+".path")
	if err != nil {
		return File{}, err
	}

	return File{
		Length: length,
		Path:   path,
		Extra:  extraEntries(v, fileKeys),
	}, nil
}

func require(dict bencode.Value, parent, key string) (bencode.Value, error) {
	v, ok := dict.Get(key)
	if !ok {
		return bencode.Value{}, fieldErr(join(parent, key), ErrMissingField)
	}
	return v, nil
}

func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func asText(v bencode.Value, field string) (string, error) {
	b, ok := v.Bytes()
	if !ok {
		return "", fieldErr(field, ErrWrongType)
	}
	if !utf8.Valid(b) {
		return "", fieldErr(field, ErrInvalidUTF8)
	}
	return string(b), nil
}

func asTextList(v bencode.Value, field string) ([]string, error) {
	items, ok := v.List()
	if !ok {
		return nil, fieldErr(field, ErrWrongType)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, err := asText(item, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func asInt(v bencode.Value, field string) (int64, error) {
	n, ok := v.Int()
	if !ok {
		return 0, fieldErr(field, ErrWrongType)
	}
	return n, nil
}

func asLength(v bencode.Value, field string) (int64, error) {
	n, err := asInt(v, field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fieldErr(field, ErrInvalidLength)
	}
	return n, nil
}

func extraEntries(dict bencode.Value, known map[string]bool) []bencode.Entry {
	entries, _ := dict.Entries()
	var extra []bencode.Entry
	for _, e := range entries {
		if !known[e.Key] {
			extra = append(extra, e)
		}
	}
	return extra
}
