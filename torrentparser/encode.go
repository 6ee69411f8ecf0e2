package torrentparser

import "github.com/givxl33t/torrentinfo/bencode"

// Marshal encodes t as a canonical metainfo document.
func Marshal(t TorrentFile) []byte {
	return bencode.Encode(t.ToValue())
}

// ToValue rebuilds the document dictionary. Key order does not matter,
// the encoder sorts keys.
func (t TorrentFile) ToValue() bencode.Value {
	entries := []bencode.Entry{
		{Key: "announce", Value: bencode.String(t.Announce)},
		{Key: "info", Value: t.Info.ToValue()},
	}
	if len(t.AnnounceList) > 0 {
		tiers := make([]bencode.Value, 0, len(t.AnnounceList))
		for _, tier := range t.AnnounceList {
			tiers = append(tiers, stringList(tier))
		}
		entries = append(entries, bencode.Entry{Key: "announce-list", Value: bencode.NewList(tiers...)})
	}
	return bencode.NewDict(entries...)
}

// ToValue rebuilds the info dictionary with the same field set it was
// decoded from. Modelled fields win over Extra entries of the same key.
//
// Layout must be set. A nil Layout writes neither length nor files, and
// Parse rejects the result with ErrConflictingFileLayout.
func (i Info) ToValue() bencode.Value {
	entries := append([]bencode.Entry{}, i.Extra...)
	entries = append(entries,
		bencode.Entry{Key: "name", Value: bencode.String(i.Name)},
		bencode.Entry{Key: "piece length", Value: bencode.Int(i.PieceLength)},
		bencode.Entry{Key: "pieces", Value: bencode.Bytes(i.Pieces.Bytes())},
	)

	switch l := i.Layout.(type) {
	case SingleFile:
		entries = append(entries, bencode.Entry{Key: "length", Value: bencode.Int(l.Length)})
	case MultiFile:
		files := make([]bencode.Value, 0, len(l.Files))
		for _, f := range l.Files {
			files = append(files, f.ToValue())
		}
		entries = append(entries, bencode.Entry{Key: "files", Value: bencode.NewList(files...)})
	}

	return bencode.NewDict(entries...)
}

func (f File) ToValue() bencode.Value {
	entries := append([]bencode.Entry{}, f.Extra...)
	entries = append(entries,
		bencode.Entry{Key: "length", Value: bencode.Int(f.Length)},
		bencode.Entry{Key: "path", Value: stringList(f.Path)},
	)
	return bencode.NewDict(entries...)
}

func stringList(items []string) bencode.Value {
	values := make([]bencode.Value, len(items))
	for i, s := range items {
		values[i] = bencode.String(s)
	}
	return bencode.NewList(values...)
}
