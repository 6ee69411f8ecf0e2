package torrentparser

import (
	"fmt"
	"strings"

	"github.com/givxl33t/torrentinfo/bencode"
)

// Source is what a torrent source resolves to. Torrent is nil for a magnet
// link: its info dictionary has to be fetched out of band and attached with
// TorrentFile.AppendMetadata.
type Source struct {
	Magnet  Magnet
	Torrent *TorrentFile
}

// New resolves source.
//
// If the source is a .torrent file, it will be parsed and its magnet
// derived from the result.
//
// If the source is a magnet link, only the link itself is parsed.
func New(source string) (Source, error) {
	return NewWith(&bencode.Decoder{}, source)
}

// NewWith is New with the nesting limit of dec applied to .torrent files.
func NewWith(dec *bencode.Decoder, source string) (Source, error) {
	if strings.HasSuffix(source, ".torrent") {
		tf, err := parseTorrentFileWith(dec, source)
		if err != nil {
			return Source{}, err
		}
		return Source{Magnet: tf.Magnet(), Torrent: &tf}, nil
	} else if strings.HasPrefix(source, "magnet") {
		m, err := ParseMagnetLink(source)
		if err != nil {
			return Source{}, err
		}
		return Source{Magnet: m}, nil
	} else {
		return Source{}, fmt.Errorf("invalid source: %s", source)
	}
}
