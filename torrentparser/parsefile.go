package torrentparser

import (
	"fmt"
	"os"

	"github.com/givxl33t/torrentinfo/bencode"
)

// parses a raw torrent file
func ParseTorrentFile(path string) (TorrentFile, error) {
	return parseTorrentFileWith(&bencode.Decoder{}, path)
}

func parseTorrentFileWith(dec *bencode.Decoder, path string) (TorrentFile, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return TorrentFile{}, err
	}

	tf, err := ParseWith(dec, data)
	if err != nil {
		return TorrentFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return tf, nil
}
