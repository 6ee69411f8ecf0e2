package torrentparser

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/givxl33t/torrentinfo/bencode"
)

// Fingerprint is the SHA-1 hash of the canonical encoding of the info
// dictionary. It only depends on the decoded values, never on the key
// order of the source document. Like ToValue, it expects Layout to be set.
func (i Info) Fingerprint() [sha1.Size]byte {
	return sha1.Sum(bencode.Encode(i.ToValue()))
}

// InfoHash identifies the torrent to trackers and peers.
func (t TorrentFile) InfoHash() [sha1.Size]byte {
	return t.Info.Fingerprint()
}

func (t TorrentFile) InfoHashHex() string {
	h := t.InfoHash()
	return hex.EncodeToString(h[:])
}

// RawInfoHash hashes the info dictionary bytes exactly as they appeared in
// the source. It reports false when the source bytes were not kept.
func (t TorrentFile) RawInfoHash() ([sha1.Size]byte, bool) {
	if t.RawInfo == nil {
		return [sha1.Size]byte{}, false
	}
	return sha1.Sum(t.RawInfo), true
}
