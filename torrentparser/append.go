package torrentparser

import (
	"bytes"
	"fmt"

	"github.com/givxl33t/torrentinfo/bencode"
)

// AppendMetadata adds the info dictionary (aka the metadata of a torrent)
// to t. It is meant for torrents known only by tracker and info hash, whose
// metadata was fetched out of band. The metadata bytes are kept as RawInfo.
func (t *TorrentFile) AppendMetadata(metadata []byte) error {
	v, err := bencode.Unmarshal(metadata)
	if err != nil {
		return fmt.Errorf("unmarshalling info dict: %w", err)
	}

	info, err := InfoFromValue(v)
	if err != nil {
		return fmt.Errorf("parsing metadata: %w", err)
	}

	t.Info = info
	t.RawInfo = bytes.Clone(metadata)
	return nil
}
