package torrentparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/givxl33t/torrentinfo/bencode"
)

func TestNewTorrentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.torrent")
	if err := os.WriteFile(path, singleFileTorrent(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := New(path)
	if err != nil {
		t.Fatalf("New(%s): %v", path, err)
	}
	if src.Torrent == nil {
		t.Fatal("Torrent = nil for a .torrent source")
	}
	if src.Torrent.InfoHashHex() != singleFileInfoHash {
		t.Errorf("InfoHashHex = %s, want %s", src.Torrent.InfoHashHex(), singleFileInfoHash)
	}
	if src.Magnet.InfoHash != src.Torrent.InfoHash() || src.Magnet.Name != "x" {
		t.Errorf("Magnet = %+v", src.Magnet)
	}
	if got, want := src.Magnet.String(), src.Torrent.MagnetLink(); got != want {
		t.Errorf("Magnet.String() = %s, want %s", got, want)
	}

	if _, err := NewWith(&bencode.Decoder{MaxDepth: 1}, path); !errors.Is(err, bencode.ErrNestingTooDeep) {
		t.Errorf("NewWith(MaxDepth 1) error = %v, want ErrNestingTooDeep", err)
	}
}

func TestNewMagnetLink(t *testing.T) {
	src, err := New("magnet:?xt=urn:btih:" + singleFileInfoHash + "&dn=x&tr=http%3A%2F%2Ftracker%2F")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if src.Torrent != nil {
		t.Errorf("Torrent = %+v for a magnet source, want nil", src.Torrent)
	}
	if len(src.Magnet.TrackerURLs) != 1 || src.Magnet.TrackerURLs[0] != "http://tracker/" {
		t.Fatalf("TrackerURLs = %q", src.Magnet.TrackerURLs)
	}

	// The metadata arrives separately and must match the link.
	tf := TorrentFile{Announce: src.Magnet.TrackerURLs[0]}
	if err := tf.AppendMetadata(singleFileInfo()); err != nil {
		t.Fatalf("AppendMetadata: %v", err)
	}
	if tf.InfoHash() != src.Magnet.InfoHash {
		t.Errorf("InfoHash = %x, want %x", tf.InfoHash(), src.Magnet.InfoHash)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New("sample.txt"); err == nil {
		t.Error("New accepted a source that is neither a .torrent file nor a magnet link")
	}
	if _, err := New("magnet:?dn=x"); !errors.Is(err, ErrInvalidMagnet) {
		t.Errorf("New(magnet without xt) error = %v, want ErrInvalidMagnet", err)
	}
	if _, err := New(filepath.Join(t.TempDir(), "missing.torrent")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("New(missing file) error = %v, want os.ErrNotExist", err)
	}
}
