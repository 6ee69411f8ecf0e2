package torrentparser

import (
	"path/filepath"

	"github.com/givxl33t/torrentinfo/bencode"
)

// TorrentFile represents the contents of a metainfo (.torrent) document.
//
// RawInfo keeps the info dictionary exactly as it appeared in the source
// bytes, so the hash a tracker expects can be checked against the
// canonical fingerprint.
type TorrentFile struct {
	Announce     string
	AnnounceList [][]string
	Info         Info
	RawInfo      []byte
}

// Info is the info dictionary: everything the info hash covers.
//
// Extra holds keys this package does not model (private, source, ...).
// They are written back on encode so the fingerprint covers the same
// field set that was decoded.
type Info struct {
	Name        string
	PieceLength int64
	Pieces      PieceHashes
	Layout      Layout
	Extra       []bencode.Entry
}

// Layout is either SingleFile or MultiFile, chosen by whether the info
// dictionary has a "length" or a "files" key.
type Layout interface {
	isLayout()
}

// SingleFile describes a torrent of one file named Info.Name.
type SingleFile struct {
	Length int64
}

// MultiFile describes a directory named Info.Name holding Files.
type MultiFile struct {
	Files []File
}

func (SingleFile) isLayout() {}
func (MultiFile) isLayout()  {}

// File is one entry of a multi-file torrent. Path is the list of
// subdirectories, the last element being the file name.
type File struct {
	Length int64
	Path   []string
	Extra  []bencode.Entry
}

// FileEntry is a file with its path flattened under the torrent name.
type FileEntry struct {
	Length int64
	Path   string
}

// TrackerURLs returns every tracker of the torrent. Per BEP0012 the
// announce key is only used when announce-list is absent.
func (t TorrentFile) TrackerURLs() []string {
	var urls []string
	for _, tier := range t.AnnounceList {
		urls = append(urls, tier...)
	}
	if len(urls) == 0 && t.Announce != "" {
		urls = append(urls, t.Announce)
	}
	return urls
}

// TotalLength sums the length of every file.
func (i Info) TotalLength() int64 {
	switch l := i.Layout.(type) {
	case SingleFile:
		return l.Length
	case MultiFile:
		var total int64
		for _, f := range l.Files {
			total += f.Length
		}
		return total
	}
	return 0
}

// Files lists the files of the torrent in order, with multi-file paths
// joined under the torrent name.
func (i Info) Files() []FileEntry {
	switch l := i.Layout.(type) {
	case SingleFile:
		return []FileEntry{{Length: l.Length, Path: i.Name}}
	case MultiFile:
		files := make([]FileEntry, 0, len(l.Files))
		for _, f := range l.Files {
			subPaths := append([]string{i.Name}, f.Path...)
			files = append(files, FileEntry{
				Length: f.Length,
				Path:   filepath.Join(subPaths...),
			})
		}
		return files
	}
	return nil
}
