package torrentparser

import (
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidMagnet = errors.New("invalid magnet link")

const btihPrefix = "urn:btih:"

// Magnet is the content of a magnet link: enough to find a torrent, not
// enough to download it without first fetching its metadata.
type Magnet struct {
	InfoHash    [HashLen]byte
	TrackerURLs []string
	Name        string
}

// Magnet returns the magnet of t: its info hash, name and trackers.
func (t TorrentFile) Magnet() Magnet {
	return Magnet{
		InfoHash:    t.InfoHash(),
		TrackerURLs: t.TrackerURLs(),
		Name:        t.Info.Name,
	}
}

// MagnetLink renders t as a magnet URI with its info hash, name and trackers.
func (t TorrentFile) MagnetLink() string {
	return t.Magnet().String()
}

// String renders m as a magnet URI.
func (m Magnet) String() string {
	var b strings.Builder
	b.WriteString("magnet:?xt=" + btihPrefix + hex.EncodeToString(m.InfoHash[:]))
	if m.Name != "" {
		b.WriteString("&dn=" + url.QueryEscape(m.Name))
	}
	for _, tr := range m.TrackerURLs {
		b.WriteString("&tr=" + url.QueryEscape(tr))
	}
	return b.String()
}

// parses a torrent magnet link
func ParseMagnetLink(magnetLink string) (Magnet, error) {
	link, err := url.Parse(magnetLink)
	if err != nil {
		return Magnet{}, fmt.Errorf("failed to parse magnet link: %w", err)
	}
	if link.Scheme != "magnet" {
		return Magnet{}, fmt.Errorf("%w: scheme %q", ErrInvalidMagnet, link.Scheme)
	}

	query := link.Query()
	xts := query["xt"]
	if len(xts) != 1 {
		return Magnet{}, fmt.Errorf("%w: want one xt, got %d", ErrInvalidMagnet, len(xts))
	}
	if !strings.HasPrefix(xts[0], btihPrefix) {
		return Magnet{}, fmt.Errorf("%w: xt %q is not a btih urn", ErrInvalidMagnet, xts[0])
	}

	infoHash, err := decodeBTIH(strings.TrimPrefix(xts[0], btihPrefix))
	if err != nil {
		return Magnet{}, err
	}

	return Magnet{
		InfoHash:    infoHash,
		TrackerURLs: query["tr"],
		Name:        query.Get("dn"),
	}, nil
}

// decodeBTIH accepts the 40 character hex form and the 32 character
// base32 form of an info hash.
func decodeBTIH(s string) ([HashLen]byte, error) {
	var infoHash [HashLen]byte
	var raw []byte
	var err error

	switch len(s) {
	case 40:
		raw, err = hex.DecodeString(s)
	case 32:
		raw, err = base32.StdEncoding.DecodeString(strings.ToUpper(s))
	default:
		return infoHash, fmt.Errorf("%w: info hash %q has length %d", ErrInvalidMagnet, s, len(s))
	}
	if err != nil {
		return infoHash, fmt.Errorf("%w: info hash %q: %v", ErrInvalidMagnet, s, err)
	}

	copy(infoHash[:], raw)
	return infoHash, nil
}
