package torrentparser

import (
	"fmt"

	zeebo "github.com/zeebo/bencode"
)

// HashLen is the length of a SHA-1 piece hash.
const HashLen = 20

// PieceHashes holds the SHA-1 hash of every piece, in piece order.
type PieceHashes [][HashLen]byte

// ParsePieceHashes splits the pieces blob into 20-byte hashes. A blob whose
// length is not a multiple of 20 is rejected, never truncated.
func ParsePieceHashes(blob []byte) (PieceHashes, error) {
	if len(blob)%HashLen != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPiecesLength, len(blob))
	}
	hashes := make(PieceHashes, len(blob)/HashLen)
	for i := range hashes {
		copy(hashes[i][:], blob[i*HashLen:(i+1)*HashLen])
	}
	return hashes, nil
}

// Bytes concatenates the hashes back into a single blob.
func (p PieceHashes) Bytes() []byte {
	blob := make([]byte, 0, len(p)*HashLen)
	for _, h := range p {
		blob = append(blob, h[:]...)
	}
	return blob
}

func (p PieceHashes) MarshalBencode() ([]byte, error) {
	return zeebo.EncodeBytes(p.Bytes())
}

func (p *PieceHashes) UnmarshalBencode(data []byte) error {
	var blob []byte
	if err := zeebo.DecodeBytes(data, &blob); err != nil {
		return fmt.Errorf("unmarshalling pieces: %w", err)
	}
	hashes, err := ParsePieceHashes(blob)
	if err != nil {
		return err
	}
	*p = hashes
	return nil
}
