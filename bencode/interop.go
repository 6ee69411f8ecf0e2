package bencode

import zeebo "github.com/zeebo/bencode"

var (
	_ zeebo.Marshaler   = Value{}
	_ zeebo.Unmarshaler = (*Value)(nil)
)

// MarshalBencode lets a Value sit inside structs encoded by
// github.com/zeebo/bencode.
func (v Value) MarshalBencode() ([]byte, error) {
	return Encode(v), nil
}

// UnmarshalBencode lets a Value receive a field decoded by
// github.com/zeebo/bencode.
func (v *Value) UnmarshalBencode(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
