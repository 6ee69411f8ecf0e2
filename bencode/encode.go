package bencode

import (
	"sort"
	"strconv"
)

// Encode returns the canonical encoding of v. Dictionary keys are always
// written in ascending byte order, whatever order the entries are held in.
func Encode(v Value) []byte {
	return Append(nil, v)
}

// Append appends the canonical encoding of v to dst.
func Append(dst []byte, v Value) []byte {
	switch v.kind {
	case KindInt:
		dst = append(dst, 'i')
		dst = strconv.AppendInt(dst, v.i, 10)
		return append(dst, 'e')
	case KindList:
		dst = append(dst, 'l')
		for _, item := range v.l {
			dst = Append(dst, item)
		}
		return append(dst, 'e')
	case KindDict:
		return appendDict(dst, v.d)
	default:
		return appendBytes(dst, v.b)
	}
}

func appendBytes(dst, b []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(b)), 10)
	dst = append(dst, ':')
	return append(dst, b...)
}

func appendDict(dst []byte, entries []Entry) []byte {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	// Go string comparison is bytewise, which is the order bencode requires.
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	dst = append(dst, 'd')
	for _, e := range sorted {
		dst = appendBytes(dst, []byte(e.Key))
		dst = Append(dst, e.Value)
	}
	return append(dst, 'e')
}
