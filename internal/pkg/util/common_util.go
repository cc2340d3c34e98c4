package util

import (
	"strconv"
)

// StrSliceToUint64Slice converts redis set members back to ids.
func StrSliceToUint64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PtrUint64 converts a uint64 to *uint64.
func PtrUint64(v uint64) *uint64 {
	return &v
}
