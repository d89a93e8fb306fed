package hashing

import (
	"strconv"
	"strings"
)

// BinaryRepresentation renders every byte of digest as binary digits and
// concatenates the results.
//
// When padded is false each byte is rendered without a fixed width, so the
// byte 3 becomes "11" and the byte 0 becomes "0". This is how the reference
// chain measures difficulty, and it means a "00" prefix can only be met by
// two leading zero bytes. When padded is true every byte takes exactly eight
// digits.
func BinaryRepresentation(digest []byte, padded bool) string {
	var builder strings.Builder
	builder.Grow(len(digest) * 8)
	for _, b := range digest {
		digits := strconv.FormatUint(uint64(b), 2)
		if padded {
			builder.WriteString(strings.Repeat("0", 8-len(digits)))
		}
		builder.WriteString(digits)
	}
	return builder.String()
}

// MeetsDifficulty returns whether the binary representation of digest starts
// with prefix.
func MeetsDifficulty(digest []byte, prefix string, padded bool) bool {
	return strings.HasPrefix(BinaryRepresentation(digest, padded), prefix)
}
