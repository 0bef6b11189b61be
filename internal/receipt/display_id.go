// Package receipt renders printable receipts and WhatsApp checkout messages.
package receipt

import (
	"fmt"
	"unicode/utf16"
)

// DisplayID derives a short numeric code from an identifier. It is cosmetic:
// collisions are expected, so the code must never be used for lookups.
//
// The hash runs over UTF-16 code units with 32-bit wraparound (h = h*31 + c)
// so codes printed on existing receipts stay the same.
func DisplayID(s string, length int) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}

	mod := int64(1)
	for i := 0; i < length; i++ {
		mod *= 10
	}

	v := int64(h) % mod
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("%0*d", length, v)
}
