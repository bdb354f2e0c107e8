// Package ambient holds small pure helpers shared by two or more packages
// that don't belong to any one package's own domain (binary alignment
// checks, used by both the memory event handler's SIRM validation and a
// port's device-address validation).
package ambient

// Aligned reports whether v is a multiple of alignment. An alignment <= 0
// is treated as "no constraint" and always reports true.
func Aligned(v, alignment int64) bool {
	if alignment <= 0 {
		return true
	}
	return v%alignment == 0
}
