package localfs

import "strings"

// IsHiddenName reports whether a bare file name is hidden. The special
// entries "." and ".." are not considered hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
