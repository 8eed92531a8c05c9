package drive

import (
	"fmt"
	"regexp"
)

// Folder reference shapes, tried in priority order:
//  1. path segment following /folders/
//  2. id= query parameter
//  3. the whole string, if it is already a bare identifier
var (
	folderPathPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
	idParamPattern    = regexp.MustCompile(`(?:^|[?&])id=([a-zA-Z0-9_-]+)`)
	bareIDPattern     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractFolderID derives an opaque folder identifier from a user-supplied
// URL or string. It returns ErrInvalidReference when no recognized shape
// matches.
func ExtractFolderID(ref string) (string, error) {
	if m := folderPathPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if m := idParamPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if bareIDPattern.MatchString(ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReference, ref)
}
