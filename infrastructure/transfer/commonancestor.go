package transfer

import (
	"path/filepath"
	"strings"
)

// commonAncestor picks the root every selected file's relative path is
// computed against. It deliberately diverges from a longest-common-prefix
// algorithm: starting from the parent of the first file, each subsequent
// file's parent replaces the candidate only if it has strictly fewer path
// components — ties keep the incumbent. This matches a documented legacy
// behavior of placing siblings under the first-seen parent rather than
// their own, deeper, common directory.
func commonAncestor(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	candidate := filepath.Dir(paths[0])
	candidateDepth := pathDepth(candidate)

	for _, p := range paths[1:] {
		parent := filepath.Dir(p)
		if depth := pathDepth(parent); depth < candidateDepth {
			candidate = parent
			candidateDepth = depth
		}
	}

	return candidate
}

func pathDepth(p string) int {
	clean := filepath.Clean(p)
	clean = filepath.ToSlash(clean)
	clean = strings.Trim(clean, "/")
	if clean == "" || clean == "." {
		return 0
	}
	return len(strings.Split(clean, "/"))
}
