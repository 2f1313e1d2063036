package transfer

import (
	"path"
	"strings"

	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"
)

// validateRelativePath rejects an empty path, an absolute path, or a path
// with any parent-directory ("..") segment, before the receiver ever
// opens a file. Other unclean forms such as "a/./b" are accepted. This is the one safety gate between an untrusted peer's
// chosen path string and the local filesystem.
func validateRelativePath(p string) error {
	if p == "" {
		return coreerrors.NewProtocol(coreerrors.PhaseReceivingFile, "empty relative path")
	}
	if path.IsAbs(p) {
		return coreerrors.NewProtocol(coreerrors.PhaseReceivingFile, "absolute path rejected: "+p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return coreerrors.NewProtocol(coreerrors.PhaseReceivingFile, "parent-directory reference rejected: "+p)
		}
	}
	return nil
}
