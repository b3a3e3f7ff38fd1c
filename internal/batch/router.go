package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/omsops/reorder-batch/internal/reorder"
)

// Router relocates processed job files into their outcome folder. Renames
// stay within one directory tree so the move is atomic on POSIX filesystems.
type Router struct {
	dir string
}

var outcomeFolders = []reorder.Folder{
	reorder.FolderDone,
	reorder.FolderFailed,
	reorder.FolderRejected,
	reorder.FolderAlreadyRefunded,
}

func NewRouter(dir string) (*Router, error) {
	for _, folder := range outcomeFolders {
		if err := os.MkdirAll(filepath.Join(dir, string(folder)), 0o755); err != nil {
			return nil, fmt.Errorf("create outcome folder %s: %w", folder, err)
		}
	}
	return &Router{dir: dir}, nil
}

// Route moves the file into the outcome folder, preserving its name.
func (r *Router) Route(file string, folder reorder.Folder) error {
	dest := filepath.Join(r.dir, string(folder), filepath.Base(file))
	if err := os.Rename(file, dest); err != nil {
		return fmt.Errorf("move %s to %s: %w", file, folder, err)
	}
	return nil
}
