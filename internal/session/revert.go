package session

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Revert restores every backup found under root: each file ending in the
// configured backup suffix overwrites its original and is then removed.
// It returns the restored original paths in sorted order.
func Revert(root, backupSuffix string) ([]string, error) {
	var backups []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, backupSuffix) {
			backups = append(backups, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s for backups: %w", root, err)
	}

	var restored []string
	for _, bak := range backups {
		orig := strings.TrimSuffix(bak, backupSuffix)
		data, err := os.ReadFile(bak)
		if err != nil {
			return restored, fmt.Errorf("reading backup %s: %w", bak, err)
		}
		if err := os.WriteFile(orig, data, 0o644); err != nil {
			return restored, fmt.Errorf("restoring %s: %w", orig, err)
		}
		if err := os.Remove(bak); err != nil {
			return restored, fmt.Errorf("removing backup %s: %w", bak, err)
		}
		restored = append(restored, orig)
	}
	sort.Strings(restored)
	return restored, nil
}
