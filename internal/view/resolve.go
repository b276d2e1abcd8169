package view

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxLinkHops bounds symlink-chain following so that a misconfigured view
// (view link → product bucket → raw source → ...) can never loop forever.
const MaxLinkHops = 8

// ErrLinkChainTooLong reports a chain exceeding MaxLinkHops, which is
// treated as a resolution failure rather than followed further.
var ErrLinkChainTooLong = errors.New("symlink chain exceeds hop limit")

// LinkState classifies the outcome of following a view link.
type LinkState int

const (
	LinkResolved     LinkState = iota //chain ends at an existing non-link entry
	LinkBroken                        //chain ends at a path that does not exist
	LinkUnresolvable                  //chain longer than the hop limit (cycle suspect)
)

// FollowLink resolves a chain of symlinks hop by hop without delegating to
// the OS resolver, so that the hop count stays observable and bounded.
// Relative link targets are interpreted against the directory of the link
// holding them.
func FollowLink(path string) (final string, state LinkState, err error) {
	current := path
	for hop := 0; hop <= MaxLinkHops; hop++ {
		info, statErr := os.Lstat(current)
		if statErr != nil {
			return current, LinkBroken, nil
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return current, LinkResolved, nil
		}
		target, readErr := os.Readlink(current)
		if readErr != nil {
			return current, LinkBroken, fmt.Errorf("unreadable symlink %s: %w", current, readErr)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = filepath.Clean(target)
	}
	return current, LinkUnresolvable, fmt.Errorf("%w: %s", ErrLinkChainTooLong, path)
}
