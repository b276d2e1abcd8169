package view

import (
	"path/filepath"
	"sort"
)

// Entry is a leaf payload of a hierarchy tree: the name the link shall
// carry and the absolute path it shall point at.
type Entry struct {
	Name   string
	Target string
}

// Node is one level of a hierarchy tree keyed by classification segment.
// Leaf payloads and child branches may coexist on the same node.
type Node struct {
	Children map[string]*Node
	Files    []Entry
}

// NewTree returns an empty hierarchy root.
func NewTree() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// Insert attaches the entry at the node addressed by the segment path,
// creating intermediate branches as needed. An empty path attaches the
// entry to the receiver itself.
func (n *Node) Insert(segments []string, e Entry) {
	node := n
	for _, segment := range segments {
		child, known := node.Children[segment]
		if !known {
			child = &Node{Children: make(map[string]*Node)}
			node.Children[segment] = child
		}
		node = child
	}
	node.Files = append(node.Files, e)
}

func (n *Node) sortedSegments() []string {
	segments := make([]string, 0, len(n.Children))
	for segment := range n.Children {
		segments = append(segments, segment)
	}
	sort.Strings(segments)
	return segments
}

// Materialize walks the tree depth-first and creates directories plus
// symlinks under base. Chains of single-child branches are collapsed: a
// branch whose only content is one leaf places the file directly at the
// current directory level, a branch whose only content is one child
// branch contributes its folder name to an accumulated chain that is
// materialized in one go once a level with two or more children is
// reached. This keeps the resulting directory structure free of
// gratuitous single-entry wrapper folders.
//
// folderName maps a raw key segment to the directory name it shall get.
func (n *Node) Materialize(base string, folderName func(segment string) string, stats *Statistics) {
	n.materializeChildren(base, nil, folderName, stats)
}

func (n *Node) materializeChildren(base string, accumulated []string, folderName func(string) string, stats *Statistics) {
	for _, segment := range n.sortedSegments() {
		child := n.Children[segment]
		totalItems := len(child.Children) + len(child.Files)

		switch {
		case totalItems == 0:
			continue //nothing below, no directory warranted
		case totalItems == 1 && len(child.Files) == 1:
			//sole leaf: no intermediate folders, the link carries the classification in its name
			file := child.Files[0]
			CreateSymlink(file.Target, filepath.Join(base, file.Name), false, stats)
		case totalItems == 1 && len(child.Children) == 1:
			chain := make([]string, len(accumulated), len(accumulated)+1)
			copy(chain, accumulated)
			child.materializeChildren(base, append(chain, folderName(segment)), folderName, stats)
		default:
			dir := base
			for _, name := range accumulated {
				dir = filepath.Join(dir, name)
			}
			dir = filepath.Join(dir, folderName(segment))
			for _, file := range child.Files {
				CreateSymlink(file.Target, filepath.Join(dir, file.Name), false, stats)
			}
			child.materializeChildren(dir, nil, folderName, stats)
		}
	}
}
