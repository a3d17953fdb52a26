package entity

// NodeID identifies a node of a docking tree. Zero means "no node".
type NodeID uint64

// NodeKind discriminates the node variants of a docking tree.
type NodeKind uint8

const (
	KindSplitter NodeKind = iota + 1
	KindFrame
	KindDrawer
	KindPanel
)

func (k NodeKind) String() string {
	switch k {
	case KindSplitter:
		return "splitter"
	case KindFrame:
		return "frame"
	case KindDrawer:
		return "drawer"
	case KindPanel:
		return "panel"
	}
	return "unknown"
}
