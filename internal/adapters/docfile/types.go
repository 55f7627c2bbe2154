package docfile

import "github.com/bft-labs/sftype/internal/ports"

// nodeTypes lists the known node types and whether they hold children.
var nodeTypes = map[ports.NodeType]bool{
	ports.TypeText:      false,
	"DOCUMENT":          true,
	"PAGE":              true,
	"CANVAS":            true,
	"SECTION":           true,
	"FRAME":             true,
	"GROUP":             true,
	"COMPONENT":         true,
	"COMPONENT_SET":     true,
	"INSTANCE":          true,
	"BOOLEAN_OPERATION": true,
	"RECTANGLE":         false,
	"ELLIPSE":           false,
	"LINE":              false,
	"VECTOR":            false,
	"STAR":              false,
	"POLYGON":           false,
	"SLICE":             false,
}

func knownType(t ports.NodeType) bool {
	_, ok := nodeTypes[t]
	return ok
}

func isContainer(t ports.NodeType) bool {
	return nodeTypes[t]
}
