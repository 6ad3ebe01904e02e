package aria

import (
	"html"
	"io"
	"strings"
)

// VisuallyHiddenStyle keeps content in the accessibility tree while removing
// it from the visual layout.
const VisuallyHiddenStyle = "border:0;clip:rect(0 0 0 0);height:1px;margin:-1px;overflow:hidden;padding:0;position:absolute;white-space:nowrap;width:1px"

// NodeKind identifies how a Node renders.
type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeHTML
	NodeFragment
	NodeBlock
	NodeVisuallyHidden
)

// Node is a small renderable tree used where a descriptor carries content
// rather than a plain string (the group label children).
type Node struct {
	Kind     NodeKind
	Value    string
	Children []Node
}

// Text wraps plain text; it is escaped when rendered.
func Text(value string) Node {
	return Node{Kind: NodeText, Value: value}
}

// HTML wraps trusted markup that is written verbatim.
func HTML(markup string) Node {
	return Node{Kind: NodeHTML, Value: markup}
}

// Fragment groups nodes without a wrapping element.
func Fragment(children ...Node) Node {
	return Node{Kind: NodeFragment, Children: children}
}

// Block wraps nodes in a div.
func Block(children ...Node) Node {
	return Node{Kind: NodeBlock, Children: children}
}

// VisuallyHidden wraps nodes in a div that only assistive technology sees.
func VisuallyHidden(children ...Node) Node {
	return Node{Kind: NodeVisuallyHidden, Children: children}
}

// IsEmpty reports whether the node renders no content at all. Wrapping
// elements around empty content still count as empty.
func (n Node) IsEmpty() bool {
	switch n.Kind {
	case NodeText, NodeHTML:
		return strings.TrimSpace(n.Value) == ""
	default:
		for _, child := range n.Children {
			if !child.IsEmpty() {
				return false
			}
		}
		return true
	}
}

// WriteTo renders the node as HTML.
func (n Node) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	n.render(&b)
	written, err := io.WriteString(w, b.String())
	return int64(written), err
}

// String renders the node as HTML.
func (n Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n Node) render(b *strings.Builder) {
	switch n.Kind {
	case NodeText:
		b.WriteString(html.EscapeString(n.Value))
	case NodeHTML:
		b.WriteString(n.Value)
	case NodeFragment:
		n.renderChildren(b)
	case NodeBlock:
		b.WriteString("<div>")
		n.renderChildren(b)
		b.WriteString("</div>")
	case NodeVisuallyHidden:
		b.WriteString(`<div style="`)
		b.WriteString(VisuallyHiddenStyle)
		b.WriteString(`">`)
		n.renderChildren(b)
		b.WriteString("</div>")
	}
}

func (n Node) renderChildren(b *strings.Builder) {
	for _, child := range n.Children {
		child.render(b)
	}
}
