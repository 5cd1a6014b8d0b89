package piano

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// node is an element of a parsed response. Whitespace-only character data is
// dropped, so text is empty unless the element carries real content.
type node struct {
	name     string
	text     string
	children []*node
}

// parseDocument reads doc into a tree and returns its root element. The
// returned tree holds its own copies of every name and text.
func parseDocument(doc string) (*node, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))

	var root *node
	var stack []*node
	var text []string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, &DocumentParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else if root == nil {
				root = n
			} else {
				return nil, &DocumentParseError{Err: errors.New("more than one root element")}
			}
			stack = append(stack, n)
			text = append(text, "")
		case xml.EndElement:
			n := stack[len(stack)-1]
			if s := text[len(text)-1]; strings.TrimSpace(s) != "" {
				n.text = s
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) > 0 {
				text[len(text)-1] += string(t)
			}
		}
	}

	if root == nil {
		return nil, &DocumentParseError{Err: errors.New("document has no root element")}
	}
	return root, nil
}

// child returns the first element child of n called name.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// empty reports whether n has neither text nor element children.
func (n *node) empty() bool {
	return n.text == "" && len(n.children) == 0
}

// descend walks from root through the element names in path and returns the
// last one, or a ShapeError naming the first level that is missing.
func descend(root *node, path ...string) (*node, error) {
	cur := root
	walked := []string{root.name}
	for _, name := range path {
		next := cur.child(name)
		if next == nil {
			return nil, &ShapeError{Path: walked, Missing: name}
		}
		walked = append(walked, name)
		cur = next
	}
	return cur, nil
}
