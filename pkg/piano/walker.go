package piano

// memberVisitor is called once for every usable member of a struct node.
// value is the member's <value> element.
type memberVisitor[T any] func(rec *T, key string, value *node) error

// walkStruct visits the <member> children of a <struct> element in document
// order. Within a member the first <name> and the first <value> win; members
// without a name, without a value or with an empty <value/> are skipped.
// Nested structs are not descended into.
func walkStruct[T any](structNode *node, rec *T, visit memberVisitor[T]) error {
	for _, member := range structNode.children {
		if member.name != "member" {
			continue
		}

		var name, value *node
		for _, c := range member.children {
			switch {
			case c.name == "name" && name == nil:
				name = c
			case c.name == "value" && value == nil:
				value = c
			}
		}
		if name == nil || name.text == "" || value == nil || value.empty() {
			continue
		}

		if err := visit(rec, name.text, value); err != nil {
			return err
		}
	}
	return nil
}
