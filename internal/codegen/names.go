package codegen

import (
	"fmt"

	"bdl/token"
)

// nameGenerator hands out synthetic names. One counter covers a whole
// compilation so sibling and nested loops never collide.
type nameGenerator struct {
	next int
}

func (n *nameGenerator) reset() {
	n.next = 0
}

func (n *nameGenerator) nextID() int {
	id := n.next
	n.next++
	return id
}

func synthetic(kind string, id int) string {
	return fmt.Sprintf("%s%s%d", token.ReservedPrefix, kind, id)
}
