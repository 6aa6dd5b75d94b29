package awa

import (
	"fmt"
	"strings"
)

// String renders a Bubble the way the disassembler/error dump does: as a
// quoted AwaSCII character when one exists, otherwise as a plain integer.
func (b Bubble) String() string {
	if c, err := CharOf(int(b)); err == nil {
		return quoteChar(c)
	}
	return fmt.Sprintf("%d", int32(b))
}

// String renders a DoubleBubble as a parenthesized, comma-separated list
// of its elements' String() forms.
func (d DoubleBubble) String() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = itemString(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func itemString(item BubbleItem) string {
	switch v := item.(type) {
	case Bubble:
		return v.String()
	case DoubleBubble:
		return v.String()
	default:
		return fmt.Sprintf("%v", item)
	}
}

// String renders the abyss front-to-back as "[len] item, item, ...", for
// use in verbose execution traces and error dumps.
func (a *BubbleAbyss) String() string {
	parts := make([]string, len(a.items))
	for i, v := range a.items {
		parts[i] = itemString(v)
	}
	return fmt.Sprintf("[%d] %s", len(a.items), strings.Join(parts, ", "))
}
