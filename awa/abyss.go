package awa

import "fmt"

// BubbleItem is a Bubble (scalar) or a DoubleBubble (ordered sequence of
// BubbleItems). Nesting is unbounded.
type BubbleItem interface {
	isBubbleItem()
	clone() BubbleItem
}

// Bubble is a leaf scalar. Its natural literal range is -128..127 (an 8-bit
// signed operand), but arithmetic is carried out at int32 width so
// intermediate broadcast results may exceed that range.
type Bubble int32

func (Bubble) isBubbleItem()        {}
func (b Bubble) clone() BubbleItem  { return b }

// DoubleBubble is a composite item: an ordered sequence of BubbleItems.
// Position 0 is the front (nearest the top of the enclosing abyss).
type DoubleBubble []BubbleItem

func (DoubleBubble) isBubbleItem() {}

func (d DoubleBubble) clone() BubbleItem {
	out := make(DoubleBubble, len(d))
	for i, v := range d {
		out[i] = v.clone()
	}
	return out
}

// BubbleAbyss is the VM's operand stack: an ordered sequence of BubbleItems
// whose front is the top.
type BubbleAbyss struct {
	items []BubbleItem
}

// Len returns the number of items currently on the abyss.
func (a *BubbleAbyss) Len() int {
	return len(a.items)
}

// Push places a Bubble with the given (sign-extended) value at the front.
func (a *BubbleAbyss) Push(val int8) {
	a.items = append([]BubbleItem{Bubble(int32(val))}, a.items...)
}

// PushItem places an arbitrary item at the front.
func (a *BubbleAbyss) PushItem(item BubbleItem) {
	a.items = append([]BubbleItem{item}, a.items...)
}

// Pop removes and returns the front item.
func (a *BubbleAbyss) Pop() (BubbleItem, error) {
	if len(a.items) == 0 {
		return nil, ErrAbyssEmpty
	}
	top := a.items[0]
	a.items = a.items[1:]
	return top, nil
}

// Peek returns the item at the given offset from the front without
// removing it. offset 0 is the top.
func (a *BubbleAbyss) Peek(offset int) (BubbleItem, error) {
	if offset < 0 || offset >= len(a.items) {
		return nil, ErrAbyssEmpty
	}
	return a.items[offset], nil
}

// Duplicate deep-copies the front item and pushes the copy at the front.
func (a *BubbleAbyss) Duplicate() error {
	top, err := a.Peek(0)
	if err != nil {
		return err
	}
	a.PushItem(top.clone())
	return nil
}

// PopBubble removes the front item. If it was a Bubble it is simply
// discarded; if it was a DoubleBubble, its contents replace it in place —
// the DoubleBubble's own front becomes the new front of the abyss, order
// preserved.
func (a *BubbleAbyss) PopBubble() error {
	top, err := a.Pop()
	if err != nil {
		return err
	}
	if double, ok := top.(DoubleBubble); ok {
		a.items = append(append([]BubbleItem{}, double...), a.items...)
	}
	return nil
}

// Surround removes the front n items (preserving order) and pushes them as
// a single DoubleBubble at the front. n == 0 pushes an empty DoubleBubble.
func (a *BubbleAbyss) Surround(n int) error {
	if n > len(a.items) {
		return ErrAbyssOutOfBounds
	}
	front := append(DoubleBubble{}, a.items[:n]...)
	a.items = append([]BubbleItem{front}, a.items[n:]...)
	return nil
}

// Submerge pops the front item; if n == 0 it is pushed at the back of the
// abyss, otherwise it is inserted so that exactly n items precede it
// (position n from the front) among the items that remain after the pop.
func (a *BubbleAbyss) Submerge(n int) error {
	top, err := a.Pop()
	if err != nil {
		return err
	}
	if n == 0 {
		a.items = append(a.items, top)
		return nil
	}
	if n > len(a.items) {
		return ErrAbyssOutOfBounds
	}
	rest := make([]BubbleItem, 0, len(a.items)+1)
	rest = append(rest, a.items[:n]...)
	rest = append(rest, top)
	rest = append(rest, a.items[n:]...)
	a.items = rest
	return nil
}

// Count pushes 0 if the front item is a Bubble, or its top-level element
// count if it is a DoubleBubble, at the front. It does not consume the
// existing front item.
func (a *BubbleAbyss) Count() error {
	top, err := a.Peek(0)
	if err != nil {
		return err
	}
	switch v := top.(type) {
	case Bubble:
		a.PushItem(Bubble(0))
	case DoubleBubble:
		a.PushItem(Bubble(len(v)))
	}
	return nil
}

// Compare evaluates pred(a, b) where a is the front scalar and b is the
// next scalar, without modifying the abyss. If either item is a
// DoubleBubble, it returns false without unwrapping.
func (a *BubbleAbyss) Compare(pred func(x, y int32) bool) (bool, error) {
	aItem, err := a.Peek(0)
	if err != nil {
		return false, err
	}
	bItem, err := a.Peek(1)
	if err != nil {
		return false, err
	}
	aVal, ok := aItem.(Bubble)
	if !ok {
		return false, nil
	}
	bVal, ok := bItem.(Bubble)
	if !ok {
		return false, nil
	}
	return pred(int32(aVal), int32(bVal)), nil
}

// Merge pops a (front) then b (next) and pushes merge(a, b) at the front.
// Unlike the broadcasting arithmetic ops, merge never recurses
// element-wise: it only ever prepends/appends/concatenates/sums.
func (a *BubbleAbyss) Merge() error {
	first, err := a.Pop()
	if err != nil {
		return err
	}
	second, err := a.Pop()
	if err != nil {
		return err
	}
	a.PushItem(merge(first, second))
	return nil
}

func merge(a, b BubbleItem) BubbleItem {
	switch av := a.(type) {
	case Bubble:
		switch bv := b.(type) {
		case Bubble:
			return Bubble(av + bv)
		case DoubleBubble:
			out := make(DoubleBubble, 0, len(bv)+1)
			out = append(out, av)
			out = append(out, bv...)
			return out
		}
	case DoubleBubble:
		switch bv := b.(type) {
		case Bubble:
			out := make(DoubleBubble, 0, len(av)+1)
			out = append(out, av...)
			out = append(out, bv)
			return out
		case DoubleBubble:
			out := make(DoubleBubble, 0, len(av)+len(bv))
			out = append(out, av...)
			out = append(out, bv...)
			return out
		}
	}
	panic(fmt.Sprintf("unreachable merge(%T, %T)", a, b))
}

// BroadcastOp is a leaf-level binary operation used by the broadcasting
// arithmetic primitive (add/sub/mul/div/mod).
type BroadcastOp func(x, y int32) (int32, error)

// Broadcast pops a (front) then b (next) and pushes broadcast(op)(a, b) at
// the front. A scalar paired with a DoubleBubble is applied to each of its
// elements; two DoubleBubbles are combined element-wise, truncated to the
// shorter length.
func (a *BubbleAbyss) Broadcast(op BroadcastOp) error {
	first, err := a.Pop()
	if err != nil {
		return err
	}
	second, err := a.Pop()
	if err != nil {
		return err
	}
	res, err := broadcast(first, second, op)
	if err != nil {
		return err
	}
	a.PushItem(res)
	return nil
}

func broadcast(a, b BubbleItem, op BroadcastOp) (BubbleItem, error) {
	switch av := a.(type) {
	case Bubble:
		switch bv := b.(type) {
		case Bubble:
			r, err := op(int32(av), int32(bv))
			if err != nil {
				return nil, err
			}
			return Bubble(r), nil
		case DoubleBubble:
			out := make(DoubleBubble, len(bv))
			for i, elem := range bv {
				r, err := broadcast(av, elem, op)
				if err != nil {
					return nil, err
				}
				out[i] = r
			}
			return out, nil
		}
	case DoubleBubble:
		switch bv := b.(type) {
		case Bubble:
			out := make(DoubleBubble, len(av))
			for i, elem := range av {
				r, err := broadcast(elem, bv, op)
				if err != nil {
					return nil, err
				}
				out[i] = r
			}
			return out, nil
		case DoubleBubble:
			n := len(av)
			if len(bv) < n {
				n = len(bv)
			}
			out := make(DoubleBubble, n)
			for i := 0; i < n; i++ {
				r, err := broadcast(av[i], bv[i], op)
				if err != nil {
					return nil, err
				}
				out[i] = r
			}
			return out, nil
		}
	}
	panic(fmt.Sprintf("unreachable broadcast(%T, %T)", a, b))
}

// Divide pops a (front) then b (next) and pushes a DoubleBubble(quotient,
// remainder) at the front, both broadcast over the same operand shape.
func (a *BubbleAbyss) Divide() error {
	first, err := a.Pop()
	if err != nil {
		return err
	}
	second, err := a.Pop()
	if err != nil {
		return err
	}
	quot, err := broadcast(first, second, opDiv)
	if err != nil {
		return err
	}
	rem, err := broadcast(first, second, opMod)
	if err != nil {
		return err
	}
	a.PushItem(DoubleBubble{quot, rem})
	return nil
}

func opAdd(x, y int32) (int32, error) { return x + y, nil }
func opSub(x, y int32) (int32, error) { return x - y, nil }
func opMul(x, y int32) (int32, error) { return x * y, nil }

func opDiv(x, y int32) (int32, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

func opMod(x, y int32) (int32, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x % y, nil
}
