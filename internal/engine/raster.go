package engine

import "fmt"

// Rasterize expands an interval into one entry per tick of
// [indexStart, indexEnd]. indexStart belongs to the interval's later
// timestamp. The returned entries only carry the payload and the variant.
func (e *Engine) Rasterize(w Window, indexStart, indexEnd int, payload Payload) (Items, error) {
	if indexStart > indexEnd {
		return nil, fmt.Errorf("%w: start index %d is after end index %d", ErrInvalidInterval, indexStart, indexEnd)
	}

	items := make(Items, indexEnd-indexStart+1)
	for i := indexStart; i <= indexEnd; i++ {
		t := e.TimeFromIndex(w, i)
		entry := Entry{
			Time:                t,
			ActivityLineVariant: variantAt(i, indexStart, indexEnd),
		}
		payload.apply(&entry)
		items[Key(t)] = entry
	}

	return items, nil
}

func variantAt(i, indexStart, indexEnd int) Variant {
	switch {
	case indexStart == indexEnd:
		return VariantRound
	case i == indexStart:
		return VariantFirst
	case i == indexEnd:
		return VariantLast
	}
	return VariantMiddle
}
