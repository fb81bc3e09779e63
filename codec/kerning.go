package codec

import (
	"maps"
	"slices"

	glyphscast "github.com/reoring/glyphscast"
)

// KerningGrid maps master ID -> left glyph -> right glyph -> adjustment.
type KerningGrid map[string]map[string]map[string]int

// Kerning casts the leaf values of a three level kerning mapping to ints.
// The input is left untouched; a new grid is returned. Keys are walked in
// sorted order so the reported failure is stable.
func Kerning(v any) (any, error) {
	masters, ok := v.(map[string]any)
	if !ok {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidType, "mapping of masters", nil)
	}
	root := glyphscast.Root()
	grid := make(KerningGrid, len(masters))
	for _, masterID := range slices.Sorted(maps.Keys(masters)) {
		at := root.Field(masterID)
		lefts, ok := masters[masterID].(map[string]any)
		if !ok {
			return nil, rebase(glyphscast.Fail(glyphscast.CodeInvalidType, "mapping of left glyphs", nil), at)
		}
		byLeft := make(map[string]map[string]int, len(lefts))
		for _, left := range slices.Sorted(maps.Keys(lefts)) {
			rights, ok := lefts[left].(map[string]any)
			if !ok {
				return nil, rebase(glyphscast.Fail(glyphscast.CodeInvalidType, "mapping of right glyphs", nil), at.Field(left))
			}
			byRight := make(map[string]int, len(rights))
			for _, right := range slices.Sorted(maps.Keys(rights)) {
				n, err := toInt(rights[right])
				if err != nil {
					return nil, rebase(err, at.Field(left).Field(right))
				}
				byRight[right] = n
			}
			byLeft[left] = byRight
		}
		grid[masterID] = byLeft
	}
	return grid, nil
}

func rebase(err error, at glyphscast.PathRef) error {
	iss, ok := glyphscast.AsIssues(err)
	if !ok {
		return err
	}
	return iss.Rebase(at.Pointer())
}
