// Package curate deduplicates a scored template corpus by structural
// signature and ranks the survivors into a Top-N set.
package curate

import (
	"cmp"
	"slices"
)

// DefaultTopN is the size of the curated set.
const DefaultTopN = 300

// Result is the outcome of one curation pass.
type Result struct {
	Scored   int    `json:"scored"`
	Deduped  int    `json:"deduped"`
	Unsigned int    `json:"unsigned"`
	Items    []Item `json:"items"`
}

// Dedup keeps one survivor per structural signature: the highest score,
// then the largest size. Earlier files win exact ties. Items without a
// signature are dropped. Survivors are returned in file order.
func Dedup(items []Item) []Item {
	ordered := slices.Clone(items)
	slices.SortStableFunc(ordered, func(a, b Item) int {
		return cmp.Compare(a.File, b.File)
	})

	best := make(map[string]int)
	survivors := make([]Item, 0, len(ordered))
	for _, it := range ordered {
		if !it.HasSignature() {
			continue
		}
		idx, seen := best[it.StructureHash]
		if !seen {
			best[it.StructureHash] = len(survivors)
			survivors = append(survivors, it)
			continue
		}
		if beats(it, survivors[idx]) {
			survivors[idx] = it
		}
	}
	return survivors
}

func beats(a, b Item) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Size > b.Size
}

// Rank orders items by score, CTA presence and table count, all descending,
// and truncates to topN. A non-positive topN keeps everything.
func Rank(items []Item, topN int) []Item {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, compareRank)
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func compareRank(a, b Item) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if a.HasCTA != b.HasCTA {
		if a.HasCTA {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.TableCount, a.TableCount); c != 0 {
		return c
	}
	return cmp.Compare(a.File, b.File)
}

// Curate runs Dedup followed by Rank.
func Curate(items []Item, topN int) Result {
	deduped := Dedup(items)

	unsigned := 0
	for _, it := range items {
		if !it.HasSignature() {
			unsigned++
		}
	}

	return Result{
		Scored:   len(items),
		Deduped:  len(deduped),
		Unsigned: unsigned,
		Items:    Rank(deduped, topN),
	}
}
