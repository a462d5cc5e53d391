package search

import (
	"sort"

	"github.com/kailas-cloud/docdex/internal/domain/search/result"
)

// rank orders results by relevance descending and truncates to limit.
// The sort is stable: equal scores keep their pre-sort relative order.
func rank(results []result.Result, limit int) []result.Result {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance() > results[j].Relevance()
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
