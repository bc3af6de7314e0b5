// Package suggest offers "did you mean" hints when a title lookup misses.
package suggest

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/olm/internal/model"
)

// DefaultLimit is how many candidates NotFoundError mentions.
const DefaultLimit = 3

// Match is a fuzzy match against one link title.
type Match struct {
	Link           model.Link
	MatchedIndexes []int
	Score          int
}

// linkTitles implements fuzzy.Source for a link slice.
type linkTitles []model.Link

func (lt linkTitles) String(i int) string {
	return lt[i].Title
}

func (lt linkTitles) Len() int {
	return len(lt)
}

// Find matches query against link titles, best first, at most limit
// results (limit <= 0 means all).
func Find(links []model.Link, query string, limit int) []Match {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, linkTitles(links))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]Match, len(matches))
	for i, m := range matches {
		results[i] = Match{
			Link:           links[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// NotFoundError wraps model.ErrLinkNotFound for title, naming up to
// DefaultLimit similar titles when there are any.
func NotFoundError(links []model.Link, title string) error {
	matches := Find(links, title, DefaultLimit)
	if len(matches) == 0 {
		return fmt.Errorf("%q: %w", title, model.ErrLinkNotFound)
	}

	quoted := make([]string, len(matches))
	for i, m := range matches {
		quoted[i] = fmt.Sprintf("%q", m.Link.Title)
	}
	return fmt.Errorf("%q: %w (did you mean %s?)", title, model.ErrLinkNotFound, strings.Join(quoted, ", "))
}
