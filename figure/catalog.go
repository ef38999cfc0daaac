package figure

import (
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/zalepa/nbastandings/standings"
)

// noTeamsKey caches the frameless figure shared by every non-empty selection
// that names no team in the table.
const noTeamsKey = "teams:none"

// Catalog builds figures for team selections over one standings table and
// memoizes them. The table never changes, so entries never expire. Keys only
// ever hold teams from the table. Returned specs are shared between callers
// and must be treated as read-only.
type Catalog struct {
	table *standings.Table
	known map[string]bool
	c     *cache.Cache
}

// NewCatalog returns an empty catalog over table.
func NewCatalog(table *standings.Table) *Catalog {
	return &Catalog{
		table: table,
		known: lo.SliceToMap(table.Teams(), func(team string) (string, bool) { return team, true }),
		c:     cache.New(cache.NoExpiration, time.Hour),
	}
}

// ForTeams returns the figure for the given teams. An empty selection means
// the whole table. Names not in the table are ignored; a selection of only
// unknown names gets a figure with no frames.
func (c *Catalog) ForTeams(teams []string) *Spec {
	known := lo.Filter(teams, func(team string, _ int) bool { return c.known[team] })

	key := selectionKey(known)
	if len(teams) > 0 && len(known) == 0 {
		key = noTeamsKey
	}
	if v, ok := c.c.Get(key); ok {
		return v.(*Spec)
	}

	var records []standings.Record
	switch {
	case len(teams) == 0:
		records = c.table.Records()
	case len(known) > 0:
		records = c.table.ForTeams(known)
	}
	spec := Build(records)
	c.c.Set(key, spec, cache.NoExpiration)

	log.Debug().
		Str("evt.name", "figure.build").
		Str("teams", key).
		Int("frames", len(spec.Frames)).
		Msg("built figure")
	return spec
}

// Full returns the figure for the unfiltered table.
func (c *Catalog) Full() *Spec {
	return c.ForTeams(nil)
}

// selectionKey normalizes a selection so that order and duplicates do not
// produce distinct cache entries.
func selectionKey(teams []string) string {
	ts := lo.Uniq(teams)
	sort.Strings(ts)
	return "teams:" + strings.Join(ts, ",")
}
