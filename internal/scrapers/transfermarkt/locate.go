package transfermarkt

import (
	"strings"

	"tmscraper/pkg/htmlutil"

	"github.com/cockroachdb/errors"
)

// LocatePlayer reads the first player of a quick-search result page. Later candidates
// are never considered, the search ranking is trusted as is.
//
// The returned slice holds zero or one identity, an empty result is reported as ErrNotFound.
func LocatePlayer(name string, doc htmlutil.Node) ([]PlayerIdentity, error) {
	table, ok := doc.First("table.items")
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q: no results table", name)
	}

	var players []PlayerIdentity
	for _, row := range table.All("table.inline-table") {
		link, ok := row.First("a.spielprofil_tooltip")
		if !ok {
			return nil, errors.Wrapf(ErrNotFound, "%q: no profile link", name)
		}
		id, _ := link.Attr("id")
		href, _ := link.Attr("href")
		slug := profileSlug(href)
		if id == "" || slug == "" {
			return nil, errors.Wrapf(ErrNotFound, "%q: incomplete profile link %q", name, href)
		}

		players = append(players, PlayerIdentity{
			FullName:    name,
			PlayerId:    id,
			ProfilePath: slug,
		})
		break
	}

	if len(players) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "%q: no player matched", name)
	}
	return players, nil
}

// profileSlug returns the first path segment of a profile link,
// "/gianluigi-buffon/profil/spieler/5023" -> "gianluigi-buffon".
func profileSlug(href string) string {
	parts := strings.Split(href, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
