package transfermarkt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLocatePlayer(t *testing.T) {
	players, err := LocatePlayer("Gianluigi Buffon", loadFixture(t, "search.html"))
	require.NoError(t, err)

	expected := []PlayerIdentity{{
		FullName:    "Gianluigi Buffon",
		PlayerId:    "5023",
		ProfilePath: "gianluigi-buffon",
	}}
	if diff := cmp.Diff(expected, players); diff != "" {
		t.Fatal(diff)
	}
}

func TestLocatePlayerNotFound(t *testing.T) {
	for _, fixture := range []string{"search_empty.html", "search_no_table.html"} {
		players, err := LocatePlayer("Nobody", loadFixture(t, fixture))
		require.ErrorIs(t, err, ErrNotFound, fixture)
		require.Empty(t, players, fixture)
	}
}

func TestProfileSlug(t *testing.T) {
	testCases := []struct {
		href     string
		expected string
	}{
		{href: "/gianluigi-buffon/profil/spieler/5023", expected: "gianluigi-buffon"},
		{href: "/patrick-cutrone/profil/spieler/293385", expected: "patrick-cutrone"},
		{href: "", expected: ""},
		{href: "gianluigi-buffon", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, profileSlug(test.href), test.href)
	}
}
