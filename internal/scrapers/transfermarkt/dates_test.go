package transfermarkt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInWindow(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		from      string
		to        string
		expected  bool
	}{
		{name: "no bounds", candidate: "6/4/16", expected: true},

		{name: "both bounds, inside", candidate: "9/1/16", from: "01/06/2016", to: "2016-12-31", expected: true},
		{name: "both bounds, on from", candidate: "6/1/16", from: "01/06/2016", to: "2016-12-31", expected: true},
		{name: "both bounds, on to", candidate: "12/31/16", from: "01/06/2016", to: "2016-12-31", expected: true},
		{name: "both bounds, before from", candidate: "5/31/16", from: "01/06/2016", to: "2016-12-31", expected: false},
		{name: "both bounds, after to", candidate: "1/1/17", from: "01/06/2016", to: "2016-12-31", expected: false},
		{name: "both bounds, rfc3339 to", candidate: "12/31/16", from: "01/06/2016", to: "2016-12-31T00:00:00Z", expected: true},
		{name: "both bounds, DD/MM/YYYY to", candidate: "12/31/16", from: "01/06/2016", to: "31/12/2016", expected: true},

		{name: "only from, on from", candidate: "6/4/16", from: "04/06/2016", expected: false},
		{name: "only from, after", candidate: "6/5/16", from: "04/06/2016", expected: true},
		{name: "only from, before", candidate: "6/3/16", from: "04/06/2016", expected: false},

		{name: "only to, on to", candidate: "6/4/16", to: "04/06/2016", expected: false},
		{name: "only to, before", candidate: "6/3/16", to: "04/06/2016", expected: true},
		{name: "only to, after", candidate: "6/5/16", to: "04/06/2016", expected: false},
	}

	for _, test := range testCases {
		inWindow, err := InWindow(test.candidate, test.from, test.to)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, inWindow, test.name)
	}
}

func TestInWindowErrors(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		from      string
		to        string
	}{
		{name: "unparseable candidate", candidate: "n/a"},
		{name: "candidate in the wrong layout", candidate: "2016-06-04"},
		{name: "from must be DD/MM/YYYY", candidate: "6/4/16", from: "2016-06-04"},
		{name: "lone to must be DD/MM/YYYY", candidate: "6/4/16", to: "2016-06-04"},
		{name: "to matches no layout", candidate: "6/4/16", from: "01/06/2016", to: "June 4th"},
	}

	for _, test := range testCases {
		_, err := InWindow(test.candidate, test.from, test.to)
		require.Error(t, err, test.name)
	}
}

func TestParseDates(t *testing.T) {
	lookup, err := ParseLookupDate("09/05/2018")
	require.NoError(t, err)
	require.Equal(t, time.Date(2018, time.May, 9, 0, 0, 0, 0, time.UTC), lookup)

	_, err = ParseLookupDate("2018-05-09")
	require.Error(t, err)

	birth, err := parseLongDate("Jan 28, 1978 (40)")
	require.NoError(t, err)
	require.Equal(t, time.Date(1978, time.January, 28, 0, 0, 0, 0, time.UTC), birth)

	transfer, err := parseLongDate(" Jul 1, 2017 ")
	require.NoError(t, err)
	require.Equal(t, time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC), transfer)

	_, err = parseLongDate("-")
	require.Error(t, err)
}
