package transfermarkt

import (
	"testing"
	"time"

	"tmscraper/internal/components/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseTransfers(t *testing.T) {
	tel := telemetry.NewMemoryAPI()
	transfers := ParseTransfers(loadFixture(t, "profile.html"), tel)

	expected := []TransferRecord{
		{EffectiveDate: date(2019, time.January, 1), ClubName: "ClubC"},
		{EffectiveDate: date(2017, time.June, 1), ClubName: "ClubB"},
		{EffectiveDate: date(2016, time.January, 1), ClubName: "ClubA"},
	}
	if diff := cmp.Diff(expected, transfers); diff != "" {
		t.Fatal(diff)
	}

	warnings := tel.Reports(telemetry.KindWarning)
	require.Len(t, warnings, 1)
	require.Equal(t, report_transfers_parse, warnings[0].Id)
}

func TestResolveClub(t *testing.T) {
	transfers := []TransferRecord{
		{EffectiveDate: date(2019, time.January, 1), ClubName: "ClubC"},
		{EffectiveDate: date(2017, time.June, 1), ClubName: "ClubB"},
		{EffectiveDate: date(2016, time.January, 1), ClubName: "ClubA"},
	}

	testCases := []struct {
		lookup   time.Time
		expected string
	}{
		{lookup: date(2018, time.May, 9), expected: "ClubB"},
		{lookup: date(2017, time.June, 1), expected: "ClubB"},
		{lookup: date(2017, time.May, 31), expected: "ClubA"},
		{lookup: date(2016, time.January, 1), expected: "ClubA"},
		{lookup: date(2020, time.January, 1), expected: "ClubC"},
	}

	for _, test := range testCases {
		transfer, err := ResolveClub(transfers, test.lookup)
		require.NoError(t, err, test.lookup)
		require.Equal(t, test.expected, transfer.ClubName, test.lookup)
	}

	_, err := ResolveClub(transfers, date(2015, time.December, 31))
	require.ErrorIs(t, err, ErrUnresolved)

	_, err = ResolveClub(nil, date(2018, time.May, 9))
	require.ErrorIs(t, err, ErrUnresolved)
}
