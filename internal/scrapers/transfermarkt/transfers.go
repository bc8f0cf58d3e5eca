package transfermarkt

import (
	"time"

	"tmscraper/internal/components/telemetry"
	"tmscraper/pkg/htmlutil"

	"github.com/cockroachdb/errors"
)

const (
	transferDateCell = 1
	// the club that was joined sits fourth from the end of a transfer row
	transferClubFromEnd = 4
)

// ParseTransfers reads the transfer history rows of a profile page in document order
// (newest first). Rows without a readable date or club are skipped.
func ParseTransfers(doc htmlutil.Node, tel telemetry.API) []TransferRecord {
	var transfers []TransferRecord
	for i, row := range doc.All("tr.zeile-transfer") {
		cells := row.All("td")
		if len(cells) < transferClubFromEnd || len(cells) <= transferDateCell {
			tel.ReportWarning(report_transfers_parse, ErrMalformedRow, i, len(cells))
			continue
		}

		date, err := parseLongDate(cells[transferDateCell].Text())
		if err != nil {
			tel.ReportWarning(report_transfers_parse, errors.Mark(err, ErrMalformedRow), i)
			continue
		}

		transfers = append(transfers, TransferRecord{
			EffectiveDate: date,
			ClubName:      cells[len(cells)-transferClubFromEnd].Text(),
		})
	}
	return transfers
}

// ResolveClub walks `transfers` (newest first) and returns the first transfer that
// happened at or before `lookup`. Transfers after the lookup date are skipped, the
// walk stops at the first match. ErrUnresolved is returned if none qualifies.
func ResolveClub(transfers []TransferRecord, lookup time.Time) (TransferRecord, error) {
	for _, transfer := range transfers {
		if transfer.EffectiveDate.After(lookup) {
			continue
		}
		return transfer, nil
	}
	return TransferRecord{}, errors.Wrapf(
		ErrUnresolved,
		"no transfer at or before %s (%d transfers)",
		lookup.Format(LookupDateLayout), len(transfers),
	)
}
