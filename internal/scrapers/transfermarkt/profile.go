package transfermarkt

import (
	"strings"

	"tmscraper/internal/components/telemetry"
	"tmscraper/pkg/htmlutil"
)

const (
	labelBirthDate   = "date of birth"
	labelPosition    = "position"
	labelCitizenship = "citizenship"
)

// CountryResolver turns a country name into an alpha-3 code, failing with an
// error wrapping a not-found sentinel when it cannot.
type CountryResolver interface {
	Resolve(name string) (string, error)
}

// countryAttempt is a single step of the citizenship fallback chain, it returns the
// name to try next with the resolver, ok=false skips the step.
type countryAttempt func(name string) (candidate string, ok bool)

var citizenshipAttempts = []countryAttempt{
	func(name string) (string, bool) {
		return name, true
	},
	func(name string) (string, bool) {
		first, _, found := strings.Cut(name, "-")
		return strings.TrimSpace(first), found
	},
}

// resolveCitizenship walks citizenshipAttempts in order, falling back to the raw name.
func resolveCitizenship(name string, countries CountryResolver, tel telemetry.API) string {
	for _, attempt := range citizenshipAttempts {
		candidate, ok := attempt(name)
		if !ok || candidate == "" {
			continue
		}
		code, err := countries.Resolve(candidate)
		if err == nil {
			return code
		}
		tel.ReportDebug(report_profile_citizenship, candidate, err)
	}
	tel.ReportWarning(report_profile_citizenship, "unresolved country, keeping raw name", name)
	return name
}

func normalizeLabel(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return strings.TrimSpace(strings.TrimSuffix(text, ":"))
}

// linkedText reads the first link of a value cell, the cell text if there is none.
func linkedText(cell htmlutil.Node) string {
	link, ok := cell.First("a")
	if ok {
		return link.Text()
	}
	return cell.Text()
}

// ExtractProfile reads the attribute table of a profile page. Missing rows leave their
// field empty, this never fails.
func ExtractProfile(doc htmlutil.Node, countries CountryResolver, tel telemetry.API) ProfileSnapshot {
	var profile ProfileSnapshot

	table, ok := doc.First("table.auflistung")
	if !ok {
		tel.ReportWarning(report_profile_extract, "no attribute table")
		return profile
	}

	for _, row := range table.All("tr") {
		header, ok := row.First("th")
		if !ok {
			continue
		}
		value := row
		if td, ok := row.First("td"); ok {
			value = td
		}

		switch normalizeLabel(header.Text()) {
		case labelBirthDate:
			profile.BirthDate = linkedText(value)
		case labelPosition:
			profile.Position = linkedText(value)
		case labelCitizenship:
			img, ok := row.First("img")
			if !ok {
				continue
			}
			title, _ := img.Attr("title")
			if title == "" {
				continue
			}
			profile.Citizenship = resolveCitizenship(title, countries, tel)
		}
	}

	return profile
}
