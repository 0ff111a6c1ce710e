package awards

import "strconv"

// SelectEffectiveYear maps a requested ceremony year onto the year actually
// present in the feed. The dataset sometimes labels a ceremony by the year
// it was held rather than the eligibility year, so a requested year with no
// records falls back exactly one year. An empty record set returns the
// requested year unchanged; absence of data is surfaced downstream as zero
// categories, never as an error.
func SelectEffectiveYear(records []NominationRecord, requestedYear int) int {
	if len(records) == 0 {
		return requestedYear
	}
	yearKey := strconv.Itoa(requestedYear)
	for _, record := range records {
		if record.Year == yearKey {
			return requestedYear
		}
	}
	return requestedYear - 1
}
