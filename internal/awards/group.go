package awards

import (
	"sort"
	"strconv"
)

// GroupByCategory partitions the records matching effectiveYear into named
// categories. Within a category, nominees keep first-seen feed order and are
// deduplicated by reference key; an earlier reference wins over later
// duplicates, though a later winning duplicate still marks the existing
// nominee as a winner. Records with no movie references are skipped, as are
// references with blank titles. The result is sorted by category name for
// stable display order.
func GroupByCategory(records []NominationRecord, effectiveYear int) []Category {
	yearKey := strconv.Itoa(effectiveYear)

	type entry struct {
		refs    map[string]struct{}
		winners map[string]struct{}
		cat     *Category
	}
	byName := make(map[string]*entry)
	var order []string

	for _, record := range records {
		if record.Year != yearKey || len(record.Movies) == 0 {
			continue
		}
		e := byName[record.Category]
		if e == nil {
			e = &entry{
				refs:    make(map[string]struct{}),
				winners: make(map[string]struct{}),
				cat:     &Category{Name: record.Category},
			}
			byName[record.Category] = e
			order = append(order, record.Category)
		}
		for _, raw := range record.Movies {
			ref, ok := NormalizeRef(raw)
			if !ok {
				continue
			}
			key := ref.Key()
			if _, seen := e.refs[key]; !seen {
				e.refs[key] = struct{}{}
				e.cat.Nominees = append(e.cat.Nominees, ref)
			}
			if record.Winner() {
				e.winners[key] = struct{}{}
			}
		}
	}

	sort.Strings(order)
	categories := make([]Category, 0, len(order))
	for _, name := range order {
		e := byName[name]
		e.cat.winners = e.winners
		categories = append(categories, *e.cat)
	}
	return categories
}
