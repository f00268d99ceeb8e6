package service

import (
	"strconv"
	"strings"

	"lostfound-admin/internal/console/domain/model"
)

// Filter retains the records for which the query is a case-insensitive
// substring of at least one extracted field. An empty query returns the input
// unchanged. The extractor set is fixed per entity kind; see UserFields,
// ItemFields, MatchFields and MatchTextFields.
func Filter[T any](records []T, query string, extractors []func(T) string) []T {
	if query == "" {
		return records
	}

	q := strings.ToLower(query)
	results := make([]T, 0, len(records))
	for _, rec := range records {
		for _, extract := range extractors {
			if strings.Contains(strings.ToLower(extract(rec)), q) {
				results = append(results, rec)
				break
			}
		}
	}
	return results
}

// UserFields returns the searchable fields of a user account: email, uid,
// the active/disabled status token and the creation date as YYYY-MM-DD.
func UserFields() []func(model.UserRecord) string {
	return []func(model.UserRecord) string{
		func(u model.UserRecord) string { return u.Email },
		func(u model.UserRecord) string { return u.UID },
		func(u model.UserRecord) string { return u.StatusToken() },
		func(u model.UserRecord) string {
			if u.Created == nil {
				return ""
			}
			return u.Created.Format("2006-01-02")
		},
	}
}

// ItemFields returns the searchable fields of a lost or found report.
func ItemFields() []func(model.ItemRecord) string {
	return []func(model.ItemRecord) string{
		func(i model.ItemRecord) string { return i.Name },
		func(i model.ItemRecord) string { return i.Description },
		func(i model.ItemRecord) string { return i.Location },
		func(i model.ItemRecord) string { return i.Status },
		func(i model.ItemRecord) string { return i.ID },
		func(i model.ItemRecord) string { return i.Date },
	}
}

// MatchFields returns the searchable fields of a computed match as used by
// the global search: the paired item names, status, composite ID, the
// stringified score and the match date.
func MatchFields() []func(model.MatchRecord) string {
	return []func(model.MatchRecord) string{
		func(m model.MatchRecord) string { return m.Lost.Name },
		func(m model.MatchRecord) string { return m.Found.Name },
		func(m model.MatchRecord) string { return m.Status },
		func(m model.MatchRecord) string { return m.ID },
		func(m model.MatchRecord) string { return strconv.FormatFloat(m.Score, 'g', -1, 64) },
		func(m model.MatchRecord) string { return m.Created.Format("2006-01-02") },
	}
}

// MatchTextFields returns the narrower field set used when filtering the
// matches listing itself: both item texts and their combined descriptions.
func MatchTextFields() []func(model.MatchRecord) string {
	return []func(model.MatchRecord) string{
		func(m model.MatchRecord) string { return m.Lost.Item },
		func(m model.MatchRecord) string { return m.Found.Item },
		func(m model.MatchRecord) string { return m.Lost.Description + m.Found.Description },
	}
}
