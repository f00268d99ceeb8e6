package service

import (
	"fmt"
	"strings"

	"lostfound-admin/internal/console/domain/model"
)

// NormalizeItem maps a raw item record into its canonical form plus the text
// used for similarity comparison.
//
// The canonical record is the raw record with ID forced to the store-assigned
// identifier, overwriting whatever the raw document carried. The comparison
// text is the lower-cased, space-joined concatenation of item, description
// and location in that fixed order; missing fields contribute an empty string
// and the separators stay in place, so normalization never fails on a sparse
// record.
func NormalizeItem(raw model.ItemRecord, id string) (model.ItemRecord, string) {
	canonical := raw
	canonical.ID = id

	text := strings.ToLower(fmt.Sprintf("%s %s %s", raw.Item, raw.Description, raw.Location))
	return canonical, text
}
