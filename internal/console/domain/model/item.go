package model

import "time"

// Collection names honored by the document store. Matches are computed on
// demand and never written back, so there is no matches collection.
const (
	CollectionLostItems  = "lost_items"
	CollectionFoundItems = "found_items"
)

// KnownCollection reports whether name is one of the item collections this
// console manages.
func KnownCollection(name string) bool {
	return name == CollectionLostItems || name == CollectionFoundItems
}

// ItemRecord is a lost or found report as stored in the document store.
// Lost and found records are structurally identical. Only ID is guaranteed to
// be present; every other field may be missing from the raw document and is
// treated as empty.
type ItemRecord struct {
	ID            string     `json:"id" bson:"-"`
	Name          string     `json:"name,omitempty" bson:"name,omitempty"`
	Item          string     `json:"item,omitempty" bson:"item,omitempty"`
	Description   string     `json:"description,omitempty" bson:"description,omitempty"`
	Location      string     `json:"location,omitempty" bson:"location,omitempty"`
	Status        string     `json:"status,omitempty" bson:"status,omitempty"`
	Date          string     `json:"date,omitempty" bson:"date,omitempty"`
	ImagePublicID string     `json:"image_public_id,omitempty" bson:"image_public_id,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
