package service

import (
	"testing"
	"time"

	"lostfound-admin/internal/console/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_EmptyQueryReturnsInput(t *testing.T) {
	items := []model.ItemRecord{
		{ID: "1", Name: "Blue Backpack"},
		{ID: "2", Name: "Umbrella"},
	}

	results := Filter(items, "", ItemFields())
	assert.Equal(t, items, results)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	items := []model.ItemRecord{
		{ID: "1", Name: "Blue Backpack"},
		{ID: "2", Name: "Red Umbrella"},
		{ID: "3", Description: "small blue keychain"},
	}

	results := Filter(items, "BLUE", ItemFields())
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "3", results[1].ID)
}

func TestFilter_NoMatches(t *testing.T) {
	items := []model.ItemRecord{{ID: "1", Name: "Wallet"}}
	results := Filter(items, "bicycle", ItemFields())
	assert.Empty(t, results)
}

func TestFilter_MatchesAnyField(t *testing.T) {
	items := []model.ItemRecord{
		{ID: "doc-42", Name: "Wallet"},
		{ID: "2", Location: "west entrance"},
		{ID: "3", Status: "claimed"},
		{ID: "4", Date: "2026-08-15"},
	}

	assert.Len(t, Filter(items, "doc-42", ItemFields()), 1)
	assert.Len(t, Filter(items, "entrance", ItemFields()), 1)
	assert.Len(t, Filter(items, "claimed", ItemFields()), 1)
	assert.Len(t, Filter(items, "2026-08", ItemFields()), 1)
}

func TestUserFields_SearchableValues(t *testing.T) {
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	users := []model.UserRecord{
		{UID: "u1", Email: "alice@example.com", Created: &created},
		{UID: "u2", Email: "bob@example.com", Disabled: true},
	}

	assert.Len(t, Filter(users, "alice", UserFields()), 1)
	assert.Len(t, Filter(users, "u2", UserFields()), 1)
	assert.Len(t, Filter(users, "2026-01-05", UserFields()), 1)

	disabled := Filter(users, "disabled", UserFields())
	require.Len(t, disabled, 1)
	assert.Equal(t, "u2", disabled[0].UID)
}

func TestUserFields_NilCreatedDoesNotPanic(t *testing.T) {
	users := []model.UserRecord{{UID: "u1", Email: "a@example.com"}}
	assert.NotPanics(t, func() {
		Filter(users, "2026", UserFields())
	})
}

func TestMatchFields_SearchableValues(t *testing.T) {
	matches := []model.MatchRecord{
		{
			ID:      "L1_F1",
			Score:   0.85,
			Created: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
			Lost:    model.ItemRecord{Name: "Black Wallet"},
			Found:   model.ItemRecord{Name: "Leather Wallet"},
		},
	}

	assert.Len(t, Filter(matches, "black", MatchFields()), 1)
	assert.Len(t, Filter(matches, "leather", MatchFields()), 1)
	assert.Len(t, Filter(matches, "L1_F1", MatchFields()), 1)
	assert.Len(t, Filter(matches, "0.85", MatchFields()), 1)
	assert.Len(t, Filter(matches, "2026-07-20", MatchFields()), 1)
	assert.Empty(t, Filter(matches, "umbrella", MatchFields()))
}

func TestMatchTextFields_FiltersOnItemTexts(t *testing.T) {
	matches := []model.MatchRecord{
		{
			ID:    "L1_F1",
			Lost:  model.ItemRecord{Item: "black wallet", Description: "has cards"},
			Found: model.ItemRecord{Item: "wallet", Description: "found near gym"},
		},
		{
			ID:    "L2_F2",
			Lost:  model.ItemRecord{Item: "umbrella"},
			Found: model.ItemRecord{Item: "red umbrella"},
		},
	}

	wallets := Filter(matches, "wallet", MatchTextFields())
	require.Len(t, wallets, 1)
	assert.Equal(t, "L1_F1", wallets[0].ID)

	// Combined descriptions are searched as one string.
	assert.Len(t, Filter(matches, "gym", MatchTextFields()), 1)

	// The composite ID is not part of the matches-page field set.
	assert.Empty(t, Filter(matches, "L2_F2", MatchTextFields()))
}
