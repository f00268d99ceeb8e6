package usecase

import (
	"context"
	"time"

	"lostfound-admin/internal/console/config"
	"lostfound-admin/internal/console/domain/model"
	"lostfound-admin/internal/console/domain/repository"
	"lostfound-admin/internal/console/domain/service"
	"lostfound-admin/internal/shared/errors"
	"lostfound-admin/internal/shared/eventbus"
	"lostfound-admin/internal/shared/logger"

	"go.uber.org/zap"
)

// SearchResults is the payload of a global search across every entity kind.
type SearchResults struct {
	Users      []model.UserRecord  `json:"users"`
	LostItems  []model.ItemRecord  `json:"lost_items"`
	FoundItems []model.ItemRecord  `json:"found_items"`
	Matches    []model.MatchRecord `json:"matches"`
}

// ConsoleUsecaseInterface defines the operations the console exposes to the
// HTTP layer.
type ConsoleUsecaseInterface interface {
	ComputeMatches(ctx context.Context, threshold float64) ([]model.MatchRecord, error)
	FilterMatches(ctx context.Context, threshold float64, query string) ([]model.MatchRecord, error)
	DashboardStats(ctx context.Context) model.DashboardStats
	ListItems(ctx context.Context, collection, query string) ([]model.ItemRecord, error)
	ListUsers(ctx context.Context, query string) []model.UserRecord
	SearchMatches(ctx context.Context, query string) ([]model.MatchRecord, error)
	GlobalSearch(ctx context.Context, query string) *SearchResults
	DeleteItem(ctx context.Context, collection, id, imagePublicID string) error
	SetUserStatus(ctx context.Context, uid string, disabled bool) error
	DefaultThreshold() float64
}

// ConsoleUsecase orchestrates the match engine, search layer and dashboard
// aggregation over the external collaborators.
//
// Collaborator failures are absorbed here, at the boundary: listings degrade
// to empty results and the dashboard keeps its best-effort counters, so the
// pure computation core beneath never sees an I/O error. Matches are
// recomputed on every call and never written back to the store.
type ConsoleUsecase struct {
	store   repository.DocumentStore
	users   repository.UserDirectory
	images  repository.ImageStore
	matcher *service.Matcher
	bus     eventbus.EventBusInterface
	cfg     *config.ConsoleConfig
	log     logger.Logger
	now     func() time.Time
}

// NewConsoleUsecase creates a new instance of ConsoleUsecase.
func NewConsoleUsecase(
	store repository.DocumentStore,
	users repository.UserDirectory,
	images repository.ImageStore,
	matcher *service.Matcher,
	bus eventbus.EventBusInterface,
	cfg *config.ConsoleConfig,
	log logger.Logger,
) *ConsoleUsecase {
	return &ConsoleUsecase{
		store:   store,
		users:   users,
		images:  images,
		matcher: matcher,
		bus:     bus,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// DefaultThreshold returns the configured default similarity threshold.
func (uc *ConsoleUsecase) DefaultThreshold() float64 {
	return uc.cfg.MatchThreshold
}

// ComputeMatches fetches both item collections and runs the match engine at
// the given threshold. An out-of-range threshold is a validation error; a
// failing document store degrades to an empty result.
func (uc *ConsoleUsecase) ComputeMatches(ctx context.Context, threshold float64) ([]model.MatchRecord, error) {
	lost, err := uc.store.ListCollection(ctx, uc.cfg.LostCollection)
	if err != nil {
		uc.log.Error("Failed to fetch lost items for matching", zap.Error(err))
		lost = nil
	}
	found, err := uc.store.ListCollection(ctx, uc.cfg.FoundCollection)
	if err != nil {
		uc.log.Error("Failed to fetch found items for matching", zap.Error(err))
		found = nil
	}

	return uc.matcher.Match(lost, found, threshold)
}

// FilterMatches computes matches and filters them by the matches-page query:
// both item texts and their combined descriptions.
func (uc *ConsoleUsecase) FilterMatches(ctx context.Context, threshold float64, query string) ([]model.MatchRecord, error) {
	matches, err := uc.ComputeMatches(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return service.Filter(matches, query, service.MatchTextFields()), nil
}

// SearchMatches computes matches at the default threshold and filters them by
// the global-search field set.
func (uc *ConsoleUsecase) SearchMatches(ctx context.Context, query string) ([]model.MatchRecord, error) {
	matches, err := uc.ComputeMatches(ctx, uc.cfg.MatchThreshold)
	if err != nil {
		return nil, err
	}
	return service.Filter(matches, query, service.MatchFields()), nil
}

// ListItems returns the named collection, optionally filtered by query.
func (uc *ConsoleUsecase) ListItems(ctx context.Context, collection, query string) ([]model.ItemRecord, error) {
	items, err := uc.store.ListCollection(ctx, collection)
	if err != nil {
		if errors.IsValidation(err) {
			return nil, err
		}
		uc.log.Error("Failed to list items",
			zap.String("collection", collection),
			zap.Error(err))
		return []model.ItemRecord{}, nil
	}
	return service.Filter(items, query, service.ItemFields()), nil
}

// ListUsers returns directory accounts, optionally filtered by query. A
// failing directory degrades to an empty listing.
func (uc *ConsoleUsecase) ListUsers(ctx context.Context, query string) []model.UserRecord {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.log.Error("Failed to list users", zap.Error(err))
		return []model.UserRecord{}
	}
	return service.Filter(users, query, service.UserFields())
}

// GlobalSearch runs the query across users, both item collections and the
// computed matches.
func (uc *ConsoleUsecase) GlobalSearch(ctx context.Context, query string) *SearchResults {
	results := &SearchResults{
		Users:      []model.UserRecord{},
		LostItems:  []model.ItemRecord{},
		FoundItems: []model.ItemRecord{},
		Matches:    []model.MatchRecord{},
	}

	results.Users = uc.ListUsers(ctx, query)

	if lost, err := uc.ListItems(ctx, uc.cfg.LostCollection, query); err == nil {
		results.LostItems = lost
	}
	if found, err := uc.ListItems(ctx, uc.cfg.FoundCollection, query); err == nil {
		results.FoundItems = found
	}
	if matches, err := uc.SearchMatches(ctx, query); err == nil {
		results.Matches = matches
	} else {
		uc.log.Error("Failed to search matches", zap.Error(err))
	}

	return results
}

// DashboardStats aggregates counts from every collaborator. Aggregation is
// fail-soft: each failing collaborator leaves its counters at their
// best-effort value. ActiveToday counts accounts whose last login falls on
// the current UTC day.
func (uc *ConsoleUsecase) DashboardStats(ctx context.Context) model.DashboardStats {
	stats := model.DashboardStats{}

	if matches, err := uc.ComputeMatches(ctx, uc.cfg.MatchThreshold); err == nil {
		stats.SuccessfulMatches = len(matches)
	} else {
		uc.log.Error("Failed to compute matches for dashboard", zap.Error(err))
	}

	if users, err := uc.users.ListUsers(ctx); err == nil {
		stats.TotalUsers = len(users)
		stats.ActiveToday = countActiveToday(users, uc.now().UTC())
	} else {
		uc.log.Error("Failed to count users for dashboard", zap.Error(err))
	}

	if lost, err := uc.store.ListCollection(ctx, uc.cfg.LostCollection); err == nil {
		stats.LostItems = len(lost)
	} else {
		uc.log.Error("Failed to count lost items for dashboard", zap.Error(err))
	}

	if found, err := uc.store.ListCollection(ctx, uc.cfg.FoundCollection); err == nil {
		stats.FoundItems = len(found)
	} else {
		uc.log.Error("Failed to count found items for dashboard", zap.Error(err))
	}

	return stats
}

// DeleteItem removes a document and, when an image public ID is supplied, its
// stored image. A failed image deletion is logged but does not undo or fail
// the document deletion, matching the store-first ordering of the operation.
func (uc *ConsoleUsecase) DeleteItem(ctx context.Context, collection, id, imagePublicID string) error {
	if err := uc.store.DeleteDocument(ctx, collection, id); err != nil {
		uc.log.Error("Failed to delete item",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err))
		return err
	}

	if imagePublicID != "" {
		if err := uc.images.DeleteImage(ctx, imagePublicID); err != nil {
			uc.log.Error("Item deleted but image deletion failed",
				zap.String("collection", collection),
				zap.String("id", id),
				zap.String("publicId", imagePublicID),
				zap.Error(err))
		}
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeItemDeleted,
		map[string]string{"collection": collection, "id": id},
		"console",
	))

	return nil
}

// SetUserStatus enables or disables an account through the directory.
func (uc *ConsoleUsecase) SetUserStatus(ctx context.Context, uid string, disabled bool) error {
	if err := uc.users.SetUserDisabled(ctx, uid, disabled); err != nil {
		uc.log.Error("Failed to update user status",
			zap.String("uid", uid),
			zap.Bool("disabled", disabled),
			zap.Error(err))
		return err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEventWithSource(
		eventbus.EventTypeUserStatusChanged,
		map[string]interface{}{"uid": uid, "disabled": disabled},
		"console",
	))

	return nil
}

// countActiveToday counts accounts whose last login shares the UTC date of now.
func countActiveToday(users []model.UserRecord, now time.Time) int {
	y, m, d := now.Date()
	count := 0
	for _, u := range users {
		if u.LastLogin == nil {
			continue
		}
		ly, lm, ld := u.LastLogin.UTC().Date()
		if ly == y && lm == m && ld == d {
			count++
		}
	}
	return count
}

// Ensure ConsoleUsecase implements ConsoleUsecaseInterface
var _ ConsoleUsecaseInterface = (*ConsoleUsecase)(nil)
