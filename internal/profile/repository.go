// Package profile keeps player profiles: a flat whole-map file store and a
// write-through cache that can sit in front of any store.
package profile

import (
	"context"

	"github.com/udisondev/skirmish/internal/model"
)

// Repository is implemented by every profile store and by Cache itself.
//
// GetProfile never reports "not found": a missing profile is created with
// score 0 and persisted before it is returned. UpdateHighScore stores score
// verbatim, creating the record if needed.
type Repository interface {
	GetProfile(ctx context.Context, name string) (model.PlayerProfile, error)
	UpdateHighScore(ctx context.Context, name string, score int) error
}
