package users

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/workoutdelivery/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const phoneCacheExpireSeconds = 60 * 60

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=users_test

type usersRepo interface {
	ListOptedIn(ctx context.Context) ([]User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
}

// Directory resolves phone numbers to users, with a bounded in-memory cache
// in front of the repo. Misses are not cached.
type Directory struct {
	repo  usersRepo
	cache *freecache.Cache
}

func NewDirectory(repo usersRepo, cacheSizeMB int) *Directory {
	return &Directory{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeMB * 1024 * 1024),
	}
}

func (d *Directory) ListOptedIn(ctx context.Context) ([]User, error) {
	return d.repo.ListOptedIn(ctx)
}

func (d *Directory) FindByPhone(ctx context.Context, phone string) (*User, error) {
	normalized := pkg.NormalizePhone(phone)
	if normalized == "" {
		return nil, ErrNotFound
	}

	cacheKey := []byte("phone::" + normalized)
	if cached, err := d.cache.Get(cacheKey); err == nil {
		u := &User{}
		if err := json.Unmarshal(cached, u); err == nil {
			return u, nil
		}
		log.Errorf("failed to unmarshal cached user for phone %s", normalized)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("phone cache get %s: %s", normalized, err)
	}

	u, err := d.repo.FindByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if userBytes, err := json.Marshal(u); err == nil {
		if err := d.cache.Set(cacheKey, userBytes, phoneCacheExpireSeconds); err != nil {
			log.Errorf("phone cache set %s: %s", normalized, err)
		}
	}

	return u, nil
}

// Forget drops the cached entry, e.g. after the user changed the phone number.
func (d *Directory) Forget(phone string) {
	d.cache.Del([]byte("phone::" + pkg.NormalizePhone(phone)))
}
