package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ArtworkKeyPrefix = "artwork:%d"
	TopArtistsPrefix = "top_artists:%d"
	CategoriesKey    = "categories"
)

const (
	ArtworkTTL    = 30 * time.Minute
	TopArtistsTTL = 2 * time.Minute
	CategoriesTTL = 10 * time.Minute
)

func ArtworkKey(artworkID uint) string {
	return fmt.Sprintf(ArtworkKeyPrefix, artworkID)
}

func TopArtistsKey(limit int) string {
	return fmt.Sprintf(TopArtistsPrefix, limit)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateArtwork(ctx context.Context, artworkID uint) {
	Invalidate(ctx, ArtworkKey(artworkID))
}

// InvalidateLeaderboard drops every cached top-artists list. Like counts and
// profile syncs both feed the leaderboard, so any engagement mutation calls
// this.
func InvalidateLeaderboard(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "top_artists:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
}
