package globals

import (
	"context"

	"tmscraper/internal/scrapers/transfermarkt"
)

type ctxKey struct{}

type Value struct {
	Scraper transfermarkt.Scraper
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, ctxKey{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(ctxKey{}).(*Value)
}
