package providers

import (
	"context"

	"github.com/brogergvhs/watchgrid/internal/history"
)

// Source returns the cards currently visible on the history page, in page
// order. An error means the page itself could not be read.
type Source interface {
	Cards(ctx context.Context) ([]history.Card, error)
}

type SourceFunc func(ctx context.Context) ([]history.Card, error)

func (f SourceFunc) Cards(ctx context.Context) ([]history.Card, error) { return f(ctx) }
