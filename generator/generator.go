// SPDX-License-Identifier: MIT

package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lavaworld/geometry"
	"github.com/katalvlaran/lavaworld/problem"
)

// ErrNoIslandsToQuery indicates queries were requested for an empty island set.
var ErrNoIslandsToQuery = errors.New("generator: queries need at least one island")

// Defaults used when an option is not supplied.
const (
	DefaultSeed    int64 = 1
	DefaultIslands       = 10
	DefaultQueries       = 10
	DefaultBounds        = 100
	DefaultMaxSide       = 10
)

// MaxCoord is the largest accepted bounds or side value. Draws take n+1
// values, so this keeps every rng.Intn argument positive.
const MaxCoord = 1 << 30

// Option customizes generation.
type Option func(*config)

type config struct {
	seed    int64
	islands int
	queries int
	bounds  int
	maxSide int
}

// WithSeed sets the RNG seed. Seed 0 maps to DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = DefaultSeed
		}
		c.seed = seed
	}
}

// WithIslands sets the island count. Panics on negative n.
func WithIslands(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("generator: WithIslands(%d)", n))
	}
	return func(c *config) { c.islands = n }
}

// WithQueries sets the query count. Panics on negative q.
func WithQueries(q int) Option {
	if q < 0 {
		panic(fmt.Sprintf("generator: WithQueries(%d)", q))
	}
	return func(c *config) { c.queries = q }
}

// WithBounds sets the largest coordinate value. Panics unless 1 <= b <= MaxCoord.
func WithBounds(b int) Option {
	if b < 1 || b > MaxCoord {
		panic(fmt.Sprintf("generator: WithBounds(%d)", b))
	}
	return func(c *config) { c.bounds = b }
}

// WithMaxSide sets the largest rectangle width and height.
// Panics unless 0 <= s <= MaxCoord.
func WithMaxSide(s int) Option {
	if s < 0 || s > MaxCoord {
		panic(fmt.Sprintf("generator: WithMaxSide(%d)", s))
	}
	return func(c *config) { c.maxSide = s }
}

// Generate builds a random problem.
func Generate(opts ...Option) (*problem.Problem, error) {
	c := config{
		seed:    DefaultSeed,
		islands: DefaultIslands,
		queries: DefaultQueries,
		bounds:  DefaultBounds,
		maxSide: DefaultMaxSide,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.queries > 0 && c.islands == 0 {
		return nil, ErrNoIslandsToQuery
	}
	rng := rand.New(rand.NewSource(c.seed))

	p := &problem.Problem{
		Islands: make([]geometry.Rect, c.islands),
		Queries: make([]problem.Query, c.queries),
	}
	for i := range p.Islands {
		p.Islands[i] = c.rect(rng)
	}
	for i := range p.Queries {
		p.Queries[i] = problem.Query{Row: 1 + rng.Intn(c.islands), Col: 1 + rng.Intn(c.islands)}
	}

	return p, nil
}

// rect draws one rectangle inside [0, bounds]² with sides up to maxSide.
func (c config) rect(rng *rand.Rand) geometry.Rect {
	w := rng.Intn(c.maxSide + 1)
	h := rng.Intn(c.maxSide + 1)
	if w > c.bounds {
		w = c.bounds
	}
	if h > c.bounds {
		h = c.bounds
	}
	ax := rng.Intn(c.bounds - w + 1)
	by := rng.Intn(c.bounds - h + 1)

	return geometry.NewRect(ax, by+h, ax+w, by)
}
