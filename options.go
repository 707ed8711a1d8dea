package hashmap

import (
	"github.com/apex/log"
	"github.com/efficientgo/core/errors"

	"github.com/kobeHub/Hash-map/prime"
)

const (
	// DefaultCapacity is the requested capacity of a new table.
	DefaultCapacity = 53
	// DefaultMinCapacity is the floor below which a table never shrinks.
	DefaultMinCapacity = 53
	// DefaultGrowLoad is the load factor above which a table grows.
	DefaultGrowLoad = 0.70
	// DefaultShrinkLoad is the load factor below which a table shrinks.
	DefaultShrinkLoad = 0.10
)

// Options holds the settings a Table is built from.
type Options struct {
	InitialCapacity int
	MinCapacity     int
	// MaxCapacity bounds growth; zero means unbounded.
	MaxCapacity int
	GrowLoad    float64
	ShrinkLoad  float64
	Hasher      Hasher
	Oracle      prime.Oracle
	Logger      log.Interface
	Observer    Observer
}

// Option configures a Table.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		InitialCapacity: DefaultCapacity,
		MinCapacity:     DefaultMinCapacity,
		GrowLoad:        DefaultGrowLoad,
		ShrinkLoad:      DefaultShrinkLoad,
		Hasher:          PolynomialHasher{},
		Oracle:          prime.TrialDivision{},
		Logger:          log.Log.WithField("name", "hashmap"),
		Observer:        nopObserver{},
	}
}

// WithInitialCapacity sets the requested capacity of the new table.
func WithInitialCapacity(n int) Option {
	return func(o *Options) { o.InitialCapacity = n }
}

// WithMinCapacity sets the shrink floor.
func WithMinCapacity(n int) Option {
	return func(o *Options) { o.MinCapacity = n }
}

// WithMaxCapacity bounds growth. Inserts that would need a larger table fail
// with ErrCapacityExceeded.
func WithMaxCapacity(n int) Option {
	return func(o *Options) { o.MaxCapacity = n }
}

// WithWatermarks sets the shrink and grow load factors.
func WithWatermarks(shrink, grow float64) Option {
	return func(o *Options) {
		o.ShrinkLoad = shrink
		o.GrowLoad = grow
	}
}

// WithHasher replaces the polynomial hasher.
func WithHasher(h Hasher) Option {
	return func(o *Options) { o.Hasher = h }
}

// WithHasherName selects a hasher by its configuration name, "polynomial" or
// "xxhash". Unknown names make New fail.
func WithHasherName(name string) Option {
	return func(o *Options) {
		o.Hasher, _ = hasherByName(name)
	}
}

// WithOracle replaces the trial-division prime oracle.
func WithOracle(p prime.Oracle) Option {
	return func(o *Options) { o.Oracle = p }
}

// WithLogger sets the logger resize events are written to.
func WithLogger(l log.Interface) Option {
	return func(o *Options) { o.Logger = l }
}

// WithObserver registers hooks called on table events.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

func (o Options) validate() error {
	switch {
	case o.MinCapacity < 2:
		return errors.Wrapf(ErrInvalidConfig, "min capacity %d below 2", o.MinCapacity)
	case o.InitialCapacity < o.MinCapacity:
		return errors.Wrapf(ErrInvalidConfig, "initial capacity %d below min capacity %d", o.InitialCapacity, o.MinCapacity)
	case o.MaxCapacity != 0 && o.MaxCapacity < o.InitialCapacity:
		return errors.Wrapf(ErrInvalidConfig, "max capacity %d below initial capacity %d", o.MaxCapacity, o.InitialCapacity)
	case o.GrowLoad <= 0 || o.GrowLoad >= 1:
		return errors.Wrapf(ErrInvalidConfig, "grow load %.2f outside (0, 1)", o.GrowLoad)
	case o.ShrinkLoad < 0 || o.ShrinkLoad*2 >= o.GrowLoad:
		return errors.Wrapf(ErrInvalidConfig, "shrink load %.2f must be below half of grow load %.2f", o.ShrinkLoad, o.GrowLoad)
	case o.Hasher == nil:
		return errors.Wrap(ErrInvalidConfig, "unknown hasher")
	case o.Oracle == nil:
		return errors.Wrap(ErrInvalidConfig, "nil prime oracle")
	case o.Logger == nil:
		return errors.Wrap(ErrInvalidConfig, "nil logger")
	}
	return nil
}
