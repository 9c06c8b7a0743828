package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"storefront/models"
)

var ErrClosed = errors.New("catalog container is closed")

type action string

const (
	actionActivate  action = "activate"
	actionSnapshot  action = "snapshot"
	actionFilter    action = "filter"
	actionAdd       action = "add"
	actionDecrement action = "decrement"
	actionReset     action = "reset"
)

// command is one user reaction. The loop answers every command with the resulting view.
type command struct {
	action action
	id     string
	key    string
	value  string
	reply  chan View
}

type loadResult struct {
	products []models.Product
	err      error
}

// Container owns the catalog State in a single goroutine. Commands, the load result and
// reconciliation ticks are handled one at a time, so no locking is needed.
type Container struct {
	fetcher  Fetcher
	interval time.Duration

	commands chan command
	loaded   chan loadResult
	quit     chan struct{}
	done     chan struct{}

	loadCtx    context.Context
	cancelLoad context.CancelFunc
	closeOnce  sync.Once
}

// NewContainer starts the owning goroutine. interval is the period between applied pending units.
func NewContainer(fetcher Fetcher, interval time.Duration) *Container {
	loadCtx, cancel := context.WithCancel(context.Background())
	c := &Container{
		fetcher:    fetcher,
		interval:   interval,
		commands:   make(chan command),
		loaded:     make(chan loadResult),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		loadCtx:    loadCtx,
		cancelLoad: cancel,
	}
	go c.loop()
	return c
}

func (c *Container) loop() {
	defer close(c.done)

	state := Initial()
	loadStarted := false

	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		var reply chan View

		select {
		case cmd := <-c.commands:
			reply = cmd.reply
			switch cmd.action {
			case actionActivate:
				if !loadStarted {
					loadStarted = true
					go c.load()
				}
			case actionFilter:
				state = FilterChanged(state, cmd.key, cmd.value)
			case actionAdd:
				state = Add(state, cmd.id)
			case actionDecrement:
				state = Decrement(state, cmd.id)
			case actionReset:
				state = Reset(state)
			}
		case res := <-c.loaded:
			if res.err != nil {
				zap.L().Error("catalog load failed", zap.Error(res.err))
				state = LoadFailed(state, res.err)
			} else {
				zap.L().Info("catalog loaded", zap.Int("products", len(res.products)))
				state = LoadSucceeded(state, res.products)
			}
		case <-tick:
			state = Tick(state)
		case <-c.quit:
			return
		}

		switch {
		case state.Pending.Len() > 0 && ticker == nil:
			ticker = time.NewTicker(c.interval)
			tick = ticker.C
			zap.L().Debug("reconciliation timer started")
		case state.Pending.Len() == 0 && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
			zap.L().Debug("reconciliation timer stopped")
		}

		if reply != nil {
			reply <- BuildView(state, ticker != nil)
		}
	}
}

// load runs the fetch outside the loop. A result arriving after Close is dropped.
func (c *Container) load() {
	products, err := c.fetcher.Fetch(c.loadCtx)
	select {
	case c.loaded <- loadResult{products: products, err: err}:
	case <-c.quit:
	}
}

func (c *Container) do(ctx context.Context, cmd command) (View, error) {
	cmd.reply = make(chan View, 1)

	select {
	case c.commands <- cmd:
	case <-c.quit:
		return View{}, ErrClosed
	case <-ctx.Done():
		return View{}, ctx.Err()
	}

	select {
	case v := <-cmd.reply:
		return v, nil
	case <-c.done:
		return View{}, ErrClosed
	case <-ctx.Done():
		return View{}, ctx.Err()
	}
}

// Activate starts the one-time catalog load on first call; later calls only return the view.
func (c *Container) Activate(ctx context.Context) (View, error) {
	return c.do(ctx, command{action: actionActivate})
}

// Snapshot returns the current view without changing anything.
func (c *Container) Snapshot(ctx context.Context) (View, error) {
	return c.do(ctx, command{action: actionSnapshot})
}

// UpdateFilter sets one filter ("category" or "maxPrice").
func (c *Container) UpdateFilter(ctx context.Context, key, value string) (View, error) {
	return c.do(ctx, command{action: actionFilter, key: key, value: value})
}

func (c *Container) AddToCart(ctx context.Context, productID string) (View, error) {
	return c.do(ctx, command{action: actionAdd, id: productID})
}

func (c *Container) Decrement(ctx context.Context, productID string) (View, error) {
	return c.do(ctx, command{action: actionDecrement, id: productID})
}

func (c *Container) Reset(ctx context.Context) (View, error) {
	return c.do(ctx, command{action: actionReset})
}

// Close stops the loop and its timer and abandons any load in flight. It is safe to call twice.
func (c *Container) Close() {
	c.closeOnce.Do(func() {
		c.cancelLoad()
		close(c.quit)
		<-c.done
	})
}
