package features

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"storefront/catalog"
	"storefront/store"
)

type cartTestContext struct {
	state store.State
}

func (c *cartTestContext) reset() {
	c.state = store.Initial()
}

func (c *cartTestContext) theDemoCatalogIsLoaded() error {
	c.state = store.LoadSucceeded(c.state, catalog.Fixture())
	return nil
}

func (c *cartTestContext) productHasStock(id string, stock int) error {
	products := catalog.Fixture()
	for i := range products {
		if products[i].ID == id {
			products[i].Stock = stock
			c.state = store.LoadSucceeded(store.Initial(), products)
			return nil
		}
	}
	return fmt.Errorf("unknown product %s", id)
}

func (c *cartTestContext) iAddToTheCartTimes(id string, times int) error {
	for i := 0; i < times; i++ {
		c.state = store.Add(c.state, id)
	}
	return nil
}

func (c *cartTestContext) iDecrement(id string) error {
	c.state = store.Decrement(c.state, id)
	return nil
}

func (c *cartTestContext) iResetTheCart() error {
	c.state = store.Reset(c.state)
	return nil
}

func (c *cartTestContext) theReconciliationTimerTicksTimes(times int) error {
	for i := 0; i < times; i++ {
		c.state = store.Tick(c.state)
	}
	return nil
}

func (c *cartTestContext) theCartHoldsOf(qty int, id string) error {
	if got := c.state.Cart.Get(id); got != qty {
		return fmt.Errorf("expected %d of %s in the cart, got %d", qty, id, got)
	}
	return nil
}

func (c *cartTestContext) theStockOfIs(id string, stock int) error {
	for _, p := range c.state.Products {
		if p.ID == id {
			if p.Stock != stock {
				return fmt.Errorf("expected stock %d for %s, got %d", stock, id, p.Stock)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown product %s", id)
}

func (c *cartTestContext) theCartIsEmpty() error {
	if n := c.state.Cart.Len(); n != 0 {
		return fmt.Errorf("expected an empty cart, got %v", c.state.Cart.Map())
	}
	return nil
}

func (c *cartTestContext) nothingIsPending() error {
	if n := c.state.Pending.Len(); n != 0 {
		return fmt.Errorf("expected nothing pending, got %v", c.state.Pending.Map())
	}
	return nil
}

func (c *cartTestContext) ofIsPending(qty int, id string) error {
	if got := c.state.Pending.Get(id); got != qty {
		return fmt.Errorf("expected %d pending for %s, got %d", qty, id, got)
	}
	return nil
}

func (c *cartTestContext) theCartHasItemsTotalling(count int, total string) error {
	totals := store.CartTotals(c.state.Products, c.state.Cart)
	if totals.ItemCount != count {
		return fmt.Errorf("expected %d items, got %d", count, totals.ItemCount)
	}
	if got := totals.Total.StringFixed(2); got != total {
		return fmt.Errorf("expected total %s, got %s", total, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the demo catalog is loaded$`, tc.theDemoCatalogIsLoaded)
	ctx.Step(`^product "([^"]*)" has stock (\d+)$`, tc.productHasStock)

	// When steps
	ctx.Step(`^I add "([^"]*)" to the cart (\d+) times$`, tc.iAddToTheCartTimes)
	ctx.Step(`^I decrement "([^"]*)"$`, tc.iDecrement)
	ctx.Step(`^I reset the cart$`, tc.iResetTheCart)
	ctx.Step(`^the reconciliation timer ticks (\d+) times$`, tc.theReconciliationTimerTicksTimes)

	// Then steps
	ctx.Step(`^the cart holds (\d+) of "([^"]*)"$`, tc.theCartHoldsOf)
	ctx.Step(`^the stock of "([^"]*)" is (\d+)$`, tc.theStockOfIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^nothing is pending$`, tc.nothingIsPending)
	ctx.Step(`^(\d+) of "([^"]*)" is pending$`, tc.ofIsPending)
	ctx.Step(`^the cart has (\d+) items totalling "([^"]*)"$`, tc.theCartHasItemsTotalling)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
