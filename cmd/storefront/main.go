// Command storefront is a terminal client for the demo store. It signs in
// with the configured credential pair, walks the checkout flow against the
// payment API and prints the verdict.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techbooks/storefront/checkout"
	"github.com/techbooks/storefront/internal/config"
	"github.com/techbooks/storefront/session"
	"github.com/techbooks/storefront/storefront"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running storefront: %s\n", err)
	}
}

func run() error {
	c := config.New()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storage := newStorage(c)
	accepted := session.Credentials{
		Email:    c.GetLoginEmail(),
		Password: c.GetLoginPassword(),
	}

	manager, err := session.NewManager(storage, accepted,
		session.WithStorageKey(c.GetSessionStorageKey()))
	if err != nil {
		return err
	}

	manager.Rehydrate(ctx)

	view := storefront.NewViewState(true)
	view.SetAuthenticated(manager.Authenticated())

	if !manager.Authenticated() {
		result := manager.Login(ctx, accepted)
		if !result.Success {
			return fmt.Errorf("login failed: %s", result.Message)
		}
		view.SetAuthenticated(true)
	}

	identity, _ := manager.Identity()
	fmt.Printf("Signed in as %s (view: %s)\n", identity.Email, view.ActiveView())

	client, err := checkout.NewHTTPClient(c.GetPaymentBaseURL(),
		checkout.WithTimeout(c.GetPaymentTimeout()))
	if err != nil {
		return err
	}

	flow, err := checkout.NewFlow(client)
	if err != nil {
		return err
	}

	result, err := flow.Initiate(ctx, c.GetProductPrice())
	if err != nil {
		return err
	}

	fmt.Printf("[%s] %s", result.Status, result.Message)
	if result.OrderID != "" {
		fmt.Printf(" (order %s)", result.OrderID)
	}
	fmt.Println()

	flow.Dismiss()
	return nil
}

// newStorage selects Redis-backed session storage when REDIS_ADDR is set
// and falls back to an in-memory store otherwise. The in-memory store does
// not survive restarts, so rehydration only matters with Redis.
func newStorage(c config.Config) session.Storage {
	addr := c.GetRedisAddr()
	if addr == "" {
		return session.NewInMemoryStorage()
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return session.NewRedisStorage(client, c.GetRedisKeyPrefix())
}
