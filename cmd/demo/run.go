package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/dispatchkit/pkg/computer"
	"github.com/dmitrymomot/dispatchkit/pkg/dispatch"
	"github.com/dmitrymomot/dispatchkit/pkg/news"
	"github.com/dmitrymomot/dispatchkit/pkg/payment"
)

// run walks through the payment, animal, news and computer demos, writing
// every result to out.
func run(ctx context.Context, f *dispatch.Facade, out io.Writer) error {
	payments := []struct {
		key    string
		amount int
	}{
		{payment.KeyCreditCard, 100},
		{payment.KeyPayPal, 200},
		{payment.KeyGooglePay, 300},
	}
	for _, p := range payments {
		receipt, err := f.PayVia(ctx, p.key, p.amount)
		if err != nil {
			return fmt.Errorf("pay via %s: %w", p.key, err)
		}
		fmt.Fprintln(out, receipt)
	}

	for _, key := range []string{"dog", "Cat", "RABBIT"} {
		desc, err := f.Describe(key)
		if err != nil {
			return fmt.Errorf("describe %s: %w", key, err)
		}
		fmt.Fprintln(out, desc)
	}

	alice := news.NewReader("Alice", out)
	bob := news.NewReader("Bob", out)
	charlie := news.NewReader("Charlie", out)

	f.News().Subscribe(alice)
	f.News().Subscribe(bob)
	if err := f.Announce(ctx, "Breaking News: Java Observer Pattern Simplified!"); err != nil {
		return err
	}

	f.News().Unsubscribe(bob)
	if err := f.Announce(ctx, "Latest Update: Observer Pattern in Action!"); err != nil {
		return err
	}

	f.News().Subscribe(charlie)
	if err := f.Announce(ctx, "News Flash: New Observer Joined the Channel!"); err != nil {
		return err
	}

	pc, err := computer.NewBuilder().
		WithCPU("Intel i7").
		WithRAM(16).
		WithGPU("Nvidia GTX 1080").
		WithStorage("1TB SSD").
		Build()
	if err != nil {
		return fmt.Errorf("build computer: %w", err)
	}
	fmt.Fprintln(out, pc)

	return nil
}
