// Package checkout validates payment forms and turns a cart into an order
// notification after a simulated processing delay.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/rogerio-castellano/pawelier/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

type Options struct {
	Pricing Pricing
	// Delay simulates payment processing.
	Delay   time.Duration
	LockTTL time.Duration
	Locker  Locker
	Logger  *logrus.Logger
	Now     func() time.Time
}

type Service struct {
	pricing Pricing
	delay   time.Duration
	lockTTL time.Duration
	locker  Locker
	ids     *IDGenerator
	log     *logrus.Logger
	now     func() time.Time
}

func NewService(opts Options) *Service {
	if opts.Locker == nil {
		opts.Locker = NewMemoryLocker()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = opts.Delay + 30*time.Second
	}
	return &Service{
		pricing: opts.Pricing,
		delay:   opts.Delay,
		lockTTL: opts.LockTTL,
		locker:  opts.Locker,
		ids:     NewIDGenerator(opts.Now),
		log:     opts.Logger,
		now:     opts.Now,
	}
}

// Summary prices the current contents of cart.
func (s *Service) Summary(cart *store.CartStore) Summary {
	return s.summarizeLines(cart.Lines())
}

func (s *Service) summarizeLines(lines []models.CartLine) Summary {
	subtotal := decimal.Zero
	count := 0
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal().Value)
		count += l.Quantity
	}
	sum := s.pricing.Summarize(subtotal, count)
	sum.Currency = models.LinesCurrency(lines, s.pricing.Currency)
	return sum
}

// PlaceOrder validates form and waits out the processing delay before turning
// the cart into an order notification. Cancelling ctx during the delay leaves
// the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context, userID int, sess *store.Session, form Form) (models.OrderNotification, error) {
	if errs := Validate(form); len(errs) > 0 {
		return models.OrderNotification{}, &ValidationError{Fields: errs}
	}
	if sess.Cart.ItemCount() == 0 {
		return models.OrderNotification{}, ErrEmptyCart
	}

	release, err := s.locker.Acquire(ctx, fmt.Sprintf("checkout:lock:%d", userID), s.lockTTL)
	if err != nil {
		return models.OrderNotification{}, err
	}
	defer release()

	if err := s.wait(ctx); err != nil {
		s.log.WithField("user_id", userID).Info("checkout cancelled")
		return models.OrderNotification{}, fmt.Errorf("checkout interrupted: %w", err)
	}

	// Drain takes the lines and empties the cart in one step, so lines added
	// from here on stay in the cart for the next order.
	lines := sess.Cart.Drain()
	if len(lines) == 0 {
		return models.OrderNotification{}, ErrEmptyCart
	}
	summary := s.summarizeLines(lines)

	products := make([]models.Product, len(lines))
	for i, l := range lines {
		products[i] = l.Product
	}

	orderID := s.ids.Next()
	for sess.Notifications.Contains(orderID) {
		orderID = s.ids.Next()
	}

	n := models.OrderNotification{
		OrderID:     orderID,
		Products:    products,
		TotalAmount: summary.Total,
		ItemCount:   summary.ItemCount,
		CreatedAt:   s.now().UTC(),
	}
	sess.Notifications.AddNotification(n)

	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"order_id":   orderID,
		"item_count": n.ItemCount,
		"total":      n.TotalAmount.StringFixed(2),
	}).Info("order placed")

	return n, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
