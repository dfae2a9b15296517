package checkout

import (
	"context"
	"errors"
	"log"

	"github.com/example/gameshop-client/internal/apiclient"
	"github.com/example/gameshop-client/internal/cart"
)

// State is the checkout flow position.
type State int

const (
	StateBrowsing State = iota
	StateCartReview
	StateCheckoutForm
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "Browsing"
	case StateCartReview:
		return "CartReview"
	case StateCheckoutForm:
		return "CheckoutForm"
	case StateSubmitting:
		return "Submitting"
	default:
		return "Unknown"
	}
}

// PaymentMethod selects how the customer pays.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentWave   PaymentMethod = "wave"
	PaymentOrange PaymentMethod = "orange"
)

// FormData is the checkout form. Card fields apply to card payments, the
// phone number to the mobile-money methods.
type FormData struct {
	Name          string
	Email         string
	PaymentMethod PaymentMethod
	CardNumber    string
	Expiry        string
	CVV           string
	PhoneNumber   string
}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid checkout transition")
)

// OrderPlacer submits a completed order. Satisfied by apiclient.Client.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order apiclient.Order) error
}

// Flow drives one session's checkout:
// Browsing -> CartReview -> CheckoutForm -> Submitting -> back to Browsing
// on success, or back to CheckoutForm on failure with the entered form
// data retained and the cart untouched.
type Flow struct {
	state  State
	cart   *cart.Cart
	form   FormData
	orders OrderPlacer
}

func NewFlow(c *cart.Cart, orders OrderPlacer) *Flow {
	return &Flow{
		state:  StateBrowsing,
		cart:   c,
		form:   FormData{PaymentMethod: PaymentCard},
		orders: orders,
	}
}

func (f *Flow) State() State {
	return f.state
}

func (f *Flow) Form() FormData {
	return f.form
}

// OpenCart moves from Browsing to CartReview.
func (f *Flow) OpenCart() error {
	if f.state != StateBrowsing {
		return ErrInvalidTransition
	}
	f.state = StateCartReview
	return nil
}

// BeginCheckout moves from CartReview to CheckoutForm. An empty cart
// cannot proceed to the form.
func (f *Flow) BeginCheckout() error {
	if f.state != StateCartReview {
		return ErrInvalidTransition
	}
	if f.cart.Empty() {
		return ErrEmptyCart
	}
	f.state = StateCheckoutForm
	return nil
}

// Back steps one state toward Browsing. Form data is kept so a customer
// can return to the form without retyping.
func (f *Flow) Back() {
	switch f.state {
	case StateCheckoutForm:
		f.state = StateCartReview
	case StateCartReview:
		f.state = StateBrowsing
	}
}

// SetForm records the entered form data. Only valid on the form screen.
func (f *Flow) SetForm(form FormData) error {
	if f.state != StateCheckoutForm {
		return ErrInvalidTransition
	}
	f.form = form
	return nil
}

// Submit places the order built from the cart and form. On success the
// cart is cleared, the form reset, and the flow returns to Browsing. On
// failure the flow returns to CheckoutForm with form data and cart
// unchanged, and the error is surfaced as recoverable.
func (f *Flow) Submit(ctx context.Context) error {
	if f.state != StateCheckoutForm {
		return ErrInvalidTransition
	}
	f.state = StateSubmitting

	order := f.buildOrder()
	log.Printf("[Checkout] Submitting order: %d items, total %.2f", len(order.Items), order.TotalAmount)

	if err := f.orders.PlaceOrder(ctx, order); err != nil {
		f.state = StateCheckoutForm
		return err
	}

	f.cart.Clear()
	f.form = FormData{PaymentMethod: PaymentCard}
	f.state = StateBrowsing
	return nil
}

func (f *Flow) buildOrder() apiclient.Order {
	lines := f.cart.Lines()
	items := make([]apiclient.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, apiclient.OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	order := apiclient.Order{
		CustomerName:  f.form.Name,
		CustomerEmail: f.form.Email,
		PaymentMethod: string(f.form.PaymentMethod),
		Items:         items,
		TotalAmount:   f.cart.Total(),
	}
	switch f.form.PaymentMethod {
	case PaymentCard:
		order.CardNumber = f.form.CardNumber
		order.Expiry = f.form.Expiry
		order.CVV = f.form.CVV
	default:
		order.PhoneNumber = f.form.PhoneNumber
	}
	return order
}
