package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/example/gameshop-client/internal/apiclient"
	"github.com/example/gameshop-client/internal/cart"
	"github.com/example/gameshop-client/internal/catalog"
	"github.com/example/gameshop-client/internal/checkout"
	"github.com/example/gameshop-client/internal/config"
	"github.com/example/gameshop-client/internal/gateway"
	"github.com/example/gameshop-client/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Shopctl] Failed to load config: %v", err)
	}

	log.Println("[Shopctl] ========================================")
	log.Println("[Shopctl] Game Storefront")
	log.Println("[Shopctl] ========================================")
	log.Printf("[Shopctl] API: %s", cfg.APIBaseURL)

	sess := session.New()
	gw := gateway.New(&http.Client{Timeout: cfg.HTTPTimeout}, sess)
	api := apiclient.New(cfg.APIBaseURL, gw)

	app := &app{
		session: sess,
		api:     api,
		cart:    cart.New(),
		filters: catalog.NewFilterState(),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
	app.flow = checkout.NewFlow(app.cart, api)

	app.run(context.Background())
}

type app struct {
	session *session.Session
	api     *apiclient.Client
	cart    *cart.Cart
	filters *catalog.FilterState
	flow    *checkout.Flow

	catalog []catalog.Product
	in      *bufio.Scanner
	out     *os.File
}

func (a *app) run(ctx context.Context) {
	a.printf("Type 'help' for commands.\n")
	for {
		a.printf("> ")
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		a.dispatch(ctx, cmd, args)
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) {
	var err error
	switch cmd {
	case "help":
		a.printHelp()
	case "login":
		err = a.login(ctx, args)
	case "logout":
		a.session.Clear()
		a.printf("Logged out.\n")
	case "whoami":
		a.whoami()
	case "catalog":
		err = a.showCatalog(ctx)
	case "search":
		a.filters.Search = strings.Join(args, " ")
		err = a.showCatalog(ctx)
	case "genre":
		if len(args) != 1 {
			err = fmt.Errorf("usage: genre <name>")
			break
		}
		a.filters.ToggleGenre(args[0])
		err = a.showCatalog(ctx)
	case "price":
		err = a.setPriceBucket(ctx, args)
	case "clearfilters":
		a.filters.Clear()
		err = a.showCatalog(ctx)
	case "add":
		err = a.addToCart(ctx, args)
	case "qty":
		err = a.updateQuantity(args)
	case "remove":
		if len(args) != 1 {
			err = fmt.Errorf("usage: remove <product-id>")
			break
		}
		a.cart.Remove(args[0])
		a.showCart()
	case "cart":
		a.showCart()
	case "checkout":
		err = a.checkout(ctx)
	case "admin":
		err = a.admin(ctx, args)
	default:
		a.printf("Unknown command %q. Type 'help' for commands.\n", cmd)
	}
	if err != nil {
		// Errors are terminal for the triggering command only; the loop
		// keeps running.
		a.printf("Error: %v\n", err)
	}
}

func (a *app) printHelp() {
	a.printf(`Commands:
  login <code>          authenticate with a 6-digit access code
  logout                clear the local session
  whoami                show authentication state
  catalog               load and show the catalog (filters applied)
  search <text>         set the free-text search filter
  genre <name>          toggle a genre filter
  price <bucket>        set price filter: under-15, 15-30, 30-50, over-50, none
  clearfilters          clear search and all filters
  add <product-id>      add a product to the cart
  qty <id> <n>          set a cart line's quantity (0 removes it)
  remove <product-id>   remove a cart line
  cart                  review the cart
  checkout              start the checkout flow
  admin products|codes  admin management (requires Admin role)
  quit                  exit
`)
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: login <code>")
	}
	token, err := a.api.Login(ctx, args[0])
	if err != nil {
		return err
	}
	a.session.SetToken(token)
	a.printf("Authentication successful.\n")
	return nil
}

func (a *app) whoami() {
	if !a.session.IsAuthenticated() {
		a.printf("Not authenticated.\n")
		return
	}
	role := a.session.Role()
	if role == "" {
		role = "(none)"
	}
	a.printf("Authenticated. Role: %s\n", role)
}

func (a *app) setPriceBucket(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: price <under-15|15-30|30-50|over-50|none>")
	}
	switch args[0] {
	case "none":
		a.filters.Bucket = catalog.BucketNone
	case string(catalog.BucketUnder15), string(catalog.Bucket15To30),
		string(catalog.Bucket30To50), string(catalog.BucketOver50):
		a.filters.Bucket = catalog.PriceBucket(args[0])
	default:
		return fmt.Errorf("unknown price bucket %q", args[0])
	}
	return a.showCatalog(ctx)
}

// loadCatalog fetches the product list once per command that needs it.
// A superseded load is not cancelled; the last response wins.
func (a *app) loadCatalog(ctx context.Context) error {
	products, err := a.api.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	a.catalog = products
	return nil
}

func (a *app) showCatalog(ctx context.Context) error {
	if err := a.loadCatalog(ctx); err != nil {
		return err
	}
	visible := catalog.Apply(a.catalog, a.filters)
	if len(visible) == 0 {
		a.printf("No games found. Try adjusting your filters or search.\n")
		return nil
	}
	for _, section := range catalog.GroupByCategory(visible, nil) {
		a.printf("== %s ==\n", section.Category)
		for _, p := range section.Products {
			a.printf("  %-26s %-10s $%-8.2f rating %.1f  [%s]\n",
				p.Title, p.Genre, p.Price, p.Rating, p.ID)
		}
	}
	return nil
}

func (a *app) addToCart(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: add <product-id>")
	}
	if a.catalog == nil {
		if err := a.loadCatalog(ctx); err != nil {
			return err
		}
	}
	for _, p := range a.catalog {
		if p.ID == args[0] {
			a.cart.Add(p)
			a.printf("Added %q. Cart: %d items, $%.2f\n", p.Title, a.cart.Count(), a.cart.Total())
			return nil
		}
	}
	return fmt.Errorf("product %q not found in catalog", args[0])
}

func (a *app) updateQuantity(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: qty <product-id> <quantity>")
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}
	a.cart.UpdateQuantity(args[0], quantity)
	a.showCart()
	return nil
}

func (a *app) showCart() {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		a.printf("Your cart is empty.\n")
		return
	}
	for _, line := range lines {
		a.printf("  %-26s x%-3d $%-8.2f [%s]\n",
			line.Title, line.Quantity, line.Price*float64(line.Quantity), line.ProductID)
	}
	a.printf("Total: $%.2f (%d items)\n", a.cart.Total(), a.cart.Count())
}

// checkout walks the flow: cart review, form entry, submit. A failed
// submission drops back to the form with the entered data retained.
func (a *app) checkout(ctx context.Context) error {
	if err := a.flow.OpenCart(); err != nil {
		return err
	}
	a.showCart()
	if err := a.flow.BeginCheckout(); err != nil {
		a.flow.Back()
		return err
	}

	for {
		form, err := a.readForm(a.flow.Form())
		if err != nil {
			a.flow.Back()
			a.flow.Back()
			return err
		}
		if err := a.flow.SetForm(form); err != nil {
			return err
		}
		err = a.flow.Submit(ctx)
		if err == nil {
			a.printf("Order placed successfully!\n")
			return nil
		}
		if errors.Is(err, apiclient.ErrUnauthorized) {
			a.flow.Back()
			a.flow.Back()
			return fmt.Errorf("authentication failed, please log in again")
		}
		a.printf("Order failed: %v\n", err)
		a.printf("Press enter to edit the form, or type 'cancel' to abandon checkout.\n")
		if a.prompt("") == "cancel" {
			a.flow.Back()
			a.flow.Back()
			return nil
		}
	}
}

// readForm collects the checkout form, pre-filling from prior values so a
// failed submit does not lose entered data.
func (a *app) readForm(prior checkout.FormData) (checkout.FormData, error) {
	form := prior
	form.Name = a.promptDefault("Full name", prior.Name)
	form.Email = a.promptDefault("Email", prior.Email)

	method := a.promptDefault("Payment method (card/wave/orange)", string(prior.PaymentMethod))
	switch method {
	case string(checkout.PaymentCard), string(checkout.PaymentWave), string(checkout.PaymentOrange):
		form.PaymentMethod = checkout.PaymentMethod(method)
	default:
		return form, fmt.Errorf("unknown payment method %q", method)
	}

	if form.PaymentMethod == checkout.PaymentCard {
		form.CardNumber = a.promptDefault("Card number", prior.CardNumber)
		form.Expiry = a.promptDefault("Expiry (MM/YY)", prior.Expiry)
		form.CVV = a.promptDefault("CVV", prior.CVV)
	} else {
		form.PhoneNumber = a.promptDefault("Phone number", prior.PhoneNumber)
	}
	return form, nil
}

func (a *app) prompt(label string) string {
	if label != "" {
		a.printf("%s: ", label)
	}
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptDefault(label, fallback string) string {
	if fallback != "" {
		label = fmt.Sprintf("%s [%s]", label, fallback)
	}
	if value := a.prompt(label); value != "" {
		return value
	}
	return fallback
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
