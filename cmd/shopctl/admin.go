package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/gameshop-client/internal/apiclient"
	"github.com/example/gameshop-client/internal/catalog"
)

// admin dispatches the admin console commands. The role check here is UI
// gating only; the server re-checks authorization on every mutating call.
func (a *app) admin(ctx context.Context, args []string) error {
	if !a.session.IsAuthenticated() {
		return fmt.Errorf("please log in to access the admin console")
	}
	if !a.session.IsAdmin() {
		return fmt.Errorf("access denied: admin role required")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: admin products|codes <action>")
	}
	switch args[0] {
	case "products":
		return a.adminProducts(ctx, args[1:])
	case "codes":
		return a.adminCodes(ctx, args[1:])
	default:
		return fmt.Errorf("unknown admin area %q", args[0])
	}
}

func (a *app) adminProducts(ctx context.Context, args []string) error {
	action := "list"
	if len(args) > 0 {
		action = args[0]
	}
	switch action {
	case "list":
		products, err := a.api.ListProducts(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			a.printf("  %-26s %-10s %-12s $%-8.2f [%s]\n",
				p.Title, p.Genre, p.Category, p.Price, p.ID)
		}
		return nil
	case "add":
		p, err := a.readProductForm(catalog.Product{Support: "PC"})
		if err != nil {
			return err
		}
		if err := a.api.CreateProduct(ctx, p); err != nil {
			return err
		}
		a.printf("Product created.\n")
		return nil
	case "edit":
		if len(args) != 2 {
			return fmt.Errorf("usage: admin products edit <id>")
		}
		existing, err := a.findProduct(ctx, args[1])
		if err != nil {
			return err
		}
		p, err := a.readProductForm(existing)
		if err != nil {
			return err
		}
		if err := a.api.UpdateProduct(ctx, args[1], p); err != nil {
			return err
		}
		a.printf("Product updated.\n")
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: admin products delete <id>")
		}
		if err := a.api.DeleteProduct(ctx, args[1]); err != nil {
			return err
		}
		a.printf("Product deleted.\n")
		return nil
	default:
		return fmt.Errorf("unknown action %q (want list, add, edit, delete)", action)
	}
}

func (a *app) adminCodes(ctx context.Context, args []string) error {
	action := "list"
	if len(args) > 0 {
		action = args[0]
	}
	switch action {
	case "list":
		codes, err := a.api.ListCodes(ctx)
		if err != nil {
			return err
		}
		for _, code := range codes {
			status := "inactive"
			if code.IsActive {
				status = "active"
			}
			a.printf("  %s  role=%-6s %-8s [%s]\n", code.Code, code.Role, status, code.ID)
		}
		return nil
	case "add":
		code := a.prompt("Code (empty to generate)")
		if code == "" {
			code = apiclient.RandomCode()
			a.printf("Generated code: %s\n", code)
		}
		role := a.promptDefault("Role (User/Admin)", "User")
		if err := a.api.CreateCode(ctx, code, role); err != nil {
			return err
		}
		a.printf("Auth code created.\n")
		return nil
	case "toggle":
		if len(args) != 3 {
			return fmt.Errorf("usage: admin codes toggle <id> <true|false>")
		}
		active, err := strconv.ParseBool(args[2])
		if err != nil {
			return fmt.Errorf("invalid active flag %q", args[2])
		}
		if err := a.api.SetCodeActive(ctx, args[1], active); err != nil {
			return err
		}
		a.printf("Auth code updated.\n")
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: admin codes delete <id>")
		}
		if err := a.api.DeleteCode(ctx, args[1]); err != nil {
			return err
		}
		a.printf("Auth code deleted.\n")
		return nil
	default:
		return fmt.Errorf("unknown action %q (want list, add, toggle, delete)", action)
	}
}

func (a *app) findProduct(ctx context.Context, id string) (catalog.Product, error) {
	products, err := a.api.ListProducts(ctx)
	if err != nil {
		return catalog.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, fmt.Errorf("product %q not found", id)
}

func (a *app) readProductForm(prior catalog.Product) (catalog.Product, error) {
	p := prior
	p.Title = a.promptDefault("Title", prior.Title)
	p.Description = a.promptDefault("Description", prior.Description)
	p.Genre = a.promptDefault("Genre", prior.Genre)
	p.Category = a.promptDefault("Category", prior.Category)
	p.Support = a.promptDefault("Support", prior.Support)
	p.Image = a.promptDefault("Image URL", prior.Image)

	price, err := strconv.ParseFloat(a.promptDefault("Price", fmt.Sprintf("%.2f", prior.Price)), 64)
	if err != nil {
		return p, fmt.Errorf("invalid price: %w", err)
	}
	p.Price = price

	rating, err := strconv.ParseFloat(a.promptDefault("Rating (0-5)", fmt.Sprintf("%.1f", prior.Rating)), 64)
	if err != nil {
		return p, fmt.Errorf("invalid rating: %w", err)
	}
	p.Rating = rating

	return p, nil
}
