package apiclient

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"
)

// AuthCode is an access code record as managed by the admin console.
type AuthCode struct {
	ID        string     `json:"_id"`
	Code      string     `json:"code"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
}

// ListCodes fetches all access codes. Admin only.
func (c *Client) ListCodes(ctx context.Context) ([]AuthCode, error) {
	var codes []AuthCode
	if err := c.getData(ctx, "/code", &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// CreateCode registers a new access code with the given role.
func (c *Client) CreateCode(ctx context.Context, code, role string) error {
	body := map[string]string{"code": code, "role": role}
	return c.doExpectOK(ctx, http.MethodPost, "/code", body)
}

// UpdateCode changes an existing code's value and role.
func (c *Client) UpdateCode(ctx context.Context, id, code, role string) error {
	body := map[string]string{"code": code, "role": role}
	return c.doExpectOK(ctx, http.MethodPut, "/code/"+id, body)
}

// SetCodeActive toggles whether the code can be used to log in.
func (c *Client) SetCodeActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.doExpectOK(ctx, http.MethodPut, "/code/"+id, body)
}

// DeleteCode removes the access code.
func (c *Client) DeleteCode(ctx context.Context, id string) error {
	return c.doExpectOK(ctx, http.MethodDelete, "/code/"+id, nil)
}

// RandomCode generates a 6-digit access code for the admin create flow.
func RandomCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}
