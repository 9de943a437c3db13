// Package client consumes the FoodExpress API and carries the browsing/cart
// session state the browser UI needs.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/foodexpress/food-ordering-app/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// APIError is a non-success response; Message is the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is the server's not-found response.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// envelope mirrors utils.JSONResponse on the wire.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.HTTPClient.Get(c.BaseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func (c *Client) postJSON(path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Post(c.BaseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func decode(resp *http.Response, out interface{}) error {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) ListRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := c.get("/restaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := c.get("/restaurants/"+id, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) PlaceOrder(order models.Order) (*models.Order, error) {
	var placed models.Order
	if err := c.postJSON("/orders", order, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}

func (c *Client) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	if err := c.get("/orders/"+id, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) AdminStats() (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.get("/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// FilterRestaurants narrows a fetched list by name or cuisine substring.
// The server does no filtering; this is the UI's search box.
func FilterRestaurants(restaurants []models.Restaurant, term string) []models.Restaurant {
	term = strings.ToLower(term)
	filtered := []models.Restaurant{}
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Cuisine), term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
