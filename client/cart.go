package client

import (
	"errors"

	"github.com/foodexpress/food-ordering-app/models"
)

// View is the UI's top-level state: either the restaurant grid or one
// selected restaurant with the cart panel.
type View int

const (
	Browsing View = iota
	ViewingRestaurant
)

// CartLine pairs a dish snapshot with a session-local line id, so the same
// dish can sit in the cart twice and each line is removable on its own.
type CartLine struct {
	models.Dish
	LineID int64
}

// Session drives the cart state machine against the API.
type Session struct {
	api        *Client
	view       View
	restaurant *models.Restaurant
	cart       []CartLine
	lineSeq    int64
}

func NewSession(api *Client) *Session {
	return &Session{api: api, view: Browsing}
}

func (s *Session) View() View { return s.view }

func (s *Session) Restaurant() *models.Restaurant { return s.restaurant }

func (s *Session) CartLines() []CartLine {
	lines := make([]CartLine, len(s.cart))
	copy(lines, s.cart)
	return lines
}

// SelectRestaurant fetches the restaurant and switches to the detail view.
// On failure the session stays where it was.
func (s *Session) SelectRestaurant(id string) error {
	restaurant, err := s.api.GetRestaurant(id)
	if err != nil {
		return err
	}
	s.restaurant = restaurant
	s.view = ViewingRestaurant
	return nil
}

// Back returns to browsing. The cart is preserved across the transition.
func (s *Session) Back() {
	s.restaurant = nil
	s.view = Browsing
}

// AddToCart appends a cart line for the dish and returns it. Line ids are
// session-unique so duplicate dishes stay individually removable.
func (s *Session) AddToCart(dish models.Dish) CartLine {
	s.lineSeq++
	line := CartLine{Dish: dish, LineID: s.lineSeq}
	s.cart = append(s.cart, line)
	return line
}

// RemoveFromCart drops the line with the given id; unknown ids are a no-op.
func (s *Session) RemoveFromCart(lineID int64) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.LineID != lineID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

// CartTotal is the sum of line prices. No tax, discount or delivery fee.
func (s *Session) CartTotal() int {
	total := 0
	for _, line := range s.cart {
		total += line.Price
	}
	return total
}

// PlaceOrder submits the cart. An empty cart sends no request. On success
// the cart clears and the session returns to browsing; on failure the cart
// and view are left untouched.
func (s *Session) PlaceOrder(deliveryAddress string) (*models.Order, error) {
	if len(s.cart) == 0 {
		return nil, nil
	}
	if s.restaurant == nil {
		return nil, errors.New("no restaurant selected")
	}

	items := make(models.OrderItemList, 0, len(s.cart))
	for _, line := range s.cart {
		items = append(items, models.OrderItem{
			ID:          line.Dish.ID,
			Name:        line.Dish.Name,
			Price:       line.Dish.Price,
			Description: line.Dish.Description,
			Category:    line.Dish.Category,
			Image:       line.Dish.Image,
			CartID:      line.LineID,
		})
	}

	order := models.Order{
		RestaurantID:    s.restaurant.ID,
		RestaurantName:  s.restaurant.Name,
		Items:           items,
		Total:           float64(s.CartTotal()),
		DeliveryAddress: deliveryAddress,
	}

	placed, err := s.api.PlaceOrder(order)
	if err != nil {
		return nil, err
	}

	s.cart = nil
	s.restaurant = nil
	s.view = Browsing
	return placed, nil
}
