package http

import (
	"time"

	"eats/internal/core/application/usecases/queries"
)

// Request bodies. Update payloads for customers and order status use
// pointers so absent fields mean "keep the current value".

type createRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CuisineType string `json:"cuisine_type"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

type updateRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CuisineType string `json:"cuisine_type"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
	IsActive    bool   `json:"is_active"`
}

type createMenuItemRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	Category           string `json:"category"`
	IsVegetarian       bool   `json:"is_vegetarian"`
	IsVegan            bool   `json:"is_vegan"`
	PreparationMinutes int    `json:"preparation_minutes"`
}

type updateMenuItemRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	Category           string `json:"category"`
	IsVegetarian       bool   `json:"is_vegetarian"`
	IsVegan            bool   `json:"is_vegan"`
	IsAvailable        bool   `json:"is_available"`
	PreparationMinutes int    `json:"preparation_minutes"`
}

type createCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type updateCustomerRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	IsActive    *bool   `json:"is_active"`
}

type placeOrderRequest struct {
	CustomerID          string                  `json:"customer_id"`
	RestaurantID        string                  `json:"restaurant_id"`
	DeliveryAddress     string                  `json:"delivery_address"`
	SpecialInstructions string                  `json:"special_instructions"`
	Items               []placeOrderLineRequest `json:"items"`
}

type placeOrderLineRequest struct {
	MenuItemID      string `json:"menu_item_id"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"special_requests"`
}

type updateOrderStatusRequest struct {
	Status              string     `json:"status"`
	EstimatedDelivery   *time.Time `json:"estimated_delivery"`
	SpecialInstructions *string    `json:"special_instructions"`
}

type submitReviewRequest struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Response bodies. Query responses carry kernel value types, which do not
// marshal, so each read model gets a plain JSON mirror here.

type restaurantJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CuisineType string  `json:"cuisine_type"`
	Address     string  `json:"address"`
	PhoneNumber string  `json:"phone_number"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	IsActive    bool    `json:"is_active"`
	OpeningTime string  `json:"opening_time"`
	ClosingTime string  `json:"closing_time"`
}

func toRestaurantJSON(r queries.RestaurantResponse) restaurantJSON {
	return restaurantJSON{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		CuisineType: r.CuisineType,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Location:    r.Location,
		Rating:      r.Rating,
		IsActive:    r.IsActive,
		OpeningTime: r.OpeningTime.String(),
		ClosingTime: r.ClosingTime.String(),
	}
}

func toRestaurantListJSON(rs []queries.RestaurantResponse) []restaurantJSON {
	out := make([]restaurantJSON, len(rs))
	for i, r := range rs {
		out[i] = toRestaurantJSON(r)
	}
	return out
}

type menuItemJSON struct {
	ID                 string `json:"id"`
	RestaurantID       string `json:"restaurant_id"`
	RestaurantName     string `json:"restaurant_name,omitempty"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              string `json:"price"`
	Category           string `json:"category"`
	IsVegetarian       bool   `json:"is_vegetarian"`
	IsVegan            bool   `json:"is_vegan"`
	IsAvailable        bool   `json:"is_available"`
	PreparationMinutes int    `json:"preparation_minutes"`
}

func toMenuItemJSON(m queries.MenuItemResponse) menuItemJSON {
	return menuItemJSON{
		ID:                 m.ID.String(),
		RestaurantID:       m.RestaurantID.String(),
		RestaurantName:     m.RestaurantName,
		Name:               m.Name,
		Description:        m.Description,
		Price:              m.Price.String(),
		Category:           m.Category,
		IsVegetarian:       m.IsVegetarian,
		IsVegan:            m.IsVegan,
		IsAvailable:        m.IsAvailable,
		PreparationMinutes: m.PreparationMinutes,
	}
}

func toMenuItemListJSON(ms []queries.MenuItemResponse) []menuItemJSON {
	out := make([]menuItemJSON, len(ms))
	for i, m := range ms {
		out[i] = toMenuItemJSON(m)
	}
	return out
}

type customerJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	IsActive    bool   `json:"is_active"`
}

func toCustomerJSON(c queries.CustomerResponse) customerJSON {
	return customerJSON{
		ID:          c.ID.String(),
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		IsActive:    c.IsActive,
	}
}

func toCustomerListJSON(cs []queries.CustomerResponse) []customerJSON {
	out := make([]customerJSON, len(cs))
	for i, c := range cs {
		out[i] = toCustomerJSON(c)
	}
	return out
}

type orderSummaryJSON struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer_id"`
	CustomerName      string    `json:"customer_name"`
	RestaurantID      string    `json:"restaurant_id"`
	RestaurantName    string    `json:"restaurant_name"`
	Status            string    `json:"status"`
	TotalAmount       string    `json:"total_amount"`
	OrderedAt         time.Time `json:"ordered_at"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

func toOrderSummaryJSON(o queries.OrderSummaryResponse) orderSummaryJSON {
	return orderSummaryJSON{
		ID:                o.ID.String(),
		CustomerID:        o.CustomerID.String(),
		CustomerName:      o.CustomerName,
		RestaurantID:      o.RestaurantID.String(),
		RestaurantName:    o.RestaurantName,
		Status:            o.Status.String(),
		TotalAmount:       o.TotalAmount.String(),
		OrderedAt:         o.OrderedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func toOrderSummaryListJSON(os []queries.OrderSummaryResponse) []orderSummaryJSON {
	out := make([]orderSummaryJSON, len(os))
	for i, o := range os {
		out[i] = toOrderSummaryJSON(o)
	}
	return out
}

type orderLineJSON struct {
	ID              string `json:"id"`
	MenuItemID      string `json:"menu_item_id"`
	MenuItemName    string `json:"menu_item_name"`
	Quantity        int    `json:"quantity"`
	Price           string `json:"price"`
	Subtotal        string `json:"subtotal"`
	SpecialRequests string `json:"special_requests"`
}

type orderDetailJSON struct {
	orderSummaryJSON
	DeliveryAddress     string          `json:"delivery_address"`
	SpecialInstructions string          `json:"special_instructions"`
	Items               []orderLineJSON `json:"items"`
}

func toOrderDetailJSON(o queries.OrderDetailResponse) orderDetailJSON {
	items := make([]orderLineJSON, len(o.Items))
	for i, line := range o.Items {
		items[i] = orderLineJSON{
			ID:              line.ID.String(),
			MenuItemID:      line.MenuItemID.String(),
			MenuItemName:    line.MenuItemName,
			Quantity:        line.Quantity,
			Price:           line.Price.String(),
			Subtotal:        line.Subtotal.String(),
			SpecialRequests: line.SpecialRequests,
		}
	}

	return orderDetailJSON{
		orderSummaryJSON:    toOrderSummaryJSON(o.OrderSummaryResponse),
		DeliveryAddress:     o.DeliveryAddress,
		SpecialInstructions: o.SpecialInstructions,
		Items:               items,
	}
}

type reviewJSON struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	OrderID        string    `json:"order_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

func toReviewJSON(r queries.ReviewResponse) reviewJSON {
	return reviewJSON{
		ID:             r.ID.String(),
		CustomerID:     r.CustomerID.String(),
		CustomerName:   r.CustomerName,
		RestaurantID:   r.RestaurantID.String(),
		RestaurantName: r.RestaurantName,
		OrderID:        r.OrderID.String(),
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}

func toReviewListJSON(rs []queries.ReviewResponse) []reviewJSON {
	out := make([]reviewJSON, len(rs))
	for i, r := range rs {
		out[i] = toReviewJSON(r)
	}
	return out
}

type reviewDetailJSON struct {
	reviewJSON
	CustomerEmail    string    `json:"customer_email"`
	RestaurantRating float64   `json:"restaurant_rating"`
	OrderStatus      string    `json:"order_status"`
	OrderTotal       string    `json:"order_total"`
	OrderedAt        time.Time `json:"ordered_at"`
}

func toReviewDetailJSON(r queries.ReviewDetailResponse) reviewDetailJSON {
	return reviewDetailJSON{
		reviewJSON:       toReviewJSON(r.ReviewResponse),
		CustomerEmail:    r.CustomerEmail,
		RestaurantRating: r.RestaurantRating,
		OrderStatus:      r.OrderStatus.String(),
		OrderTotal:       r.OrderTotal.String(),
		OrderedAt:        r.OrderedAt,
	}
}

type reviewSummaryJSON struct {
	RestaurantID  string       `json:"restaurant_id"`
	TotalReviews  int          `json:"total_reviews"`
	AverageRating float64      `json:"average_rating"`
	RatingCounts  map[int]int  `json:"rating_counts"`
	RecentReviews []reviewJSON `json:"recent_reviews"`
}

func toReviewSummaryJSON(s queries.ReviewSummaryResponse) reviewSummaryJSON {
	return reviewSummaryJSON{
		RestaurantID:  s.RestaurantID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		RatingCounts:  s.RatingCounts,
		RecentReviews: toReviewListJSON(s.RecentReviews),
	}
}

type canReviewJSON struct {
	CanReview bool   `json:"can_review"`
	Reason    string `json:"reason,omitempty"`
}

type createdJSON struct {
	ID string `json:"id"`
}
