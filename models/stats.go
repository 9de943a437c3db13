package models

// AdminStats is the dashboard summary derived from live store contents.
type AdminStats struct {
	TotalOrders       int64   `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	ActiveRestaurants int64   `json:"activeRestaurants"`
}
