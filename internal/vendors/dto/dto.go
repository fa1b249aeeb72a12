package dto

import "time"

type Dashboard struct {
	TotalSales    int            `json:"total_sales"`
	TotalRevenue  float64        `json:"total_revenue"`
	TotalProducts int            `json:"total_products"`
	PendingOrders int            `json:"pending_orders"`
	MonthlySales  []MonthlySales `json:"monthly_sales"`
}

type MonthlySales struct {
	Month   string  `db:"month" json:"month"`
	Sales   int     `db:"sales" json:"sales"`
	Revenue float64 `db:"revenue" json:"revenue"`
}

// SaleRow is one sold order line joined with its order and customer.
type SaleRow struct {
	ID           int64     `db:"id" json:"id"`
	OrderID      int64     `db:"order_id" json:"order_id"`
	OrderNumber  string    `db:"order_number" json:"order_number"`
	ProductID    int64     `db:"product_id" json:"product_id"`
	ProductName  string    `db:"product_name" json:"product_name"`
	ProductImage string    `db:"product_image" json:"product_image"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Price        float64   `db:"price" json:"price"`
	Total        float64   `db:"total" json:"total"`
	Status       string    `db:"status" json:"status"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
