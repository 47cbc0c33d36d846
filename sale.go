package store

import "time"

// Display formats fixed at sale creation, as the legacy app rendered them
// with the en-GB locale.
const (
	saleDateFormat = "02/01/2006"
	saleTimeFormat = "15:04:05"
)

// Sale is one transaction reducing a product's available stock.
//
// Product fields are denormalized: they are a snapshot taken at the time of
// the sale and never change afterwards, so a sale remains a valid standalone
// record even when the product is later deleted (ProductID may dangle).
type Sale struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"`
	Category      string    `json:"category"`
	CustomerName  string    `json:"customerName"`
	UnitPrice     Money     `json:"unitPrice"`
	Quantity      int       `json:"quantity"`
	TotalAmount   Money     `json:"totalAmount"`
	Date          time.Time `json:"date"`
	DateFormatted string    `json:"dateFormatted"`
	TimeFormatted string    `json:"timeFormatted"`
}
