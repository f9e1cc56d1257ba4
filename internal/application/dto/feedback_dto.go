package dto

import "time"

// CreateFeedbackRequest vendor rating input. Message is optional.
type CreateFeedbackRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Message   string `json:"message" validate:"max=1000"`
}

// FeedbackResponse a stored rating.
type FeedbackResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	VendorID   string    `json:"vendor_id"`
	SupplierID string    `json:"supplier_id"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedbackListResponse feedback for a product, newest first.
type FeedbackListResponse struct {
	Items []FeedbackResponse `json:"items"`
}
