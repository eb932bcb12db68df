package models

import "time"

// Listing is one produce offer on the farmer marketplace.
type Listing struct {
	SchemaVersion int       `json:"schemaVersion"`
	ID            string    `json:"id"`
	FarmerID      string    `json:"farmerId"`
	CropType      string    `json:"cropType"`
	Quantity      float64   `json:"quantity"`
	PricePerUnit  float64   `json:"pricePerUnit"`
	Location      string    `json:"location,omitempty"`
	HarvestDate   string    `json:"harvestDate,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateListingRequest is the payload accepted by POST /marketplace/create-listing.
type CreateListingRequest struct {
	FarmerID     string  `json:"farmerId"`
	CropType     string  `json:"cropType"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Location     string  `json:"location"`
	HarvestDate  string  `json:"harvestDate"`
}
