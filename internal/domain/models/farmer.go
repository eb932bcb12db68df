package models

import "time"

// FarmerProfile is the self-reported profile stored per farmer. The id is
// caller-opaque and unverified; there is no auth layer in front of it.
type FarmerProfile struct {
	SchemaVersion int       `json:"schemaVersion"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	LandSize      float64   `json:"landSize,omitempty"`
	PrimaryCrop   string    `json:"primaryCrop,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Language      string    `json:"language,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GovernmentScheme describes one subsidy or support program.
type GovernmentScheme struct {
	SchemaVersion  int    `json:"schemaVersion"`
	ID             string `json:"id"`
	Name           string `json:"name"`
	Amount         string `json:"amount"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Eligibility    string `json:"eligibility"`
	ApplicationURL string `json:"applicationUrl"`
}

// AwarenessCompletion records that a farmer finished a learning topic.
type AwarenessCompletion struct {
	SchemaVersion int       `json:"schemaVersion"`
	FarmerID      string    `json:"farmerId"`
	TopicID       string    `json:"topicId"`
	Language      string    `json:"language,omitempty"`
	CompletedAt   time.Time `json:"completedAt"`
}

// AwarenessRequest is the payload accepted by POST /farmer-awareness/complete.
type AwarenessRequest struct {
	FarmerID string `json:"farmerId"`
	TopicID  string `json:"topicId"`
	Language string `json:"language"`
}
