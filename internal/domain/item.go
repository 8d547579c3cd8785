package domain

import "time"

// Item is the unit of work moved from producers to consumers.
// It is passed by value, so a queued item cannot be mutated by anyone.
type Item struct {
	ID        string    `json:"id"`
	Producer  string    `json:"producer"`
	CreatedAt time.Time `json:"created_at"`
}

// Consumption records which consumer took which item.
type Consumption struct {
	ItemID     string    `json:"item_id"`
	Producer   string    `json:"producer"`
	Consumer   string    `json:"consumer"`
	ProducedAt time.Time `json:"produced_at"`
	ConsumedAt time.Time `json:"consumed_at"`
}

// SubmitItemRequest is the inbound payload for an externally produced item.
// ID is optional; the service assigns one when it is empty.
type SubmitItemRequest struct {
	ID       string `json:"id,omitempty"`
	Producer string `json:"producer"`
}

func (r *SubmitItemRequest) Validate() error {
	if r.Producer == "" || len(r.Producer) > 128 {
		return ErrInvalidProducer
	}
	if len(r.ID) > 128 {
		return ErrInvalidItemID
	}
	return nil
}

// ConsumptionFilter holds query parameters for journal listing.
type ConsumptionFilter struct {
	Consumer *string
	Limit    int
}

func (f *ConsumptionFilter) Validate() error {
	if f.Limit < 1 || f.Limit > 1000 {
		return ErrInvalidLimit
	}
	return nil
}
