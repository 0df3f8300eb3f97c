package model

import (
	"encoding/json"
	"fmt"
)

// Status describes order processing lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusComplete   Status = "complete"
	StatusCanceled   Status = "canceled"
)

// ParseStatus converts raw input into a Status. Anything outside the four
// known values is rejected, so malformed payloads fail before the store is
// touched.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusInProgress, StatusComplete, StatusCanceled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown status %q", raw)
	}
}

// StatusFromStorage decodes a persisted status value. Unrecognized values
// collapse to StatusPending instead of failing the read.
func StatusFromStorage(raw string) Status {
	s, err := ParseStatus(raw)
	if err != nil {
		return StatusPending
	}
	return s
}

// UnmarshalJSON keeps request decoding strict: only the four known values
// are accepted.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Order describes a purchase order. ID stays nil until the store assigns one.
type Order struct {
	ID     *int64
	Amount int64
	Status Status
}

// NewOrder returns an unsaved order in the pending state.
func NewOrder(amount int64) *Order {
	return &Order{Amount: amount, Status: StatusPending}
}

// IsNew reports whether the order has been persisted yet.
func (o *Order) IsNew() bool {
	return o.ID == nil
}
