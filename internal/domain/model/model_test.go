package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   Status
		value string
	}{
		{"pending", StatusPending, "pending"},
		{"in-progress", StatusInProgress, "in-progress"},
		{"complete", StatusComplete, "complete"},
		{"canceled", StatusCanceled, "canceled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, value := range []string{"pending", "in-progress", "complete", "canceled"} {
		t.Run(value, func(t *testing.T) {
			s, err := ParseStatus(value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(s) != value {
				t.Fatalf("expected %s, got %s", value, s)
			}
		})
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, value := range []string{"", "shipped", "PENDING", "in_progress"} {
		t.Run(value, func(t *testing.T) {
			if _, err := ParseStatus(value); err == nil {
				t.Fatalf("expected error for %q", value)
			}
		})
	}
}

func TestParseStatusErrorNamesValue(t *testing.T) {
	_, err := ParseStatus("shipped")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "shipped") {
		t.Fatalf("error should mention the value, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "status") {
		t.Fatalf("error should mention the field, got %q", err.Error())
	}
}

func TestStatusFromStorage(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Status
	}{
		{"pending", "pending", StatusPending},
		{"in-progress", "in-progress", StatusInProgress},
		{"complete", "complete", StatusComplete},
		{"canceled", "canceled", StatusCanceled},
		{"unknown falls back", "archived", StatusPending},
		{"empty falls back", "", StatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFromStorage(tc.raw); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestStatusUnmarshalJSON(t *testing.T) {
	var s Status
	if err := json.Unmarshal([]byte(`"complete"`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusComplete {
		t.Fatalf("expected %s, got %s", StatusComplete, s)
	}
}

func TestStatusUnmarshalJSONRejectsUnknown(t *testing.T) {
	var s Status
	if err := json.Unmarshal([]byte(`"shipped"`), &s); err == nil {
		t.Fatal("expected error")
	}
}

func TestStatusUnmarshalJSONRejectsNonString(t *testing.T) {
	var s Status
	if err := json.Unmarshal([]byte(`5`), &s); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewOrder(t *testing.T) {
	order := NewOrder(500)

	if order.Amount != 500 {
		t.Fatalf("expected amount 500, got %d", order.Amount)
	}
	if order.Status != StatusPending {
		t.Fatalf("expected %s, got %s", StatusPending, order.Status)
	}
	if !order.IsNew() {
		t.Fatal("expected fresh order to be new")
	}
}

func TestOrderIsNew(t *testing.T) {
	id := int64(7)
	saved := &Order{ID: &id, Amount: 100, Status: StatusPending}

	if saved.IsNew() {
		t.Fatal("expected order with id not to be new")
	}
}
