package models

import (
	"encoding/json"
	"fmt"
)

// OrderStatus uses the Arabic labels the dashboard displays and persists.
type OrderStatus string

const (
	StatusNew       OrderStatus = "جديد"
	StatusContacted OrderStatus = "تم التواصل"
	StatusCompleted OrderStatus = "مكتمل"
	StatusCancelled OrderStatus = "ملغي"
)

// ValidStatus reports whether s is one of the four fixed order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       OrderStatus `json:"status"`
}

func (o *Order) MarshalBinary() ([]byte, error) {
	return json.Marshal(o)
}

func (o *Order) UnmarshalBinary(data []byte) error {
	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("unmarshal order: %w", err)
	}
	return nil
}
