package repositories

import (
	"context"
	"encoding/json"
	"time"

	"furniture-shop/config"
	"furniture-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) CreateOrder(order models.Order, grandTotal float64) (*models.OrderRecord, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}
	billingJSON, err := json.Marshal(order.Billing)
	if err != nil {
		return nil, err
	}

	record := &models.OrderRecord{
		ClientOrderID: order.ID,
		OwnerID:       order.OwnerID,
		Status:        models.OrderStatusPending,
		TotalAmount:   order.TotalAmount,
		GrandTotal:    grandTotal,
		Items:         order.Items,
		Billing:       order.Billing,
	}

	query := `
		INSERT INTO orders (client_order_id, owner_id, status, total_amount, grand_total, items, billing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err = config.DB.QueryRow(context.Background(), query,
		order.ID, order.OwnerID, record.Status, order.TotalAmount, grandTotal,
		itemsJSON, billingJSON, time.Now(),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *OrderRepository) GetOrdersByOwner(ownerID string) ([]models.OrderRecord, error) {
	query := `
		SELECT id, client_order_id, owner_id, status, total_amount, grand_total, items, billing, created_at
		FROM orders
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := config.DB.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.OrderRecord{}
	for rows.Next() {
		var record models.OrderRecord
		var itemsJSON, billingJSON []byte

		err := rows.Scan(&record.ID, &record.ClientOrderID, &record.OwnerID, &record.Status,
			&record.TotalAmount, &record.GrandTotal, &itemsJSON, &billingJSON, &record.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &record.Items); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(billingJSON, &record.Billing); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
