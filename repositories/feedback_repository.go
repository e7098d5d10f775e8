package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tea-shop/models"
)

type FeedbackRepository struct{}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{}
}

func (r *FeedbackRepository) Create(f *models.Feedback) error {
	query := `
		INSERT INTO feedback (name, email, subject, message, rating, product_id, order_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return models.DB.QueryRow(context.Background(), query,
		f.Name, f.Email, f.Subject, f.Message, f.Rating, f.ProductID, f.OrderID, f.Status, time.Now(),
	).Scan(&f.ID, &f.CreatedAt)
}

func (r *FeedbackRepository) List(status string, productID, limit, skip int) ([]models.Feedback, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if productID > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("product_id = $%d", argIndex))
		args = append(args, productID)
		argIndex++
	}

	query := `SELECT id, name, email, subject, message, rating, product_id, COALESCE(order_id, ''), status, created_at FROM feedback`
	if len(whereConditions) > 0 {
		query += " WHERE " + strings.Join(whereConditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, skip)

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Subject, &f.Message,
			&f.Rating, &f.ProductID, &f.OrderID, &f.Status, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, nil
}

func (r *FeedbackRepository) CreateContactSubmission(sub *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, phone, subject, category, message, status, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := models.DB.Exec(context.Background(), query,
		sub.ID, sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Category,
		sub.Message, sub.Status, sub.Source, sub.CreatedAt,
	)
	return err
}

func (r *FeedbackRepository) CreateLead(lead *models.Lead) error {
	query := `
		INSERT INTO leads (name, email, phone, source, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return models.DB.QueryRow(context.Background(), query,
		lead.Name, lead.Email, lead.Phone, lead.Source, time.Now(),
	).Scan(&lead.ID, &lead.CreatedAt)
}
