package dto

import "time"

type CreateActivityRequest struct {
	Type         string    `json:"type" binding:"required,oneof=volunteer fundraising learning other"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Impact       string    `json:"impact"`
	Date         time.Time `json:"date" binding:"required"`
	Points       int       `json:"points" binding:"gte=0"`
	Hours        *float64  `json:"hours"`
	AmountRaised *float64  `json:"amount_raised"`
	Location     string    `json:"location"`
}

type UpdateActivityRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Impact       *string    `json:"impact"`
	Date         *time.Time `json:"date"`
	Hours        *float64   `json:"hours"`
	AmountRaised *float64   `json:"amount_raised"`
}

type ListActivitiesQuery struct {
	Type     string `form:"type"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Mine     bool   `form:"mine"`
}
