package dto

import "time"

type CreateOpportunityRequest struct {
	Title        string    `json:"title" binding:"required"`
	Organization string    `json:"organization" binding:"required"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Points       int       `json:"points" binding:"gte=0"`
	Date         time.Time `json:"date"`
	URL          string    `json:"url"`
}

type BrowseOpportunitiesQuery struct {
	Category string `form:"category"`
	Location string `form:"location"`
}

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
