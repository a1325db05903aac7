package dto

type CreateDashboardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AddWidgetRequest struct {
	WidgetID int `json:"widget_id" binding:"required"`
}

type CreateWidgetRequest struct {
	Type         string `json:"type" binding:"required,oneof=metric chart activity leaderboard"`
	Title        string `json:"title" binding:"required"`
	SeedFromData bool   `json:"seed_from_data"`
}
