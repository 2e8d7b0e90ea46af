package dto

type OrderDTO struct {
	ID           int     `json:"id" example:"1"`
	CustomerID   string  `json:"customerId" example:"U4af4980629"`
	Status       string  `json:"status" example:"pending"`
	TotalPrice   float64 `json:"totalPrice" example:"1000"`
	TransferCode string  `json:"transferCode" example:"ABCD-1234"`
	AuthPassword string  `json:"authPassword" example:"hunter2"`
	Scrubbed     bool    `json:"scrubbed" example:"false"`
	CreatedAt    string  `json:"createdAt" example:"2024-12-09T16:09:57+09:00"`
	CompletedAt  *string `json:"completedAt" example:"2024-12-09T18:00:00+09:00"`
}

type StatsResponseDTO struct {
	Orders       []OrderDTO `json:"orders"`
	IsShopOpen   bool       `json:"isShopOpen"`
	TodaySales   float64    `json:"todaySales"`
	PendingCount int        `json:"pendingCount"`
}

type UpdateStatusRequestDTO struct {
	ID     int    `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type ScrubRequestDTO struct {
	ID int `json:"id" validate:"required"`
}

type ToggleRequestDTO struct {
	Open bool `json:"open"`
}

type SuccessResponseDTO struct {
	Success bool `json:"success"`
}
