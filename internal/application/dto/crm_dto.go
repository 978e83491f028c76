package dto

import "time"

// LeadRequest entrada de un lead del CRM.
type LeadRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Mobile     string `json:"mobile"`
	Source     string `json:"source"`
	LifeStage  string `json:"life_stage"`
	AssignedTo string `json:"assigned_to"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	Source     string    `json:"source"`
	LifeStage  string    `json:"life_stage"`
	AssignedTo string    `json:"assigned_to"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeadListResponse página de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Meta  ListMeta       `json:"meta"`
}

// FollowUpRequest entrada de un seguimiento agendado.
type FollowUpRequest struct {
	Title       string    `json:"title" validate:"required"`
	Contact     string    `json:"contact"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Description string    `json:"description"`
}

// FollowUpResponse salida de un seguimiento.
type FollowUpResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Contact     string    `json:"contact"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FollowUpListResponse página de seguimientos.
type FollowUpListResponse struct {
	Items []FollowUpResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}
