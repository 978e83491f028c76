package entity

import "time"

// Lead es un contacto del CRM todavía no convertido en cliente.
type Lead struct {
	ID         string
	Name       string
	Email      string
	Mobile     string
	Source     string // referencia a la colección de fuentes
	LifeStage  string // referencia a la colección de etapas de vida
	AssignedTo string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FollowUp es un seguimiento agendado sobre un lead o cliente.
type FollowUp struct {
	ID          string
	Title       string
	Contact     string
	Category    string
	Status      string // cadena libre: Scheduled, Completed, Cancelled...
	StartAt     time.Time
	EndAt       time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
