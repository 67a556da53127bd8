package admin

import (
	"github.com/google/uuid"

	"github.com/plotbay/plotbay-backend/internal/domain/event"
)

const EventStreamName = "plotbay.admins"

type AdminRegistered struct {
	event.Header
	AdminID uuid.UUID `json:"admin_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
}

func (e *AdminRegistered) GetStreamName() string {
	return EventStreamName
}
