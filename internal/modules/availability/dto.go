package availability

import (
	"time"

	"campusfm/internal/domain"
)

// RoomState pairs a room with its derived occupancy status. Derived, never
// stored; every snapshot recomputes it from scratch.
type RoomState struct {
	Room   domain.Room       `json:"room"`
	Status domain.RoomStatus `json:"status"`
}

// Snapshot is one full today-status computation over the room inventory.
type Snapshot struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Rooms       []RoomState `json:"rooms"`
}

type SearchRequest struct {
	Day   int    `form:"day" binding:"min=0,max=6"`
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}
