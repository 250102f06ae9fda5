package availability

import (
	"context"
	"log"
	"time"

	"campusfm/internal/domain"
	"campusfm/internal/pkg/normalize"
)

type Service struct {
	rooms     RoomRepository
	schedules ScheduleRepository
	now       func() time.Time
}

func NewService(rooms RoomRepository, schedules ScheduleRepository) *Service {
	return &Service{
		rooms:     rooms,
		schedules: schedules,
		now:       time.Now,
	}
}

// window is a schedule entry reduced to minutes-of-day for interval math.
type window struct {
	start int
	end   int
}

// TodayStatus computes the occupancy status of every room for the current
// day and time. Schedule entries match rooms through the normalized name
// key; a room with no matching entry today is available. Any fetch failure
// aborts the whole computation, partial snapshots are never produced.
func (s *Service) TodayStatus(ctx context.Context) (*Snapshot, error) {
	now := s.now()

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.schedules.ListForDay(ctx, now)
	if err != nil {
		return nil, err
	}

	byRoom := windowsByRoom(entries)
	nowMin := now.Hour()*60 + now.Minute()

	states := make([]RoomState, 0, len(rooms))
	for _, room := range rooms {
		wins := byRoom[normalize.Key(room.Name)]

		status := domain.RoomAvailable
		if len(wins) > 0 {
			status = domain.RoomScheduled
			for _, w := range wins {
				// [start, end) half-open: a room frees up exactly at end.
				if w.start <= nowMin && nowMin < w.end {
					status = domain.RoomInUse
					break
				}
			}
		}

		states = append(states, RoomState{Room: room, Status: status})
	}

	return &Snapshot{GeneratedAt: now, Rooms: states}, nil
}

// Search returns the rooms with no schedule overlap on the given day within
// [start, end). The result is the exact complement of the busy set within
// the full room list.
func (s *Service) Search(ctx context.Context, day int, start, end string) ([]RoomState, error) {
	if day < 0 || day > 6 {
		return nil, ErrValidation
	}

	startMin, ok := minutesOfDay(start)
	if !ok {
		return nil, ErrValidation
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		return nil, ErrValidation
	}
	if endMin <= startMin {
		return nil, ErrValidation
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.schedules.ListForWeekday(ctx, day)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool)
	for key, wins := range windowsByRoom(entries) {
		for _, w := range wins {
			// Standard boundary-exclusive overlap test.
			if w.start < endMin && w.end > startMin {
				busy[key] = true
				break
			}
		}
	}

	out := make([]RoomState, 0, len(rooms))
	for _, room := range rooms {
		if busy[normalize.Key(room.Name)] {
			continue
		}
		out = append(out, RoomState{Room: room, Status: domain.RoomAvailable})
	}
	return out, nil
}

// windowsByRoom groups entries by normalized room name. Entries with
// malformed or inverted times contribute nothing: bad data must not block a
// room nor abort the computation, but the skip is logged so integrity
// problems stay visible.
func windowsByRoom(entries []domain.ScheduleEntry) map[string][]window {
	out := make(map[string][]window)
	for _, e := range entries {
		start, okS := minutesOfDay(e.StartTime)
		end, okE := minutesOfDay(e.EndTime)
		if !okS || !okE || end <= start {
			log.Printf("schedule_entry_skipped id=%d room=%q start=%q end=%q", e.ID, e.RoomName, e.StartTime, e.EndTime)
			continue
		}
		key := normalize.Key(e.RoomName)
		out[key] = append(out[key], window{start: start, end: end})
	}
	return out
}

func minutesOfDay(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
