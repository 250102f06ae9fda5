package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusfm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) ListForDay(ctx context.Context, date time.Time) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) ListForWeekday(ctx context.Context, weekday int) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func statusOf(t *testing.T, snap *Snapshot, roomName string) domain.RoomStatus {
	t.Helper()
	for _, rs := range snap.Rooms {
		if rs.Room.Name == roomName {
			return rs.Status
		}
	}
	t.Fatalf("room %q not in snapshot", roomName)
	return ""
}

func TestTodayStatus_NoEntriesMeansAvailable(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockSchedules := new(MockScheduleRepository)

	mockRooms.On("List", mock.Anything).Return([]domain.Room{
		{ID: 1, Name: "Lecture Hall B", Code: "LH-B"},
	}, nil)
	mockSchedules.On("ListForDay", mock.Anything, mock.Anything).Return([]domain.ScheduleEntry{}, nil)

	service := NewService(mockRooms, mockSchedules)
	service.now = fixedClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)) // Monday

	snap, err := service.TodayStatus(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, statusOf(t, snap, "Lecture Hall B"))
}

func TestTodayStatus_InUseAndScheduled(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockSchedules := new(MockScheduleRepository)

	mockRooms.On("List", mock.Anything).Return([]domain.Room{
		{ID: 1, Name: "Lab A-1"},
		{ID: 2, Name: "Lab A-2"},
	}, nil)
	mockSchedules.On("ListForDay", mock.Anything, mock.Anything).Return([]domain.ScheduleEntry{
		{ID: 10, RoomName: "Lab A-1", StartTime: "09:00", EndTime: "11:00", Activity: "Databases"},
		{ID: 11, RoomName: "Lab A-2", StartTime: "14:00", EndTime: "16:00", Activity: "Networks"},
	}, nil)

	service := NewService(mockRooms, mockSchedules)
	service.now = fixedClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	snap, err := service.TodayStatus(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomInUse, statusOf(t, snap, "Lab A-1"))
	assert.Equal(t, domain.RoomScheduled, statusOf(t, snap, "Lab A-2"))
}

func TestTodayStatus_HalfOpenWindow(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockSchedules := new(MockScheduleRepository)

	mockRooms.On("List", mock.Anything).Return([]domain.Room{{ID: 1, Name: "Lab A-1"}}, nil)
	mockSchedules.On("ListForDay", mock.Anything, mock.Anything).Return([]domain.ScheduleEntry{
		{ID: 10, RoomName: "Lab A-1", StartTime: "09:00", EndTime: "10:00"},
	}, nil)

	service := NewService(mockRooms, mockSchedules)

	// Exactly at the end boundary the room is free again.
	service.now = fixedClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	snap, err := service.TodayStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.RoomScheduled, statusOf(t, snap, "Lab A-1"))

	// Exactly at the start boundary it is occupied.
	service.now = fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	snap, err = service.TodayStatus(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, domain.RoomInUse, statusOf(t, snap, "Lab A-1"))
}

func TestTodayStatus_NormalizedNameJoin(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockSchedules := new(MockScheduleRepository)

	// Stored room spelling differs from the schedule spelling.
	mockRooms.On("List", mock.Anything).Return([]domain.Room{{ID: 1, Name: "Lab A-1"}}, nil)
	mockSchedules.On("ListForDay", mock.Anything, mock.Anything).Return([]domain.ScheduleEntry{
		{ID: 10, RoomName: "lab a.1", StartTime: "09:00", EndTime: "11:00"},
	}, nil)

	service := NewService(mockRooms, mockSchedules)
	service.now = fixedClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	snap, err := service.TodayStatus(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomInUse, statusOf(t, snap, "Lab A-1"))
}

func TestTodayStatus_MalformedTimeDoesNotBlock(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockSchedules := new(MockScheduleRepository)

	mockRooms.On("List", mock.Anything).Return([]domain.Room{{ID: 1, Name: "Lab A-1"}}, nil)
	mockSchedules.On("ListForDay", mock.Anything, mock.Anything).Return([]domain.ScheduleEntry{
		{ID: 10, RoomName: "Lab A-1", StartTime: "9 o'clock", EndTime: "11:00"},
	}, nil)

	service := NewService(mockRooms, mockSchedules)
	service.now = fixedClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	snap, err := service.TodayStatus(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, statusOf(t, snap, "Lab A-1"))
}

func TestTodayStatus_FetchFailureAborts(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockSchedules := new(MockScheduleRepository)

	mockRooms.On("List", mock.Anything).Return([]domain.Room{{ID: 1, Name: "Lab A-1"}}, nil)
	mockSchedules.On("ListForDay", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))

	service := NewService(mockRooms, mockSchedules)

	snap, err := service.TodayStatus(context.Background())

	assert.Error(t, err)
	assert.Nil(t, snap)
}

func TestSearch_ComplementOfBusySet(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockSchedules := new(MockScheduleRepository)

	mockRooms.On("List", mock.Anything).Return([]domain.Room{
		{ID: 1, Name: "Room X"},
		{ID: 2, Name: "Room Y"},
	}, nil)
	// Monday: X busy 09:30-09:45 inside the requested window, Y starts
	// exactly when the window ends.
	mockSchedules.On("ListForWeekday", mock.Anything, 1).Return([]domain.ScheduleEntry{
		{ID: 10, RoomName: "Room X", DayOfWeek: 1, StartTime: "09:30", EndTime: "09:45"},
		{ID: 11, RoomName: "Room Y", DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00"},
	}, nil)

	service := NewService(mockRooms, mockSchedules)

	rooms, err := service.Search(context.Background(), 1, "09:00", "10:00")

	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.Equal(t, "Room Y", rooms[0].Room.Name)
	assert.Equal(t, domain.RoomAvailable, rooms[0].Status)
}

func TestSearch_RejectsInvalidWindow(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockScheduleRepository))

	_, err := service.Search(context.Background(), 1, "10:00", "09:00")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Search(context.Background(), 1, "10:00", "10:00")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Search(context.Background(), 1, "not a time", "10:00")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Search(context.Background(), 9, "09:00", "10:00")
	assert.ErrorIs(t, err, ErrValidation)
}
