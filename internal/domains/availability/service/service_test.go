package service_test

import (
	"context"
	"testing"

	"homestay/config"
	otelMocks "homestay/infras/otel/mocks"
	availabilityDto "homestay/internal/domains/availability/model/dto"
	"homestay/internal/domains/availability/service"
	roomService "homestay/internal/domains/room/service"
	scheduleMocks "homestay/internal/domains/schedule/mocks"
	scheduleModel "homestay/internal/domains/schedule/model"
	"homestay/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func fixtureSnapshot() scheduleModel.Snapshot {
	return scheduleModel.NewSnapshot([][]string{
		{"Phòng", "Mã", "01/09/2025", "02/09/2025"},
		{"Bungalow Lớn", "1001", "", "Linh - Đã đặt cọc - 500"},
		{"Bungalow Nhỏ 1", "1002", "An - Đang đợi đặt cọc", ""},
		{"Bungalow Nhỏ 2", "1003", "", ""},
		{"Phòng Nhỏ", "1004", "", ""},
		{"Phòng Lớn 1", "1005", "", ""},
	})
}

func newService(t *testing.T) (service.Availability, *scheduleMocks.MockSchedule) {
	t.Helper()

	ctrl := gomock.NewController(t)
	schedule := scheduleMocks.NewMockSchedule(ctrl)

	rooms := roomService.New(&config.Config{}, otelMocks.NewOtel())

	return service.New(schedule, rooms, otelMocks.NewOtel()), schedule
}

func TestCheckRoomAvailable(t *testing.T) {
	svc, schedule := newService(t)

	schedule.EXPECT().Snapshot(gomock.Any()).Return(fixtureSnapshot(), nil)

	res, err := svc.CheckRoom(context.Background(), "1001", "01/09/2025")
	require.NoError(t, err)

	assert.True(t, res.Available)
	assert.Empty(t, res.RawValue)
	assert.Nil(t, res.Details)
}

func TestCheckRoomOccupied(t *testing.T) {
	svc, schedule := newService(t)

	schedule.EXPECT().Snapshot(gomock.Any()).Return(fixtureSnapshot(), nil)

	res, err := svc.CheckRoom(context.Background(), "1001", "02/09/2025")
	require.NoError(t, err)

	assert.False(t, res.Available)
	assert.Equal(t, "Linh - Đã đặt cọc - 500", res.RawValue)
	require.NotNil(t, res.Details)
	assert.Equal(t, "Linh", res.Details.CustomerName)
}

func TestCheckRoomUnknownRoom(t *testing.T) {
	svc, schedule := newService(t)

	schedule.EXPECT().Snapshot(gomock.Any()).Return(fixtureSnapshot(), nil)

	_, err := svc.CheckRoom(context.Background(), "9999", "01/09/2025")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCheckRoomUnknownDate(t *testing.T) {
	svc, schedule := newService(t)

	schedule.EXPECT().Snapshot(gomock.Any()).Return(fixtureSnapshot(), nil)

	_, err := svc.CheckRoom(context.Background(), "1001", "25/12/2025")
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Contains(t, err.Error(), "02/01/2006")
}

func TestCheckDate(t *testing.T) {
	svc, schedule := newService(t)

	schedule.EXPECT().Snapshot(gomock.Any()).Return(fixtureSnapshot(), nil)

	res, err := svc.CheckDate(context.Background(), "01/09/2025")
	require.NoError(t, err)

	// Six registry rooms, one of which (1006) has no sheet row.
	require.Len(t, res.Rooms, 6)
	assert.Equal(t, 4, res.AvailableCount)
	assert.Equal(t, 1, res.OccupiedCount)

	byID := map[string]availabilityDto.RoomDayStatus{}
	for _, room := range res.Rooms {
		byID[room.RoomID] = room
	}

	assert.Equal(t, availabilityDto.StatusAvailable, byID["1001"].Status)
	assert.Equal(t, availabilityDto.StatusOccupied, byID["1002"].Status)
	assert.Equal(t, "An - Đang đợi đặt cọc", byID["1002"].RawValue)
	assert.Equal(t, availabilityDto.StatusUnknown, byID["1006"].Status)
}

func TestMonth(t *testing.T) {
	svc, schedule := newService(t)

	schedule.EXPECT().Snapshot(gomock.Any()).Return(fixtureSnapshot(), nil)

	res, err := svc.Month(context.Background(), "09/2025")
	require.NoError(t, err)

	assert.Equal(t, "09/2025", res.Month)
	require.Len(t, res.Rooms, 6)

	room1001 := res.Rooms[0]
	require.Len(t, room1001.Days, 30)

	assert.Equal(t, "01/09/2025", room1001.Days[0].Date)
	assert.True(t, room1001.Days[0].Available)

	assert.False(t, room1001.Days[1].Available)
	assert.Equal(t, "Linh - Đã đặt cọc - 500", room1001.Days[1].RawValue)
	require.NotNil(t, room1001.Days[1].Details)
	assert.Equal(t, "500", room1001.Days[1].Details.Deposit)

	// Days with no sheet column read as empty available cells.
	assert.True(t, room1001.Days[29].Available)
	assert.Equal(t, "30/09/2025", room1001.Days[29].Date)
}

func TestMonthInvalidKey(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Month(context.Background(), "2025-09")
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}
