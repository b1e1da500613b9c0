package service_test

import (
	"context"
	"testing"

	"homestay/config"
	otelMocks "homestay/infras/otel/mocks"
	"homestay/internal/domains/room/service"
	"homestay/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDefaults(t *testing.T) {
	svc := service.New(&config.Config{}, otelMocks.NewOtel())

	res := svc.List(context.Background())

	require.Equal(t, 6, res.Total)
	assert.Equal(t, "1001", res.Rooms[0].ID)
	assert.Equal(t, "Bungalow Lớn", res.Rooms[0].Label)
	assert.Equal(t, "bungalow", res.Rooms[0].Category)
	assert.Equal(t, "Phòng Lớn 2", res.Rooms[5].Label)
	assert.Equal(t, "room", res.Rooms[5].Category)
}

func TestListOverride(t *testing.T) {
	cfg := &config.Config{Rooms: "2001:Suite A:room; 2002:Garden Hut:bungalow"}
	svc := service.New(cfg, otelMocks.NewOtel())

	res := svc.List(context.Background())

	require.Equal(t, 2, res.Total)
	assert.Equal(t, "2001", res.Rooms[0].ID)
	assert.Equal(t, "Garden Hut", res.Rooms[1].Label)
}

func TestGet(t *testing.T) {
	svc := service.New(&config.Config{}, otelMocks.NewOtel())

	room, err := svc.Get(context.Background(), "1004")
	require.NoError(t, err)
	assert.Equal(t, "Phòng Nhỏ", room.Label)

	_, err = svc.Get(context.Background(), "9999")
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestAll(t *testing.T) {
	svc := service.New(&config.Config{}, otelMocks.NewOtel())

	rooms := svc.All(context.Background())
	require.Len(t, rooms, 6)
	assert.Equal(t, "1003", rooms[2].ID)
}
