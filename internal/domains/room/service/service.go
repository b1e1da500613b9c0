package service

import (
	"context"

	"homestay/config"
	"homestay/infras/otel"
	"homestay/internal/domains/room/model"
	"homestay/internal/domains/room/model/dto"
	"homestay/shared/constant"
	"homestay/shared/failure"

	"github.com/rs/zerolog/log"
)

// Room serves the fixed room registry. The registry is resolved once at
// construction from configuration and never changes at runtime.
type Room interface {
	List(ctx context.Context) dto.ListRoomsResponse
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	All(ctx context.Context) []model.Room
}

type serviceImpl struct {
	rooms []model.Room
	otel  otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Room {
	rooms, err := model.ParseRegistry(cfg.Rooms)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build room registry")
	}

	return &serviceImpl{
		rooms: rooms,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) dto.ListRoomsResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()

	res := dto.ListRoomsResponse{}
	res.FromModels(s.rooms)

	return res
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	for _, room := range s.rooms {
		if room.ID == id {
			res.FromModel(room)

			return res, nil
		}
	}

	return res, failure.NotFound("room not found") // nolint:wrapcheck
}

func (s *serviceImpl) All(ctx context.Context) []model.Room {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".All")
	defer scope.End()

	rooms := make([]model.Room, len(s.rooms))
	copy(rooms, s.rooms)

	return rooms
}
