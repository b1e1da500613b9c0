package room

import (
	"net/http"

	"homestay/infras/otel"
	"homestay/internal/domains/room/service"
	"homestay/shared/constant"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListRooms)
		routerGroup.Get("/{room_id}", handler.GetRoom)
	})
}

// ListRooms returns the room registry.
// @Summary List all rooms
// @Description List the homestay's bookable rooms.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.ListRoomsResponse] "Room registry"
// @Router /v1/rooms [get]
func (handler *Handler) ListRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRooms")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.List(ctx))
}

// GetRoom returns one room by its code.
// @Summary Get a room
// @Description Get a single room by its registry code.
// @Tags Room
// @Produce json
// @Param room_id path string true "Room code"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room"
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{room_id} [get]
func (handler *Handler) GetRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamRoomID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}
