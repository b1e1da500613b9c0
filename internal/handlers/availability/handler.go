package availability

import (
	"net/http"
	"strings"

	"homestay/infras/otel"
	"homestay/internal/domains/availability/service"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/rooms/{room_id}", handler.CheckRoom)
		routerGroup.Get("/dates/{date}", handler.CheckDate)
		routerGroup.Get("/months/{month}", handler.Month)
	})
}

// CheckRoom reports one room's state on one date.
// @Summary Check a room on a date
// @Description Report whether a room is free on a given date, with the raw cell value when occupied.
// @Tags Availability
// @Produce json
// @Param room_id path string true "Room code"
// @Param date query string true "Date (DD/MM/YYYY)"
// @Success 200 {object} response.Data[dto.RoomAvailabilityResponse] "Room state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/availability/rooms/{room_id} [get]
func (handler *Handler) CheckRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckRoom")
	defer scope.End()

	roomID := chi.URLParam(request, constant.RequestParamRoomID)

	date := request.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		err := failure.BadRequestFromString("date query parameter is required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CheckRoom(ctx, roomID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check room availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckDate reports every room's state on one date.
// @Summary Check all rooms on a date
// @Description Report the state of every registry room on a given date from one sheet read.
// @Tags Availability
// @Produce json
// @Param date path string true "Date (DD-MM-YYYY or DD/MM/YYYY)"
// @Success 200 {object} response.Data[dto.DateAvailabilityResponse] "Per-room states and counts"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/availability/dates/{date} [get]
func (handler *Handler) CheckDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckDate")
	defer scope.End()

	date := pathDate(request, constant.RequestParamDate)

	res, err := handler.service.CheckDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check date availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Month renders the schedule grid for one month.
// @Summary Month view
// @Description Render every registry room's schedule for one month (MM-YYYY or MM/YYYY) from one sheet read.
// @Tags Availability
// @Produce json
// @Param month path string true "Month (MM-YYYY or MM/YYYY)"
// @Success 200 {object} response.Data[dto.MonthResponse] "Month grid"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/availability/months/{month} [get]
func (handler *Handler) Month(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Month")
	defer scope.End()

	month := pathDate(request, constant.RequestParamMonth)

	res, err := handler.service.Month(ctx, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build month view")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// pathDate reads a date-like path segment, accepting "-" in place of "/"
// since slashes cannot appear in a path segment.
func pathDate(request *http.Request, param string) string {
	value := chi.URLParam(request, param)

	return strings.ReplaceAll(value, "-", "/")
}
