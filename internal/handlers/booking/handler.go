package booking

import (
	"net/http"

	"homestay/infras/otel"
	"homestay/internal/domains/booking/model/dto"
	"homestay/internal/domains/booking/service"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/validator"
	"homestay/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/lookup", handler.FindBooking)
		routerGroup.Post("/removals", handler.RemoveBooking)
	})
}

// CreateBooking marks a stay into the schedule sheet.
// @Summary Create a booking
// @Description Book one or more rooms for consecutive nights. When target cells are already occupied and confirm_overwrite is false, responds 409 with the conflicting cells; resubmit with confirm_overwrite=true to overwrite them.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking committed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Data[dto.CreateBookingResponse] "Occupied cells awaiting overwrite confirmation"
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	if res.RequiresConfirmation {
		scope.AddEvent("Booking held for overwrite confirmation")

		response.WithJSON(writer, http.StatusConflict, res)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// FindBooking shows what occupies a single cell.
// @Summary Look up a booking cell
// @Description Resolve a (room, date) pair and report the cell's content, used before removal.
// @Tags Booking
// @Produce json
// @Param room_id query string true "Room code"
// @Param date query string true "Date (DD/MM/YYYY)"
// @Success 200 {object} response.Data[dto.FindBookingResponse] "Cell content"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/lookup [get]
// @Security BearerAuth
func (handler *Handler) FindBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindBooking")
	defer scope.End()

	roomID := request.URL.Query().Get(constant.RequestParamRoomID)
	date := request.URL.Query().Get(constant.RequestParamDate)

	if roomID == "" || date == "" {
		err := failure.BadRequestFromString("room_id and date query parameters are required")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Find(ctx, roomID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to look up booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RemoveBooking clears one booked cell.
// @Summary Remove a booking
// @Description Clear the cell for a (room, date) pair. The cell must currently hold a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.RemoveBookingRequest true "Remove Booking Request"
// @Success 200 {object} response.Data[dto.RemoveBookingResponse] "Booking removed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/removals [post]
// @Security BearerAuth
func (handler *Handler) RemoveBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveBooking")
	defer scope.End()

	req := dto.RemoveBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Remove(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking removed by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}
