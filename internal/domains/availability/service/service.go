package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homestay/infras/otel"
	"homestay/internal/domains/availability/model/dto"
	bookingModel "homestay/internal/domains/booking/model"
	roomService "homestay/internal/domains/room/service"
	scheduleModel "homestay/internal/domains/schedule/model"
	scheduleRepo "homestay/internal/domains/schedule/repository"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Availability is the read side of the schedule. Every query takes exactly
// one fresh snapshot, however many cells it inspects.
type Availability interface {
	CheckRoom(ctx context.Context, roomID, date string) (dto.RoomAvailabilityResponse, error)
	CheckDate(ctx context.Context, date string) (dto.DateAvailabilityResponse, error)
	Month(ctx context.Context, month string) (dto.MonthResponse, error)
}

type serviceImpl struct {
	schedule scheduleRepo.Schedule
	rooms    roomService.Room
	otel     otel.Otel
}

func New(schedule scheduleRepo.Schedule, rooms roomService.Room, otel otel.Otel) Availability {
	return &serviceImpl{
		schedule: schedule,
		rooms:    rooms,
		otel:     otel,
	}
}

func (s *serviceImpl) CheckRoom(ctx context.Context, roomID, date string) (res dto.RoomAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := timezone.Parse(constant.DateLayout, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q", date)) // nolint:wrapcheck
	}

	snapshot, err := s.schedule.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read schedule")

		return res, err
	}

	address, err := snapshot.Locate(roomID, parsed)
	if err != nil {
		var roomErr *scheduleModel.RoomNotFoundError
		if errors.As(err, &roomErr) {
			return res, failure.NotFound(err.Error()) // nolint:wrapcheck
		}

		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	raw := snapshot.Value(address)
	details := bookingModel.Parse(raw)

	res = dto.RoomAvailabilityResponse{
		RoomID:    roomID,
		Date:      date,
		Available: details.Kind == bookingModel.KindAvailable,
	}

	if !res.Available {
		res.RawValue = raw
		res.Details = &details
	}

	return res, nil
}

// CheckDate reports every registry room's state on one day against a single
// snapshot. Rooms without a sheet row come back as "unknown" and are
// excluded from both counts.
func (s *serviceImpl) CheckDate(ctx context.Context, date string) (res dto.DateAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := timezone.Parse(constant.DateLayout, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date %q", date)) // nolint:wrapcheck
	}

	snapshot, err := s.schedule.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read schedule")

		return res, err
	}

	col, err := snapshot.LocateDateColumn(parsed)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	res.Date = date

	for _, room := range s.rooms.All(ctx) {
		status := dto.RoomDayStatus{
			RoomID: room.ID,
			Label:  room.Label,
		}

		row, err := snapshot.LocateRoomRow(room.ID)
		if err != nil {
			status.Status = dto.StatusUnknown
			res.Rooms = append(res.Rooms, status)

			continue
		}

		raw := snapshot.Value(scheduleModel.CellAddress{Row: row, Col: col})
		if strings.TrimSpace(raw) == "" {
			status.Status = dto.StatusAvailable
			res.AvailableCount++
		} else {
			details := bookingModel.Parse(raw)

			status.Status = dto.StatusOccupied
			status.RawValue = raw
			status.Details = &details
			res.OccupiedCount++
		}

		res.Rooms = append(res.Rooms, status)
	}

	return res, nil
}

// Month renders the whole grid for one month from a single snapshot. Days
// the sheet has no column for are empty available cells, matching how the
// sheet itself treats them.
func (s *serviceImpl) Month(ctx context.Context, month string) (res dto.MonthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Month")
	defer scope.End()
	defer scope.TraceIfError(err)

	firstDay, err := timezone.Parse(constant.MonthLayout, month)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid month %q, want MM/YYYY", month)) // nolint:wrapcheck
	}

	snapshot, err := s.schedule.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read schedule")

		return res, err
	}

	days := daysInMonth(firstDay)
	res.Month = month

	for _, room := range s.rooms.All(ctx) {
		schedule := dto.MonthRoomSchedule{
			RoomID: room.ID,
			Label:  room.Label,
			Days:   make([]dto.MonthDayCell, 0, days),
		}

		row, rowErr := snapshot.LocateRoomRow(room.ID)

		for day := 0; day < days; day++ {
			date := firstDay.AddDate(0, 0, day)
			cell := dto.MonthDayCell{
				Date:      date.Format(constant.DateLayout),
				Available: true,
			}

			if rowErr == nil {
				if col, colErr := snapshot.LocateDateColumn(date); colErr == nil {
					raw := snapshot.Value(scheduleModel.CellAddress{Row: row, Col: col})
					if strings.TrimSpace(raw) != "" {
						details := bookingModel.Parse(raw)

						cell.Available = false
						cell.RawValue = raw
						cell.Details = &details
					}
				}
			}

			schedule.Days = append(schedule.Days, cell)
		}

		res.Rooms = append(res.Rooms, schedule)
	}

	return res, nil
}

func daysInMonth(firstDay time.Time) int {
	return time.Date(firstDay.Year(), firstDay.Month()+1, 0, 0, 0, 0, 0, firstDay.Location()).Day()
}
