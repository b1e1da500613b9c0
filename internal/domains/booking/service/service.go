package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homestay/infras/otel"
	"homestay/internal/domains/booking/model"
	"homestay/internal/domains/booking/model/dto"
	scheduleModel "homestay/internal/domains/schedule/model"
	scheduleRepo "homestay/internal/domains/schedule/repository"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Booking is the write side of the schedule: it marks stays into cells and
// clears them again. Every call takes exactly one snapshot of the sheet and
// commits against the addresses resolved from that same snapshot; a write
// landing between the snapshot and the commit can still be overwritten,
// which is the store's own limit, not something a second read would close.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Find(ctx context.Context, roomID, date string) (dto.FindBookingResponse, error)
	Remove(ctx context.Context, req dto.RemoveBookingRequest) (dto.RemoveBookingResponse, error)
}

type serviceImpl struct {
	schedule scheduleRepo.Schedule
	otel     otel.Otel
}

func New(schedule scheduleRepo.Schedule, otel otel.Otel) Booking {
	return &serviceImpl{
		schedule: schedule,
		otel:     otel,
	}
}

// target is one resolved (room, date) cell of a booking request.
type target struct {
	roomID  string
	date    time.Time
	address scheduleModel.CellAddress
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status != model.StatusConfirmed && req.Status != model.StatusPending {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", req.Status)) // nolint:wrapcheck
	}

	if req.Status == model.StatusConfirmed && strings.TrimSpace(req.Deposit) == "" {
		return res, failure.BadRequestFromString("deposit is required for a confirmed booking") // nolint:wrapcheck
	}

	fromDate, err := timezone.Parse(constant.DateLayout, req.FromDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check-in date %q", req.FromDate)) // nolint:wrapcheck
	}

	snapshot, err := s.schedule.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read schedule")

		return res, err
	}

	targets, warnings := resolveTargets(snapshot, req.RoomIDs, fromDate, req.Nights)
	res.Warnings = warnings

	if len(targets) == 0 {
		log.Error().Strs("warnings", warnings).Msg("no booking target resolved")

		return dto.CreateBookingResponse{}, failure.BadRequestFromString(
			"nothing to book: " + strings.Join(warnings, "; "),
		) // nolint:wrapcheck
	}

	descriptor := model.Compose(req.CustomerName, req.Status, req.Deposit)

	writes := make([]scheduleModel.CellWrite, len(targets))
	byAddress := make(map[scheduleModel.CellAddress]target, len(targets))

	for i, tgt := range targets {
		writes[i] = scheduleModel.CellWrite{Address: tgt.address, Value: descriptor}
		byAddress[tgt.address] = tgt
	}

	_, conflicts := scheduleModel.DetectConflicts(snapshot, writes)

	if len(conflicts) > 0 && !req.ConfirmOverwrite {
		res.RequiresConfirmation = true

		for _, conflict := range conflicts {
			tgt := byAddress[conflict.Address]

			res.Conflicts = append(res.Conflicts, dto.ConflictDetail{
				RoomID:       tgt.roomID,
				Date:         tgt.date.Format(constant.DateLayout),
				CurrentValue: conflict.CurrentValue,
			})
		}

		log.Info().Int("conflicts", len(conflicts)).Msg("booking held for overwrite confirmation")

		return res, nil
	}

	if err = s.schedule.Apply(ctx, writes); err != nil {
		log.Error().Err(err).Msg("failed to commit booking")

		return dto.CreateBookingResponse{Warnings: warnings}, err
	}

	res.UpdatedCells = len(writes)
	res.Descriptor = descriptor

	scope.AddEvent(fmt.Sprintf("booking committed to %d cells", len(writes)))
	log.Info().
		Int("cells", len(writes)).
		Strs("rooms", req.RoomIDs).
		Str("fromDate", req.FromDate).
		Int("nights", req.Nights).
		Msg("booking committed")

	return res, nil
}

// resolveTargets expands rooms x nights into cell addresses against one
// snapshot. Pairs that fail to resolve are dropped and reported as
// warnings, each unresolvable room or date reported once.
func resolveTargets(snapshot scheduleModel.Snapshot, roomIDs []string, fromDate time.Time, nights int) ([]target, []string) {
	var (
		targets  []target
		warnings []string
	)

	dates := make([]time.Time, 0, nights)
	for night := 0; night < nights; night++ {
		dates = append(dates, fromDate.AddDate(0, 0, night))
	}

	rows := make(map[string]int, len(roomIDs))

	for _, roomID := range roomIDs {
		row, err := snapshot.LocateRoomRow(roomID)
		if err != nil {
			warnings = append(warnings, err.Error())

			continue
		}

		rows[roomID] = row
	}

	columns := make(map[time.Time]int, len(dates))

	for _, date := range dates {
		col, err := snapshot.LocateDateColumn(date)
		if err != nil {
			warnings = append(warnings, err.Error())

			continue
		}

		columns[date] = col
	}

	for _, roomID := range roomIDs {
		row, ok := rows[roomID]
		if !ok {
			continue
		}

		for _, date := range dates {
			col, ok := columns[date]
			if !ok {
				continue
			}

			targets = append(targets, target{
				roomID:  roomID,
				date:    date,
				address: scheduleModel.CellAddress{Row: row, Col: col},
			})
		}
	}

	return targets, warnings
}

func (s *serviceImpl) Find(ctx context.Context, roomID, date string) (res dto.FindBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer scope.TraceIfError(err)

	snapshot, address, err := s.locateOne(ctx, roomID, date)
	if err != nil {
		return res, err
	}

	raw := snapshot.Value(address)
	details := model.Parse(raw)

	res = dto.FindBookingResponse{
		RoomID:    roomID,
		Date:      date,
		Cell:      address.A1(),
		Available: details.Kind == model.KindAvailable,
	}

	if !res.Available {
		res.RawValue = raw
		res.Details = &details
	}

	return res, nil
}

// Remove clears a single booked cell. The caller is expected to have shown
// the cell's content (via Find) before asking for the removal; an empty
// cell is reported as not found rather than silently cleared.
func (s *serviceImpl) Remove(ctx context.Context, req dto.RemoveBookingRequest) (res dto.RemoveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	snapshot, address, err := s.locateOne(ctx, req.RoomID, req.Date)
	if err != nil {
		return res, err
	}

	raw := snapshot.Value(address)
	if strings.TrimSpace(raw) == "" {
		return res, failure.NotFound(fmt.Sprintf("no booking for room %s on %s", req.RoomID, req.Date)) // nolint:wrapcheck
	}

	if err = s.schedule.Clear(ctx, address); err != nil {
		log.Error().Err(err).Str("cell", address.A1()).Msg("failed to remove booking")

		return res, err
	}

	log.Info().
		Str("roomID", req.RoomID).
		Str("date", req.Date).
		Str("cell", address.A1()).
		Msg("booking removed")

	return dto.RemoveBookingResponse{
		RoomID:       req.RoomID,
		Date:         req.Date,
		Cell:         address.A1(),
		RemovedValue: raw,
	}, nil
}

// locateOne resolves a single (room, date) pair against a fresh snapshot.
// Unlike booking creation there is nothing to fall back to, so both
// not-found kinds block.
func (s *serviceImpl) locateOne(ctx context.Context, roomID, date string) (scheduleModel.Snapshot, scheduleModel.CellAddress, error) {
	parsed, err := timezone.Parse(constant.DateLayout, date)
	if err != nil {
		return scheduleModel.Snapshot{}, scheduleModel.CellAddress{}, failure.BadRequestFromString(fmt.Sprintf("invalid date %q", date)) // nolint:wrapcheck
	}

	snapshot, err := s.schedule.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read schedule")

		return scheduleModel.Snapshot{}, scheduleModel.CellAddress{}, err
	}

	address, err := snapshot.Locate(roomID, parsed)
	if err != nil {
		var roomErr *scheduleModel.RoomNotFoundError
		if errors.As(err, &roomErr) {
			return scheduleModel.Snapshot{}, scheduleModel.CellAddress{}, failure.NotFound(err.Error()) // nolint:wrapcheck
		}

		return scheduleModel.Snapshot{}, scheduleModel.CellAddress{}, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	return snapshot, address, nil
}
