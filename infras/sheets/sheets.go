package sheets

//go:generate go run go.uber.org/mock/mockgen -source=./sheets.go -destination=./mocks/sheets_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"homestay/config"
	"homestay/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Sheets is the authenticated remote table service. Every call goes out with
// the bearer credential supplied by the configured token source; expired or
// revoked credentials surface as a single typed unauthorized failure so the
// caller can abandon the action and ask for reauthentication instead of
// retrying blindly.
type Sheets interface {
	GetValues(ctx context.Context, readRange string) ([][]string, error)
	BatchUpdateCells(ctx context.Context, requests []*sheetsapi.Request) error
	UpdateValue(ctx context.Context, writeRange, value string) error
}

type sheetsImpl struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

func New(cfg *config.Config) Sheets {
	ctx := context.Background()

	var opts []option.ClientOption

	switch {
	case cfg.Sheets.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
		opts = append(opts, option.WithScopes(sheetsapi.SpreadsheetsScope))
	case cfg.Sheets.RefreshToken != "":
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.Sheets.ClientID,
			ClientSecret: cfg.Sheets.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheetsapi.SpreadsheetsScope},
		}
		source := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.Sheets.RefreshToken})
		opts = append(opts, option.WithTokenSource(source))
	default:
		log.Fatal().Msg("No Google Sheets credentials configured: set SHEETS_CREDENTIALS_FILE or SHEETS_REFRESH_TOKEN")
	}

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Google Sheets client")
	}

	log.Info().
		Str("spreadsheet_id", cfg.Sheets.SpreadsheetID).
		Str("sheet_name", cfg.Sheets.SheetName).
		Msg("Connected to Google Sheets")

	return &sheetsImpl{
		service:       service,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
	}
}

func (s *sheetsImpl) GetValues(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, wrapRemoteErr("values.get", err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		values = append(values, cells)
	}

	return values, nil
}

func (s *sheetsImpl) BatchUpdateCells(ctx context.Context, requests []*sheetsapi.Request) error {
	batch := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, batch).Context(ctx).Do(); err != nil {
		return wrapRemoteErr("spreadsheets.batchUpdate", err)
	}

	return nil
}

func (s *sheetsImpl) UpdateValue(ctx context.Context, writeRange, value string) error {
	valueRange := &sheetsapi.ValueRange{
		Values: [][]interface{}{{value}},
	}

	_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return wrapRemoteErr("values.update", err)
	}

	return nil
}

// wrapRemoteErr is the single classification path for every remote call.
// Authorization rejections become unauthorized failures; everything else is a
// plain remote-call failure with no automatic retry.
func wrapRemoteErr(operation string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			log.Warn().Err(err).Str("operation", operation).Msg("google credential rejected")

			return failure.Unauthorized("google session expired, please sign in again") //nolint:wrapcheck
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "UNAUTHENTICATED") || strings.Contains(strings.ToLower(msg), "invalid credentials") {
		log.Warn().Err(err).Str("operation", operation).Msg("google credential rejected")

		return failure.Unauthorized("google session expired, please sign in again") //nolint:wrapcheck
	}

	log.Error().Err(err).Str("operation", operation).Msg("google sheets call failed")

	return failure.RemoteCall(fmt.Errorf("%s: %w", operation, err)) //nolint:wrapcheck
}
