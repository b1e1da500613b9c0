package sheets

import (
	"errors"
	"net/http"
	"testing"

	"homestay/shared/failure"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestWrapRemoteErr(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     int
		unauthorized bool
	}{
		{
			name:         "401 from google",
			err:          &googleapi.Error{Code: http.StatusUnauthorized, Message: "Request had invalid authentication credentials"},
			unauthorized: true,
		},
		{
			name:         "403 from google",
			err:          &googleapi.Error{Code: http.StatusForbidden, Message: "The caller does not have permission"},
			unauthorized: true,
		},
		{
			name:         "unauthenticated message without typed error",
			err:          errors.New("rpc error: code = UNAUTHENTICATED desc = token expired"),
			unauthorized: true,
		},
		{
			name:         "invalid credentials message",
			err:          errors.New("oauth2: Invalid Credentials"),
			unauthorized: true,
		},
		{
			name:         "other remote failure",
			err:          &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "backend error"},
			wantCode:     http.StatusBadGateway,
			unauthorized: false,
		},
		{
			name:         "transport failure",
			err:          errors.New("dial tcp: i/o timeout"),
			wantCode:     http.StatusBadGateway,
			unauthorized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapRemoteErr("values.get", tt.err)

			assert.Equal(t, tt.unauthorized, failure.IsUnauthorized(wrapped))

			if !tt.unauthorized {
				assert.Equal(t, tt.wantCode, failure.GetCode(wrapped))
			}
		})
	}
}
