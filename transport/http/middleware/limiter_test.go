package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homestay/config"
	otelMocks "homestay/infras/otel/mocks"
	"homestay/shared/cache"
	cacheMocks "homestay/shared/cache/mocks"
	"homestay/shared/constant"
	"homestay/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func serve(t *testing.T, cfg *config.Config, redis cache.RedisCache) *httptest.ResponseRecorder {
	t.Helper()

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redis)

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	request.Header.Set(constant.RequestHeaderRealIP, "203.0.113.7")

	handler.ServeHTTP(recorder, request)

	return recorder
}

func TestRateLimitFirstRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

	recorder := serve(t, limiterConfig(), redis)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "2", recorder.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestRateLimitExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ string, value any) error {
			*(value.(*int)) = 2

			return nil
		})

	recorder := serve(t, limiterConfig(), redis)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := limiterConfig()
	cfg.App.RateLimiter.Enable = false

	recorder := serve(t, cfg, redis)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRateLimitCacheOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	// Anything but a miss means the counter store is unreachable; requests
	// pass through rather than being rejected.
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	recorder := serve(t, limiterConfig(), redis)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
