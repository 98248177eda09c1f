package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, url string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", url, nil)
	return ctx, w
}

func TestParsePeriod(t *testing.T) {
	t.Run("default de 30 dias retroativos", func(t *testing.T) {
		ctx, _ := newTestContext(t, "/reports/sales")

		start, end, ok := parsePeriod(ctx)
		require.True(t, ok)

		days := end.Sub(start).Hours() / 24
		assert.InDelta(t, 30, days, 0.01)
	})

	t.Run("período explícito", func(t *testing.T) {
		ctx, _ := newTestContext(t, "/reports/sales?start_date=2026-08-01&end_date=2026-08-15")

		start, end, ok := parsePeriod(ctx)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("data inválida responde 400", func(t *testing.T) {
		ctx, w := newTestContext(t, "/reports/sales?start_date=15-08-2026")

		_, _, ok := parsePeriod(ctx)
		assert.False(t, ok)
		assert.Equal(t, 400, w.Code)
	})
}
