package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocodas/prier-backend/internal/config"
)

func newTracerWithClock(buf *bytes.Buffer, threshold time.Duration, steps ...time.Duration) *slowQueryTracer {
	tr := newSlowQueryTracer(slog.New(slog.NewJSONHandler(buf, nil)), threshold)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	calls := 0
	tr.now = func() time.Time {
		at := base
		if calls < len(steps) {
			at = base.Add(steps[calls])
		}
		calls++
		return at
	}
	return tr
}

func TestSlowQueryTracer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		elapsed time.Duration
		err     error
		logged  bool
	}{
		{"fast query is silent", 10 * time.Millisecond, nil, false},
		{"at threshold is logged", 200 * time.Millisecond, nil, true},
		{"slow failing query carries error", time.Second, errors.New("deadlock detected"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tr := newTracerWithClock(&buf, 200*time.Millisecond, 0, tt.elapsed)

			ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
			tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1"), Err: tt.err})

			if !tt.logged {
				assert.Zero(t, buf.Len())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "slow query", entry["msg"])
			assert.Equal(t, "WARN", entry["level"])
			assert.Equal(t, "SELECT 1", entry["sql"])
			assert.Equal(t, "postgres", entry["component"])
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), entry["error"])
			} else {
				assert.NotContains(t, entry, "error")
			}
		})
	}
}

func TestSlowQueryTracer_EndWithoutStart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newTracerWithClock(&buf, time.Nanosecond)

	tr.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

	assert.Zero(t, buf.Len())
}

func TestNewPool_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := NewPool(context.Background(), config.DatabaseConfig{DSN: "://not a dsn"}, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse database DSN")
}
