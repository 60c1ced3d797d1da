package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Report(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		want      string
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 4},
			cur:  sql.DBStats{WaitCount: 4},
		},
		{
			name: "short wait is debug",
			prev: sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: 5 * time.Millisecond},
			want: `"level":"DEBUG"`,
		},
		{
			name: "long wait is warn",
			prev: sql.DBStats{},
			cur:  sql.DBStats{WaitCount: 2, WaitDuration: time.Second, InUse: 10},
			want: `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := &poolMonitor{logger: newTestLogger(&buf)}

			m.report(context.Background(), tt.prev, tt.cur)
			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "Sales db pool wait")
		})
	}
}

func TestPoolMonitor_WatchWithoutDB(t *testing.T) {
	// Returns immediately instead of blocking on the ticker.
	m := &poolMonitor{logger: slog.Default()}
	m.watch(context.Background())
}
