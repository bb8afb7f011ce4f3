//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"kantine-order-api/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindowTime(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr error
	}{
		{"midnight", 0, 0, nil},
		{"last minute of the day", 23, 59, nil},
		{"negative hour", -1, 0, catalog.ErrInvalidWindowTime},
		{"hour 24", 24, 0, catalog.ErrInvalidWindowTime},
		{"negative minute", 10, -1, catalog.ErrInvalidWindowTime},
		{"minute 60", 10, 60, catalog.ErrInvalidWindowTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wt, err := catalog.NewWindowTime(tt.hour, tt.minute)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, wt.Hour())
			assert.Equal(t, tt.minute, wt.Minute())
		})
	}
}

func TestNewOrderWindow(t *testing.T) {
	at := func(h, m int) catalog.WindowTime {
		wt, err := catalog.NewWindowTime(h, m)
		require.NoError(t, err)
		return wt
	}

	t.Run("inverted window", func(t *testing.T) {
		_, err := catalog.NewOrderWindow(at(12, 0), at(8, 0))
		assert.ErrorIs(t, err, catalog.ErrInvertedWindow)
	})

	t.Run("zero length window", func(t *testing.T) {
		_, err := catalog.NewOrderWindow(at(8, 30), at(8, 30))
		assert.ErrorIs(t, err, catalog.ErrZeroLengthWindow)
	})

	t.Run("valid window", func(t *testing.T) {
		w, err := catalog.NewOrderWindow(at(8, 30), at(11, 0))
		require.NoError(t, err)
		assert.Equal(t, "08:30", w.From().String())
		assert.Equal(t, "11:00", w.To().String())
	})
}

func TestOrderWindow_Contains(t *testing.T) {
	at := func(h, m int) catalog.WindowTime {
		wt, err := catalog.NewWindowTime(h, m)
		require.NoError(t, err)
		return wt
	}
	clockAt := func(h, m int) time.Time {
		return time.Date(2024, time.March, 12, h, m, 0, 0, time.UTC)
	}

	window, err := catalog.NewOrderWindow(at(8, 30), at(11, 0))
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"one minute before opening", clockAt(8, 29), false},
		{"exactly at opening", clockAt(8, 30), true},
		{"inside the opening hour", clockAt(8, 45), true},
		{"whole hour inside", clockAt(9, 0), true},
		{"mid window", clockAt(10, 15), true},
		{"exactly at closing", clockAt(11, 0), true},
		{"one minute after closing", clockAt(11, 1), false},
		{"well after closing", clockAt(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.Contains(tt.at))
		})
	}
}
