package schedule

import (
	"testing"
	"time"

	"github.com/ptitevents/eventapp/internal/domain/entity"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	t.Run("resolves explicit start and end", func(t *testing.T) {
		ev := entity.Event{StartDate: "01/01/2030", EndDate: "02/01/2030", StartTime: "10:00", EndTime: "10:00"}
		start, end, ok := Window(ev)
		if !ok {
			t.Fatalf("expected window to resolve")
		}
		wantStart := time.Date(2030, 1, 1, 10, 0, 0, 0, time.Local)
		wantEnd := time.Date(2030, 1, 2, 10, 0, 0, 0, time.Local)
		if !start.Equal(wantStart) {
			t.Fatalf("expected start %v, got %v", wantStart, start)
		}
		if !end.Equal(wantEnd) {
			t.Fatalf("expected end %v, got %v", wantEnd, end)
		}
	})

	t.Run("defaults missing times to full day", func(t *testing.T) {
		ev := entity.Event{StartDate: "15/06/2030", EndDate: "15/06/2030"}
		start, end, ok := Window(ev)
		if !ok {
			t.Fatalf("expected window to resolve")
		}
		if start.Hour() != 0 || start.Minute() != 0 {
			t.Fatalf("expected start at 00:00, got %v", start)
		}
		if end.Hour() != 23 || end.Minute() != 59 {
			t.Fatalf("expected end at 23:59, got %v", end)
		}
	})

	t.Run("missing end date falls back to start date", func(t *testing.T) {
		ev := entity.Event{StartDate: "15/06/2030", StartTime: "09:00", EndTime: "17:00"}
		start, end, ok := Window(ev)
		if !ok {
			t.Fatalf("expected window to resolve")
		}
		if start.Day() != end.Day() {
			t.Fatalf("expected same day, got start %v end %v", start, end)
		}
	})

	t.Run("unparseable date yields not ok", func(t *testing.T) {
		ev := entity.Event{StartDate: "soon", EndDate: "later"}
		if _, _, ok := Window(ev); ok {
			t.Fatalf("expected window to fail")
		}
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	ev := entity.Event{StartDate: "01/01/2030", EndDate: "02/01/2030", StartTime: "10:00", EndTime: "10:00"}
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.Local)
	end := time.Date(2030, 1, 2, 10, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		now  time.Time
		want Classification
	}{
		{"before start", start.Add(-time.Hour), Upcoming},
		{"at start", start, Ongoing},
		{"between", start.Add(12 * time.Hour), Ongoing},
		{"at end", end, Ongoing},
		{"after end", end.Add(time.Second), Ended},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(ev, tc.now); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("unparseable is unknown", func(t *testing.T) {
		bad := entity.Event{StartDate: "not-a-date"}
		if got := Classify(bad, start); got != Unknown {
			t.Fatalf("expected unknown, got %s", got)
		}
	})
}

func TestRemainingLabel(t *testing.T) {
	t.Parallel()

	ev := entity.Event{StartDate: "01/01/2030", EndDate: "02/01/2030", StartTime: "10:00", EndTime: "10:00"}
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.Local)
	end := time.Date(2030, 1, 2, 10, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"days until start", start.Add(-(48*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)), "Starts in 2d 03:04:05"},
		{"hours until end", end.Add(-(time.Hour + 30*time.Minute)), "Ends in 01:30:00"},
		{"minutes until end", end.Add(-(5*time.Minute + 30*time.Second)), "Ends in 05:30"},
		{"ended", end.Add(time.Minute), "Finished"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemainingLabel(ev, tc.now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("unparseable yields empty label", func(t *testing.T) {
		bad := entity.Event{StartDate: "??"}
		if got := RemainingLabel(bad, start); got != "" {
			t.Fatalf("expected empty label, got %q", got)
		}
	})
}

func TestExpiredByEndDate(t *testing.T) {
	t.Parallel()

	ev := entity.Event{StartDate: "01/01/2030", EndDate: "02/01/2030"}

	t.Run("not expired on the end day", func(t *testing.T) {
		today := time.Date(2030, 1, 2, 23, 0, 0, 0, time.Local)
		if ExpiredByEndDate(ev, today) {
			t.Fatalf("expected not expired")
		}
	})

	t.Run("expired the day after", func(t *testing.T) {
		today := time.Date(2030, 1, 3, 0, 0, 0, 0, time.Local)
		if !ExpiredByEndDate(ev, today) {
			t.Fatalf("expected expired")
		}
	})

	t.Run("falls back to start date", func(t *testing.T) {
		single := entity.Event{StartDate: "01/01/2030"}
		today := time.Date(2030, 1, 2, 0, 0, 0, 0, time.Local)
		if !ExpiredByEndDate(single, today) {
			t.Fatalf("expected expired")
		}
	})

	t.Run("unparseable date fails closed", func(t *testing.T) {
		bad := entity.Event{StartDate: "tba"}
		if !ExpiredByEndDate(bad, time.Now()) {
			t.Fatalf("expected unparseable date to count as expired")
		}
	})
}
