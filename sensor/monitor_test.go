package sensor

import "testing"

// scriptedRanger replays a fixed sequence of read statuses.
type scriptedRanger struct {
	statuses []RangeStatus
	reads    int
}

func (s *scriptedRanger) Begin() bool      { return true }
func (s *scriptedRanger) ReadRange() uint8 { return 0 }

func (s *scriptedRanger) ReadRangeStatus() RangeStatus {
	status := s.statuses[s.reads]
	s.reads++
	return status
}

func TestMonitor_DetectChange(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []RangeStatus
		want      []bool
		wantState OccupancyState
	}{
		{
			name:      "first valid reading reports",
			statuses:  []RangeStatus{RangeNear},
			want:      []bool{true},
			wantState: StateOccupied,
		},
		{
			name:      "repeated reading is debounced",
			statuses:  []RangeStatus{RangeNear, RangeNear},
			want:      []bool{true, false},
			wantState: StateOccupied,
		},
		{
			name:      "occupied to vacant reports again",
			statuses:  []RangeStatus{RangeNear, RangeNoTarget},
			want:      []bool{true, true},
			wantState: StateVacant,
		},
		{
			name:      "error keeps prior state",
			statuses:  []RangeStatus{RangeNear, RangeError, RangeNear},
			want:      []bool{true, false, false},
			wantState: StateOccupied,
		},
		{
			name:      "error before any valid reading stays unknown",
			statuses:  []RangeStatus{RangeError},
			want:      []bool{false},
			wantState: StateUnknown,
		},
		{
			name:      "vacant first reading",
			statuses:  []RangeStatus{RangeNoTarget, RangeNoTarget},
			want:      []bool{true, false},
			wantState: StateVacant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitor := NewMonitor(&scriptedRanger{statuses: tt.statuses})

			for i, want := range tt.want {
				if got := monitor.DetectChange(); got != want {
					t.Errorf("DetectChange() call %d = %v, want %v", i+1, got, want)
				}
			}
			if monitor.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", monitor.State(), tt.wantState)
			}
		})
	}
}

func TestMonitor_StartsUnknown(t *testing.T) {
	monitor := NewMonitor(&scriptedRanger{})
	if monitor.State() != StateUnknown {
		t.Errorf("State() = %v, want %v", monitor.State(), StateUnknown)
	}
}

func TestOccupancyState_String(t *testing.T) {
	tests := []struct {
		state OccupancyState
		want  string
	}{
		{StateUnknown, "unknown"},
		{StateOccupied, "occupied"},
		{StateVacant, "vacant"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
