package gateway

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTopics(t *testing.T) {
	if got := spaceTopic("parking", 4); got != "parking/space/4" {
		t.Errorf("spaceTopic() = %q, want %q", got, "parking/space/4")
	}
	if got := lotTopic("parking"); got != "parking/vacancies" {
		t.Errorf("lotTopic() = %q, want %q", got, "parking/vacancies")
	}
}

func TestSpaceStatus_JSON(t *testing.T) {
	at := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(SpaceStatus{NodeID: 4, Vacant: true, UpdatedAt: at})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"node_id":4,"vacant":true,"updated_at":"2026-08-24T12:00:00Z"}`
	if string(payload) != want {
		t.Errorf("payload = %s, want %s", payload, want)
	}
}

func TestUpdateEvent_JSON(t *testing.T) {
	at := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(UpdateEvent{NodeID: 9, Vacant: false, VacantSpaces: 2, ReceivedAt: at})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"node_id":9,"vacant":false,"vacant_spaces":2,"received_at":"2026-08-24T12:00:00Z"}`
	if string(payload) != want {
		t.Errorf("payload = %s, want %s", payload, want)
	}
}
