package node

import (
	"testing"
	"time"

	"github.com/jkieltyka15/smart-wsn-parking-lot/driver/stub"
	proto "github.com/jkieltyka15/smart-wsn-parking-lot/protocol"
	"github.com/jkieltyka15/smart-wsn-parking-lot/sensor"
	"github.com/jkieltyka15/smart-wsn-parking-lot/transport"
)

// scriptedRanger replays a fixed sequence of read statuses.
type scriptedRanger struct {
	statuses []sensor.RangeStatus
	reads    int
}

func (s *scriptedRanger) Begin() bool      { return true }
func (s *scriptedRanger) ReadRange() uint8 { return 0 }

func (s *scriptedRanger) ReadRangeStatus() sensor.RangeStatus {
	status := s.statuses[s.reads]
	s.reads++
	return status
}

// recordingSink captures the updates fanned out by the base station.
type recordingSink struct {
	ids     []proto.NodeID
	vacants []bool
	totals  []int
}

func (r *recordingSink) StatusChanged(id proto.NodeID, vacant bool, vacantTotal int) {
	r.ids = append(r.ids, id)
	r.vacants = append(r.vacants, vacant)
	r.totals = append(r.totals, vacantTotal)
}

// fastTuning keeps carrier-sense backoff negligible in tests.
func fastTuning() transport.Tuning {
	return transport.Tuning{
		MaxAttempts: 3,
		MinDelay:    time.Microsecond,
		MaxDelay:    2 * time.Microsecond,
	}
}

func TestSensorNode_ReportsChangeToBaseStation(t *testing.T) {
	medium := stub.NewMedium()
	sink := &recordingSink{}

	station, err := NewBaseStation(medium.Attach(), fastTuning(), sink)
	if err != nil {
		t.Fatalf("NewBaseStation() error = %v", err)
	}
	if !station.Init() {
		t.Fatal("base station Init() = false")
	}

	ranger := &scriptedRanger{statuses: []sensor.RangeStatus{
		sensor.RangeNoTarget,
		sensor.RangeNoTarget,
		sensor.RangeNear,
	}}
	sn, err := NewSensorNode(3, medium.Attach(), ranger, fastTuning())
	if err != nil {
		t.Fatalf("NewSensorNode() error = %v", err)
	}
	if !sn.Init() {
		t.Fatal("sensor node Init() = false")
	}

	// First reading: unknown -> vacant, reported.
	if !sn.Step() {
		t.Fatal("Step() = false, want a reported change")
	}
	if got := station.Poll(); got != 1 {
		t.Fatalf("Poll() = %d, want 1", got)
	}
	if vacant, ok := station.Registry().Vacant(3); !ok || !vacant {
		t.Errorf("Vacant(3) = (%v, %v), want (true, true)", vacant, ok)
	}
	if got := station.Registry().CountVacant(); got != 1 {
		t.Errorf("CountVacant() = %d, want 1", got)
	}

	// Second reading: unchanged, nothing on the air.
	if sn.Step() {
		t.Fatal("Step() = true on an unchanged reading")
	}
	if got := station.Poll(); got != 0 {
		t.Errorf("Poll() = %d after debounced reading, want 0", got)
	}

	// Third reading: vacant -> occupied, reported.
	if !sn.Step() {
		t.Fatal("Step() = false, want a reported change")
	}
	if got := station.Poll(); got != 1 {
		t.Fatalf("Poll() = %d, want 1", got)
	}
	if got := station.Registry().CountVacant(); got != 0 {
		t.Errorf("CountVacant() = %d, want 0", got)
	}

	wantIDs := []proto.NodeID{3, 3}
	wantVacants := []bool{true, false}
	wantTotals := []int{1, 0}
	if len(sink.ids) != len(wantIDs) {
		t.Fatalf("sink saw %d updates, want %d", len(sink.ids), len(wantIDs))
	}
	for i := range wantIDs {
		if sink.ids[i] != wantIDs[i] || sink.vacants[i] != wantVacants[i] || sink.totals[i] != wantTotals[i] {
			t.Errorf("sink update %d = (%d, %v, %d), want (%d, %v, %d)",
				i, sink.ids[i], sink.vacants[i], sink.totals[i], wantIDs[i], wantVacants[i], wantTotals[i])
		}
	}
}

func TestSensorNode_DropsUpdateOnSaturatedChannel(t *testing.T) {
	medium := stub.NewMedium()

	station, err := NewBaseStation(medium.Attach(), fastTuning())
	if err != nil {
		t.Fatalf("NewBaseStation() error = %v", err)
	}
	if !station.Init() {
		t.Fatal("base station Init() = false")
	}

	ranger := &scriptedRanger{statuses: []sensor.RangeStatus{sensor.RangeNoTarget}}
	sn, err := NewSensorNode(1, medium.Attach(), ranger, fastTuning())
	if err != nil {
		t.Fatalf("NewSensorNode() error = %v", err)
	}
	if !sn.Init() {
		t.Fatal("sensor node Init() = false")
	}

	baseChannel, _ := proto.ChannelFor(proto.BaseStationID)
	medium.SetCarrier(baseChannel, true)

	if sn.Step() {
		t.Fatal("Step() = true, want dropped update on a saturated channel")
	}
	if got := station.Poll(); got != 0 {
		t.Errorf("Poll() = %d, want 0 (nothing was transmitted)", got)
	}
	if got := station.Registry().CountVacant(); got != 0 {
		t.Errorf("CountVacant() = %d, want 0", got)
	}
}

func TestSensorNode_ListensAgainAfterSend(t *testing.T) {
	medium := stub.NewMedium()

	station, err := NewBaseStation(medium.Attach(), fastTuning())
	if err != nil {
		t.Fatalf("NewBaseStation() error = %v", err)
	}
	if !station.Init() {
		t.Fatal("base station Init() = false")
	}

	ranger := &scriptedRanger{statuses: []sensor.RangeStatus{sensor.RangeNear}}
	sn, err := NewSensorNode(2, medium.Attach(), ranger, fastTuning())
	if err != nil {
		t.Fatalf("NewSensorNode() error = %v", err)
	}
	if !sn.Init() {
		t.Fatal("sensor node Init() = false")
	}
	if !sn.Step() {
		t.Fatal("Step() = false, want a reported change")
	}

	// The sensor node must be back on its own address: a record aimed at
	// it has to land.
	peer := medium.Attach()
	nodeChannel, _ := proto.ChannelFor(2)
	nodeAddress, _ := proto.AddressFor(2)
	peer.SetChannel(nodeChannel)
	peer.OpenWritingPipe(nodeAddress)
	if !peer.Write(proto.EncodeUpdate(proto.NewUpdate(2, 5, 5, true))) {
		t.Fatal("Write() to the sensor node's address = false, node is deaf after sending")
	}
}

func TestBaseStation_DiscardsProtocolViolations(t *testing.T) {
	medium := stub.NewMedium()

	station, err := NewBaseStation(medium.Attach(), fastTuning())
	if err != nil {
		t.Fatalf("NewBaseStation() error = %v", err)
	}
	if !station.Init() {
		t.Fatal("base station Init() = false")
	}

	intruder := medium.Attach()
	baseChannel, _ := proto.ChannelFor(proto.BaseStationID)
	intruder.SetChannel(baseChannel)
	intruder.OpenWritingPipe(proto.BaseStationAddress)

	frames := [][]byte{
		{0, 11, proto.KindUpdate, 11, 1}, // sender and origin out of range
		{0, 3, proto.KindUpdate, 0, 1},   // origin is the base station itself
		{7, 3, proto.KindUpdate, 3, 1},   // addressed to another node
		{0, 3, 0x7F, 3, 1},               // unknown kind
	}
	for _, frame := range frames {
		intruder.Write(frame)
	}

	if got := station.Poll(); got != 0 {
		t.Errorf("Poll() = %d, want 0 applied from violating records", got)
	}
	if got := station.Registry().CountVacant(); got != 0 {
		t.Errorf("CountVacant() = %d after violations, want 0", got)
	}
}

func TestNewSensorNode_RejectsBaseStationIdentity(t *testing.T) {
	medium := stub.NewMedium()
	ranger := &scriptedRanger{}

	if _, err := NewSensorNode(proto.BaseStationID, medium.Attach(), ranger, fastTuning()); err != proto.ErrInvalidNode {
		t.Errorf("NewSensorNode(0) error = %v, want %v", err, proto.ErrInvalidNode)
	}
	if _, err := NewSensorNode(proto.MaxSensorNodes+1, medium.Attach(), ranger, fastTuning()); err != proto.ErrInvalidNode {
		t.Errorf("NewSensorNode(%d) error = %v, want %v", proto.MaxSensorNodes+1, err, proto.ErrInvalidNode)
	}
}
