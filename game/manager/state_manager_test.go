package manager

import "testing"

func TestStateManager(t *testing.T) {
	sm := NewStateManager(1)
	sm.TickDone(1)
	sm.FoodEaten()
	sm.TickDone(2)
	sm.FoodEaten()
	sm.TickDone(3)
	sm.SnakeReset(3)
	sm.TickDone(1)

	s := sm.Snapshot()
	if s.Ticks != 4 || s.FoodEaten != 2 || s.Resets != 1 {
		t.Fatalf("ticks=%d food=%d resets=%d want=4,2,1", s.Ticks, s.FoodEaten, s.Resets)
	}
	if s.Length != 1 || s.BestLength != 3 {
		t.Fatalf("length=%d best=%d want=1,3", s.Length, s.BestLength)
	}
	if len(s.LengthHistory) != 1 || s.LengthHistory[0] != 3 {
		t.Fatalf("history=%v want=[3]", s.LengthHistory)
	}
	if s.AverageLength() != 3 {
		t.Fatalf("average=%v want=3", s.AverageLength())
	}
}

func TestStateManager_HistoryIsBounded(t *testing.T) {
	sm := NewStateManager(1)
	for i := 0; i < maxHistory+10; i++ {
		sm.SnakeReset(i + 2)
	}
	h := sm.GetLengthHistory()
	if len(h) != maxHistory {
		t.Fatalf("history len=%d want=%d", len(h), maxHistory)
	}
	if h[0] != 12 {
		t.Fatalf("oldest entry=%d want=12", h[0])
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	sm := NewStateManager(1)
	sm.SnakeReset(5)
	s := sm.Snapshot()
	s.LengthHistory[0] = 99
	if sm.GetLengthHistory()[0] != 5 {
		t.Fatal("snapshot aliases manager history")
	}
}

func TestAverageLength_NoResets(t *testing.T) {
	if avg := NewStateManager(1).Snapshot().AverageLength(); avg != 0 {
		t.Fatalf("average=%v want=0", avg)
	}
}
