package phase

import "testing"

type ping struct{ n int }

func TestReaderSeesEachEventOnce(t *testing.T) {
	var ch Channel[ping]
	var r Reader[ping]

	ch.Send(ping{1})
	ch.Send(ping{2})

	got := r.Read(&ch)
	if len(got) != 2 || got[0].n != 1 || got[1].n != 2 {
		t.Fatalf("first Read = %v, expected [1 2]", got)
	}
	if again := r.Read(&ch); len(again) != 0 {
		t.Errorf("second Read = %v, expected nothing", again)
	}
}

func TestEventSentAfterListenerSurvivesOneFrame(t *testing.T) {
	var ch Channel[ping]
	var r Reader[ping]

	// Frame 1: the listener runs first, the producer afterwards.
	r.Read(&ch)
	ch.Send(ping{7})
	ch.Update()

	// Frame 2: the listener picks it up.
	got := r.Read(&ch)
	if len(got) != 1 || got[0].n != 7 {
		t.Fatalf("Read in the next frame = %v, expected [7]", got)
	}
	ch.Update()

	// Frame 3: dropped from the buffer.
	ch.Update()
	if ch.Len() != 0 {
		t.Errorf("buffer still holds %d events after two updates", ch.Len())
	}
	if ch.Sent() != 1 {
		t.Errorf("Sent() = %d, expected 1", ch.Sent())
	}
}

func TestReadersAreIndependent(t *testing.T) {
	var ch Channel[ping]
	var a, b Reader[ping]

	ch.Send(ping{1})
	if len(a.Read(&ch)) != 1 {
		t.Fatal("reader a should see the event")
	}
	if len(b.Read(&ch)) != 1 {
		t.Error("reader b has its own cursor and should see the event too")
	}
}

func TestTimer(t *testing.T) {
	tm := NewTimer(1.0)

	if tm.Tick(0.4) {
		t.Fatal("timer finished too early")
	}
	if tm.Remaining() < 0.59 || tm.Remaining() > 0.61 {
		t.Errorf("Remaining() = %v, expected about 0.6", tm.Remaining())
	}
	if !tm.Tick(0.6) || !tm.Finished() {
		t.Fatal("timer should finish at its duration")
	}
	if tm.Elapsed != 1.0 {
		t.Errorf("Elapsed = %v, expected it clamped to 1.0", tm.Elapsed)
	}

	tm.Reset()
	if tm.Elapsed != 0 || tm.Finished() {
		t.Error("Reset should return to exactly zero")
	}
}

func TestTimerAbsorbsFloatDrift(t *testing.T) {
	tm := NewTimer(3.0)
	for i := 0; i < 10; i++ {
		tm.Tick(0.3)
	}
	if !tm.Finished() {
		t.Errorf("ten 0.3 steps should finish a 3.0 timer, elapsed %v", tm.Elapsed)
	}
}
