package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/paddle-duel/parameter"
)

// signalCommand wraps a command and signals a wait group once applied,
// so tests can wait for the worker deterministically
type signalCommand struct {
	inner Command
	wg    *sync.WaitGroup
}

func (c signalCommand) Apply(gs *GameState) {
	c.inner.Apply(gs)
	c.wg.Done()
}

// TestQueueFIFO verifies commands come out in insertion order
func TestQueueFIFO(t *testing.T) {
	q := NewCommandQueue()

	q.Enqueue(MovePaddleUpCommand{Player: 1})
	q.Enqueue(MovePaddleDownCommand{Player: 2})
	q.Enqueue(PauseCommand{})

	if got := q.Dequeue(); got != (MovePaddleUpCommand{Player: 1}) {
		t.Errorf("Expected first command MovePaddleUp(1), got %#v", got)
	}
	if got := q.Dequeue(); got != (MovePaddleDownCommand{Player: 2}) {
		t.Errorf("Expected second command MovePaddleDown(2), got %#v", got)
	}
	if got := q.Dequeue(); got != (PauseCommand{}) {
		t.Errorf("Expected third command Pause, got %#v", got)
	}
	if n := q.Len(); n != 0 {
		t.Errorf("Expected empty queue, %d pending", n)
	}
}

// TestDequeueBlocksUntilEnqueue verifies the consumer waits for work
func TestDequeueBlocksUntilEnqueue(t *testing.T) {
	q := NewCommandQueue()
	got := make(chan Command, 1)

	go func() {
		got <- q.Dequeue()
	}()

	select {
	case cmd := <-got:
		t.Fatalf("Expected Dequeue to block on empty queue, got %#v", cmd)
	case <-time.After(20 * time.Millisecond):
	}

	q.Enqueue(PauseCommand{})

	select {
	case cmd := <-got:
		if cmd != (PauseCommand{}) {
			t.Errorf("Expected Pause, got %#v", cmd)
		}
	case <-time.After(time.Second):
		t.Fatal("Dequeue did not wake after Enqueue")
	}
}

// TestConcurrentProducers verifies no command is lost when many
// goroutines enqueue at once
func TestConcurrentProducers(t *testing.T) {
	q := NewCommandQueue()
	producers, perProducer := 8, 50

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Enqueue(MovePaddleUpCommand{Player: 1})
			}
		}()
	}
	wg.Wait()

	if n := q.Len(); n != producers*perProducer {
		t.Errorf("Expected %d pending commands, got %d", producers*perProducer, n)
	}
}

// TestWorkerPauseParity verifies the serialization property: N pause
// toggles from concurrent producers leave the flag at initial XOR (N%2),
// with no lost or duplicated toggles
func TestWorkerPauseParity(t *testing.T) {
	gs, _ := newTestState()
	q := NewCommandQueue()
	go q.RunWorker(gs)

	producers, perProducer := 5, 5 // 25 toggles, odd
	var applied sync.WaitGroup
	applied.Add(producers * perProducer)

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Enqueue(signalCommand{inner: PauseCommand{}, wg: &applied})
			}
		}()
	}
	wg.Wait()
	applied.Wait()

	if !gs.Paused() {
		t.Error("Expected paused after an odd number of toggles")
	}
	if n := q.Len(); n != 0 {
		t.Errorf("Expected drained queue, %d pending", n)
	}
}

// TestWorkerAppliesInOrder verifies the worker preserves FIFO semantics
// for order-sensitive command sequences
func TestWorkerAppliesInOrder(t *testing.T) {
	gs, _ := newTestState()
	q := NewCommandQueue()
	go q.RunWorker(gs)

	var applied sync.WaitGroup
	applied.Add(3)

	// Up, then reset, then up again: only the last up survives the reset
	q.Enqueue(signalCommand{inner: MovePaddleUpCommand{Player: 1}, wg: &applied})
	q.Enqueue(signalCommand{inner: ResetCommand{}, wg: &applied})
	q.Enqueue(signalCommand{inner: MovePaddleUpCommand{Player: 1}, wg: &applied})
	applied.Wait()

	center := parameter.FieldHeight/2 - parameter.PaddleHeight/2
	if snap := gs.Snapshot(); snap.Paddle1Y != center-1 {
		t.Errorf("Expected paddle 1 at %d after ordered replay, got %d", center-1, snap.Paddle1Y)
	}
}
