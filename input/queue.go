package input

import "github.com/gammazero/deque"

// Queue buffers events between polling and the screen transition. Events
// come out in the order they were pushed.
type Queue struct {
	events deque.Deque
}

func NewQueue() *Queue {
	return &Queue{}
}

func (queue *Queue) Push(event Event) {
	queue.events.PushBack(event)
}

func (queue *Queue) Len() int {
	return queue.events.Len()
}

// Drain removes and returns every buffered event
func (queue *Queue) Drain() []Event {
	if queue.events.Len() == 0 {
		return nil
	}

	events := make([]Event, 0, queue.events.Len())
	for queue.events.Len() > 0 {
		events = append(events, queue.events.PopFront().(Event))
	}
	return events
}
