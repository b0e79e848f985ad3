// File: control/notify.go
// Author: solarobot <solarobot@gmail.com>
//
// Ordered asynchronous delivery of reload notifications. Events are
// queued and drained by at most one goroutine, so listeners observe
// updates in publication order.

package control

import (
	"sync"

	"github.com/eapache/queue"
)

type notifier struct {
	mu       sync.Mutex
	q        *queue.Queue
	draining bool
}

func newNotifier() *notifier {
	return &notifier{q: queue.New()}
}

// publish enqueues fn and starts a drainer unless one is running.
func (n *notifier) publish(fn func()) {
	n.mu.Lock()
	n.q.Add(fn)
	if n.draining {
		n.mu.Unlock()
		return
	}
	n.draining = true
	n.mu.Unlock()
	go n.drain()
}

func (n *notifier) drain() {
	for {
		n.mu.Lock()
		if n.q.Length() == 0 {
			n.draining = false
			n.mu.Unlock()
			return
		}
		fn := n.q.Remove().(func())
		n.mu.Unlock()
		fn()
	}
}
