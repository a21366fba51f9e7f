package tui

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

const pipeBuffer = 256

// Pipe is a progrock.Writer whose updates are read back in order by a
// Model. Writes after Close are discarded.
type Pipe struct {
	updates chan *progrock.StatusUpdate
	done    chan struct{}
	once    sync.Once
}

// NewPipe creates a new Pipe.
func NewPipe() *Pipe {
	return &Pipe{
		updates: make(chan *progrock.StatusUpdate, pipeBuffer),
		done:    make(chan struct{}),
	}
}

// WriteStatus queues an update. It blocks while the buffer is full.
func (p *Pipe) WriteStatus(update *progrock.StatusUpdate) error {
	select {
	case p.updates <- update:
	case <-p.done:
	}
	return nil
}

// Read returns the next update. Once the pipe is closed and drained it
// returns io.EOF.
func (p *Pipe) Read() (*progrock.StatusUpdate, error) {
	select {
	case update := <-p.updates:
		return update, nil
	case <-p.done:
		select {
		case update := <-p.updates:
			return update, nil
		default:
			return nil, io.EOF
		}
	}
}

// Close ends the stream. It is safe to call more than once.
func (p *Pipe) Close() error {
	p.once.Do(func() { close(p.done) })
	return nil
}
