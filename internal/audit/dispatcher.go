package audit

import (
	"log"

	"github.com/google/uuid"
)

type Event struct {
	PractitionerID uuid.UUID
	ActorID        *uuid.UUID
	Action         string
	Entity         string
	EntityID       *uuid.UUID
	Metadata       any
}

// Recorder grava um evento de auditoria.
type Recorder interface {
	Record(ev Event) error
}

type Dispatcher struct {
	recorder Recorder
	queue    chan Event
	done     chan struct{}
}

func NewDispatcher(recorder Recorder) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan Event, 100), // buffer seguro
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch nunca bloqueia. Dispatcher nil ignora o evento.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
	<-d.done
}
