package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ===============================
// Clock
// ===============================

// Clock é a fonte de "agora" dos use cases.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// System devolve o relógio real no fuso tz (ou no padrão, se inválido).
func System(tz string) Clock {
	return systemClock{loc: Location(tz)}
}

func (s systemClock) Now() time.Time {
	return time.Now().In(s.loc)
}

// FixedClock é um relógio parado, ajustável nos testes.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func Fixed(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

func (f *FixedClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *FixedClock) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}

func (f *FixedClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
