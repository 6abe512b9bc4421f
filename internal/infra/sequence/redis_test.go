package sequence

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	domain "github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/domain/sequence/mocks"
)

type fakeIncrementer struct {
	keys   []string
	counts map[string]int64
	err    error
}

func (f *fakeIncrementer) Incr(_ context.Context, key string) *redis.IntCmd {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	if f.counts == nil {
		f.counts = map[string]int64{}
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeIncrementer) IncrBy(_ context.Context, key string, value int64) *redis.IntCmd {
	f.keys = append(f.keys, key)
	f.counts[key] += value
	return redis.NewIntResult(f.counts[key], nil)
}

type fixedFloor struct {
	top   int64
	calls int
}

func (f *fixedFloor) Floor(_ context.Context, _ uuid.UUID, _ domain.Kind) (int64, error) {
	f.calls++
	return f.top, nil
}

func TestRedisAllocator(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("counters per practitioner and kind", func(t *testing.T) {
		client := &fakeIncrementer{}
		a := NewRedisAllocator(client, nil)

		for want := int64(1); want <= 3; want++ {
			n, err := a.Next(ctx, owner, domain.KindCharge)
			if err != nil || n != want {
				t.Fatalf("expected %d, got %d (%v)", want, n, err)
			}
		}

		n, _ := a.Next(ctx, owner, domain.KindReceipt)
		if n != 1 {
			t.Fatalf("receipts must have their own counter, got %d", n)
		}

		other, _ := a.Next(ctx, uuid.New(), domain.KindCharge)
		if other != 1 {
			t.Fatalf("practitioners must not share counters, got %d", other)
		}

		if client.keys[0] != "ledger:seq:"+owner.String()+":charge" {
			t.Fatalf("unexpected key %q", client.keys[0])
		}
	})

	t.Run("client error", func(t *testing.T) {
		a := NewRedisAllocator(&fakeIncrementer{err: errors.New("connection refused")}, nil)

		if _, err := a.Next(ctx, owner, domain.KindCharge); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("lost counter resumes above stored numbers", func(t *testing.T) {
		client := &fakeIncrementer{}
		floor := &fixedFloor{top: 41}
		a := NewRedisAllocator(client, floor)

		n, err := a.Next(ctx, owner, domain.KindCharge)
		if err != nil || n != 42 {
			t.Fatalf("expected 42, got %d (%v)", n, err)
		}
		n, _ = a.Next(ctx, owner, domain.KindCharge)
		if n != 43 {
			t.Fatalf("expected 43, got %d", n)
		}
		if floor.calls != 1 {
			t.Fatalf("floor must be read only when the counter restarts, got %d calls", floor.calls)
		}
	})

	t.Run("empty history keeps 1", func(t *testing.T) {
		a := NewRedisAllocator(&fakeIncrementer{}, &fixedFloor{})

		n, err := a.Next(ctx, owner, domain.KindReceipt)
		if err != nil || n != 1 {
			t.Fatalf("expected 1, got %d (%v)", n, err)
		}
	})

	t.Run("floor error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		floor := mocks.NewMockFloor(ctrl)
		floor.EXPECT().Floor(gomock.Any(), owner, domain.KindCharge).Return(int64(0), errors.New("db down"))

		a := NewRedisAllocator(&fakeIncrementer{}, floor)

		if _, err := a.Next(ctx, owner, domain.KindCharge); err == nil {
			t.Fatal("expected error")
		}
	})
}
