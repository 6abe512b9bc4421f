package sequence

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/depastori/clinica-psi/internal/domain/sequence"
)

// Incrementer é o pedaço do cliente redis que o contador usa.
type Incrementer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	IncrBy(ctx context.Context, key string, value int64) *redis.IntCmd
}

// RedisAllocator usa INCR, atômico no servidor. Roda fora da transação do
// banco: um rollback deixa lacuna na numeração, nunca repetição.
//
// Se a chave some (flush, troca de instância) o INCR volta a 1. Quem recebe
// o 1 soma o floor do banco antes de usar o valor, então o contador retoma
// acima do último número gravado em vez de colidir até esgotar as tentativas.
type RedisAllocator struct {
	client Incrementer
	floor  domain.Floor
	prefix string
}

var _ domain.Allocator = (*RedisAllocator)(nil)

// NewRedisAllocator: floor nil desliga a retomada.
func NewRedisAllocator(client Incrementer, floor domain.Floor) *RedisAllocator {
	return &RedisAllocator{client: client, floor: floor, prefix: "ledger:seq"}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (a *RedisAllocator) Next(
	ctx context.Context,
	practitionerID uuid.UUID,
	kind domain.Kind,
) (int64, error) {

	key := a.key(practitionerID, kind)

	n, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	if n != 1 || a.floor == nil {
		return n, nil
	}

	top, err := a.floor.Floor(ctx, practitionerID, kind)
	if err != nil {
		return 0, fmt.Errorf("sequence floor: %w", err)
	}
	if top == 0 {
		return n, nil
	}

	n, err = a.client.IncrBy(ctx, key, top).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incrby: %w", err)
	}
	log.Printf("[sequence] %s reseeded above %d", key, top)
	return n, nil
}

func (a *RedisAllocator) key(practitionerID uuid.UUID, kind domain.Kind) string {
	return fmt.Sprintf("%s:%s:%s", a.prefix, practitionerID, kind)
}
