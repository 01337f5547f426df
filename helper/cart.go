package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"leevienna_shop/model"

	"github.com/redis/go-redis/v9"
)

// CartStorage is the persistence behind a cart. The production implementation
// is Redis; tests swap in an in-memory fake.
type CartStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ErrCartNotFound reports an absent snapshot, which loads as an empty cart.
var ErrCartNotFound = errors.New("cart not found")

type redisCartStorage struct {
	client *redis.Client
}

func NewRedisCartStorage(client *redis.Client) CartStorage {
	return &redisCartStorage{client: client}
}

func (s *redisCartStorage) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	return b, err
}

func (s *redisCartStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisCartStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// CartStore holds the cart lines of every customer, persisting a versioned
// snapshot after each mutation. Lines merge on
// (productType, productId, productCode, customization).
type CartStore struct {
	storage CartStorage
}

func NewCartStore(storage CartStorage) *CartStore {
	return &CartStore{storage: storage}
}

func cartKey(userId uint) string {
	return fmt.Sprintf("cart:%d", userId)
}

// Load restores a customer's cart. A missing, corrupt, or unknown-version
// snapshot loads as an empty cart; corruption is logged, never surfaced.
func (s *CartStore) Load(ctx context.Context, userId uint) []model.CartItem {
	raw, err := s.storage.Get(ctx, cartKey(userId))
	if err != nil {
		if !errors.Is(err, ErrCartNotFound) {
			log.Printf("failed to load cart for user %d: %v", userId, err)
		}
		return []model.CartItem{}
	}

	var snapshot model.CartSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		log.Printf("corrupt cart snapshot for user %d, starting empty: %v", userId, err)
		return []model.CartItem{}
	}
	if snapshot.Version != model.CartSnapshotVersion {
		log.Printf("unknown cart snapshot version %d for user %d, starting empty", snapshot.Version, userId)
		return []model.CartItem{}
	}
	return snapshot.Items
}

func (s *CartStore) persist(ctx context.Context, userId uint, items []model.CartItem) error {
	if len(items) == 0 {
		return s.storage.Delete(ctx, cartKey(userId))
	}
	raw, err := json.Marshal(model.CartSnapshot{Version: model.CartSnapshotVersion, Items: items})
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, cartKey(userId), raw)
}

func sameLine(a model.CartItem, b model.AddCartItemInput) bool {
	return a.ProductType == b.ProductType &&
		equalPtr(a.ProductId, b.ProductId) &&
		equalPtr(a.ProductCode, b.ProductCode) &&
		equalPtr(a.Customization, b.Customization)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// AddItem merges into an existing line or appends a new one with a fresh id.
func (s *CartStore) AddItem(ctx context.Context, userId uint, input model.AddCartItemInput) ([]model.CartItem, error) {
	items := s.Load(ctx, userId)

	merged := false
	for i := range items {
		if sameLine(items[i], input) {
			items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}

	if !merged {
		items = append(items, model.CartItem{
			Id:            fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Intn(100000)),
			ProductType:   input.ProductType,
			ProductId:     input.ProductId,
			ProductCode:   input.ProductCode,
			ProductTitle:  input.ProductTitle,
			ProductImage:  input.ProductImage,
			Price:         input.Price,
			Quantity:      input.Quantity,
			Customization: input.Customization,
		})
	}

	if err := s.persist(ctx, userId, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem drops the line with the given id; removing an absent id is a
// no-op.
func (s *CartStore) RemoveItem(ctx context.Context, userId uint, itemId string) ([]model.CartItem, error) {
	items := s.Load(ctx, userId)

	kept := items[:0]
	for _, item := range items {
		if item.Id != itemId {
			kept = append(kept, item)
		}
	}

	if err := s.persist(ctx, userId, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// SetQuantity overwrites a line's quantity; quantity <= 0 removes the line.
func (s *CartStore) SetQuantity(ctx context.Context, userId uint, itemId string, quantity int) ([]model.CartItem, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userId, itemId)
	}

	items := s.Load(ctx, userId)
	for i := range items {
		if items[i].Id == itemId {
			items[i].Quantity = quantity
			break
		}
	}

	if err := s.persist(ctx, userId, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear empties the cart and removes the persisted snapshot.
func (s *CartStore) Clear(ctx context.Context, userId uint) error {
	return s.storage.Delete(ctx, cartKey(userId))
}

func CartTotal(items []model.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func CartCount(items []model.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
