package redis

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/beautydex/internal/db"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
)

// FindByID returns the hash fields of one product.
func (s *Store) FindByID(ctx context.Context, id string) (map[string]string, error) {
	cmd := s.b().Hgetall().Key(s.productKey(id)).Build()
	m, err := s.do(ctx, cmd).AsStrMap()
	if err != nil {
		return nil, &db.Error{Op: db.OpHGetAll, Err: err}
	}
	if len(m) == 0 {
		return nil, db.ErrKeyNotFound
	}
	if _, ok := m[product.FieldID]; !ok {
		m[product.FieldID] = id
	}
	return m, nil
}

// Put replaces the product hash keyed by its product_id field.
// DEL and HSET run in one MULTI so fields absent from a new row do not survive.
func (s *Store) Put(ctx context.Context, fields map[string]string) error {
	id := fields[product.FieldID]
	if id == "" {
		return fmt.Errorf("%s is required", product.FieldID)
	}
	key := s.productKey(id)
	hset := s.b().Hset().Key(key).FieldValue()
	for k, v := range fields {
		hset = hset.FieldValue(k, v)
	}

	results := s.client.DoMulti(ctx,
		s.b().Multi().Build(),
		s.b().Del().Key(key).Build(),
		hset.Build(),
		s.b().Exec().Build(),
	)
	for _, r := range results {
		if err := r.Error(); err != nil {
			return &db.Error{Op: db.OpHSet, Err: err}
		}
	}
	replies, err := results[len(results)-1].ToArray()
	if err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	for i := range replies {
		if err := replies[i].Error(); err != nil {
			return &db.Error{Op: db.OpHSet, Err: err}
		}
	}
	return nil
}
