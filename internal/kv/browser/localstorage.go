//go:build js && wasm

package browser

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"github.com/dmitrijs2005/skillverse/internal/kv"
)

// Store wraps window.localStorage. Values are stored as strings; the
// records written by the store are JSON text, so no encoding is applied.
type Store struct {
	ls js.Value
}

var _ kv.Store = (*Store)(nil)

// Open binds to the page's localStorage.
func Open() (*Store, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return nil, errors.New("localStorage is not available")
	}
	return &Store{ls: ls}, nil
}

func (s *Store) call(method string, args ...any) (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.%s: %v", method, r)
		}
	}()
	return s.ls.Call(method, args...), nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.call("getItem", key)
	if err != nil {
		return nil, err
	}
	if v.IsNull() {
		return nil, nil
	}
	return []byte(v.String()), nil
}

// Set fails when the quota is exceeded.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.call("setItem", key, string(value))
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.call("removeItem", key)
	return err
}

func (s *Store) List(ctx context.Context) (map[string][]byte, error) {
	n := s.ls.Get("length").Int()
	out := make(map[string][]byte, n)
	for i := 0; i < n; i++ {
		k, err := s.call("key", i)
		if err != nil {
			return nil, err
		}
		if k.IsNull() {
			continue
		}
		v, err := s.Get(ctx, k.String())
		if err != nil {
			return nil, err
		}
		out[k.String()] = v
	}
	return out, nil
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.call("clear")
	return err
}

// Atomic runs fn directly; the page runs a single thread.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, r kv.Repository) error) error {
	return fn(ctx, s)
}

func (s *Store) Close() error { return nil }
