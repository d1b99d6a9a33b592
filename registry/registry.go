// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"code.hybscloud.com/kall"
)

var (
	// ErrRegistered is returned when registering a name that is taken.
	ErrRegistered = errors.New("registry: name already registered")
	// ErrNotRegistered is returned for lookups of unknown names.
	ErrNotRegistered = errors.New("registry: name not registered")
	// ErrSignature is returned when the requested argument or result
	// type does not match the registered signature.
	ErrSignature = errors.New("registry: signature mismatch")
	// ErrEmpty is returned when registering an empty container.
	ErrEmpty = errors.New("registry: empty container")
)

// entry is one registered container, erased to the any→any calling
// convention, plus the signature needed to gate typed access and a
// unique id for log correlation.
type entry struct {
	id  string
	fn  kall.Func[any, any]
	arg reflect.Type
	res reflect.Type
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// Registry is a named, sharded collection of type-erased containers.
// Each name maps to one container; names hash to shards so concurrent
// access to unrelated names does not contend on one lock.
//
// The registry holds a handle to the same stored callable the caller
// registered; register a Clone when the registry must not observe later
// state changes.
type Registry struct {
	logger *zap.Logger
	shards []shard
}

// New creates an empty registry. See [WithShards] and [WithLogger].
func New(opts ...Option) *Registry {
	cfg := newConfig(opts)
	r := &Registry{
		logger: cfg.logger,
		shards: make([]shard, cfg.shards),
	}
	for i := range r.shards {
		r.shards[i].entries = make(map[string]entry)
	}
	return r
}

func (r *Registry) shard(name string) *shard {
	return &r.shards[xxhash.Sum64String(name)%uint64(len(r.shards))]
}

// Register stores a typed container under name. The container must be
// engaged; the name must be free. Register is a package-level generic
// because methods cannot introduce type parameters.
func Register[R, A any](r *Registry, name string, fn kall.Func[R, A]) error {
	if !fn.Valid() {
		return fmt.Errorf("%w: %q", ErrEmpty, name)
	}
	e := entry{
		id:  uuid.New().String(),
		fn:  kall.New(eraseCall(fn)),
		arg: reflect.TypeFor[A](),
		res: reflect.TypeFor[R](),
	}
	s := r.shard(name)
	s.mu.Lock()
	if _, taken := s.entries[name]; taken {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrRegistered, name)
	}
	s.entries[name] = e
	s.mu.Unlock()
	r.logger.Debug("container registered",
		zap.String("name", name),
		zap.String("id", e.id),
		zap.Stringer("arg", e.arg),
		zap.Stringer("result", e.res),
	)
	return nil
}

// eraseCall adapts a typed container to the erased calling convention.
// A nil argument calls with the zero A, mirroring the typed zero value.
func eraseCall[R, A any](fn kall.Func[R, A]) func(any) any {
	return func(v any) any {
		if v == nil {
			var zero A
			return fn.Call(zero)
		}
		return fn.Call(v.(A))
	}
}

// Invoke calls the container registered under name with arg. The
// requested signature must be exactly the registered one; otherwise
// [ErrSignature] is returned. Invoke is a package-level generic because
// methods cannot introduce type parameters.
func Invoke[R, A any](r *Registry, name string, arg A) (R, error) {
	var zero R
	s := r.shard(name)
	s.mu.RLock()
	e, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	if reflect.TypeFor[A]() != e.arg || reflect.TypeFor[R]() != e.res {
		return zero, fmt.Errorf("%w: %q takes %s and returns %s",
			ErrSignature, name, e.arg, e.res)
	}
	out, _ := e.fn.Call(arg).(R)
	return out, nil
}

// Call invokes by name through the erased convention: the argument must
// be assignable to the registered argument type, and the result is
// returned as produced. A nil arg is allowed when the registered
// argument type can be nil.
func (r *Registry) Call(name string, arg any) (any, error) {
	s := r.shard(name)
	s.mu.RLock()
	e, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	if at := reflect.TypeOf(arg); at != nil {
		if !at.AssignableTo(e.arg) {
			return nil, fmt.Errorf("%w: %q takes %s, got %s",
				ErrSignature, name, e.arg, at)
		}
		if at != e.arg {
			// Assignable but not identical, e.g. an unnamed composite
			// for a named registered type: rebox as the registered type
			// before it meets the typed calling convention.
			rv := reflect.New(e.arg).Elem()
			rv.Set(reflect.ValueOf(arg))
			arg = rv.Interface()
		}
	} else if !nilAssignable(e.arg) {
		return nil, fmt.Errorf("%w: %q takes %s, got nil",
			ErrSignature, name, e.arg)
	}
	return e.fn.Call(arg), nil
}

func nilAssignable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// Deregister removes the container registered under name and reports
// whether a container was removed.
func (r *Registry) Deregister(name string) bool {
	s := r.shard(name)
	s.mu.Lock()
	e, ok := s.entries[name]
	if ok {
		delete(s.entries, name)
	}
	s.mu.Unlock()
	if ok {
		r.logger.Debug("container deregistered",
			zap.String("name", name),
			zap.String("id", e.id),
		)
	}
	return ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	s := r.shard(name)
	s.mu.RLock()
	_, ok := s.entries[name]
	s.mu.RUnlock()
	return ok
}

// Len returns the number of registered containers.
func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	var names []string
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.RLock()
		for name := range s.entries {
			names = append(names, name)
		}
		s.mu.RUnlock()
	}
	sort.Strings(names)
	return names
}
