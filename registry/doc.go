// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package registry keeps named, sharded collections of type-erased
// containers.
//
// A [Registry] maps names to containers whose concrete signatures have
// been erased to the any→any convention. Typed access goes through the
// package-level generics [Register] and [Invoke], which gate on the
// registered signature; [Registry.Call] is the erased path. Names hash
// to shards (xxhash), so access to unrelated names does not contend on
// one lock. Each entry carries a unique id, and registration and
// removal are logged through the configured zap logger.
//
//	r := registry.New(registry.WithLogger(logger))
//	err := registry.Register(r, "double", kall.New[int, int](double))
//	out, err := registry.Invoke[int, int](r, "double", 21)
//
// Registry state is guarded per shard and safe for concurrent use; the
// stored callables themselves follow the container contract — one
// container instance is invoked sequentially unless the callable is
// itself safe to call concurrently.
package registry
