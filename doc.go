// Copyright 2026 Recast ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package recast rewrites wrapped storage values so the innermost storage is
// converted by a pluggable policy while the wrapper structure around it is
// rebuilt unchanged.
//
// # Overview
//
// Numeric code wraps its storage: a transpose here, a sub-view there, a
// reinterpret cast on the way. When the underlying data has to move, say from
// host memory to a GPU buffer, the wrappers must survive the move. This
// package provides:
//   - Structural rewriting of a closed catalog of thirteen view kinds
//   - Pluggable conversion policies (see backend/webgpu for a real one)
//   - Type-level descriptors and a matcher for dispatch without values
//
// # Basic Usage
//
//	import (
//	    "github.com/recast-ml/recast"
//	    "github.com/recast-ml/recast/backend/webgpu"
//	    "github.com/recast-ml/recast/storage"
//	    "github.com/recast-ml/recast/view"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    host, _ := storage.FromSlice(storage.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
//	    w := view.NewTranspose(host)
//
//	    moved, err := recast.Rewrite(gpu.ToDevice(), w)
//	    // moved is still a *view.Transpose; its storage now lives on the GPU.
//	}
//
// # Rewriting
//
// Rewrite walks a value structurally. A view from the catalog is rebuilt
// around its converted storage; anything else is handed to the policy as a
// leaf. Policies convert leaves and nothing else, so a policy composes with
// every wrapper kind without knowing about any of them.
//
// # Static Dispatch
//
// DescOf derives a Desc, the type-level structure of a value: wrapper kind,
// element type, rank, and the wrapped structure below. Matches checks a Desc
// against a Key without touching data, so dispatch tables can be built from
// descriptor literals alone. Wrapper composition is recognized exactly one
// level deep; see Matches for the admitted combinations.
package recast
