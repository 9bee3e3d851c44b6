// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classview

import (
	"cogentcore.org/classview/base/keylist"
)

// Registry maps caller-assigned view names to live views, for
// resolving a name to the view that owns it (e.g., to refresh a
// dependent view from a callback). It is owned by the application
// context and passed by reference to wherever lookups are needed;
// there is no process-wide registry.
//
// Registration order is preserved and is the iteration order of
// [Registry.Names]. Not safe for concurrent use; like the views it
// holds, a registry belongs to the event-loop thread.
type Registry struct {
	views keylist.List[string, *ClassView]
}

// NewRegistry returns a new empty [Registry]. The zero value is also
// usable directly.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers the given view under its name. A view already
// registered under the same name is replaced, which makes the old
// view's controls stale.
func (rg *Registry) Add(cv *ClassView) {
	rg.views.Set(cv.Name, cv)
}

// Lookup returns the view registered under the given name. A missing
// name returns (nil, false); this is an expected transient condition
// (e.g., a control outliving a rebuild under a reused name), and
// callers must treat it as a no-op, not an error.
func (rg *Registry) Lookup(name string) (*ClassView, bool) {
	return rg.views.AtTry(name)
}

// Remove unregisters the view with the given name, returning whether
// it was registered. Call it on form teardown.
func (rg *Registry) Remove(name string) bool {
	return rg.views.DeleteByKey(name)
}

// Names returns the registered view names in registration order.
func (rg *Registry) Names() []string {
	return rg.views.Keys
}

// Len returns the number of registered views.
func (rg *Registry) Len() int {
	return rg.views.Len()
}
