// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/context.go
// Summary: context.Context accessor for the enclosing StickToBottom widget.

package scroll

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoStickContext is returned when no mounted StickToBottom is reachable.
var ErrNoStickContext = errors.New("scroll: no StickToBottom in context")

type stickKey struct{}

// NewContext returns a copy of ctx carrying w.
func NewContext(ctx context.Context, w *StickToBottom) context.Context {
	return context.WithValue(ctx, stickKey{}, w)
}

// FromContext returns the StickToBottom stored by NewContext. Widgets that
// have been unmounted are reported as missing.
func FromContext(ctx context.Context) (*StickToBottom, error) {
	w, ok := ctx.Value(stickKey{}).(*StickToBottom)
	if !ok || w == nil {
		return nil, ErrNoStickContext
	}
	if !w.Mounted() {
		return nil, fmt.Errorf("scroll: widget is not mounted: %w", ErrNoStickContext)
	}
	return w, nil
}

// MustFromContext is like FromContext but panics when used outside a
// mounted StickToBottom.
func MustFromContext(ctx context.Context) *StickToBottom {
	w, err := FromContext(ctx)
	if err != nil {
		panic(fmt.Sprintf("scroll.MustFromContext must be used within a mounted StickToBottom: %v", err))
	}
	return w
}
