// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package stick

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultThenBeforeAndAfterResolve(t *testing.T) {
	r := newResult()
	var got []bool
	r.Then(func(v bool) { got = append(got, v) })
	r.resolve(true)
	r.resolve(false)
	r.Then(func(v bool) { got = append(got, v) })

	assert.Equal(t, []bool{true, true}, got)
	select {
	case <-r.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestResultWait(t *testing.T) {
	r := newResult()
	go r.resolve(true)
	v, err := r.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, v)

	pending := newResult()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = pending.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
