// stripqueue.go - an above-the-core worker pool that partitions a VRAM
// surface into horizontal strips and dispatches draw commands across them
// concurrently. The core psxsw package stays single-threaded and
// synchronous; this package is optional scaffolding a caller can reach for
// when it wants to batch many independent draws without serializing them
// all through one goroutine.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package stripqueue

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/intuitionamiga/psxsw"
)

// Command is one draw operation a Queue can schedule. RowRange reports the
// inclusive VRAM row span the command's footprint touches, before any
// clipping; Draw performs the actual write, clipped to area.
type Command interface {
	RowRange() (top, bottom int32)
	Draw(v *psxsw.VRAM, area psxsw.DrawingArea)
}

// Config configures a Queue's strip partition.
type Config struct {
	// NumStrips is the number of horizontal bands the queue's area is
	// divided into. Values less than 1 are treated as 1.
	NumStrips int
}

// Queue partitions area's rows into Config.NumStrips disjoint horizontal
// bands and batches submitted commands by which band they fall into. A
// command confined to one band is queued; Flush spawns one errgroup
// goroutine per busy band and runs that band's queued commands, in
// submission order, concurrently with every other busy band. A command
// whose footprint crosses a band boundary forces a Flush first - draining
// every previously queued command - then runs by itself against the full
// area, after which new submissions resume being batched.
//
// A Queue is not safe for concurrent use by multiple goroutines; it is
// meant to be driven by one producer that wants its own draw calls
// parallelized, not to be a thread-safe sink for concurrent producers.
type Queue struct {
	v      *psxsw.VRAM
	area   psxsw.DrawingArea
	stripH int32
	n      int

	pending [][]Command
}

// New builds a Queue over v, restricted to area, split into cfg.NumStrips
// horizontal bands.
func New(v *psxsw.VRAM, area psxsw.DrawingArea, cfg Config) *Queue {
	n := cfg.NumStrips
	if n < 1 {
		n = 1
	}
	height := area.Bottom - area.Top + 1
	if height < 1 {
		height = 1
	}
	stripH := (height + int32(n) - 1) / int32(n)

	return &Queue{
		v:       v,
		area:    area,
		stripH:  stripH,
		n:       n,
		pending: make([][]Command, n),
	}
}

// stripIndex returns which band row falls into, clamped to a valid index
// even for a row outside area (the caller is responsible for not feeding
// one in, but a clamp is cheaper than a second bounds contract).
func (q *Queue) stripIndex(row int32) int {
	idx := int((row - q.area.Top) / q.stripH)
	if idx < 0 {
		idx = 0
	}
	if idx >= q.n {
		idx = q.n - 1
	}
	return idx
}

// stripArea returns the clip rectangle for band i.
func (q *Queue) stripArea(i int) psxsw.DrawingArea {
	top := q.area.Top + int32(i)*q.stripH
	bottom := top + q.stripH - 1
	if bottom > q.area.Bottom {
		bottom = q.area.Bottom
	}
	return psxsw.DrawingArea{Left: q.area.Left, Right: q.area.Right, Top: top, Bottom: bottom}
}

// Submit schedules cmd. It returns an error only if a barrier flush was
// required and the flush itself failed - band workers in this package
// never return a non-nil error, so in practice Submit cannot fail, but the
// return is kept so a future Command implementation with real failure
// modes (a scripted command that validates input, say) does not need a
// signature change.
func (q *Queue) Submit(cmd Command) error {
	top, bottom := cmd.RowRange()
	first := q.stripIndex(top)
	last := q.stripIndex(bottom)

	if first == last {
		q.pending[first] = append(q.pending[first], cmd)
		return nil
	}

	if err := q.Flush(); err != nil {
		return err
	}
	cmd.Draw(q.v, q.area)
	return nil
}

// Flush dispatches every pending command and waits for all bands to
// finish. Call it once after the last Submit to drain remaining work.
func (q *Queue) Flush() error {
	g, _ := errgroup.WithContext(context.Background())

	for i := 0; i < q.n; i++ {
		cmds := q.pending[i]
		if len(cmds) == 0 {
			continue
		}
		area := q.stripArea(i)
		q.pending[i] = nil

		g.Go(func() error {
			for _, cmd := range cmds {
				cmd.Draw(q.v, area)
			}
			return nil
		})
	}

	return g.Wait()
}
