// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/wait"
)

// Restarter bounces adapter links to force the driver to reinitialize.
// A failure on one adapter never stops the remaining ones.
type Restarter struct {
	log     logr.Logger
	ops     LinkOps
	dryRun  bool
	confirm ConfirmFunc

	settleInterval time.Duration
	settleTimeout  time.Duration
}

// NewRestarter returns a Restarter operating through the given link
// operations. With dryRun set, intended restarts are logged but not
// performed. A non-nil confirm is consulted before every restart.
func NewRestarter(log logr.Logger, ops LinkOps, dryRun bool, confirm ConfirmFunc) *Restarter {
	return &Restarter{
		log:            log,
		ops:            ops,
		dryRun:         dryRun,
		confirm:        confirm,
		settleInterval: time.Second,
		settleTimeout:  10 * time.Second,
	}
}

// RestartAll bounces every given adapter in order and returns how many
// links were actually restarted. Context cancellation stops the loop
// before the next adapter.
func (r *Restarter) RestartAll(ctx context.Context, adapters []Adapter) int {
	restarted := 0
	for _, adapter := range adapters {
		if ctx.Err() != nil {
			r.log.Info("Aborting link restarts", "reason", ctx.Err())
			break
		}
		if r.restart(ctx, adapter.Name) {
			restarted++
		}
	}
	return restarted
}

func (r *Restarter) restart(ctx context.Context, name string) bool {
	if r.dryRun {
		r.log.Info("Dry run, would restart link", "interface", name)
		return false
	}
	if r.confirm != nil && !r.confirm(fmt.Sprintf("restart link %s", name)) {
		r.log.Info("Restart declined, skipping", "interface", name)
		return false
	}

	if err := r.ops.SetDown(name); err != nil {
		r.log.Error(err, "Could not bring link down", "interface", name)
		return false
	}
	if err := r.ops.SetUp(name); err != nil {
		r.log.Error(err, "Could not bring link back up", "interface", name)
		return false
	}

	if err := r.waitForLinkUp(ctx, name); err != nil {
		// The connectivity probe afterwards is the real verdict, so a
		// slow link is logged and left alone.
		r.log.Info("Link did not report up in time", "interface", name, "error", err)
		return true
	}
	r.log.Info("Restarted link", "interface", name)
	return true
}

func (r *Restarter) waitForLinkUp(ctx context.Context, name string) error {
	return wait.PollUntilContextTimeout(ctx, r.settleInterval, r.settleTimeout, true, func(ctx context.Context) (done bool, err error) {
		state, err := r.ops.State(name)
		if err != nil {
			return false, nil
		}
		return state == LinkStateUp, nil
	})
}
