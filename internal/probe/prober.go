// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package probe verifies host connectivity with ICMP echo probes.
package probe

import (
	"context"
	"os"
	"time"

	"github.com/go-logr/logr"
	probing "github.com/prometheus-community/pro-bing"
)

// Prober sends ICMP echo requests to an ordered list of targets.
type Prober struct {
	log     logr.Logger
	timeout time.Duration

	ping func(ctx context.Context, target string) (bool, error)
}

// New returns a Prober whose individual probes time out after the
// given duration.
func New(log logr.Logger, timeout time.Duration) *Prober {
	p := &Prober{log: log, timeout: timeout}
	p.ping = p.pingOnce
	return p
}

// Any sends one echo request per target in order and reports whether
// any target answered. The first answer short-circuits the remaining
// targets. A transport error counts as a missed answer, not a failure
// of the probe round.
func (p *Prober) Any(ctx context.Context, targets []string) bool {
	for _, target := range targets {
		if ctx.Err() != nil {
			p.log.Info("Aborting connectivity probe", "reason", ctx.Err())
			return false
		}
		answered, err := p.ping(ctx, target)
		if err != nil {
			p.log.V(1).Info("Probe failed", "target", target, "error", err)
			continue
		}
		if answered {
			p.log.Info("Connectivity verified", "target", target)
			return true
		}
		p.log.V(1).Info("No answer", "target", target)
	}
	p.log.Info("No probe target answered", "targets", targets)
	return false
}

// pingOnce sends a single echo request. Raw ICMP sockets are used when
// running as root, unprivileged UDP echo otherwise.
func (p *Prober) pingOnce(ctx context.Context, target string) (bool, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return false, err
	}
	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(os.Geteuid() == 0)

	if err := pinger.RunWithContext(ctx); err != nil {
		return false, err
	}
	return pinger.Statistics().PacketsRecv > 0, nil
}
