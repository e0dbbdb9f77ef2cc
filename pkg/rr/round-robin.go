package rr

import (
	"sync/atomic"
)

// RoundRobin hands out targets in rotation. Safe for concurrent use.
type RoundRobin interface {
	Next() (string, bool)
	Len() int
}

type rr struct {
	targets []string
	index   atomic.Uint32
}

func New(targets []string) *rr {
	return &rr{targets: targets}
}

func (r *rr) Next() (string, bool) {
	if len(r.targets) == 0 {
		return "", false
	}

	n := r.index.Add(1)
	return r.targets[(int(n)-1)%len(r.targets)], true
}

func (r *rr) Len() int {
	return len(r.targets)
}
