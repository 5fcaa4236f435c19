package demo

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"interview-go/design-pattern/singleton"
)

// raceAttack 多个 goroutine 同时第一次访问懒汉单例, 构造只能发生一次
type raceAttack struct {
	workers int
	logger  logrus.FieldLogger
}

func (a *raceAttack) Name() string {
	return "race"
}

func (a *raceAttack) Run(ctx context.Context) Result {
	calls := atomic.NewInt32(0)
	p := singleton.NewLazy(func() *target { return &target{id: calls.Inc()} },
		singleton.WithName("race"),
		singleton.WithLogger(a.logger))

	got := make([]*target, a.workers)
	start := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < a.workers; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-start:
			}

			got[i] = p.Get()
			return nil
		})
	}
	close(start)

	if err := g.Wait(); err != nil {
		return Result{Attack: a.Name(), Err: err}
	}

	same := calls.Load() == 1
	for _, v := range got {
		if v != got[0] {
			same = false
		}
	}

	return Result{
		Attack: a.Name(),
		Same:   same,
		Detail: fmt.Sprintf("%d workers, %d constructions", a.workers, calls.Load()),
	}
}
