package demo

import (
	"bytes"
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-go/design-pattern/singleton"
	"interview-go/internal/log"
)

func TestNewAttackUnknown(t *testing.T) {
	a, err := NewAttack("enum", log.Discard())
	assert.Nil(t, a)
	assert.EqualError(t, err, `unknown attack "enum"`)
}

func TestAttacks(t *testing.T) {
	tests := []struct {
		name     string
		same     bool
		rejected bool
	}{
		{"reflect", false, false},
		{"reflect-guarded", false, true},
		{"serialize-json", false, false},
		{"serialize-json-resolve", true, false},
		{"serialize-hessian", false, false},
		{"serialize-hessian-resolve", true, false},
		{"generic", true, false},
		{"supplier", true, false},
		{"race", true, false},
	}
	require.Len(t, tests, len(Names()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAttack(tt.name, log.Discard())
			require.NoError(t, err)
			assert.Equal(t, tt.name, a.Name())

			res := a.Run(context.Background())
			assert.Equal(t, tt.name, res.Attack)
			assert.Equal(t, tt.same, res.Same)

			if tt.rejected {
				var already *singleton.AlreadyConstructedError
				assert.True(t, errors.As(res.Err, &already))
				return
			}
			assert.NoError(t, res.Err)
		})
	}
}

func TestRaceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &raceAttack{workers: 4, logger: log.Discard()}
	res := a.Run(ctx)
	// 取消和 start 同时就绪时 select 随机选, 两种结果都合法
	if res.Err != nil {
		assert.ErrorIs(t, res.Err, context.Canceled)
		return
	}
	assert.True(t, res.Same)
}

func TestRunnerNotifiesReporters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generic, err := NewAttack("generic", log.Discard())
	require.NoError(t, err)
	supplier, err := NewAttack("supplier", log.Discard())
	require.NoError(t, err)

	rep := NewMockReporter(ctrl)
	gomock.InOrder(
		rep.EXPECT().Report(gomock.Any()).Do(func(r Result) {
			assert.Equal(t, "generic", r.Attack)
		}),
		rep.EXPECT().Report(gomock.Any()).Do(func(r Result) {
			assert.Equal(t, "supplier", r.Attack)
		}),
	)

	r := NewRunner(generic)
	r.Subscribe(rep)
	r.Run(context.Background())

	r.SetAttack(supplier)
	r.Run(context.Background())
}

func TestPrintReporter(t *testing.T) {
	var buf bytes.Buffer
	p := PrintReporter{W: &buf}

	p.Report(Result{Attack: "reflect", Same: false})
	p.Report(Result{Attack: "reflect-guarded", Err: errors.New("boom")})

	assert.Equal(t, "reflect: false\nreflect-guarded: error: boom\n", buf.String())
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	l := log.Discard()
	l.Out = &buf

	LogReporter{Log: l}.Report(Result{Attack: "race", Same: true, Detail: "64 workers, 1 constructions"})
	assert.Contains(t, buf.String(), "64 workers, 1 constructions")
	assert.Contains(t, buf.String(), "attack=race")
}
