package demo

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=demo

type Reporter interface {
	Report(Result)
}

// PrintReporter 和原来的 println 一样, 只打印两个引用是否相同
type PrintReporter struct {
	W io.Writer
}

func (p PrintReporter) Report(r Result) {
	if r.Err != nil {
		fmt.Fprintf(p.W, "%s: error: %v\n", r.Attack, r.Err)
		return
	}

	fmt.Fprintf(p.W, "%s: %t\n", r.Attack, r.Same)
}

type LogReporter struct {
	Log logrus.FieldLogger
}

func (l LogReporter) Report(r Result) {
	entry := l.Log.WithFields(logrus.Fields{
		"attack": r.Attack,
		"same":   r.Same,
	})

	if r.Err != nil {
		entry.WithError(r.Err).Warn(r.Detail)
		return
	}

	entry.Info(r.Detail)
}
