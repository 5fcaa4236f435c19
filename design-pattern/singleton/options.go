package singleton

import (
	"github.com/sirupsen/logrus"

	"interview-go/internal/log"
)

type Option func(*options)

type options struct {
	name   string
	guard  bool
	logger logrus.FieldLogger
}

func loadOptions(opts ...Option) *options {
	o := &options{
		name:  "singleton",
		guard: true,
	}

	for _, option := range opts {
		option(o)
	}

	if o.logger == nil {
		o.logger = log.Default()
	}

	return o
}

// WithName 日志和错误里使用的实例名
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithGuard 是否开启构造守卫, 默认开启
func WithGuard(enabled bool) Option {
	return func(o *options) {
		o.guard = enabled
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
