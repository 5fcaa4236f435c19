package singleton

import (
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"interview-go/internal/log"
)

// 饿汉模式: NewEager 创建时就构造实例, 之后的读取不需要任何同步
// 懒汉模式: NewLazy 第一次 Get 时构造, 双重检查加锁, 只有未初始化的路径才需要拿锁

// Provider 持有唯一实例
type Provider[T any] struct {
	ctor  func() T
	guard *Guard
	log   *logrus.Entry

	mu    sync.Mutex
	value atomic.Value // *box[T]
}

type box[T any] struct {
	v T
}

func newProvider[T any](ctor func() T, opts ...Option) *Provider[T] {
	o := loadOptions(opts...)

	return &Provider[T]{
		ctor:  ctor,
		guard: NewGuard(o.name, o.guard),
		log:   log.Prefixed(o.logger, o.name),
	}
}

func NewEager[T any](ctor func() T, opts ...Option) *Provider[T] {
	p := newProvider(ctor, opts...)
	p.value.Store(&box[T]{v: p.build()})

	return p
}

func NewLazy[T any](ctor func() T, opts ...Option) *Provider[T] {
	return newProvider(ctor, opts...)
}

// Get 返回唯一实例
func (p *Provider[T]) Get() T {
	if b, ok := p.value.Load().(*box[T]); ok {
		return b.v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if b, ok := p.value.Load().(*box[T]); ok {
		return b.v
	}

	v := p.build()
	p.value.Store(&box[T]{v: v})

	return v
}

// Supplier 把 Get 作为值传出去
func (p *Provider[T]) Supplier() func() T {
	return p.Get
}

// Construct 绕过 Provider 直接构造, 相当于用反射调用私有构造函数。
// 守卫开启时, 除第一次以外都会 panic(*AlreadyConstructedError)
func (p *Provider[T]) Construct() T {
	p.log.Warn("privileged construction requested")

	return p.build()
}

// Constructions 构造次数, 包括被守卫拒绝的那些
func (p *Provider[T]) Constructions() int32 {
	return p.guard.Count()
}

func (p *Provider[T]) Guarded() bool {
	return p.guard.Enabled()
}

func (p *Provider[T]) build() T {
	if err := p.guard.Enter(); err != nil {
		p.log.WithError(err).Error("construction rejected")
		panic(err)
	}

	v := p.ctor()
	p.log.WithFields(logrus.Fields{
		"kind":          p.guard.Kind(),
		"constructions": p.guard.Count(),
	}).Debug("instance constructed")

	return v
}
