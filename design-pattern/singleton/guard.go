package singleton

import (
	"go.uber.org/atomic"
)

// Guard 构造守卫
// 私有构造函数挡不住反射这类绕过访问控制的构造方式, 所以计数必须放在构造逻辑内部:
// 每次构造都先 Enter, 第二次起直接失败。
// 注意顺序: 守卫只能拒绝之后的构造, 所以规范实例必须最先构造。
type Guard struct {
	kind    string
	enabled bool
	count   *atomic.Int32
}

func NewGuard(kind string, enabled bool) *Guard {
	return &Guard{
		kind:    kind,
		enabled: enabled,
		count:   atomic.NewInt32(0),
	}
}

// Enter 记录一次构造; 关闭守卫时只计数不拦截
func (g *Guard) Enter() error {
	n := g.count.Inc()
	if n > 1 && g.enabled {
		return &AlreadyConstructedError{Kind: g.kind, Count: n}
	}

	return nil
}

// MustEnter 同 Enter, 但失败时直接 panic
func (g *Guard) MustEnter() {
	if err := g.Enter(); err != nil {
		panic(err)
	}
}

func (g *Guard) Count() int32 {
	return g.count.Load()
}

func (g *Guard) Enabled() bool {
	return g.enabled
}

func (g *Guard) Kind() string {
	return g.kind
}
