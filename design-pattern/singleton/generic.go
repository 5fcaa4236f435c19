package singleton

// 泛型单例: 只存一个无类型的实例, 每个调用点按自己的类型参数拿到一个带类型的包装,
// 包装本身不是实例, 不会因为类型参数不同而多出实例。

type genericInstance struct {
	name string
}

var shared interface{} = &genericInstance{name: "generic"}

type Generic[T any] struct {
	instance interface{}
}

func GetGeneric[T any]() Generic[T] {
	return Generic[T]{instance: shared}
}

// Instance 底层共享的实例
func (g Generic[T]) Instance() interface{} {
	return g.instance
}

// Apply 恒等函数
func (g Generic[T]) Apply(v T) T {
	return v
}
