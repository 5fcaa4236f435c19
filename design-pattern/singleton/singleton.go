package singleton

import "fmt"

// Singleton 是饿汉模式, 包初始化时创建, Go 保证包初始化不会并发执行。
// 私有构造函数在 Go 里就是未导出的 newSingleton, 但同包代码和结构体字面量都能绕过它,
// 所以守卫放在构造函数内部。

const className = "interview.singleton.Singleton"

type Singleton struct {
	Name string `json:"name" hessian:"name"`
}

var (
	guard    = NewGuard("Singleton", true)
	instance = newSingleton()
)

func newSingleton() *Singleton {
	guard.MustEnter()

	return &Singleton{Name: "singleton"}
}

func GetInstance() *Singleton {
	return instance
}

// ReadResolve 反序列化之后用规范实例替换新建出来的对象
func (s *Singleton) ReadResolve() *Singleton {
	return GetInstance()
}

func (s *Singleton) JavaClassName() string {
	return className
}

func (s *Singleton) String() string {
	return fmt.Sprintf("Singleton(%s)@%p", s.Name, s)
}

// Use 接收一个获取实例的函数, 而不是实例本身
func Use(supplier func() *Singleton) string {
	return supplier().String()
}
