package singleton

import "fmt"

// AlreadyConstructedError 第二次构造时抛出, 表示单例约束已经被破坏, 不是可以恢复的错误
type AlreadyConstructedError struct {
	Kind  string
	Count int32
}

func (e *AlreadyConstructedError) Error() string {
	return fmt.Sprintf("singleton: %s instance already exists (construction #%d)", e.Kind, e.Count)
}
