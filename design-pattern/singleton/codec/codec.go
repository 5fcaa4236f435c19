package codec

import (
	"github.com/pkg/errors"
)

// 序列化攻击: 反序列化总是按结构新建一个对象, 字段一样但已经不是原来那个实例了。
// 防御是在解码之后加一步 read-resolve, 丢掉新建的对象, 换成规范实例。

// Marshaler 底层编码格式
type Marshaler interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// Resolver 实现了 ReadResolve 的类型在解码后会被替换
type Resolver[S any] interface {
	ReadResolve() *S
}

type Codec[S any] struct {
	m          Marshaler
	resolve    func(*S) *S
	structural bool
}

type Option[S any] func(*Codec[S])

// WithResolve 给没有 ReadResolve 方法的类型指定替换函数
func WithResolve[S any](fn func(*S) *S) Option[S] {
	return func(c *Codec[S]) {
		c.resolve = fn
	}
}

// Structural 只做结构解码, 不做替换
func Structural[S any]() Option[S] {
	return func(c *Codec[S]) {
		c.structural = true
	}
}

func New[S any](m Marshaler, opts ...Option[S]) *Codec[S] {
	c := &Codec[S]{m: m}

	for _, option := range opts {
		option(c)
	}

	return c
}

func (c *Codec[S]) Encode(v *S) ([]byte, error) {
	if v == nil {
		return nil, errors.New("codec: encode nil value")
	}

	b, err := c.m.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "codec: encode %T", v)
	}

	return b, nil
}

func (c *Codec[S]) Decode(data []byte) (*S, error) {
	v := new(S)
	if err := c.m.Unmarshal(data, v); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if c.structural {
		return v, nil
	}

	if c.resolve != nil {
		return c.resolve(v), nil
	}

	if r, ok := interface{}(v).(Resolver[S]); ok {
		return r.ReadResolve(), nil
	}

	return v, nil
}

// DecodeError 数据格式不对, 原样返回给调用方
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "codec: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
