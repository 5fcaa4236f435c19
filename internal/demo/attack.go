package demo

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"interview-go/design-pattern/singleton"
	"interview-go/design-pattern/singleton/codec"
)

// 简单工厂: 按名字创建攻击演示, 新增演示需要在 NewAttack 里加 case

// Result 一次演示的结果, Same 表示两个引用是否是同一个实例
type Result struct {
	Attack string
	Same   bool
	Detail string
	Err    error
}

type Attack interface {
	Name() string
	Run(ctx context.Context) Result
}

var names = []string{
	"reflect",
	"reflect-guarded",
	"serialize-json",
	"serialize-json-resolve",
	"serialize-hessian",
	"serialize-hessian-resolve",
	"generic",
	"supplier",
	"race",
}

// Names 所有可用的演示
func Names() []string {
	out := append([]string(nil), names...)
	sort.Strings(out)

	return out
}

func NewAttack(name string, logger logrus.FieldLogger) (Attack, error) {
	switch name {
	case "reflect":
		return &reflectAttack{name: name, guard: false, logger: logger}, nil
	case "reflect-guarded":
		return &reflectAttack{name: name, guard: true, logger: logger}, nil
	case "serialize-json":
		return &serializeAttack{name: name, m: codec.JSON}, nil
	case "serialize-json-resolve":
		return &serializeAttack{name: name, m: codec.JSON, resolve: true}, nil
	case "serialize-hessian":
		return &serializeAttack{name: name, m: codec.NewHessian(&singleton.Singleton{})}, nil
	case "serialize-hessian-resolve":
		return &serializeAttack{name: name, m: codec.NewHessian(&singleton.Singleton{}), resolve: true}, nil
	case "generic":
		return genericAttack{}, nil
	case "supplier":
		return supplierAttack{}, nil
	case "race":
		return &raceAttack{workers: 64, logger: logger}, nil
	default:
		return nil, errors.Errorf("unknown attack %q", name)
	}
}

type target struct {
	id int32
}

func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.Errorf("%v", r)
		}
	}()
	fn()

	return nil
}

// reflectAttack 先拿到规范实例, 再绕过 Provider 直接构造第二个
type reflectAttack struct {
	name   string
	guard  bool
	logger logrus.FieldLogger
}

func (a *reflectAttack) Name() string {
	return a.name
}

func (a *reflectAttack) Run(ctx context.Context) Result {
	ids := atomic.NewInt32(0)
	p := singleton.NewEager(func() *target { return &target{id: ids.Inc()} },
		singleton.WithName(a.name),
		singleton.WithGuard(a.guard),
		singleton.WithLogger(a.logger))

	canonical := p.Get()

	var forged *target
	if err := catch(func() { forged = p.Construct() }); err != nil {
		return Result{Attack: a.name, Detail: "construction rejected", Err: err}
	}

	return Result{
		Attack: a.name,
		Same:   forged == canonical,
		Detail: fmt.Sprintf("%d constructions", p.Constructions()),
	}
}

// serializeAttack 编码规范实例再解码回来
type serializeAttack struct {
	name    string
	m       codec.Marshaler
	resolve bool
}

func (a *serializeAttack) Name() string {
	return a.name
}

func (a *serializeAttack) Run(ctx context.Context) Result {
	var opts []codec.Option[singleton.Singleton]
	if !a.resolve {
		opts = append(opts, codec.Structural[singleton.Singleton]())
	}
	c := codec.New[singleton.Singleton](a.m, opts...)

	before := singleton.GetInstance()
	b, err := c.Encode(before)
	if err != nil {
		return Result{Attack: a.name, Err: err}
	}

	after, err := c.Decode(b)
	if err != nil {
		return Result{Attack: a.name, Err: err}
	}

	return Result{
		Attack: a.name,
		Same:   before == after,
		Detail: fmt.Sprintf("%d bytes, %s -> %s", len(b), before, after),
	}
}

type genericAttack struct{}

func (genericAttack) Name() string {
	return "generic"
}

func (genericAttack) Run(ctx context.Context) Result {
	s := singleton.GetGeneric[string]()
	n := singleton.GetGeneric[int]()

	return Result{
		Attack: "generic",
		Same:   s.Instance() == n.Instance(),
		Detail: fmt.Sprintf("%T / %T", s, n),
	}
}

type supplierAttack struct{}

func (supplierAttack) Name() string {
	return "supplier"
}

func (supplierAttack) Run(ctx context.Context) Result {
	result := singleton.Use(singleton.GetInstance)

	return Result{
		Attack: "supplier",
		Same:   result == singleton.GetInstance().String(),
		Detail: "result = " + result,
	}
}
