package codec

import (
	"reflect"

	hessian "github.com/apache/dubbo-go-hessian2"
	"github.com/pkg/errors"
)

// Hessian 和 Java 互通的二进制格式, 需要先注册 POJO
type Hessian struct{}

func NewHessian(pojos ...hessian.POJO) *Hessian {
	for _, p := range pojos {
		hessian.RegisterPOJO(p)
	}

	return &Hessian{}
}

func (h *Hessian) Marshal(v interface{}) ([]byte, error) {
	e := hessian.NewEncoder()
	if err := e.Encode(v); err != nil {
		return nil, err
	}

	return e.Buffer(), nil
}

func (h *Hessian) Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return errors.New("hessian: empty payload")
	}

	decoded, err := hessian.NewDecoder(data).Decode()
	if err != nil {
		return err
	}

	return assign(v, decoded)
}

// assign 把解码出来的对象拷到 v 指向的位置, 解码结果可能是 *T 也可能是 T
func assign(dst, decoded interface{}) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return errors.Errorf("hessian: non-nil pointer required, got %T", dst)
	}

	sv := reflect.ValueOf(decoded)
	if !sv.IsValid() {
		return errors.Errorf("hessian: decoded nil into %T", dst)
	}

	switch {
	case sv.Type() == dv.Type():
		if sv.IsNil() {
			return errors.Errorf("hessian: decoded nil into %T", dst)
		}
		dv.Elem().Set(sv.Elem())
	case sv.Type() == dv.Elem().Type():
		dv.Elem().Set(sv)
	default:
		return errors.Errorf("hessian: cannot decode %T into %T", decoded, dst)
	}

	return nil
}
