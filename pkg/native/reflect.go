package native

import (
	"reflect"

	"github.com/google/uuid"
)

type reflected struct {
	t reflect.Type
}

// FromReflect describes a Go type. The namespace is the package path, so
// predeclared types such as string have none. Go has no open generic types at
// run time, so the result is never a generic definition.
func FromReflect(t reflect.Type) Type {
	if t == nil {
		return nil
	}
	return reflected{t: t}
}

func (r reflected) Name() string {
	if name := r.t.Name(); name != "" {
		return name
	}
	return r.t.String()
}

func (r reflected) Namespace() string { return r.t.PkgPath() }

func (r reflected) FullName() string { return joinFullName(r.Namespace(), r.Name()) }

func (r reflected) GUID() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("go:"+r.FullName()))
}

func (r reflected) IsPrimitive() bool {
	switch r.t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

func (r reflected) IsValueType() bool {
	switch r.t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return false
	default:
		return true
	}
}

func (r reflected) IsGenericTypeDefinition() bool { return false }

func (r reflected) GenericArity() int { return 0 }

func (r reflected) String() string { return r.FullName() }
