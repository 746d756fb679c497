package nest

import (
	"fmt"
	"reflect"
)

// Injector is a small dependency container used to construct controllers.
// Values registered with Provide are singletons; ProvideFunc registers a
// lazy factory whose result is memoised on first use. Controllers are
// usually built with Construct, which resolves every factory argument
// from the container.
type Injector struct {
	singletons map[reflect.Type]reflect.Value
	providers  map[reflect.Type]reflect.Value // func(...) T
}

// NewInjector creates an empty injector.
func NewInjector() *Injector {
	return &Injector{
		singletons: map[reflect.Type]reflect.Value{},
		providers:  map[reflect.Type]reflect.Value{},
	}
}

// Provide registers value as a singleton under its concrete type.
func (in *Injector) Provide(value any) *Injector {
	in.singletons[reflect.TypeOf(value)] = reflect.ValueOf(value)
	return in
}

// ProvideAs registers value as a singleton under an interface type.
// ifacePtr must be a pointer to the interface, e.g. (*ItemStore)(nil).
func (in *Injector) ProvideAs(value any, ifacePtr any) error {
	ifaceType := reflect.TypeOf(ifacePtr)
	if ifaceType == nil || ifaceType.Kind() != reflect.Ptr || ifaceType.Elem().Kind() != reflect.Interface {
		return fmt.Errorf("nest: ProvideAs expects a pointer to an interface, got %T", ifacePtr)
	}
	iface := ifaceType.Elem()
	val := reflect.ValueOf(value)
	if !val.Type().Implements(iface) {
		return fmt.Errorf("nest: %v does not implement %v", val.Type(), iface)
	}
	in.singletons[iface] = val
	return nil
}

// ProvideFunc registers fn as a lazy provider for its first return type.
// fn may take arguments; they are resolved from the container when the
// provider runs.
func (in *Injector) ProvideFunc(fn any) error {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.Type().NumOut() == 0 {
		return fmt.Errorf("nest: ProvideFunc expects a function with a return value, got %T", fn)
	}
	in.providers[v.Type().Out(0)] = v
	return nil
}

// Resolve returns the value registered for t, running and memoising its
// provider when needed.
func (in *Injector) Resolve(t reflect.Type) (reflect.Value, error) {
	if v, ok := in.singletons[t]; ok {
		return v, nil
	}
	if p, ok := in.providers[t]; ok {
		args := make([]reflect.Value, p.Type().NumIn())
		for i := range args {
			v, err := in.Resolve(p.Type().In(i))
			if err != nil {
				return v, err
			}
			args[i] = v
		}
		out := p.Call(args)
		if len(out) > 1 {
			if err, ok := out[1].Interface().(error); ok && err != nil {
				return reflect.Value{}, err
			}
		}
		v := out[0]
		in.singletons[t] = v // memoise
		return v, nil
	}
	return reflect.Value{}, fmt.Errorf("no provider for %v", t)
}

// Construct invokes factory with arguments resolved from the container
// and returns its first result. A trailing error result is propagated.
func (in *Injector) Construct(factory any) (any, error) {
	fv := reflect.ValueOf(factory)
	if fv.Kind() != reflect.Func || fv.Type().NumOut() == 0 {
		return nil, fmt.Errorf("nest: Construct expects a function with a return value, got %T", factory)
	}
	args := make([]reflect.Value, fv.Type().NumIn())
	for i := range args {
		v, err := in.Resolve(fv.Type().In(i))
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	out := fv.Call(args)
	if len(out) > 1 {
		if err, ok := out[1].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	return out[0].Interface(), nil
}

// Inject fills the exported fields of target tagged `inject:""` with
// values resolved from the container. target must be a pointer to a
// struct.
func (in *Injector) Inject(target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("nest: Inject expects a pointer to a struct, got %T", target)
	}
	elem := v.Elem()
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if _, tagged := field.Tag.Lookup("inject"); !tagged {
			continue
		}
		if !elem.Field(i).CanSet() {
			return fmt.Errorf("nest: cannot inject unexported field %s.%s", t.Name(), field.Name)
		}
		dep, err := in.Resolve(field.Type)
		if err != nil {
			return fmt.Errorf("nest: field %s.%s: %w", t.Name(), field.Name, err)
		}
		elem.Field(i).Set(dep)
	}
	return nil
}
