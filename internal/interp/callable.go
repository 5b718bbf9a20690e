package interp

import (
	"time"

	"github.com/loxscript/golox/internal/ast"
)

// Callable is anything invocable from a Call expression: a user
// function, a bound method, a class constructor, or a native.
type Callable interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Function is a user-defined function or method. It captures its
// defining Environment by reference, which is what lets closures see
// later mutations of variables in their enclosing scope (spec.md §5).
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Type() string { return "FUNCTION" }
func (f *Function) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call pushes a fresh scope enclosed by the function's captured
// closure (not the caller's environment), binds parameters positionally,
// and executes the body. A returnSignal surfacing from the body becomes
// the call's result; otherwise the result is nil. An initializer always
// returns its bound `this` instead. spec.md §4.4.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.Declaration.Body, env)
	if rs, ok := asReturn(err); ok {
		if f.IsInitializer {
			this, _ := f.Closure.GetAt(0, "this")
			return this, nil
		}
		return rs.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		this, _ := f.Closure.GetAt(0, "this")
		return this, nil
	}
	return NilValue{}, nil
}

// Bind returns a copy of f whose closure additionally binds `this` to
// instance, so that reading a method off an instance (method binding,
// spec.md §4.4) yields a Callable that behaves correctly regardless of
// how it is later invoked.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Class is a callable whose invocation allocates a new Instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() string   { return "CLASS" }
func (c *Class) String() string { return c.Name }

// FindMethod searches c's own methods, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init` if the class declares one, else 0.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call allocates a new Instance and, if the class declares `init`,
// invokes it bound to that instance with the call's arguments.
func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a single object: a class pointer plus its own field
// table. Superclass field/method lookup walks Class.Superclass rather
// than an instance-level link, since every instance already carries
// its own full Class chain.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) Type() string   { return "INSTANCE" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads a field, then (if absent) a bound method, per spec.md
// §4.4's "Property access". Returns UndefinedPropertyError if neither
// exists anywhere in the superclass chain.
func (i *Instance) Get(name string, line int) (Value, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, &UndefinedPropertyError{Name: name, Line: line}
}

// NativeFunction wraps a host-implemented builtin, e.g. clock().
type NativeFunction struct {
	Name      string
	ArityFn   int
	Fn        func(args []Value) Value
}

func (n *NativeFunction) Type() string   { return "NATIVE_FUNCTION" }
func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Arity() int     { return n.ArityFn }
func (n *NativeFunction) Call(_ *Interpreter, args []Value) (Value, error) {
	return n.Fn(args), nil
}

// clockNative implements spec.md §4.4's sole native: seconds since the
// Unix epoch, arity 0.
func clockNative() *NativeFunction {
	return &NativeFunction{
		Name:    "clock",
		ArityFn: 0,
		Fn: func(_ []Value) Value {
			return NumberValue{Value: float64(time.Now().UnixNano()) / 1e9}
		},
	}
}
