package interp

import (
	"fmt"
	"io"

	"github.com/loxscript/golox/internal/ast"
	"github.com/loxscript/golox/internal/lexer"
)

// Interpreter walks a resolved Program, evaluating expressions and
// executing statements against a lexically-scoped environment chain.
// Grounded on the teacher's Evaluator (internal/interp/evaluator), with
// DWScript's type-system plumbing and semantic-analysis hooks dropped:
// golox has no static types to check, only the resolver's depth
// side-table (set via SetLocals before Interpret/EvaluateExpr runs).
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int
	output      io.Writer
}

// NewInterpreter creates an Interpreter that prints via output and
// seeds the global scope with the native functions spec.md §4.4 names.
func NewInterpreter(output io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", clockNative())
	return &Interpreter{Globals: globals, environment: globals, output: output}
}

// SetLocals installs the resolver's depth side-table. Must be called
// before Interpret or EvaluateExpr for a program containing any local
// variable, this, or super use.
func (i *Interpreter) SetLocals(locals map[ast.Expr]int) {
	i.locals = locals
}

// SetOutput redirects where `print` writes, mirroring the teacher's
// Evaluator.SetOutput.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.output = w
}

// Interpret executes every statement in program in order.
func (i *Interpreter) Interpret(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateExpr evaluates a single expression, used by the `evaluate`
// command.
func (i *Interpreter) EvaluateExpr(expr ast.Expr) (Value, error) {
	return i.evaluate(expr)
}

// --- statements ---

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err
	case *ast.PrintStmt:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.output, v.String())
		return nil
	case *ast.VarStmt:
		value := Value(NilValue{})
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(i.environment))
	case *ast.IfStmt:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil
	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.FunctionStmt:
		fn := &Function{Declaration: s, Closure: i.environment}
		i.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.ReturnStmt:
		value := Value(NilValue{})
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}
	case *ast.ClassStmt:
		return i.executeClass(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// executeBlock runs stmts against env, restoring the interpreter's
// previous environment on every exit path (normal, error, or return).
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return &SuperclassMustBeAClassError{Line: s.Superclass.Name.Line}
		}
		superclass = sc
	}

	i.environment.Define(s.Name.Lexeme, NilValue{})

	classEnv := i.environment
	if superclass != nil {
		classEnv = NewEnclosedEnvironment(i.environment)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Declaration:   m,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	i.environment.Assign(s.Name.Lexeme, class)
	return nil
}

// --- expressions ---

func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil
	case *ast.Variable:
		return i.lookupVariable(e.Name, e)
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.This:
		return i.lookupVariable(e.Keyword, e)
	case *ast.Super:
		return i.evalSuper(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return NilValue{}
	case bool:
		return BooleanValue{Value: val}
	case float64:
		return NumberValue{Value: val}
	case string:
		return StringValue{Value: val}
	default:
		return NilValue{}
	}
}

// lookupVariable resolves tok's depth via i.locals (keyed by the AST
// node identity, not the name) and reads from that scope, falling back
// to the global scope when the resolver left the use unannotated
// (spec.md §4.3: "Globals return None").
func (i *Interpreter) lookupVariable(tok lexer.Token, node ast.Expr) (Value, error) {
	if depth, ok := i.locals[node]; ok {
		v, _ := i.environment.GetAt(depth, tok.Lexeme)
		return v, nil
	}
	if v, ok := i.Globals.Get(tok.Lexeme); ok {
		return v, nil
	}
	return nil, &UndefinedVariableError{Name: tok.Lexeme, Line: tok.Line}
}

func (i *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e]; ok {
		i.environment.AssignAt(depth, e.Name.Lexeme, value)
		return value, nil
	}
	if i.Globals.Assign(e.Name.Lexeme, value) {
		return value, nil
	}
	return nil, &UndefinedVariableError{Name: e.Name.Lexeme, Line: e.Name.Line}
}

func (i *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	// spec.md §4.4: "or" short-circuits on a truthy left, "and" on a
	// falsey left; otherwise evaluate and return the right operand.
	if e.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(NumberValue)
		if !ok {
			return nil, &UnaryOperandError{Want: "number", Line: e.Operator.Line}
		}
		return NumberValue{Value: -n.Value}, nil
	case lexer.BANG:
		return BooleanValue{Value: !isTruthy(right)}, nil
	default:
		panic("interp: unhandled unary operator " + e.Operator.Lexeme)
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	line := e.Operator.Line

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(NumberValue); ok {
			if rn, ok := right.(NumberValue); ok {
				return NumberValue{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(StringValue); ok {
			if rs, ok := right.(StringValue); ok {
				return StringValue{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, &BinaryOperandError{Want: "two numbers or two strings", Line: line}
	case lexer.MINUS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &BinaryOperandError{Want: "numbers", Line: line}
		}
		return NumberValue{Value: ln - rn}, nil
	case lexer.STAR:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &BinaryOperandError{Want: "numbers", Line: line}
		}
		return NumberValue{Value: ln * rn}, nil
	case lexer.SLASH:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &BinaryOperandError{Want: "numbers", Line: line}
		}
		// IEEE-754 division by zero yields inf/nan, not an error (spec.md §4.4).
		return NumberValue{Value: ln / rn}, nil
	case lexer.GREATER:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &BinaryOperandError{Want: "numbers", Line: line}
		}
		return BooleanValue{Value: ln > rn}, nil
	case lexer.GREATER_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &BinaryOperandError{Want: "numbers", Line: line}
		}
		return BooleanValue{Value: ln >= rn}, nil
	case lexer.LESS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &BinaryOperandError{Want: "numbers", Line: line}
		}
		return BooleanValue{Value: ln < rn}, nil
	case lexer.LESS_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, &BinaryOperandError{Want: "numbers", Line: line}
		}
		return BooleanValue{Value: ln <= rn}, nil
	case lexer.EQUAL_EQUAL:
		return BooleanValue{Value: valuesEqual(left, right)}, nil
	case lexer.BANG_EQUAL:
		return BooleanValue{Value: !valuesEqual(left, right)}, nil
	default:
		panic("interp: unhandled binary operator " + e.Operator.Lexeme)
	}
}

func bothNumbers(left, right Value) (float64, float64, bool) {
	ln, ok := left.(NumberValue)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(NumberValue)
	if !ok {
		return 0, 0, false
	}
	return ln.Value, rn.Value, true
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, &NonCallableError{Line: e.Paren.Line}
	}
	if len(args) != fn.Arity() {
		return nil, &ArityMismatchError{Expected: fn.Arity(), Got: len(args), Line: e.Paren.Line}
	}
	return fn.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) (Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, &NonInstanceAccessError{Line: e.Name.Line}
	}
	return instance.Get(e.Name.Lexeme, e.Name.Line)
}

func (i *Interpreter) evalSet(e *ast.Set) (Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, &NonInstanceAccessError{Write: true, Line: e.Name.Line}
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Fields[e.Name.Lexeme] = value
	return value, nil
}

// evalSuper resolves `super.method` using the receiver bound by the
// enclosing method (`this`) and a method lookup starting one level up
// the superclass chain, per spec.md §4.4.
func (i *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := i.locals[e]
	superVal, _ := i.environment.GetAt(distance, "super")
	superclass := superVal.(*Class)

	thisVal, _ := i.environment.GetAt(distance-1, "this")
	instance := thisVal.(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, &UndefinedPropertyError{Name: e.Method.Lexeme, Line: e.Method.Line}
	}
	return method.Bind(instance), nil
}
