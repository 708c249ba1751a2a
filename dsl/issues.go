package dsl

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/parser"
)

const (
	ArithmeticError       = `SW_ARITHMETIC_ERROR`
	EvaluationFailed      = `SW_EVALUATION_FAILED`
	FunctionFailed        = `SW_FUNCTION_FAILED`
	IllegalArgumentCount  = `SW_ILLEGAL_ARGUMENT_COUNT`
	IllegalArrayElement   = `SW_ILLEGAL_ARRAY_ELEMENT`
	IllegalAssignment     = `SW_ILLEGAL_ASSIGNMENT`
	IllegalBreak          = `SW_ILLEGAL_BREAK`
	IllegalColor          = `SW_ILLEGAL_COLOR`
	IllegalIndex          = `SW_ILLEGAL_INDEX`
	IllegalReturn         = `SW_ILLEGAL_RETURN`
	IndexOutOfRange       = `SW_INDEX_OUT_OF_RANGE`
	IOError               = `SW_IO_ERROR`
	MalformedInterval     = `SW_MALFORMED_INTERVAL`
	NotIndexable          = `SW_NOT_INDEXABLE`
	OperatorNotApplicable = `SW_OPERATOR_NOT_APPLICABLE`
	UnhandledExpression   = `SW_UNHANDLED_EXPRESSION`
	UnknownFunction       = `SW_UNKNOWN_FUNCTION`
	UnknownVariable       = `SW_UNKNOWN_VARIABLE`
)

func init() {
	issue.Hard(ArithmeticError, `%{message}`)

	issue.Hard(EvaluationFailed, `%{message}`)

	issue.Hard(FunctionFailed, `Error when calling %{name}(): %{message}`)

	issue.Hard(IllegalArgumentCount, `%{name}() expects %{expected} arguments, got %{actual}`)

	issue.Hard2(IllegalArrayElement, `An array can only contain intervals, got %{actual}`,
		issue.HF{`actual`: issue.A_an})

	issue.Hard(IllegalAssignment, `Cannot assign to the reserved name '%{name}'`)

	issue.Hard(IllegalBreak, `break from context where this is illegal`)

	issue.Hard(IllegalColor, `'%{color}' is not a valid color`)

	issue.Hard(IllegalIndex, `An index must be an integer, got '%{index}'`)

	issue.Hard(IllegalReturn, `return from context where this is illegal`)

	issue.Hard(IndexOutOfRange, `Index %{index} is out of range for a scale of size %{size}`)

	issue.Hard(IOError, `%{message}`)

	issue.Hard(MalformedInterval, `Interval %{interval} cannot be written as a scale degree: %{message}`)

	issue.Hard2(NotIndexable, `Cannot index %{value}`, issue.HF{`value`: issue.A_an})

	issue.Hard2(OperatorNotApplicable, `Operator '%{operator}' is not applicable to %{left}`,
		issue.HF{`left`: issue.A_an})

	issue.Hard(UnhandledExpression, `Evaluator cannot handle an expression of type %<expression>T`)

	issue.Hard(UnknownFunction, `Unknown function: '%{name}'`)

	issue.Hard(UnknownVariable, `Unknown variable: '%{name}'`)
}

// Error creates an issue.Reported with severity error for the given code
func Error(code issue.Code, location issue.Location, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, location)
}

// ErrorKind classifies the errors that a block evaluation can report
type ErrorKind int

const (
	EvaluationError ErrorKind = iota
	SyntaxError
	ControlFlowViolation
	ExternalError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return `syntax error`
	case ControlFlowViolation:
		return `control flow violation`
	case ExternalError:
		return `external error`
	default:
		return `evaluation error`
	}
}

// KindOf returns the kind of the given error. Errors that are not issued by the
// parser or the evaluator are external.
func KindOf(err error) ErrorKind {
	ri, ok := err.(issue.Reported)
	if !ok {
		return ExternalError
	}
	switch ri.Code() {
	case parser.ParseError:
		return SyntaxError
	case IllegalBreak, IllegalReturn:
		return ControlFlowViolation
	case IOError:
		return ExternalError
	default:
		return EvaluationError
	}
}
