package evaluator

import (
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/interval"
	"github.com/lyraproj/sonicweave/parser"
)

type session struct {
	scope  dsl.Scope
	scale  *interval.Scale
	title  string
	logger dsl.Logger
}

// NewSession creates a session with an empty scale bound to dsl.ScaleName. The
// given logger receives warnings about values that cannot be handled.
func NewSession(logger dsl.Logger) dsl.Session {
	if logger == nil {
		logger = dsl.NewStdLogger()
	}
	s := &session{scope: NewScope(), scale: interval.NewScale(), logger: logger}
	s.scope.Set(dsl.ScaleName, s.scale)
	return s
}

func (s *session) Visit(statement parser.Statement) *dsl.Interrupt {
	return s.evaluator(s.scope).visit(statement)
}

func (s *session) NewExpressionScope() dsl.ExpressionEvaluator {
	return s.evaluator(s.scope.Derive())
}

func (s *session) evaluator(scope dsl.Scope) *evaluator {
	return &evaluator{s, scope}
}

func (s *session) HandleValue(value dsl.Value) {
	switch v := value.(type) {
	case nil:
	case *interval.Interval:
		s.scale.Append(v)
	case *interval.Scale:
		// The current scale itself is left as is
		if v != s.scale {
			s.scale.Append(v.Snapshot()...)
		}
	case interval.Color:
		if last, ok := s.scale.Last(); ok {
			s.scale.SetLast(last.WithColor(v))
		} else {
			dsl.Warning(s.logger, `color %s ignored, the scale is empty`, v)
		}
	case dsl.Text:
		if last, ok := s.scale.Last(); ok {
			s.scale.SetLast(last.WithLabel(string(v)))
		} else {
			s.SetTitle(string(v))
		}
	default:
		dsl.Warning(s.logger, `value of type %s ignored`, dsl.TypeName(v))
	}
}

func (s *session) Scope() dsl.Scope {
	return s.scope
}

func (s *session) Scale() *interval.Scale {
	return s.scale
}

func (s *session) Title() string {
	return s.title
}

func (s *session) SetTitle(title string) {
	s.title = title
}

func (s *session) Relative(iv *interval.Interval) *interval.Interval {
	bare := iv.Bare()
	if r, err := bare.Div(interval.Unison()); err == nil {
		return r
	}
	return bare
}

func (s *session) Logger() dsl.Logger {
	return s.logger
}
