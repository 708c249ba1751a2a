package functions

import (
	"github.com/lyraproj/sonicweave/dsl"
)

func init() {
	for _, level := range dsl.LogLevels {
		lvl := level
		dsl.NewFunction(string(lvl), 0, -1,
			func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
				c.Logger().Log(lvl, args...)
				return nil, nil
			})
	}
}
