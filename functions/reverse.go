package functions

import (
	"github.com/lyraproj/sonicweave/dsl"
)

func init() {
	dsl.NewFunction(`reverse`, 0, 0,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			c.Scale().Reverse()
			return nil, nil
		})
}
