package functions

import (
	"github.com/lyraproj/sonicweave/dsl"
)

func init() {
	dsl.NewFunction(`clear`, 0, 0,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			c.Scale().Clear()
			return nil, nil
		})
}
