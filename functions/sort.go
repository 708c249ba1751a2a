package functions

import (
	"github.com/lyraproj/sonicweave/dsl"
)

func init() {
	dsl.NewFunction(`sort`, 0, 0,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			return nil, c.Scale().Sort()
		})
}
