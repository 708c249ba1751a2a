package functions

import (
	"fmt"

	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/interval"
)

func init() {
	dsl.NewFunction(`edo`, 1, 1,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			n, err := dsl.IntArg(args, 0)
			if err != nil {
				return nil, err
			}
			if n < 1 {
				return nil, fmt.Errorf(`number of divisions must be positive, got %d`, n)
			}
			scale := interval.NewScale()
			for i := 1; i <= n; i++ {
				step, _ := interval.FromSteps(int64(i), int64(n))
				scale.Append(step)
			}
			return scale, nil
		})
}
