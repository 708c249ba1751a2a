package functions

import (
	"fmt"

	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/interval"
)

func init() {
	dsl.NewFunction(`harmonics`, 2, 2,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			root, err := dsl.IntArg(args, 0)
			if err != nil {
				return nil, err
			}
			top, err := dsl.IntArg(args, 1)
			if err != nil {
				return nil, err
			}
			if root < 1 || top <= root {
				return nil, fmt.Errorf(`expected 0 < root < end, got %d and %d`, root, top)
			}
			scale := interval.NewScale()
			for h := root + 1; h <= top; h++ {
				iv, _ := interval.FromFraction(int64(h), int64(root))
				scale.Append(iv)
			}
			return scale, nil
		})
}
