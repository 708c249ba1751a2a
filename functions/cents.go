package functions

import (
	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/interval"
)

func init() {
	// cents(x) converts x to a cents measure. Whole octaves stay exact.
	dsl.NewFunction(`cents`, 1, 1,
		func(c dsl.Session, args []dsl.Value) (dsl.Value, error) {
			iv, err := dsl.IntervalArg(args, 0)
			if err != nil {
				return nil, err
			}
			cents, err := iv.TotalCents()
			if err != nil {
				return nil, err
			}
			dsl.Debug(c.Logger(), `%s is %f cents`, iv.ValueString(), cents)
			return interval.FromCents(cents), nil
		})
}
