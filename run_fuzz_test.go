package smartcalc_test

import (
	"testing"

	"smartcalc"
)

func FuzzRun(f *testing.F) {
	seeds := []string{
		"5 + 3",
		"a = 5",
		"a",
		"(2 + 3) * 4",
		"5 - - 3",
		"1 / 0",
		"2 ^ 10",
		"1 +",
		"(1 + 2",
		"= = =",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		e := smartcalc.NewEngine(smartcalc.NewStore())
		// Any input may fail, but none may panic.
		e.Run(s)
	})
}
