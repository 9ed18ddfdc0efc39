package growth_test

import (
	"fmt"

	"github.com/katalvlaran/growthgrid/growth"
)

// ExampleGenerate lays out a 4×6 tray with 17 crops, 25% of them in alert.
// floor(17×25/100) = 4 alert cells follow the 13 healthy ones.
func ExampleGenerate() {
	m := growth.Generate(4, 6, 17, growth.WithAlertPercent(25))
	fmt.Println(m)
	fmt.Printf("%+v\n", m.Counts())

	// Output:
	// ######
	// ######
	// #!!!!.
	// ......
	// {Healthy:13 Alert:4 Empty:7}
}

// ExampleAllocate shows the partition for an over-capacity tray: the
// occupied count is clamped to the 4 available slots.
func ExampleAllocate() {
	a := growth.Allocate(2, 2, 10, growth.DefaultAlertPercent)
	fmt.Printf("%+v\n", a)

	// Output:
	// {Total:4 Filled:4 Alert:0 Healthy:4 Empty:0}
}
