package triangle_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trigon/triangle"
)

// ExampleNew solves an obtuse triangle from one side and two angles.
// The third angle follows as π − 1.0 − 0.5.
func ExampleNew() {
	tr, err := triangle.New(
		[3]triangle.Measure{triangle.Of(1), triangle.Unknown, triangle.Unknown},
		[3]triangle.Measure{triangle.Of(1.0), triangle.Of(0.5), triangle.Unknown},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := tr.Angle(2)
	r, _ := tr.Inradius()
	R, _ := tr.Circumradius()
	fmt.Printf("angle[2]=%.4f inradius=%.4f circumradius=%.4f %s\n", c, r, R, tr.AngleKind())
	// Output:
	// angle[2]=1.6416 inradius=0.2063 circumradius=0.5942 obtuse
}

// ExampleFromSides reads the classic 3-4-5 right triangle.
func ExampleFromSides() {
	tr, err := triangle.FromSides([3]float64{3, 4, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := tr.Perimeter()
	a, _ := tr.Area()
	h, _ := tr.Height(2)
	m, _ := tr.Median(2)
	c, _ := tr.Angle(2)
	fmt.Printf("perimeter=%.1f area=%.1f height[2]=%.1f median[2]=%.1f angle[2]=%.1f°\n",
		p, a, h, m, triangle.Degrees(c))
	// Output:
	// perimeter=12.0 area=6.0 height[2]=2.4 median[2]=2.5 angle[2]=90.0°
}

// ExampleBlank computes on read and stores only on Cache*.
func ExampleBlank() {
	tr, _ := triangle.Blank([3]float64{1, 1.5, 1.2763593077169064})

	b, _ := tr.Angle(1)        // computed, not stored
	r, _ := tr.CacheInradius() // stores perimeter, area, inradius
	fmt.Printf("angle[1]=%.2f inradius=%.2f\n", b, r)
	// Output:
	// angle[1]=1.42 inradius=0.33
}

// ExampleSolve reduces two sides and the angle between them to three sides.
func ExampleSolve() {
	sides, err := triangle.Solve(
		[3]triangle.Measure{triangle.Of(1), triangle.Of(1.5), triangle.Unknown},
		[3]triangle.Measure{triangle.Unknown, triangle.Unknown, triangle.Of(1.0)},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f %.4f %.4f\n", sides[0], sides[1], sides[2])
	// Output:
	// 1.0000 1.5000 1.2764
}

// ExampleClassify shows the refused side-side-angle shape.
func ExampleClassify() {
	sides := [3]triangle.Measure{triangle.Of(1), triangle.Of(1.5), triangle.Unknown}
	angles := [3]triangle.Measure{triangle.Of(1.0), triangle.Unknown, triangle.Unknown}

	fmt.Println(triangle.Classify(sides, angles))
	_, err := triangle.Solve(sides, angles)
	fmt.Println(errors.Is(err, triangle.ErrAmbiguous))
	// Output:
	// two sides + non-included angle
	// true
}
