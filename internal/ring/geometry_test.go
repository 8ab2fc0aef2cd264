package ring_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/psyops/internal/assess"
	"github.com/san-kum/psyops/internal/ring"
	"github.com/san-kum/psyops/internal/viz"
)

const tol = 1e-9

func samePoint(a, b ring.Point) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

var _ = Describe("ColorBucket", func() {
	It("agrees with Interpret on every reachable total", func() {
		for total := assess.MinTotal; total <= assess.MaxTotal; total++ {
			Expect(ring.ColorBucket(float64(total))).To(Equal(assess.Interpret(total).Color), "total %d", total)
		}
	})

	It("truncates a fractional displayed value", func() {
		Expect(ring.ColorBucket(25.9)).To(Equal(assess.Green))
		Expect(ring.ColorBucket(26.0)).To(Equal(assess.Yellow))
	})

	It("is total on odd input", func() {
		Expect(ring.ColorBucket(math.NaN())).To(Equal(assess.Green))
		Expect(ring.ColorBucket(math.Inf(1))).To(Equal(assess.Red))
		Expect(ring.ColorBucket(-3)).To(Equal(assess.Green))
	})

	It("interprets odd input the same way it colours it", func() {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e300, -1e300, 75.99, 76} {
			Expect(ring.Band(v).Color).To(Equal(ring.ColorBucket(v)), "value %v", v)
		}
		Expect(ring.Band(math.NaN()).Level).To(Equal(assess.Low))
		Expect(ring.Band(1e300).Level).To(Equal(assess.Overwhelming))
		Expect(ring.Band(75.99).Level).To(Equal(assess.Strong))
	})
})

var _ = Describe("Progress", func() {
	It("clamps into the unit interval", func() {
		Expect(ring.Progress(-5, 100)).To(BeZero())
		Expect(ring.Progress(50, 100)).To(Equal(0.5))
		Expect(ring.Progress(250, 100)).To(Equal(1.0))
		Expect(ring.Progress(50, 0)).To(BeZero())
	})
})

var _ = Describe("Arc", func() {
	center := ring.Point{X: 10, Y: 10}
	top := ring.Point{X: 10, Y: 0}

	It("returns exactly the requested segment count", func() {
		for _, n := range []int{1, 7, 100} {
			Expect(ring.Arc(0.3, center, 10, n)).To(HaveLen(n))
		}
		Expect(ring.Arc(0.3, center, 10, 0)).To(HaveLen(ring.DefaultSegments))
	})

	It("collapses to the top point at zero progress", func() {
		for _, s := range ring.Arc(0, center, 10, 100) {
			Expect(samePoint(s.From, top)).To(BeTrue())
			Expect(samePoint(s.To, top)).To(BeTrue())
		}
	})

	It("closes the circle at full progress", func() {
		segs := ring.Arc(1, center, 10, 100)
		Expect(samePoint(segs[0].From, top)).To(BeTrue())
		Expect(samePoint(segs[len(segs)-1].To, segs[0].From)).To(BeTrue())
		for i := 1; i < len(segs); i++ {
			Expect(samePoint(segs[i].From, segs[i-1].To)).To(BeTrue())
		}
		for _, s := range segs {
			Expect(math.Hypot(s.From.X-center.X, s.From.Y-center.Y)).To(BeNumerically("~", 10, 1e-9))
		}
	})

	It("sweeps clockwise on screen", func() {
		quarter := ring.Arc(0.25, center, 10, 4)
		end := quarter[len(quarter)-1].To
		Expect(end.X).To(BeNumerically("~", 20, 1e-9))
		Expect(end.Y).To(BeNumerically("~", 10, 1e-9))
	})
})

var _ = Describe("Label", func() {
	It("rounds the displayed value", func() {
		Expect(ring.Label(59.6, 100)).To(Equal("60 / 100"))
		Expect(ring.Label(20, 100)).To(Equal("20 / 100"))
	})
})

var _ = Describe("Frame", func() {
	It("draws a full ring at the maximum and nothing on the arc at zero", func() {
		c := viz.NewCanvas(12, 6)
		g := ring.CanvasGeometry(c, 100)

		g.Frame(0).DrawArc(c)
		Expect(c.Lit()).To(BeZero())

		full := g.Frame(100)
		Expect(full.Color).To(Equal(assess.Red))
		Expect(full.Label).To(Equal("100 / 100"))
		full.DrawArc(c)
		Expect(c.Lit()).To(BeNumerically(">", 40))

		t := viz.NewCanvas(12, 6)
		full.DrawTrack(t)
		Expect(t.Lit()).To(BeNumerically(">", 0))
	})
})
