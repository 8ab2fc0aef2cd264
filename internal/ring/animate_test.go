package ring_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/psyops/internal/ring"
)

var _ = Describe("Tick", func() {
	It("strictly closes the distance until it snaps, then holds", func() {
		animated, target := 0.0, 100.0
		prev := math.Abs(animated - target)
		frames := 0
		for {
			next, settled := ring.Tick(animated, target, ring.DefaultSmoothing)
			d := math.Abs(next - target)
			Expect(d).To(BeNumerically("<", prev))
			animated, prev = next, d
			frames++
			Expect(frames).To(BeNumerically("<", 1000))
			if settled {
				break
			}
		}
		Expect(animated).To(Equal(target))

		for i := 0; i < 3; i++ {
			next, settled := ring.Tick(animated, target, ring.DefaultSmoothing)
			Expect(settled).To(BeTrue())
			Expect(next).To(Equal(target))
		}
	})

	It("moves a fifth of the way with the default smoothing", func() {
		next, settled := ring.Tick(0, 100, 5)
		Expect(settled).To(BeFalse())
		Expect(next).To(BeNumerically("~", 20, 1e-9))
	})

	It("snaps when already within the threshold", func() {
		next, settled := ring.Tick(59.95, 60, 5)
		Expect(settled).To(BeTrue())
		Expect(next).To(Equal(60.0))
	})

	It("never overshoots, including downward and with smoothing below one", func() {
		for _, smoothing := range []float64{0.25, 1.5, ring.DefaultSmoothing} {
			for _, target := range []float64{0, 20, 100, 10000} {
				for _, start := range []float64{0, 55.5, 10000} {
					animated := start
					for i := 0; i < 500; i++ {
						next, settled := ring.Tick(animated, target, smoothing)
						if start <= target {
							Expect(next).To(BeNumerically("<=", target))
							Expect(next).To(BeNumerically(">=", animated))
						} else {
							Expect(next).To(BeNumerically(">=", target))
							Expect(next).To(BeNumerically("<=", animated))
						}
						animated = next
						if settled {
							break
						}
					}
					Expect(animated).To(Equal(target))
				}
			}
		}
	})

	It("recovers from a non-finite displayed value", func() {
		next, settled := ring.Tick(math.NaN(), 42, 5)
		Expect(settled).To(BeTrue())
		Expect(next).To(Equal(42.0))
	})

	It("keeps moving when smoothing is not finite", func() {
		for _, smoothing := range []float64{math.Inf(1), math.NaN()} {
			next, settled := ring.Tick(0, 100, smoothing)
			Expect(settled).To(BeFalse())
			Expect(next).To(Equal(100 / ring.DefaultSmoothing))
		}
	})
})

var _ = Describe("Animator", func() {
	var a *ring.Animator

	BeforeEach(func() {
		a = ring.NewAnimator(ring.EasingExponential, ring.DefaultSmoothing, 60)
	})

	It("settles with a non-finite smoothing", func() {
		a = ring.NewAnimator(ring.EasingExponential, math.Inf(1), 60)
		Expect(a.Smoothing).To(Equal(ring.DefaultSmoothing))
		a.SetTarget(20)
		a.Run(10000)
		Expect(a.State()).To(Equal(ring.Settled))
		Expect(a.Value).To(Equal(20.0))
	})

	It("starts settled at zero", func() {
		Expect(a.State()).To(Equal(ring.Settled))
		Expect(a.Value).To(BeZero())
		Expect(a.Step()).To(BeFalse())
	})

	It("goes settling on a new target and settles exactly on it", func() {
		Expect(a.SetTarget(20)).To(Equal(ring.Settling))
		frames := 0
		for a.Step() {
			frames++
			Expect(a.State()).To(Equal(ring.Settling))
		}
		Expect(frames).To(BeNumerically(">", 0))
		Expect(a.State()).To(Equal(ring.Settled))
		Expect(a.Value).To(Equal(20.0))
	})

	It("stays settled for a target change inside the threshold", func() {
		a.Jump(60)
		Expect(a.SetTarget(60.05)).To(Equal(ring.Settled))
		Expect(a.Value).To(Equal(60.05))
	})

	It("returns to settling when the target moves mid-flight", func() {
		a.SetTarget(100)
		a.Step()
		a.Step()
		Expect(a.SetTarget(20)).To(Equal(ring.Settling))
		values := a.Run(1000)
		Expect(values[len(values)-1]).To(Equal(20.0))
	})

	It("records the trajectory with Run", func() {
		a.SetTarget(100)
		values := a.Run(1000)
		Expect(values[0]).To(BeZero())
		Expect(values[len(values)-1]).To(Equal(100.0))
		for i := 1; i < len(values); i++ {
			Expect(values[i]).To(BeNumerically(">", values[i-1]))
		}
	})

	It("falls back to exponential easing for unknown names", func() {
		b := ring.NewAnimator("bouncy", 0, 0)
		Expect(b.Easing()).To(Equal(ring.EasingExponential))
		Expect(b.Smoothing).To(Equal(ring.DefaultSmoothing))
	})

	Context("with spring easing", func() {
		BeforeEach(func() {
			a = ring.NewAnimator(ring.EasingSpring, ring.DefaultSmoothing, 60)
		})

		It("settles on the target without overshooting", func() {
			a.SetTarget(80)
			values := a.Run(10000)
			for _, v := range values {
				Expect(v).To(BeNumerically("<=", 80))
			}
			Expect(a.State()).To(Equal(ring.Settled))
			Expect(a.Value).To(Equal(80.0))
		})
	})
})
