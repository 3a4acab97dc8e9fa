package physics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("field formulas", func() {
	masses := []float64{0.1, 1, 10, 21, 62, 4.3e6, 6.5e9}

	It("yields a positive, strictly increasing Schwarzschild radius in mass", func() {
		prev := 0.0
		for _, mSolar := range masses {
			rs, err := SchwarzschildRadius(mSolar * SolarMassKg)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs).To(BeNumerically(">", 0))
			Expect(rs).To(BeNumerically(">", prev))
			prev = rs
		}
	})

	It("yields positive, strictly decreasing gravity in radius", func() {
		massKg := 10 * SolarMassKg
		prev := math.Inf(1)
		for _, r := range []float64{1e3, 1e5, 1e7, 1e9, 1e11} {
			g, err := GravityAtRadius(massKg, r)
			Expect(err).NotTo(HaveOccurred())
			Expect(g).To(BeNumerically(">", 0))
			Expect(g).To(BeNumerically("<", prev))
			prev = g
		}
	})
})

var _ = Describe("tidal acceleration", func() {
	It("is non-negative across masses, radii and heights", func() {
		for _, mSolar := range []float64{1.0, 21.0, 4.3e6} {
			massKg := mSolar * SolarMassKg
			for _, r := range []float64{1e4, 1e7, 1e10} {
				for _, h := range []float64{0.5, 2.0, 50.0} {
					dg, err := TidalAcceleration(massKg, r, h)
					Expect(err).NotTo(HaveOccurred())
					Expect(dg).To(BeNumerically(">=", 0))
				}
			}
		}
	})
})

var _ = Describe("classification", func() {
	It("partitions [0, ∞) into exactly one bin per ratio", func() {
		for _, ratio := range []float64{0, 1e-9, 0.05, 0.0999999, 0.1, 0.3, 0.999, 1.0, 2, 9.99, 10.0, 50, 1e12} {
			cls, err := ClassifyRatio(ratio)
			Expect(err).NotTo(HaveOccurred())
			Expect(cls.Severity).To(BeElementOf(Negligible, Noticeable, VeryStrong, Extreme))
		}
	})

	It("assigns each breakpoint to the upper bin", func() {
		cls, err := ClassifyRatio(NoticeableRatio)
		Expect(err).NotTo(HaveOccurred())
		Expect(cls.Severity).To(Equal(Noticeable))

		cls, err = ClassifyRatio(VeryStrongRatio)
		Expect(err).NotTo(HaveOccurred())
		Expect(cls.Severity).To(Equal(VeryStrong))

		cls, err = ClassifyRatio(ExtremeRatio)
		Expect(err).NotTo(HaveOccurred())
		Expect(cls.Severity).To(Equal(Extreme))
	})
})

var _ = Describe("horizon boundary", func() {
	It("reports a period only strictly outside the Schwarzschild radius", func() {
		massKg := 21 * SolarMassKg
		rs, err := SchwarzschildRadius(massKg)
		Expect(err).NotTo(HaveOccurred())

		for _, factor := range []float64{0.25, 0.5, 1.0, 1.0000001, 2, 10, 1e4} {
			res, err := Evaluate(massKg, factor*rs, 2.0)
			Expect(err).NotTo(HaveOccurred())

			_, ok := res.OrbitalPeriod()
			Expect(ok).To(Equal(factor*rs > rs), "factor %g", factor)
		}
	})
})
