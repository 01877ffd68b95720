package algebra_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nants/internal/algebra"
)

var _ = Describe("LinearSolver", func() {
	var (
		A, B, b, b2, b3, ones *algebra.Matrix
	)

	BeforeEach(func() {
		A = mustView(algebra.Square(3), []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
		B = algebra.Vector(2, 1, 3)
		b = algebra.Vector(3, 2, 1)
		b2 = algebra.Vector(6, 11, 9)
		b3 = algebra.Vector(1, 5, 16)
		ones = algebra.Vector(1, 1, 1)
	})

	type solver func(m, rhs *algebra.Matrix) (*algebra.Matrix, error)

	shapeChecks := func(solve solver) {
		It("rejects a non-square matrix", func() {
			_, err := solve(B, b)
			Expect(err).To(MatchError(algebra.ErrShape))
		})

		It("rejects a right-hand side with the wrong row count", func() {
			_, err := solve(A, algebra.New(algebra.Size{N: 4, M: 1}))
			Expect(err).To(MatchError(algebra.ErrShape))
		})

		It("rejects a right-hand side with more than one column", func() {
			_, err := solve(A, A)
			Expect(err).To(MatchError(algebra.ErrShape))
		})
	}

	Describe("UTSolve", func() {
		solve := func(m, rhs *algebra.Matrix) (*algebra.Matrix, error) { return m.UTSolve(rhs) }

		It("is the identity map for the identity matrix", func() {
			x, err := algebra.Identity(3).UTSolve(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(x.Equal(b)).To(BeTrue())
		})

		It("solves the upper part of a general matrix", func() {
			x, err := A.UTSolve(b2)
			Expect(err).NotTo(HaveOccurred())
			Expect(x.Equal(ones)).To(BeTrue())
		})

		shapeChecks(solve)
	})

	Describe("LTSolve", func() {
		solve := func(m, rhs *algebra.Matrix) (*algebra.Matrix, error) { return m.LTSolve(rhs) }

		It("is the identity map for the identity matrix", func() {
			x, err := algebra.Identity(3).LTSolve(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(x.Equal(b)).To(BeTrue())
		})

		It("solves the lower part of a general matrix", func() {
			x, err := A.LTSolve(b3)
			Expect(err).NotTo(HaveOccurred())
			Expect(x.Equal(ones)).To(BeTrue())
		})

		shapeChecks(solve)
	})

	Describe("LUDecompose", func() {
		It("rejects a non-square matrix", func() {
			_, err := B.LUDecompose()
			Expect(err).To(MatchError(algebra.ErrShape))
		})

		It("packs factors whose product is the input", func() {
			m := algebra.Random(algebra.Square(5), rand.New(rand.NewSource(5)))
			for i := 0; i < 5; i++ {
				m.Set(i, i, m.At(i, i)+5)
			}
			lu, err := m.LUDecompose()
			Expect(err).NotTo(HaveOccurred())
			l, err := lu.GrabL()
			Expect(err).NotTo(HaveOccurred())
			u, err := lu.GrabU()
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 5; i++ {
				Expect(l.At(i, i)).To(Equal(1.0))
				for j := i + 1; j < 5; j++ {
					Expect(l.At(i, j)).To(BeZero())
					Expect(u.At(j, i)).To(BeZero())
				}
			}

			prod, err := l.Multiply(u)
			Expect(err).NotTo(HaveOccurred())
			Expect(prod.EqualApprox(m, 1e-12)).To(BeTrue())
		})

		It("does not modify the receiver", func() {
			before := A.Copy()
			_, err := A.LUDecompose()
			Expect(err).NotTo(HaveOccurred())
			Expect(A.Equal(before)).To(BeTrue())
		})

		It("lets a zero pivot propagate as non-finite values", func() {
			m := mustView(algebra.Square(2), []float64{0, 1, 1, 1})
			lu, err := m.LUDecompose()
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsInf(lu.At(1, 0), 0)).To(BeTrue())
			Expect(algebra.CheckFinite(lu)).To(MatchError(algebra.ErrSingular))
		})
	})

	Describe("Solve", func() {
		solve := func(m, rhs *algebra.Matrix) (*algebra.Matrix, error) { return m.Solve(rhs) }

		It("is the identity map for the identity matrix", func() {
			x, err := algebra.Identity(3).Solve(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(x.Equal(b)).To(BeTrue())
		})

		It("recovers x from b = A·x for a well-conditioned random matrix", func() {
			rng := rand.New(rand.NewSource(1))
			for _, n := range []int{1, 2, 4, 10, 25} {
				m := algebra.Random(algebra.Square(n), rng)
				for i := 0; i < n; i++ {
					m.Set(i, i, m.At(i, i)+float64(n))
				}
				x := algebra.Random(algebra.Size{N: n, M: 1}, rng)
				rhs, err := m.Multiply(x)
				Expect(err).NotTo(HaveOccurred())

				got, err := m.Solve(rhs)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.Size()).To(Equal(x.Size()))
				for i, v := range got.Data() {
					Expect(v).To(BeNumerically("~", x.Data()[i], 1e-6))
				}
			}
		})

		shapeChecks(solve)
	})
})
