package algebra_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nants/internal/algebra"
)

func mustView(size algebra.Size, buf []float64) *algebra.Matrix {
	m, err := algebra.NewView(size, buf)
	Expect(err).NotTo(HaveOccurred())
	return m
}

var _ = Describe("Matrix", func() {
	var (
		A, B, AB, At, Bt *algebra.Matrix
	)

	BeforeEach(func() {
		A = mustView(algebra.Square(3), []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
		B = mustView(algebra.Size{N: 3, M: 1}, []float64{2, 1, 3})
		AB = algebra.Vector(13, 31, 49)
		At = mustView(algebra.Square(3), []float64{1, 4, 7, 2, 5, 8, 3, 6, 9})
		Bt = mustView(algebra.Size{N: 1, M: 3}, []float64{2, 1, 3})
	})

	Describe("creation", func() {
		It("uses the provided buffer without copying", func() {
			buf := []float64{1, 2, 3, 4}
			m := mustView(algebra.Square(2), buf)
			Expect(m.Owned()).To(BeFalse())
			buf[0] = 42
			Expect(m.At(0, 0)).To(Equal(42.0))
		})

		It("rejects a buffer of the wrong length", func() {
			_, err := algebra.NewView(algebra.Square(2), []float64{1, 2, 3})
			Expect(err).To(MatchError(algebra.ErrShape))
		})

		It("keeps its own copy of the size", func() {
			size := algebra.Size{N: 2, M: 4}
			m := algebra.New(size)
			size.N = 7
			Expect(m.Size()).To(Equal(algebra.Size{N: 2, M: 4}))
			Expect(m.Data()).To(HaveLen(8))
			Expect(m.Owned()).To(BeTrue())
		})

		It("builds from rows and rejects ragged input", func() {
			m, err := algebra.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Size()).To(Equal(algebra.Size{N: 2, M: 3}))
			Expect(m.At(1, 0)).To(Equal(4.0))

			_, err = algebra.FromRows([][]float64{{1, 2}, {3}})
			Expect(err).To(MatchError(algebra.ErrShape))
		})
	})

	Describe("Copy", func() {
		It("always returns an owning, independent matrix", func() {
			buf := []float64{1, 2, 3, 4}
			view := mustView(algebra.Square(2), buf)
			c := view.Copy()
			Expect(c.Owned()).To(BeTrue())
			Expect(c.Equal(view)).To(BeTrue())
			c.Set(0, 0, 9)
			Expect(buf[0]).To(Equal(1.0))
		})
	})

	Describe("Identity", func() {
		It("defaults to a square matrix", func() {
			m := algebra.Identity(3)
			Expect(m.Size()).To(Equal(algebra.Square(3)))
			Expect(m.Data()).To(Equal([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}))
		})

		It("puts ones on the diagonal of a rectangular shape", func() {
			m := algebra.IdentityOf(algebra.Size{N: 3, M: 4})
			Expect(m.Data()).To(Equal([]float64{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 0,
			}))
		})
	})

	Describe("Random", func() {
		It("draws every entry from [0,1)", func() {
			m := algebra.Random(algebra.Size{N: 10, M: 10}, rand.New(rand.NewSource(7)))
			for _, v := range m.Data() {
				Expect(v).To(BeNumerically(">=", 0))
				Expect(v).To(BeNumerically("<", 1))
			}
		})

		It("panics without a generator", func() {
			Expect(func() { algebra.Random(algebra.Square(2), nil) }).To(Panic())
		})

		It("is reproducible for a fixed seed", func() {
			a := algebra.Random(algebra.Square(4), rand.New(rand.NewSource(3)))
			b := algebra.Random(algebra.Square(4), rand.New(rand.NewSource(3)))
			Expect(a.Equal(b)).To(BeTrue())
		})
	})

	Describe("Add and Subtract", func() {
		It("works elementwise and returns a new matrix", func() {
			sum, err := A.Add(At)
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.Data()).To(Equal([]float64{2, 6, 10, 6, 10, 14, 10, 14, 18}))
			Expect(A.Data()[0]).To(Equal(1.0))

			diff, err := sum.Subtract(At)
			Expect(err).NotTo(HaveOccurred())
			Expect(diff.Equal(A)).To(BeTrue())
		})

		It("rejects mismatched shapes", func() {
			_, err := A.Add(B)
			Expect(err).To(MatchError(algebra.ErrDimensionMismatch))
			_, err = A.Subtract(Bt)
			Expect(err).To(MatchError(algebra.ErrDimensionMismatch))
		})

		It("mutates and returns the receiver for the in-place variants", func() {
			c := A.Copy()
			r, err := c.IAdd(A)
			Expect(err).NotTo(HaveOccurred())
			Expect(r).To(BeIdenticalTo(c))
			Expect(c.At(2, 2)).To(Equal(18.0))

			r, err = c.ISubtract(A)
			Expect(err).NotTo(HaveOccurred())
			Expect(r).To(BeIdenticalTo(c))
			Expect(c.Equal(A)).To(BeTrue())
		})

		It("leaves the receiver alone when the in-place shapes disagree", func() {
			c := A.Copy()
			_, err := c.IAdd(B)
			Expect(err).To(MatchError(algebra.ErrDimensionMismatch))
			_, err = c.ISubtract(B)
			Expect(err).To(MatchError(algebra.ErrDimensionMismatch))
			Expect(c.Equal(A)).To(BeTrue())
		})
	})

	Describe("Multiply", func() {
		It("works with the right and left identity (square)", func() {
			I := algebra.IdentityOf(A.Size())
			r, err := A.Multiply(I)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Equal(A)).To(BeTrue())
			l, err := I.Multiply(A)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Equal(A)).To(BeTrue())
		})

		It("works with the right and left identity (rectangle)", func() {
			r, err := B.Multiply(algebra.Identity(B.Cols()))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Equal(B)).To(BeTrue())
			l, err := algebra.Identity(B.Rows()).Multiply(B)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Equal(B)).To(BeTrue())
		})

		It("gives the right answer", func() {
			r, err := A.Multiply(B)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Equal(AB)).To(BeTrue())
		})

		It("has the conformant size", func() {
			r, err := algebra.New(algebra.Size{N: 4, M: 10}).Multiply(algebra.New(algebra.Size{N: 10, M: 2}))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Size()).To(Equal(algebra.Size{N: 4, M: 2}))
		})

		It("rejects mismatched inner dimensions", func() {
			_, err := B.Multiply(A)
			Expect(err).To(MatchError(algebra.ErrDimensionMismatch))
		})
	})

	Describe("Transpose", func() {
		It("swaps the dimensions", func() {
			Expect(algebra.New(algebra.Size{N: 3, M: 20}).Transpose().Size()).To(Equal(algebra.Size{N: 20, M: 3}))
		})

		It("moves the elements (square)", func() {
			Expect(A.Transpose().Equal(At)).To(BeTrue())
		})

		It("moves the elements (rectangular)", func() {
			Expect(B.Transpose().Equal(Bt)).To(BeTrue())
		})

		It("is an involution", func() {
			m := algebra.Random(algebra.Size{N: 5, M: 3}, rand.New(rand.NewSource(11)))
			Expect(m.Transpose().Transpose().Equal(m)).To(BeTrue())
		})
	})
})
