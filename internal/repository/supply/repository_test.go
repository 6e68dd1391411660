//go:build integration

package repository

import (
	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/emergency-supply/internal/model"
)

func newFakeSupply() *model.Supply {
	return &model.Supply{
		SupplyName: gofakeit.ProductName() + " " + gofakeit.UUID(),
		Category:   gofakeit.ProductCategory(),
		UnitPrice:  gofakeit.Price(0, 100),
		Quantity:   int64(gofakeit.Number(0, 1000)),
		Supplier:   gofakeit.Company(),
		Location:   gofakeit.City(),
	}
}

var _ = Describe("Supply repository", func() {
	var repo *repository

	BeforeEach(func() {
		By("cleaning supplies collection")
		_, err := coll.DeleteMany(suiteCtx, bson.M{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewSupplyRepository(coll)
	})

	Context("Insert", func() {
		It("stores the supply and assigns bookkeeping fields", func() {
			s := newFakeSupply()

			got, err := repo.Insert(suiteCtx, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).NotTo(BeEmpty())
			Expect(got.CreatedAt).NotTo(BeNil())
			Expect(got.SupplyName).To(Equal(s.SupplyName))
			Expect(got.ExpirationDate).To(BeNil())
		})

		It("translates the unique index violation into a conflict", func() {
			s := newFakeSupply()
			_, err := repo.Insert(suiteCtx, s)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.Insert(suiteCtx, s)
			Expect(err).To(MatchError(model.ErrSupplyConflict))
		})

		It("rejects records breaking store constraints", func() {
			s := newFakeSupply()
			s.Quantity = -3

			_, err := repo.Insert(suiteCtx, s)
			Expect(err).To(MatchError(model.ErrValidation))
		})
	})

	Context("FindAll", func() {
		It("returns an empty slice for an empty collection", func() {
			got, err := repo.FindAll(suiteCtx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})

		It("keeps insertion order", func() {
			names := make([]string, 0, 5)
			for range 5 {
				s, err := repo.Insert(suiteCtx, newFakeSupply())
				Expect(err).NotTo(HaveOccurred())
				names = append(names, s.SupplyName)
			}

			got, err := repo.FindAll(suiteCtx)
			Expect(err).NotTo(HaveOccurred())
			Expect(lo.Map(got, func(s *model.Supply, _ int) string { return s.SupplyName })).To(Equal(names))
		})
	})

	Context("FindByName", func() {
		It("returns not found for a missing name", func() {
			_, err := repo.FindByName(suiteCtx, gofakeit.UUID())
			Expect(err).To(MatchError(model.ErrSupplyNotFound))
		})

		It("matches names case-sensitively", func() {
			s := newFakeSupply()
			s.SupplyName = "Water Bottles"
			_, err := repo.Insert(suiteCtx, s)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.FindByName(suiteCtx, "water bottles")
			Expect(err).To(MatchError(model.ErrSupplyNotFound))

			got, err := repo.FindByName(suiteCtx, "Water Bottles")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Category).To(Equal(s.Category))
		})
	})

	Context("UpdateByName", func() {
		It("merges supplied fields and returns the post-image", func() {
			s := newFakeSupply()
			s.ExpirationDate = lo.ToPtr("2030-01-01")
			_, err := repo.Insert(suiteCtx, s)
			Expect(err).NotTo(HaveOccurred())

			got, err := repo.UpdateByName(suiteCtx, s.SupplyName, model.SupplyPatch{
				Quantity:            lo.ToPtr(int64(80)),
				ClearExpirationDate: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Quantity).To(Equal(int64(80)))
			Expect(got.ExpirationDate).To(BeNil())
			Expect(got.Location).To(Equal(s.Location))
		})

		It("returns not found for a missing name", func() {
			_, err := repo.UpdateByName(suiteCtx, gofakeit.UUID(), model.SupplyPatch{Quantity: lo.ToPtr(int64(1))})
			Expect(err).To(MatchError(model.ErrSupplyNotFound))
		})

		It("reports a conflict when a rename hits another record", func() {
			first, err := repo.Insert(suiteCtx, newFakeSupply())
			Expect(err).NotTo(HaveOccurred())
			second, err := repo.Insert(suiteCtx, newFakeSupply())
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.UpdateByName(suiteCtx, second.SupplyName, model.SupplyPatch{
				SupplyName: lo.ToPtr(first.SupplyName),
			})
			Expect(err).To(MatchError(model.ErrSupplyConflict))
		})
	})

	Context("DeleteByName", func() {
		It("removes the record permanently", func() {
			s, err := repo.Insert(suiteCtx, newFakeSupply())
			Expect(err).NotTo(HaveOccurred())

			deleted, err := repo.DeleteByName(suiteCtx, s.SupplyName)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.ID).To(Equal(s.ID))

			_, err = repo.FindByName(suiteCtx, s.SupplyName)
			Expect(err).To(MatchError(model.ErrSupplyNotFound))
		})

		It("returns not found for a missing name", func() {
			_, err := repo.DeleteByName(suiteCtx, gofakeit.UUID())
			Expect(err).To(MatchError(model.ErrSupplyNotFound))
		})
	})
})
