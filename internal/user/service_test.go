package user_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/dwisusanto/perf-tracker/internal"
	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	reviewDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/review"
	skillDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/skill"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	crudPostgres "github.com/dwisusanto/perf-tracker/internal/crud/postgres"
	"github.com/dwisusanto/perf-tracker/internal/user"
	userPostgres "github.com/dwisusanto/perf-tracker/internal/user/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

func strPtr(s string) *string { return &s }

var _ = Describe("User Service", func() {
	var (
		db      *gorm.DB
		service *user.Service
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&userDatamodel.User{},
			&reviewDatamodel.Review{},
			&goalDatamodel.Goal{},
			&skillDatamodel.Skill{},
			&feedbackDatamodel.Feedback{},
		)
		Expect(err).NotTo(HaveOccurred())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := crudPostgres.NewRepository[userDatamodel.User](db, "id ASC")
		service = user.NewService(repo, userPostgres.NewDependentsRepository(db), logger)
	})

	Describe("Create", func() {
		It("should create a user with a valid role", func() {
			created, err := service.Create(user.CreateUserDTO{Name: "Alice", Role: user.RoleManager})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Name).To(Equal("Alice"))
			Expect(created.Role).To(Equal("manager"))
		})

		It("should reject an empty name", func() {
			_, err := service.Create(user.CreateUserDTO{Name: "  ", Role: user.RoleEmployee})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject an unknown role", func() {
			_, err := service.Create(user.CreateUserDTO{Name: "Alice", Role: "ceo"})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for _, name := range []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7"} {
				_, err := service.Create(user.CreateUserDTO{Name: name, Role: user.RoleEmployee})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should apply the default page and limit", func() {
			page, err := service.List(0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Page).To(Equal(1))
			Expect(page.Limit).To(Equal(10))
			Expect(page.Total).To(Equal(int64(7)))
			Expect(page.Data).To(HaveLen(7))
		})

		It("should return the remainder on the last page with the full total", func() {
			page, err := service.List(2, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Page).To(Equal(2))
			Expect(page.Limit).To(Equal(5))
			Expect(page.Total).To(Equal(int64(7)))
			Expect(page.Data).To(HaveLen(2))
			Expect(page.Data[0].Name).To(Equal("u6"))
		})

		It("should return an empty page past the end, not an error", func() {
			page, err := service.List(5, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Data).To(BeEmpty())
			Expect(page.Total).To(Equal(int64(7)))
		})
	})

	Describe("GetByID", func() {
		It("should return not found for a missing id", func() {
			_, err := service.GetByID(999)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("Update", func() {
		var alice *userDatamodel.User

		BeforeEach(func() {
			var err error
			alice, err = service.Create(user.CreateUserDTO{Name: "Alice", Role: user.RoleEmployee})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should patch only the supplied fields", func() {
			updated, err := service.Update(alice.ID, user.UpdateUserDTO{Role: strPtr(user.RoleManager)})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Alice"))
			Expect(updated.Role).To(Equal("manager"))
		})

		It("should treat an empty patch as a read", func() {
			updated, err := service.Update(alice.ID, user.UpdateUserDTO{})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Alice"))
			Expect(updated.Role).To(Equal("employee"))
		})

		It("should reject an invalid role in a patch", func() {
			_, err := service.Update(alice.ID, user.UpdateUserDTO{Role: strPtr("intern")})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should return not found for a missing id", func() {
			_, err := service.Update(999, user.UpdateUserDTO{Name: strPtr("ghost")})
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("Delete", func() {
		var alice *userDatamodel.User

		BeforeEach(func() {
			var err error
			alice, err = service.Create(user.CreateUserDTO{Name: "Alice", Role: user.RoleEmployee})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should delete a user without dependents", func() {
			Expect(service.Delete(alice.ID)).To(Succeed())

			_, err := service.GetByID(alice.ID)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})

		It("should return not found for a missing id", func() {
			err := service.Delete(999)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})

		It("should refuse to delete a user that still owns records", func() {
			Expect(db.Create(&goalDatamodel.Goal{Title: "ship it", UserID: alice.ID}).Error).NotTo(HaveOccurred())
			Expect(db.Create(&skillDatamodel.Skill{Name: "Go", Level: 3, UserID: alice.ID}).Error).NotTo(HaveOccurred())

			err := service.Delete(alice.ID)
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeConflict))
			Expect(appErr.Code).To(Equal(internal.ErrCodeUserHasDependents))
			Expect(appErr.Details).To(HaveKeyWithValue("goals", int64(1)))
			Expect(appErr.Details).To(HaveKeyWithValue("skills", int64(1)))

			// still present
			_, err = service.GetByID(alice.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should count references where the user is the second party", func() {
			bob, err := service.Create(user.CreateUserDTO{Name: "Bob", Role: user.RoleEmployee})
			Expect(err).NotTo(HaveOccurred())

			rev := &reviewDatamodel.Review{Summary: "good", Rating: 4, UserID: bob.ID, ReviewerID: alice.ID}
			Expect(db.Create(rev).Error).NotTo(HaveOccurred())

			err = service.Delete(alice.ID)
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Details).To(HaveKeyWithValue("reviews", int64(1)))
		})
	})
})
