package feedback_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dwisusanto/perf-tracker/internal"
	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/feedback"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFeedbackService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Feedback Service Suite")
}

// MockFeedbackRepository implements crud.Repository for testing
type MockFeedbackRepository struct {
	feedbacks map[int64]*feedbackDatamodel.Feedback
	nextID    int64
}

func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{feedbacks: make(map[int64]*feedbackDatamodel.Feedback), nextID: 1}
}

func (m *MockFeedbackRepository) Create(fb *feedbackDatamodel.Feedback) error {
	fb.ID = m.nextID
	m.nextID++
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	fb.UpdatedAt = time.Now()
	m.feedbacks[fb.ID] = fb
	return nil
}

func (m *MockFeedbackRepository) List(limit, offset int) ([]*feedbackDatamodel.Feedback, int64, error) {
	var result []*feedbackDatamodel.Feedback
	for id := int64(1); id < m.nextID; id++ {
		if fb, ok := m.feedbacks[id]; ok {
			result = append(result, fb)
		}
	}
	total := int64(len(result))
	if offset >= len(result) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], total, nil
}

func (m *MockFeedbackRepository) GetByID(id int64) (*feedbackDatamodel.Feedback, error) {
	return m.feedbacks[id], nil
}

func (m *MockFeedbackRepository) UpdateFields(id int64, fields map[string]any) (int64, error) {
	fb, ok := m.feedbacks[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["content"]; ok {
		fb.Content = v.(string)
	}
	fb.UpdatedAt = time.Now()
	return 1, nil
}

func (m *MockFeedbackRepository) Delete(id int64) (int64, error) {
	if _, ok := m.feedbacks[id]; !ok {
		return 0, nil
	}
	delete(m.feedbacks, id)
	return 1, nil
}

// MockUserRepository only needs GetByID for reference resolution
type MockUserRepository struct {
	users map[int64]*userDatamodel.User
}

func NewMockUserRepository(users ...*userDatamodel.User) *MockUserRepository {
	m := &MockUserRepository{users: make(map[int64]*userDatamodel.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *MockUserRepository) Create(u *userDatamodel.User) error { m.users[u.ID] = u; return nil }
func (m *MockUserRepository) List(limit, offset int) ([]*userDatamodel.User, int64, error) {
	return nil, 0, nil
}
func (m *MockUserRepository) GetByID(id int64) (*userDatamodel.User, error) { return m.users[id], nil }
func (m *MockUserRepository) UpdateFields(id int64, fields map[string]any) (int64, error) {
	return 0, nil
}
func (m *MockUserRepository) Delete(id int64) (int64, error) { return 0, nil }

var _ = Describe("Feedback Service", func() {
	var (
		repo    *MockFeedbackRepository
		service *feedback.Service
		alice   *userDatamodel.User
		bob     *userDatamodel.User
	)

	BeforeEach(func() {
		repo = NewMockFeedbackRepository()
		alice = &userDatamodel.User{ID: 1, Name: "Alice", Role: "manager"}
		bob = &userDatamodel.User{ID: 2, Name: "Bob", Role: "employee"}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = feedback.NewService(repo, NewMockUserRepository(alice, bob), logger)
	})

	Describe("Create", func() {
		It("should create feedback with recipient and giver embedded", func() {
			created, err := service.Create(feedback.CreateFeedbackDTO{
				Content:   "great pairing session",
				UserID:    bob.ID,
				GivenByID: alice.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.User.Name).To(Equal("Bob"))
			Expect(created.GivenBy.Name).To(Equal("Alice"))
			Expect(created.CreatedAt).NotTo(BeZero())
		})

		It("should honor a caller-supplied creation time", func() {
			when := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
			created, err := service.Create(feedback.CreateFeedbackDTO{
				Content:   "backfilled note",
				UserID:    bob.ID,
				GivenByID: alice.ID,
				CreatedAt: &when,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.CreatedAt).To(Equal(when))
		})

		It("should reject a missing recipient without writing anything", func() {
			_, err := service.Create(feedback.CreateFeedbackDTO{
				Content:   "to nobody",
				UserID:    999,
				GivenByID: alice.ID,
			})
			Expect(err).To(Equal(internal.ErrUserNotFound))
			Expect(repo.feedbacks).To(BeEmpty())
		})

		It("should reject a missing giver without writing anything", func() {
			_, err := service.Create(feedback.CreateFeedbackDTO{
				Content:   "from nobody",
				UserID:    bob.ID,
				GivenByID: 999,
			})
			Expect(err).To(Equal(internal.ErrUserNotFound))
			Expect(repo.feedbacks).To(BeEmpty())
		})

		It("should reject empty content", func() {
			_, err := service.Create(feedback.CreateFeedbackDTO{
				Content:   "  ",
				UserID:    bob.ID,
				GivenByID: alice.ID,
			})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})

	Describe("Update", func() {
		var existing *feedbackDatamodel.Feedback

		BeforeEach(func() {
			var err error
			existing, err = service.Create(feedback.CreateFeedbackDTO{
				Content:   "great pairing session",
				UserID:    bob.ID,
				GivenByID: alice.ID,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should patch the content", func() {
			content := "even better session"
			updated, err := service.Update(existing.ID, feedback.UpdateFeedbackDTO{Content: &content})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Content).To(Equal("even better session"))
		})

		It("should return not found for a missing id", func() {
			content := "ghost"
			_, err := service.Update(999, feedback.UpdateFeedbackDTO{Content: &content})
			Expect(err).To(Equal(internal.ErrFeedbackNotFound))
		})
	})

	Describe("Delete", func() {
		It("should return not found for a missing id", func() {
			err := service.Delete(999)
			Expect(err).To(Equal(internal.ErrFeedbackNotFound))
		})
	})
})
