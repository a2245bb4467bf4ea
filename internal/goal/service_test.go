package goal_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dwisusanto/perf-tracker/internal"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/goal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGoalService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Goal Service Suite")
}

// MockGoalRepository implements crud.Repository for testing
type MockGoalRepository struct {
	goals  map[int64]*goalDatamodel.Goal
	nextID int64
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{goals: make(map[int64]*goalDatamodel.Goal), nextID: 1}
}

func (m *MockGoalRepository) Create(g *goalDatamodel.Goal) error {
	g.ID = m.nextID
	m.nextID++
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	m.goals[g.ID] = g
	return nil
}

func (m *MockGoalRepository) List(limit, offset int) ([]*goalDatamodel.Goal, int64, error) {
	var result []*goalDatamodel.Goal
	for id := int64(1); id < m.nextID; id++ {
		if g, ok := m.goals[id]; ok {
			result = append(result, g)
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

func (m *MockGoalRepository) GetByID(id int64) (*goalDatamodel.Goal, error) {
	return m.goals[id], nil
}

func (m *MockGoalRepository) UpdateFields(id int64, fields map[string]any) (int64, error) {
	g, ok := m.goals[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["title"]; ok {
		g.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		desc := v.(string)
		g.Description = &desc
	}
	if v, ok := fields["completed"]; ok {
		g.Completed = v.(bool)
	}
	g.UpdatedAt = time.Now()
	return 1, nil
}

func (m *MockGoalRepository) Delete(id int64) (int64, error) {
	if _, ok := m.goals[id]; !ok {
		return 0, nil
	}
	delete(m.goals, id)
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

var _ = Describe("Goal Service", func() {
	var (
		repo    *MockGoalRepository
		service *goal.Service
		alice   *userDatamodel.User
	)

	BeforeEach(func() {
		repo = NewMockGoalRepository()
		alice = &userDatamodel.User{ID: 1, Name: "Alice", Role: "employee"}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = goal.NewService(repo, NewMockUserRepository(alice), logger)
	})

	Describe("Create", func() {
		It("should create a goal defaulting completed to false", func() {
			created, err := service.Create(goal.CreateGoalDTO{Title: "learn Go generics", UserID: alice.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Completed).To(BeFalse())
			Expect(created.Description).To(BeNil())
		})

		It("should honor an explicit completed flag and description", func() {
			done := true
			desc := "already shipped"
			created, err := service.Create(goal.CreateGoalDTO{
				Title:       "ship the feature",
				Description: &desc,
				Completed:   &done,
				UserID:      alice.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Completed).To(BeTrue())
			Expect(*created.Description).To(Equal("already shipped"))
		})

		It("should reject an empty title", func() {
			_, err := service.Create(goal.CreateGoalDTO{Title: " ", UserID: alice.ID})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a missing owner without writing anything", func() {
			_, err := service.Create(goal.CreateGoalDTO{Title: "orphan goal", UserID: 999})
			Expect(err).To(Equal(internal.ErrUserNotFound))
			Expect(repo.goals).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		var existing *goalDatamodel.Goal

		BeforeEach(func() {
			var err error
			existing, err = service.Create(goal.CreateGoalDTO{Title: "learn Go generics", UserID: alice.ID})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should mark a goal completed", func() {
			done := true
			updated, err := service.Update(existing.ID, goal.UpdateGoalDTO{Completed: &done})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Completed).To(BeTrue())
			Expect(updated.Title).To(Equal("learn Go generics"))
		})

		It("should return not found for a missing id", func() {
			title := "ghost"
			_, err := service.Update(999, goal.UpdateGoalDTO{Title: &title})
			Expect(err).To(Equal(internal.ErrGoalNotFound))
		})
	})

	Describe("Delete", func() {
		It("should return not found for a missing id", func() {
			err := service.Delete(999)
			Expect(err).To(Equal(internal.ErrGoalNotFound))
		})
	})
})
