package cmd

import (
	"fmt"
	"log"

	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	reviewDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/review"
	skillDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/skill"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/user"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm session: %v", err)
		}

		var existing int64
		if err := db.Model(&userDatamodel.User{}).Count(&existing).Error; err != nil {
			log.Fatalf("failed to check existing users: %v", err)
		}
		if existing > 0 {
			fmt.Println("users already present; skipping seed")
			return
		}

		users := []*userDatamodel.User{
			{Name: "Alice", Role: user.RoleManager},
			{Name: "Bob", Role: user.RoleEmployee},
			{Name: "Carol", Role: user.RoleHR},
		}
		for _, u := range users {
			if err := db.Create(u).Error; err != nil {
				log.Fatalf("failed to seed user %s: %v", u.Name, err)
			}
			fmt.Printf("seeded user %s (id=%d)\n", u.Name, u.ID)
		}

		alice, bob := users[0], users[1]

		review := &reviewDatamodel.Review{
			Summary:    "Strong quarter, consistently shipped on time",
			Rating:     5,
			UserID:     bob.ID,
			ReviewerID: alice.ID,
		}
		if err := db.Create(review).Error; err != nil {
			log.Fatalf("failed to seed review: %v", err)
		}

		desc := "Lead the migration to the new billing pipeline"
		goal := &goalDatamodel.Goal{
			Title:       "Own a cross-team project",
			Description: &desc,
			UserID:      bob.ID,
		}
		if err := db.Create(goal).Error; err != nil {
			log.Fatalf("failed to seed goal: %v", err)
		}

		skill := &skillDatamodel.Skill{Name: "Go", Level: 4, UserID: bob.ID}
		if err := db.Create(skill).Error; err != nil {
			log.Fatalf("failed to seed skill: %v", err)
		}

		fb := &feedbackDatamodel.Feedback{
			Content:   "Great collaboration on the incident review",
			UserID:    bob.ID,
			GivenByID: alice.ID,
		}
		if err := db.Create(fb).Error; err != nil {
			log.Fatalf("failed to seed feedback: %v", err)
		}

		fmt.Println("seed complete")
	},
}
