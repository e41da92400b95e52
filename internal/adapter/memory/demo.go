package memory

import (
	"context"
	"time"

	"server/internal/domain"
)

// SeedDemo loads the development dataset so the API serves meaningful
// responses without a database: the six default categories, one approved
// campaign, and two completed donations.
func SeedDemo(ctx context.Context, s *Store) error {
	categories := []domain.Category{
		{ID: "cat-academic", Name: "Academic Support", Description: "Help fellow students with textbooks, supplies, and educational needs", Color: "#3B82F6", Icon: "🎓"},
		{ID: "cat-emergency", Name: "Emergency Aid", Description: "Support students facing unexpected financial difficulties", Color: "#EF4444", Icon: "🆘"},
		{ID: "cat-campus", Name: "Campus Improvement", Description: "Projects to enhance campus facilities and student life", Color: "#10B981", Icon: "🏫"},
		{ID: "cat-community", Name: "Community Service", Description: "Give back to the local community and those in need", Color: "#F59E0B", Icon: "🤝"},
		{ID: "cat-research", Name: "Research & Innovation", Description: "Fund student research projects and innovative ideas", Color: "#8B5CF6", Icon: "🔬"},
		{ID: "cat-sports", Name: "Sports & Recreation", Description: "Support athletic teams and recreational activities", Color: "#06B6D4", Icon: "⚽"},
	}
	for i := range categories {
		categories[i].CreatedAt = time.Now().UTC()
		if err := s.Categories.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}

	endDate := time.Now().UTC().AddDate(0, 2, 0)
	campaign := domain.Campaign{
		ID:               "demo-textbooks",
		Title:            "Emergency Textbook Fund for Low-Income Students",
		ShortDescription: "Help struggling students get essential textbooks for the new semester.",
		Description:      "This campaign aims to provide essential textbooks and learning materials to students who cannot afford them.",
		GoalAmount:       2500_00,
		CategoryID:       "cat-academic",
		CreatorID:        "demo-creator",
		Urgency:          domain.UrgencyHigh,
		EndDate:          &endDate,
		Featured:         true,
		Status:           domain.CampaignApproved,
		CreatedAt:        time.Now().UTC().AddDate(0, 0, -30),
	}
	if err := s.Campaigns.Create(ctx, &campaign); err != nil {
		return err
	}

	donations := []domain.Donation{
		{
			ID:         "demo-don-1",
			CampaignID: campaign.ID,
			DonorID:    "demo-donor-1",
			Amount:     50_00,
			Message:    "Happy to help fellow students succeed!",
			Status:     domain.DonationCompleted,
			PaymentRef: "demo_seed_1",
			CreatedAt:  time.Now().UTC().AddDate(0, 0, -20),
		},
		{
			ID:         "demo-don-2",
			CampaignID: campaign.ID,
			DonorID:    "demo-donor-2",
			Amount:     25_00,
			Message:    "Education should be accessible to everyone.",
			Status:     domain.DonationCompleted,
			PaymentRef: "demo_seed_2",
			CreatedAt:  time.Now().UTC().AddDate(0, 0, -19),
		},
	}
	for i := range donations {
		if err := s.Ledger.Record(ctx, &donations[i]); err != nil {
			return err
		}
	}
	return nil
}
