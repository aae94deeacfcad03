package report

import (
	"time"

	"github.com/jonathan/axis-portal/internal/types"
)

// SampleMeta describes the bundled sample report.
func SampleMeta() Meta {
	return Meta{
		ID:          "AXIS-2024-001",
		Title:       "Sustainability Execution Report",
		PreparedFor: "L'Oréal Egypt",
		CreatedAt:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Sample:      true,
	}
}

// SampleDocument returns a fresh copy of the sample report shown to visitors.
func SampleDocument() *types.ReportDocument {
	return &types.ReportDocument{
		ExecutiveSummary: &types.ExecutiveSummary{
			Overview: "This comprehensive sustainability execution report has been prepared for L'Oréal Egypt " +
				"in alignment with your 2030 sustainability vision. Based on our analysis of your current ESG position " +
				"and strategic objectives, we present a detailed roadmap of actionable recommendations spanning " +
				"environmental impact reduction, community development, and capacity building initiatives.",
			KeyMetrics: []types.KeyMetric{
				{Label: "CO2 Reduction Target", Value: "45,000 tons", Period: "by 2030"},
				{Label: "People to Train", Value: "12,500", Period: "across 3 years"},
				{Label: "ESG Score Improvement", Value: "+18 points", Period: "projected"},
				{Label: "Total Investment", Value: "EGP 48.5M", Period: "over 5 years"},
			},
		},
		Recommendations: map[types.RecommendationCategory][]types.Recommendation{
			types.RecommendationEnvironmental: {
				{
					Title:         "Solar Power Installation - Factory Complex",
					Category:      "Renewable Energy",
					Description:   "Install 2.5MW solar panel system across the Cairo factory complex rooftops, reducing grid dependency by 40% and achieving significant carbon footprint reduction.",
					Location:      "10th of Ramadan City, Cairo",
					Timeline:      "Q2 2024 - Q4 2024",
					Beneficiaries: "Factory operations",
					Impact:        "12,000 tons CO2/year",
					Budget:        "EGP 18,500,000",
					Contractor:    "SolarMisr Energy",
					Priority:      types.PriorityHigh,
				},
				{
					Title:         "Water Desalination & Recycling System",
					Category:      "Water Management",
					Description:   "Implement closed-loop water recycling system with desalination capability for manufacturing processes, reducing freshwater consumption by 60%.",
					Location:      "Alexandria Production Facility",
					Timeline:      "Q1 2024 - Q3 2024",
					Beneficiaries: "Production operations",
					Impact:        "2.5M liters/month saved",
					Budget:        "EGP 8,200,000",
					Contractor:    "AquaTech Egypt",
					Priority:      types.PriorityHigh,
				},
				{
					Title:         "Fleet Electrification Program",
					Category:      "Transportation",
					Description:   "Convert 50% of delivery fleet to electric vehicles with charging infrastructure installation at distribution centers.",
					Location:      "Greater Cairo Region",
					Timeline:      "Q3 2024 - Q2 2025",
					Beneficiaries: "Logistics operations",
					Impact:        "8,500 tons CO2/year",
					Budget:        "EGP 12,000,000",
					Contractor:    "EV Egypt Solutions",
					Priority:      types.PriorityMedium,
				},
			},
			types.RecommendationCommunity: {
				{
					Title:         "Rural Women Entrepreneurship Program",
					Category:      "Community Development",
					Description:   "Establish beauty and cosmetics micro-enterprise training centers in rural Upper Egypt, providing skills training and startup support for 500 women annually.",
					Location:      "Assiut & Sohag Governorates",
					Timeline:      "Q1 2024 - Ongoing",
					Beneficiaries: "2,500 women (5 years)",
					Impact:        "500 new businesses/year",
					Budget:        "EGP 4,500,000/year",
					Contractor:    "Misr El Kheir Foundation",
					Priority:      types.PriorityHigh,
				},
				{
					Title:         "School Infrastructure Development",
					Category:      "Education",
					Description:   "Renovate and equip 15 public schools in underserved areas with modern facilities, science labs, and digital learning resources.",
					Location:      "Fayoum & Beni Suef",
					Timeline:      "Q2 2024 - Q4 2024",
					Beneficiaries: "8,000+ students",
					Impact:        "15 schools upgraded",
					Budget:        "EGP 6,800,000",
					Contractor:    "Egyptian Food Bank",
					Priority:      types.PriorityMedium,
				},
			},
			types.RecommendationTraining: {
				{
					Title:         "Youth Technical Skills Academy",
					Category:      "Workforce Development",
					Description:   "Launch comprehensive vocational training program in manufacturing, logistics, and digital skills for unemployed youth, with job placement support.",
					Location:      "Cairo, Alexandria, Mansoura",
					Timeline:      "Q1 2024 - Q4 2026",
					Beneficiaries: "5,000 youth",
					Impact:        "70% employment rate",
					Budget:        "EGP 3,200,000/year",
					Contractor:    "INJAZ Egypt",
					Priority:      types.PriorityHigh,
				},
				{
					Title:         "Supplier Sustainability Certification",
					Category:      "Supply Chain",
					Description:   "Train and certify 200 local suppliers on sustainable manufacturing practices, environmental compliance, and ethical labor standards.",
					Location:      "Nationwide",
					Timeline:      "Q2 2024 - Q4 2025",
					Beneficiaries: "200 suppliers",
					Impact:        "30% supply chain emissions cut",
					Budget:        "EGP 1,800,000",
					Contractor:    "Business Egypt Network",
					Priority:      types.PriorityMedium,
				},
			},
			types.RecommendationInnovation: {
				{
					Title:         "Green Startup Incubator",
					Category:      "Innovation",
					Description:   "Establish an innovation hub focused on sustainable beauty and packaging solutions, supporting 20 startups annually with funding, mentorship, and market access.",
					Location:      "Smart Village, Cairo",
					Timeline:      "Q3 2024 - Ongoing",
					Beneficiaries: "60 startups (3 years)",
					Impact:        "20 green innovations/year",
					Budget:        "EGP 5,000,000/year",
					Contractor:    "Flat6Labs Egypt",
					Priority:      types.PriorityMedium,
				},
			},
		},
		BudgetSummary: &types.BudgetSummary{
			TotalBudget: 48500000,
			Currency:    "EGP",
			Items: []types.BudgetItem{
				{Category: "Renewable Energy", Amount: 18500000, Percentage: 38},
				{Category: "Water Management", Amount: 8200000, Percentage: 17},
				{Category: "Fleet Electrification", Amount: 12000000, Percentage: 25},
				{Category: "Community Development", Amount: 4500000, Percentage: 9},
				{Category: "Education & Training", Amount: 3200000, Percentage: 7},
				{Category: "Innovation Hub", Amount: 2100000, Percentage: 4},
			},
		},
		Timeline: &types.Timeline{
			Phases: []types.Phase{
				{
					Name:   "Foundation Phase",
					Period: "2024 Q1-Q2",
					Milestones: []string{
						"Solar installation begins at Cairo factory",
						"Women entrepreneurship program launch",
						"Contractor partnerships finalized",
					},
				},
				{
					Name:   "Implementation Phase",
					Period: "2024 Q3-Q4",
					Milestones: []string{
						"Water recycling system operational",
						"First 500 women trained",
						"Fleet electrification phase 1 complete",
					},
				},
				{
					Name:   "Scale-Up Phase",
					Period: "2025 Full Year",
					Milestones: []string{
						"15 schools renovated and equipped",
						"Green startup incubator launched",
						"2,000 youth in technical training",
					},
				},
				{
					Name:   "Long-Term Impact",
					Period: "2026-2030",
					Milestones: []string{
						"45,000 tons CO2 reduction achieved",
						"12,500 people trained across all programs",
						"ESG score improvement of 18+ points",
					},
				},
			},
		},
		BrandingOpportunities: []types.BrandingOpportunity{
			{
				Title:       "Beauty for Tomorrow",
				Description: "Hero campaign showcasing the connection between beauty products and environmental stewardship in Egypt.",
				Impact:      "5M+ Egyptians",
			},
			{
				Title:       "Women Rising",
				Description: "Documentary series following rural women entrepreneurs through the training program.",
				Impact:      "Social media focus",
			},
			{
				Title:       "Green Factory Tours",
				Description: "Virtual and in-person tours showcasing solar installations and sustainable manufacturing.",
				Impact:      "Media & influencers",
			},
		},
	}
}
