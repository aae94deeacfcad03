package contractors

import "github.com/jonathan/axis-portal/internal/types"

// SampleContractors returns the bundled directory shown when the store has no
// contractors. Each call returns a fresh copy.
func SampleContractors() []types.Contractor {
	return []types.Contractor{
		{
			ID:                "1",
			Name:              "SolarTech Egypt",
			Description:       "Leading provider of solar panel installations and renewable energy solutions for industrial facilities across Egypt.",
			Category:          types.CategoryRenewableEnergy,
			Location:          "Cairo, Egypt",
			Rating:            4.8,
			ProjectsCompleted: 45,
			Certifications:    []string{"ISO 14001", "LEED Certified"},
			ContactEmail:      "info@solartech.eg",
			Website:           "https://solartech.eg",
			Verified:          true,
		},
		{
			ID:                "2",
			Name:              "AquaSave Solutions",
			Description:       "Specialists in water conservation systems, wastewater treatment, and sustainable water management practices.",
			Category:          types.CategoryWaterManagement,
			Location:          "Alexandria, Egypt",
			Rating:            4.6,
			ProjectsCompleted: 32,
			Certifications:    []string{"ISO 9001", "Water Stewardship"},
			ContactEmail:      "contact@aquasave.eg",
			Website:           "https://aquasave.eg",
			Verified:          true,
		},
		{
			ID:                "3",
			Name:              "Green Build Co.",
			Description:       "Sustainable construction and green building consultants offering eco-friendly design and materials.",
			Category:          types.CategoryGreenBuilding,
			Location:          "Giza, Egypt",
			Rating:            4.7,
			ProjectsCompleted: 28,
			Certifications:    []string{"LEED AP", "BREEAM Certified"},
			ContactEmail:      "hello@greenbuild.eg",
			Website:           "https://greenbuild.eg",
			Verified:          true,
		},
		{
			ID:                "4",
			Name:              "EcoWaste Management",
			Description:       "Comprehensive waste management solutions including recycling programs and circular economy implementation.",
			Category:          types.CategoryWasteManagement,
			Location:          "Cairo, Egypt",
			Rating:            4.5,
			ProjectsCompleted: 56,
			Certifications:    []string{"ISO 14001", "Zero Waste Certified"},
			ContactEmail:      "info@ecowaste.eg",
			Website:           "https://ecowaste.eg",
			Verified:          true,
		},
		{
			ID:                "5",
			Name:              "Carbon Neutral Partners",
			Description:       "Carbon footprint assessment, reduction strategies, and carbon offset programs for businesses.",
			Category:          types.CategoryCarbonConsulting,
			Location:          "Cairo, Egypt",
			Rating:            4.9,
			ProjectsCompleted: 67,
			Certifications:    []string{"CDP Certified", "GHG Protocol"},
			ContactEmail:      "consult@carbonneutral.eg",
			Website:           "https://carbonneutral.eg",
			Verified:          true,
		},
		{
			ID:                "6",
			Name:              "Nile Valley NGO",
			Description:       "Non-profit organization focused on community-based environmental initiatives and sustainable agriculture.",
			Category:          types.CategoryNGO,
			Location:          "Luxor, Egypt",
			Rating:            4.4,
			ProjectsCompleted: 89,
			Certifications:    []string{"UN Global Compact", "B Corp"},
			ContactEmail:      "partner@nilevalley.org",
			Website:           "https://nilevalley.org",
			Verified:          true,
		},
	}
}
