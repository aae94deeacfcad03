//nolint:revive // types is a standard Go package name pattern
package types

// Contractor is a vetted implementation partner listed in the directory.
type Contractor struct {
	ID                string             `json:"id" yaml:"id"`
	Name              string             `json:"name" yaml:"name" validate:"required"`
	Description       string             `json:"description" yaml:"description"`
	Category          ContractorCategory `json:"type" yaml:"type" validate:"required,contractor_category"`
	Location          string             `json:"location" yaml:"location"`
	Rating            float64            `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	ProjectsCompleted int                `json:"projects_completed" yaml:"projects_completed" validate:"gte=0"`
	Certifications    []string           `json:"certifications" yaml:"certifications"`
	ContactEmail      string             `json:"contact_email" yaml:"contact_email" validate:"omitempty,email"`
	Website           string             `json:"website" yaml:"website" validate:"omitempty,url"`
	Verified          bool               `json:"is_verified" yaml:"is_verified"`
}

// Validate validates the contractor record.
func (c *Contractor) Validate() error {
	return Validator().Struct(c)
}
