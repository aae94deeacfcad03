package db

import (
	"context"

	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
)

const contractorColumns = `id::text, name, COALESCE(description, ''), type::text, COALESCE(location, ''),
	COALESCE(rating, 0), COALESCE(projects_completed, 0), COALESCE(certifications, '{}'),
	COALESCE(contact_email, ''), COALESCE(website, ''), COALESCE(is_verified, false)`

// ListContractors returns every contractor, highest rated first.
func (db *DB) ListContractors(ctx context.Context) ([]types.Contractor, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+contractorColumns+`
		 FROM contractors ORDER BY rating DESC NULLS LAST, name`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "db: list contractors")
	}
	defer rows.Close()

	var list []types.Contractor
	for rows.Next() {
		var c types.Contractor
		var category string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &category, &c.Location,
			&c.Rating, &c.ProjectsCompleted, &c.Certifications,
			&c.ContactEmail, &c.Website, &c.Verified); err != nil {
			return nil, eris.Wrap(err, "db: scan contractor")
		}
		c.Category = types.ContractorCategory(category)
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "db: iterate contractors")
	}
	return list, nil
}

// UpsertContractor inserts a contractor or updates the one with the same name,
// returning its id.
func (db *DB) UpsertContractor(ctx context.Context, c *types.Contractor) (string, error) {
	var id string
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contractors (name, description, type, location, rating, projects_completed,
			certifications, contact_email, website, is_verified)
		 VALUES ($1, $2, $3::contractor_type, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			type = EXCLUDED.type,
			location = EXCLUDED.location,
			rating = EXCLUDED.rating,
			projects_completed = EXCLUDED.projects_completed,
			certifications = EXCLUDED.certifications,
			contact_email = EXCLUDED.contact_email,
			website = EXCLUDED.website,
			is_verified = EXCLUDED.is_verified,
			updated_at = NOW()
		 RETURNING id::text`,
		c.Name, c.Description, string(c.Category), c.Location, c.Rating, c.ProjectsCompleted,
		c.Certifications, c.ContactEmail, c.Website, c.Verified,
	).Scan(&id)
	if err != nil {
		return "", eris.Wrapf(err, "db: upsert contractor %s", c.Name)
	}
	return id, nil
}
