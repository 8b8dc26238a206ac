package service

import (
	"time"

	"github.com/MKhiriev/career-compass/models"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

type fixedStudentIDs struct{ id string }

func (f fixedStudentIDs) Generate(class, section string) string { return f.id }

var (
	studentIdentity = models.Identity{UserID: "u-1", Role: models.RoleStudent}
	otherIdentity   = models.Identity{UserID: "u-2", Role: models.RoleStudent}
	adminIdentity   = models.Identity{UserID: "admin-1", Role: models.RoleAdmin}
)

func career(id, title string, skills ...string) models.Career {
	return models.Career{
		ID:          id,
		Title:       title,
		Description: title + " description",
		SalaryRange: models.SalaryRange{Min: 100, Max: 200},
		Skills:      skills,
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
}
