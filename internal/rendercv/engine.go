package rendercv

import (
	"fmt"
	"strings"

	"resumeforge/pkg/models"
)

// socialNetworks maps lower-cased JSON Resume profile networks onto the names
// RenderCV understands. Anything unrecognized falls back to GitHub.
var socialNetworks = map[string]string{
	"github":   "GitHub",
	"linkedin": "LinkedIn",
}

const defaultNetwork = "GitHub"

// endDateFallback is what RenderCV expects for ongoing positions/studies.
const endDateFallback = "present"

// Convert maps a JSON Resume document onto the RenderCV content model. The
// conversion is pure: identical input always yields identical output,
// including section order. It fails only when basics, name, email or phone is
// absent; every other field degrades to a sensible default.
func Convert(resume *models.Resume) (*models.RenderCV, error) {
	if resume == nil || resume.Basics == nil {
		return nil, &MissingFieldError{Field: "basics"}
	}
	basics := resume.Basics
	if basics.Name == "" {
		return nil, &MissingFieldError{Field: "basics.name"}
	}
	if basics.Email == "" {
		return nil, &MissingFieldError{Field: "basics.email"}
	}
	if basics.Phone == "" {
		return nil, &MissingFieldError{Field: "basics.phone"}
	}

	cv := &models.RenderCV{
		Name:           basics.Name,
		Location:       formatLocation(basics.Location),
		Email:          basics.Email,
		Phone:          basics.Phone,
		Website:        basics.URL,
		SocialNetworks: convertProfiles(basics.Profiles),
		Sections:       buildSections(resume),
	}

	return cv, nil
}

func formatLocation(location *models.Location) string {
	if location == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s", location.City, location.CountryCode)
}

func convertProfiles(profiles []models.Profile) []models.SocialNetwork {
	networks := make([]models.SocialNetwork, 0, len(profiles))
	for _, profile := range profiles {
		network, ok := socialNetworks[strings.ToLower(profile.Network)]
		if !ok {
			network = defaultNetwork
		}
		networks = append(networks, models.SocialNetwork{
			Network:  network,
			Username: profile.Username,
		})
	}
	return networks
}

// buildSections emits only the sections with actual content; explicitly empty
// input lists are treated the same as absent ones.
func buildSections(resume *models.Resume) models.Sections {
	var sections models.Sections

	if summary := resume.Basics.Summary; summary != "" {
		sections.Summary = []string{summary}
	}

	for _, edu := range resume.Education {
		sections.Education = append(sections.Education, models.EducationEntry{
			Institution: edu.Institution,
			Area:        edu.Area,
			Degree:      edu.StudyType,
			StartDate:   edu.StartDate,
			EndDate:     orPresent(edu.EndDate),
			Highlights:  edu.Courses,
		})
	}

	for _, job := range resume.Work {
		sections.Experience = append(sections.Experience, models.ExperienceEntry{
			Company:    job.Name,
			Position:   job.Position,
			Location:   job.Location,
			StartDate:  job.StartDate,
			EndDate:    orPresent(job.EndDate),
			Highlights: job.Highlights,
		})
	}

	for _, pub := range resume.Publications {
		sections.Publications = append(sections.Publications, models.PublicationEntry{
			Title:   pub.Name,
			Authors: pub.Authors,
			Date:    pub.ReleaseDate,
			DOI:     pub.DOI,
			URL:     pub.URL,
		})
	}

	for _, project := range resume.Projects {
		sections.Projects = append(sections.Projects, models.ProjectEntry{
			Name:       project.Name,
			Date:       project.StartDate,
			Highlights: []string{project.Description},
		})
	}

	for _, skill := range resume.Skills {
		sections.Technologies = append(sections.Technologies, models.TechnologyEntry{
			Label:   skill.Name,
			Details: strings.Join(skill.Keywords, ", "),
		})
	}

	for _, award := range resume.Awards {
		sections.Awards = append(sections.Awards, models.AwardEntry{
			Label:   award.Title,
			Details: award.Awarder,
		})
	}

	return sections
}

func orPresent(date string) string {
	if date == "" {
		return endDateFallback
	}
	return date
}
