package rendercv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"resumeforge/pkg/models"
)

func minimalResume() *models.Resume {
	return &models.Resume{
		Basics: &models.Basics{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "+15551234567",
		},
	}
}

func TestConvertMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		resume *models.Resume
		field  string
	}{
		{"nil resume", nil, "basics"},
		{"missing basics", &models.Resume{}, "basics"},
		{
			"missing name",
			&models.Resume{Basics: &models.Basics{Email: "a@b.c", Phone: "1"}},
			"basics.name",
		},
		{
			"missing email",
			&models.Resume{Basics: &models.Basics{Name: "A", Phone: "1"}},
			"basics.email",
		},
		{
			"missing phone",
			&models.Resume{Basics: &models.Basics{Name: "A", Email: "a@b.c"}},
			"basics.phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.resume)
			require.Error(t, err)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestConvertMinimalResume(t *testing.T) {
	cv, err := Convert(minimalResume())
	require.NoError(t, err)

	require.Equal(t, "Jane Doe", cv.Name)
	require.Equal(t, "jane@example.com", cv.Email)
	require.Equal(t, "+15551234567", cv.Phone)
	require.Equal(t, "", cv.Location)
	require.Equal(t, "", cv.Website)
	require.NotNil(t, cv.SocialNetworks)
	require.Empty(t, cv.SocialNetworks)
	require.True(t, cv.Sections.IsEmpty())

	// sections must serialize as an empty mapping, social_networks as an
	// empty sequence
	data, err := yaml.Marshal(cv)
	require.NoError(t, err)
	require.Contains(t, string(data), "sections: {}")
	require.Contains(t, string(data), "social_networks: []")
}

func TestConvertLocation(t *testing.T) {
	resume := minimalResume()
	resume.Basics.Location = &models.Location{City: "Berlin", CountryCode: "DE"}

	cv, err := Convert(resume)
	require.NoError(t, err)
	require.Equal(t, "Berlin, DE", cv.Location)
}

func TestConvertProfiles(t *testing.T) {
	tests := []struct {
		name     string
		profile  models.Profile
		expected models.SocialNetwork
	}{
		{
			"linkedin is preserved",
			models.Profile{Network: "LinkedIn", Username: "jdoe"},
			models.SocialNetwork{Network: "LinkedIn", Username: "jdoe"},
		},
		{
			"github case-insensitive",
			models.Profile{Network: "GITHUB", Username: "jdoe"},
			models.SocialNetwork{Network: "GitHub", Username: "jdoe"},
		},
		{
			"unknown network defaults to GitHub",
			models.Profile{Network: "twitter", Username: "x"},
			models.SocialNetwork{Network: "GitHub", Username: "x"},
		},
		{
			"missing network and username",
			models.Profile{},
			models.SocialNetwork{Network: "GitHub", Username: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume := minimalResume()
			resume.Basics.Profiles = []models.Profile{tt.profile}

			cv, err := Convert(resume)
			require.NoError(t, err)
			require.Equal(t, []models.SocialNetwork{tt.expected}, cv.SocialNetworks)
		})
	}
}

func TestConvertSummary(t *testing.T) {
	resume := minimalResume()
	resume.Basics.Summary = "Seasoned engineer."

	cv, err := Convert(resume)
	require.NoError(t, err)
	require.Equal(t, []string{"Seasoned engineer."}, cv.Sections.Summary)
}

func TestConvertEducation(t *testing.T) {
	resume := minimalResume()
	resume.Education = []models.Education{
		{
			Institution: "MIT",
			Area:        "Computer Science",
			StudyType:   "BSc",
			StartDate:   "2015-09-01",
			EndDate:     "2019-06-01",
			Courses:     []string{"Algorithms", "Operating Systems"},
		},
		{
			Institution: "Stanford",
			Area:        "AI",
			StudyType:   "MSc",
			StartDate:   "2019-09-01",
			// no end date, no courses
		},
	}

	cv, err := Convert(resume)
	require.NoError(t, err)
	require.Len(t, cv.Sections.Education, 2)

	first := cv.Sections.Education[0]
	require.Equal(t, "MIT", first.Institution)
	require.Equal(t, "Computer Science", first.Area)
	require.Equal(t, "BSc", first.Degree)
	require.Equal(t, "2015-09-01", first.StartDate)
	require.Equal(t, "2019-06-01", first.EndDate)
	require.Equal(t, []string{"Algorithms", "Operating Systems"}, first.Highlights)

	second := cv.Sections.Education[1]
	require.Equal(t, "present", second.EndDate)
	require.Empty(t, second.Highlights)

	// absent courses still serialize as an empty sequence
	data, err := yaml.Marshal(cv)
	require.NoError(t, err)
	require.Contains(t, string(data), "highlights: []")
}

func TestConvertWorkEndDateDefaultsToPresent(t *testing.T) {
	resume := minimalResume()
	resume.Work = []models.Work{
		{
			Name:      "Acme Corp",
			Position:  "Engineer",
			StartDate: "2020-01-01",
			// no endDate, no location, no highlights
		},
	}

	cv, err := Convert(resume)
	require.NoError(t, err)
	require.Len(t, cv.Sections.Experience, 1)

	job := cv.Sections.Experience[0]
	require.Equal(t, "Acme Corp", job.Company)
	require.Equal(t, "Engineer", job.Position)
	require.Equal(t, "", job.Location)
	require.Equal(t, "present", job.EndDate)
	require.Empty(t, job.Highlights)
}

func TestConvertPublications(t *testing.T) {
	doi := "10.1000/182"
	resume := minimalResume()
	resume.Publications = []models.Publication{
		{
			Name:        "A Paper",
			Authors:     []string{"Jane Doe", "John Smith"},
			ReleaseDate: "2021-05-01",
			DOI:         &doi,
		},
	}

	cv, err := Convert(resume)
	require.NoError(t, err)
	require.Len(t, cv.Sections.Publications, 1)

	pub := cv.Sections.Publications[0]
	require.Equal(t, "A Paper", pub.Title)
	require.Equal(t, []string{"Jane Doe", "John Smith"}, pub.Authors)
	require.Equal(t, "2021-05-01", pub.Date)
	require.Equal(t, &doi, pub.DOI)
	require.Nil(t, pub.URL)
}

func TestConvertProjects(t *testing.T) {
	resume := minimalResume()
	resume.Projects = []models.Project{
		{Name: "Sideproject", Description: "A tool.", StartDate: "2022-01-01"},
		{Name: "Undated"},
	}

	cv, err := Convert(resume)
	require.NoError(t, err)
	require.Len(t, cv.Sections.Projects, 2)

	require.Equal(t, "2022-01-01", cv.Sections.Projects[0].Date)
	require.Equal(t, []string{"A tool."}, cv.Sections.Projects[0].Highlights)

	require.Equal(t, "", cv.Sections.Projects[1].Date)
	require.Equal(t, []string{""}, cv.Sections.Projects[1].Highlights)
}

func TestConvertSkillsAndAwards(t *testing.T) {
	resume := minimalResume()
	resume.Skills = []models.Skill{
		{Name: "Languages", Keywords: []string{"Go", "Python", "SQL"}},
	}
	resume.Awards = []models.Award{
		{Title: "Best Paper", Awarder: "ACM"},
	}

	cv, err := Convert(resume)
	require.NoError(t, err)

	require.Equal(t, []models.TechnologyEntry{
		{Label: "Languages", Details: "Go, Python, SQL"},
	}, cv.Sections.Technologies)

	require.Equal(t, []models.AwardEntry{
		{Label: "Best Paper", Details: "ACM"},
	}, cv.Sections.Awards)
}

func TestConvertOmitsEmptySections(t *testing.T) {
	resume := minimalResume()
	// explicitly empty lists behave like absent ones
	resume.Education = []models.Education{}
	resume.Work = []models.Work{}
	resume.Skills = []models.Skill{}

	cv, err := Convert(resume)
	require.NoError(t, err)
	require.True(t, cv.Sections.IsEmpty())

	data, err := yaml.Marshal(cv)
	require.NoError(t, err)
	for _, key := range []string{"education", "experience", "technologies"} {
		require.NotContains(t, string(data), key+":")
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	resume := fullResume()

	first, err := Convert(resume)
	require.NoError(t, err)
	second, err := Convert(resume)
	require.NoError(t, err)

	firstYAML, err := yaml.Marshal(first)
	require.NoError(t, err)
	secondYAML, err := yaml.Marshal(second)
	require.NoError(t, err)

	require.Equal(t, string(firstYAML), string(secondYAML))
}

func TestSectionKeyOrderIsStable(t *testing.T) {
	cv, err := Convert(fullResume())
	require.NoError(t, err)

	data, err := yaml.Marshal(cv)
	require.NoError(t, err)
	text := string(data)

	order := []string{"summary:", "education:", "experience:", "publications:", "projects:", "technologies:", "awards:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		require.GreaterOrEqual(t, idx, 0, "missing section key %s", key)
		require.Greater(t, idx, last, "section %s out of order", key)
		last = idx
	}
}

func fullResume() *models.Resume {
	resume := minimalResume()
	resume.Basics.Summary = "Summary."
	resume.Education = []models.Education{{Institution: "MIT", StartDate: "2015"}}
	resume.Work = []models.Work{{Name: "Acme", Position: "Dev", StartDate: "2019"}}
	resume.Publications = []models.Publication{{Name: "Paper", ReleaseDate: "2021"}}
	resume.Projects = []models.Project{{Name: "Tool", Description: "Desc"}}
	resume.Skills = []models.Skill{{Name: "Langs", Keywords: []string{"Go"}}}
	resume.Awards = []models.Award{{Title: "Prize", Awarder: "Org"}}
	return resume
}
