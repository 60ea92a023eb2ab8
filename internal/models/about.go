package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutKey is the well-known key of the singleton about document. Get-or-create
// upserts against this key so concurrent first reads cannot create duplicates.
const AboutKey = "about:main"

// ExperienceEntry is a work history item. Company and position are required;
// entries missing either are silently discarded during persistence.
type ExperienceEntry struct {
	Company     string     `bson:"company" json:"company"`
	Position    string     `bson:"position" json:"position"`
	StartDate   time.Time  `bson:"start_date" json:"startDate"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Current     bool       `bson:"current" json:"current"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Order       int        `bson:"order" json:"order"`
}

// EducationEntry mirrors ExperienceEntry for education history.
type EducationEntry struct {
	Institution string     `bson:"institution" json:"institution"`
	Degree      string     `bson:"degree" json:"degree"`
	Field       string     `bson:"field,omitempty" json:"field,omitempty"`
	StartDate   *time.Time `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Order       int        `bson:"order" json:"order"`
}

// ResumeFile is an inline-stored resume document.
type ResumeFile struct {
	FileName string `bson:"file_name,omitempty" json:"fileName,omitempty"`
	FileData string `bson:"file_data,omitempty" json:"fileData,omitempty"`
}

// ContactInfo is the public contact block of the about page.
type ContactInfo struct {
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}

// ExperienceStats holds free-form headline figures.
type ExperienceStats struct {
	ProjectsCompleted string `bson:"projects_completed,omitempty" json:"projectsCompleted,omitempty"`
	ClientsSatisfied  string `bson:"clients_satisfied,omitempty" json:"clientsSatisfied,omitempty"`
	YearsExperience   string `bson:"years_experience,omitempty" json:"yearsExperience,omitempty"`
}

// About is the singleton biography document. Array-valued sub-fields are
// wholesale-replaced on update, never merged.
type About struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Key              string             `bson:"key" json:"-"`
	Title            string             `bson:"title" json:"title"`
	ShowProjectIntro bool               `bson:"show_project_intro" json:"showProjectIntro"`
	Bio              string             `bson:"bio" json:"bio"`
	ShortBio         string             `bson:"short_bio,omitempty" json:"shortBio,omitempty"`
	ProfileImage     string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Logo             string             `bson:"logo,omitempty" json:"logo,omitempty"`
	ResumeURL        string             `bson:"resume_url,omitempty" json:"resumeUrl,omitempty"`
	Resume           *ResumeFile        `bson:"resume,omitempty" json:"resume,omitempty"`
	AboutHome1       string             `bson:"about_home_1,omitempty" json:"aboutHome1,omitempty"`
	AboutHome2       string             `bson:"about_home_2,omitempty" json:"aboutHome2,omitempty"`
	AboutHome3       string             `bson:"about_home_3,omitempty" json:"aboutHome3,omitempty"`
	TechStack        []string           `bson:"tech_stack" json:"techStack"`
	Badges           []string           `bson:"badges" json:"badges"`
	Experience       []ExperienceEntry  `bson:"experience" json:"experience"`
	Education        []EducationEntry   `bson:"education" json:"education"`
	SocialLinks      map[string]string  `bson:"social_links,omitempty" json:"socialLinks,omitempty"`
	Contact          *ContactInfo       `bson:"contact,omitempty" json:"contact,omitempty"`
	ExperienceStats  *ExperienceStats   `bson:"experience_stats,omitempty" json:"experienceStats,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
