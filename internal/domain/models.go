package domain

// Category is the synthetic job category
type Category string

const (
	CategoryIT        Category = "IT"
	CategoryDesign    Category = "Design"
	CategoryMarketing Category = "Marketing"
)

// Categories lists every category in display order
var Categories = []Category{CategoryIT, CategoryDesign, CategoryMarketing}

// Location is the synthetic work arrangement
type Location string

const (
	LocationRemote Location = "Remote"
	LocationOnSite Location = "On-site"
	LocationHybrid Location = "Hybrid"
)

// Locations lists every location in display order
var Locations = []Location{LocationRemote, LocationOnSite, LocationHybrid}

// PostedDateLayout is the ISO calendar date used for PostedDate
const PostedDateLayout = "2006-01-02"

// Post is a raw record from the job source before decoration
type Post struct {
	ID     string
	UserID int
	Title  string
	Body   string
}

// Attributes are the synthetic display fields attached to a post
type Attributes struct {
	JobID      string   `json:"jobId"`
	Salary     string   `json:"salary"`
	Category   Category `json:"category"`
	Location   Location `json:"location"`
	PostedDate string   `json:"postedDate"`
}

// JobRecord is a decorated post ready for display
type JobRecord struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body,omitempty"`
	UserID     int      `json:"userId,omitempty"`
	Salary     string   `json:"salary"`
	Category   Category `json:"category"`
	Location   Location `json:"location"`
	PostedDate string   `json:"postedDate"`
}

// NewJobRecord combines a post with its attributes
func NewJobRecord(p Post, a Attributes) JobRecord {
	return JobRecord{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		UserID:     p.UserID,
		Salary:     a.Salary,
		Category:   a.Category,
		Location:   a.Location,
		PostedDate: a.PostedDate,
	}
}

// ValidCategory reports whether c is one of Categories
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
