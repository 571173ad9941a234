package models

// Category identifies one document kind in the checklist flow. The values
// double as wire keys, so they must stay in sync with the server.
type Category string

const (
	CategoryTenth          Category = "tenth"
	CategoryTwelfth        Category = "twelfth"
	CategoryGraduation     Category = "graduation"
	CategoryPostGraduation Category = "postGraduation"
	CategoryAadhaar        Category = "aadhaar"
	CategoryPAN            Category = "pan"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryTenth,
	CategoryTwelfth,
	CategoryGraduation,
	CategoryPostGraduation,
	CategoryAadhaar,
	CategoryPAN,
}

var categoryLabels = map[Category]string{
	CategoryTenth:          "10th Marksheet",
	CategoryTwelfth:        "12th Marksheet",
	CategoryGraduation:     "Graduation Marksheet",
	CategoryPostGraduation: "Post Graduation Marksheet (If Any)",
	CategoryAadhaar:        "Aadhaar Card",
	CategoryPAN:            "PAN Card",
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ChecklistItem is one still-missing document category. Presence of an item
// means the category is missing on the server; FileName is the display name
// of the locally selected file, empty until the user picks one.
type ChecklistItem struct {
	Category Category
	Label    string
	FileName string
}

// ChecklistRecord is the server's view of a candidate's document record:
// which categories are already on file.
type ChecklistRecord struct {
	RecordID string            `json:"recordId"`
	Present  map[Category]bool `json:"present"`
}

// Profile carries the candidate identity fields sent with checklist saves.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LeadForm is the application form submitted through the lead pipeline.
type LeadForm struct {
	JobID         string `json:"jobId"`
	JobName       string `json:"jobName"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Skills        string `json:"skills"`
	Experience    string `json:"experience"`
	Qualification string `json:"qualification"`
	Location      string `json:"location"`
	FileName      string `json:"fileName"`
	Base64Data    string `json:"base64Data"`
}
