package domain

import "time"

// Papa is a bookable rental dad. Only the birth date is persisted; the age
// is always derived at read time so it can never be edited by hand.
type Papa struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	RUT           string    `json:"rut"`
	BirthDate     time.Time `json:"birth_date"`
	Nationality   string    `json:"nationality"`
	Occupation    string    `json:"occupation"`
	MaritalStatus string    `json:"marital_status"`
	ChildrenCount int       `json:"children_count"`
	Hobbies       string    `json:"hobbies"`
	PapaType      string    `json:"papa_type"`
	Motto         string    `json:"motto"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	ImageURL      string    `json:"image_url"`
}

// AgeAt returns the papa's age in whole years at the given instant.
func (p *Papa) AgeAt(now time.Time) int {
	years := now.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// Age returns the papa's current age.
func (p *Papa) Age() int { return p.AgeAt(time.Now().UTC()) }
