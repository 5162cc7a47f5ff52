package models

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	BaseModel
	Name     string `json:"name"`
	Location string `json:"location"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
}

// BlogPost is a styling-tips article card.
type BlogPost struct {
	BaseModel
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
}
