package domain

import "time"

// Word represents a vocabulary entry owned by a user
type Word struct {
	ID             string
	UserID         string
	OriginalWord   string
	TranslatedWord string
	Explanation    string
	CreatedAt      time.Time
}

// Translation is the structured result extracted from a gateway reply
type Translation struct {
	TranslatedWord string
	Explanation    string
}
