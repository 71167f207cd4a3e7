package models

// ForeignName is a localized card name
type ForeignName struct {
	Language     string `json:"language"`
	Name         string `json:"name"`
	MultiverseID int    `json:"multiverseid,omitempty"`
}

// Card is a card record from the external card database
type Card struct {
	ID           string        `json:"id"`
	Name         string        `json:"name,omitempty"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	Text         string        `json:"text,omitempty"`
	Type         string        `json:"type,omitempty"`
	Types        []string      `json:"types,omitempty"`
	Subtypes     []string      `json:"subtypes,omitempty"`
	SetName      string        `json:"setName,omitempty"`
	ManaCost     string        `json:"manaCost,omitempty"`
	Rarity       string        `json:"rarity,omitempty"`
	ForeignNames []ForeignName `json:"foreignNames,omitempty"`
}

// Ruling is an official ruling attached to a card
type Ruling struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// BanlistEntry is a banned card name with its lazily resolved image
type BanlistEntry struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}
