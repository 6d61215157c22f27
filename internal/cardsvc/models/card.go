package models

type Card struct {
	ID       int64  `json:"id"`        // Primary key, assigned by the store
	CardName string `json:"card_name"` // Display name, required
	CardPic  string `json:"card_pic"`  // Image reference (URI), required
}
