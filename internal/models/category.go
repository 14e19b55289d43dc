package models

// Category groups transactions. Titles are unique and matched exactly,
// including case.
type Category struct {
	DefaultModel
	Title string `json:"title" gorm:"uniqueIndex:category_title" example:"Food"` // Title of the category
}
