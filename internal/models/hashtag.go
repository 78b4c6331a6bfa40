package models

// HashtagCount is one trending entry: a tag and the number of posts carrying it.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
