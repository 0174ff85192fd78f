package model

type Verse struct {
	Arabic    string `json:"arabic"`
	Bengali   string `json:"bengali"`
	English   string `json:"english"`
	Reference string `json:"reference"`
}
