package models

// Branch is a clinic location. Reference data, never mutated at runtime.
type Branch struct {
	ID   string `gorm:"primaryKey;size:50" json:"id" yaml:"id"`
	Name string `gorm:"size:100;not null" json:"name" yaml:"name"`
}
