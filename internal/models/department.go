package models

type Department struct {
	ID       string `gorm:"primaryKey;size:50" json:"id" yaml:"id"`
	Name     string `gorm:"size:100;not null" json:"name" yaml:"name"`
	BranchID string `gorm:"size:50;index;not null" json:"branch_id" yaml:"branch_id"`
}
