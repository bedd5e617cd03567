package models

import "time"

type Employee struct {
	ID                   string  `json:"id"`
	ChartID              string  `json:"chart_id"`
	Name                 string  `json:"name"`
	Title                string  `json:"title"`
	Salary               float64 `json:"salary"`
	Boss                 *string `json:"boss"`
	BossID               *string `json:"boss_id"`
	NumberOfSubordinates int     `json:"number_of_subordinates"`
	PeopleToRoot         int     `json:"people_to_root"`
	TotalEmployees       int     `json:"total_employees,omitempty"`
}

type Chart struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Roots          []string  `json:"roots"`
	Headcount      int       `json:"headcount"`
	TotalEmployees int       `json:"total_employees,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type EmployeeInput struct {
	Name   string  `json:"name" validate:"required,min=1,max=100,personname"`
	Title  string  `json:"title" validate:"max=100"`
	Salary float64 `json:"salary" validate:"gte=0"`
}

type CreateChartRequest struct {
	Name string        `json:"name" validate:"required,min=2,max=100,chartname"`
	Root EmployeeInput `json:"root"`
}

type HireRequest struct {
	EmployeeInput
	ManagerID string `json:"manager_id" validate:"omitempty,uuid"`
}

type AttachRequest struct {
	SubordinateID string `json:"subordinate_id" validate:"required,uuid"`
}
