// Package domain holds the company profile type.
package domain

import "time"

// Company is the single-tenant shop profile shown in the storefront
// footer and used to build the checkout deep link.
type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Instagram   string    `json:"instagram"`
	Facebook    string    `json:"facebook"`
	LogoURL     string    `json:"logo_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}
