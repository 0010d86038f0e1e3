package domain

import "time"

// ProductImage is one picture of a product
type ProductImage struct {
	ID  string `yaml:"id"`
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Comment is a user review attached to a product
type Comment struct {
	ID        string
	ProductID string
	Username  string
	Text      string
	Rating    float64 // 0..5
	CreatedAt time.Time
}

// Product represents a catalog entry
type Product struct {
	ID           string
	Name         string
	Price        float64
	Rating       float64 // 0..5
	Images       []ProductImage
	Description  string
	ArrivalDate  time.Time
	Comments     []Comment
	TotalRatings int
}

// User is the authenticated account
type User struct {
	ID       string
	Username string
}

// Credentials are what the login form submits
type Credentials struct {
	Username string
	Password string
}

// Session is the result of a successful login
type Session struct {
	Token string
	User  User
}
