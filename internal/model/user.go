package model

// User is a jsonplaceholder user record. Only the fields we render are decoded.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

type Address struct {
	City string `json:"city"`
}

type Company struct {
	Name string `json:"name"`
}
