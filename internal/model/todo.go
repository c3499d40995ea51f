package model

// Todo is one entry of the jsonplaceholder todo list.
// It lives only as long as the page that fetched it.
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
