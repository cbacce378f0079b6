package handler

// postRequest is the body accepted by create and update. Emptiness is checked
// by the post service so both endpoints share one rule.
type postRequest struct {
	Title   string `json:"title"   form:"title"`
	Content string `json:"content" form:"content"`
	Author  string `json:"author"  form:"author"`
}

type postResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ErrorResponse is the envelope every failed request is rendered in by the
// central error handler.
type ErrorResponse struct {
	Error string `json:"error"`
}
