package domain

// DirectMessage is an incoming customer message forwarded to product retrieval
type DirectMessage struct {
	SenderID  string `json:"sender_id" binding:"required,min=1,max=100,safeid"`
	MessageID string `json:"message_id" binding:"required,min=1,max=100,safeid"`
	Text      string `json:"text" binding:"required,min=1"`
}

// MessageReply carries the products retrieved for a DirectMessage
type MessageReply struct {
	MessageID string    `json:"message_id"`
	Query     string    `json:"query"`
	Products  []Product `json:"products"`
	Count     int       `json:"count"`
}

// SearchResponse is returned by the product search endpoint
type SearchResponse struct {
	Query    string    `json:"query"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}
