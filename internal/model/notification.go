package model

type Notification struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
	SentAt  string `json:"sentAt"`
}
