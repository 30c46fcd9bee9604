package model

import "time"

// Message is a directed note between two principals. Append-only: there is no
// edit or delete. The Participants pair duplicates sender/receiver for
// query-ability, mirroring the stored participants column.
type Message struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	ReceiverID   string    `json:"receiver_id"`
	Participants [2]string `json:"participants"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

// Between reports whether the message belongs to the conversation between a
// and b, in either direction.
func (m *Message) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) ||
		(m.SenderID == b && m.ReceiverID == a)
}
