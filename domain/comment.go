package domain

import "time"

// Comment is a single guestbook or chatroom message. Age and Location
// are only present for chatroom messages.
type Comment struct {
	Username  string `json:"username"`
	Age       string `json:"age,omitempty"`
	Location  string `json:"location,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Identity is the locally cached chat identity of this user.
type Identity struct {
	Username   string `json:"username"`
	Age        string `json:"age"`
	Location   string `json:"location"`
	ColorClass string `json:"colorClass"`
}

// Complete reports whether every chatroom identity field is filled in.
func (id Identity) Complete() bool {
	return id.Username != "" && id.Age != "" && id.Location != ""
}

// Day returns the calendar date of the message as YYYY-MM-DD for
// date-divider grouping, or the raw timestamp when unparsable.
func (c Comment) Day() string {
	t, err := time.Parse(time.RFC3339, c.Timestamp)
	if err != nil {
		return c.Timestamp
	}
	return t.Format("2006-01-02")
}

// Clock returns the HH:MM display time of the message.
func (c Comment) Clock() string {
	t, err := time.Parse(time.RFC3339, c.Timestamp)
	if err != nil {
		return ""
	}
	return t.Format("15:04")
}
