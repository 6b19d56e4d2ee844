package application

import "time"

// UserDTO is the response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemDTO is the response representation of an item.
type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// BookingDTO is the full response representation of a booking, with item and
// booker snapshots populated.
type BookingDTO struct {
	ID     int64     `json:"id"`
	Status string    `json:"status"`
	Item   ItemDTO   `json:"item"`
	Booker UserDTO   `json:"booker"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// BookingRefDTO is the short booking form used to decorate item views.
type BookingRefDTO struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// CommentDTO is the response representation of an item comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDetailDTO is an item with its comments and, for the owner, the
// last/next booking decoration.
type ItemDetailDTO struct {
	ItemDTO
	LastBooking *BookingRefDTO `json:"lastBooking"`
	NextBooking *BookingRefDTO `json:"nextBooking"`
	Comments    []CommentDTO   `json:"comments"`
}

// RequestDTO is the response representation of an item request, with the
// items answering it.
type RequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}
