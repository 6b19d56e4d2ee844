package application

import (
	"github.com/welderdefender/share-it/internal/domain/booking"
	"github.com/welderdefender/share-it/internal/domain/item"
	"github.com/welderdefender/share-it/internal/domain/request"
	"github.com/welderdefender/share-it/internal/domain/user"
)

func toUserDTO(u user.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toItemDTO(i item.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

func toBookingDTO(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:     b.ID(),
		Status: b.Status().String(),
		Item:   toItemDTO(b.Item()),
		Booker: toUserDTO(b.Booker()),
		Start:  b.Start(),
		End:    b.End(),
	}
}

func toBookingDTOs(bookings []*booking.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos
}

// toBookingRefDTO maps a possibly-nil booking to the short decoration form.
func toBookingRefDTO(b *booking.Booking) *BookingRefDTO {
	if b == nil {
		return nil
	}
	return &BookingRefDTO{
		ID:       b.ID(),
		BookerID: b.Booker().ID,
		Start:    b.Start(),
		End:      b.End(),
	}
}

func toCommentDTO(c *item.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func toRequestDTO(r *request.Request, items []ItemDTO) RequestDTO {
	if items == nil {
		items = []ItemDTO{}
	}
	return RequestDTO{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created,
		Items:       items,
	}
}
