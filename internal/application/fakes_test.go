package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/welderdefender/share-it/internal/domain"
	bookingDomain "github.com/welderdefender/share-it/internal/domain/booking"
	itemDomain "github.com/welderdefender/share-it/internal/domain/item"
	requestDomain "github.com/welderdefender/share-it/internal/domain/request"
	userDomain "github.com/welderdefender/share-it/internal/domain/user"
	"github.com/welderdefender/share-it/internal/pagination"
)

// --- user repository fake ---

type fakeUserRepo struct {
	users       map[int64]*userDomain.User
	nextID      int64
	existsCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*userDomain.User)}
}

func (f *fakeUserRepo) seed(u userDomain.User) userDomain.User {
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = &u
	return u
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*userDomain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", "user with this id was not found")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.existsCalls++
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*userDomain.User, error) {
	out := make([]*userDomain.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) Save(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, domain.NewConflictError("user with this email already exists")
		}
	}
	f.nextID++
	u.ID = f.nextID
	copied := *u
	f.users[u.ID] = &copied
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email && existing.ID != u.ID {
			return nil, domain.NewConflictError("user with this email already exists")
		}
	}
	copied := *u
	f.users[u.ID] = &copied
	return u, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

// --- item repository fake ---

type fakeItemRepo struct {
	items       map[int64]*itemDomain.Item
	nextID      int64
	searchCalls int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int64]*itemDomain.Item)}
}

func (f *fakeItemRepo) seed(i itemDomain.Item) itemDomain.Item {
	f.nextID++
	i.ID = f.nextID
	f.items[i.ID] = &i
	return i
}

func (f *fakeItemRepo) FindByID(_ context.Context, id int64) (*itemDomain.Item, error) {
	i, ok := f.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("item", "item with this id was not found")
	}
	copied := *i
	return &copied, nil
}

func (f *fakeItemRepo) ExistsByOwnerID(_ context.Context, ownerID int64) (bool, error) {
	for _, i := range f.items {
		if i.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItemRepo) FindByOwnerID(_ context.Context, ownerID int64, page pagination.Page) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, i := range f.items {
		if i.OwnerID == ownerID {
			copied := *i
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pageItems(out, page), nil
}

func (f *fakeItemRepo) FindByRequestIDs(_ context.Context, requestIDs []int64) ([]*itemDomain.Item, error) {
	wanted := make(map[int64]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = struct{}{}
	}
	var out []*itemDomain.Item
	for _, i := range f.items {
		if i.RequestID == nil {
			continue
		}
		if _, ok := wanted[*i.RequestID]; ok {
			copied := *i
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Search(_ context.Context, text string, page pagination.Page) ([]*itemDomain.Item, error) {
	f.searchCalls++
	var out []*itemDomain.Item
	for _, i := range f.items {
		if i.Available && (containsFold(i.Name, text) || containsFold(i.Description, text)) {
			copied := *i
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return pageItems(out, page), nil
}

func (f *fakeItemRepo) Save(_ context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	f.nextID++
	i.ID = f.nextID
	copied := *i
	f.items[i.ID] = &copied
	return i, nil
}

func (f *fakeItemRepo) Update(_ context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	copied := *i
	f.items[i.ID] = &copied
	return i, nil
}

func pageItems(items []*itemDomain.Item, page pagination.Page) []*itemDomain.Item {
	if page.Offset() >= len(items) {
		return nil
	}
	end := page.Offset() + page.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset():end]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// --- booking repository fake ---

type fakeBookingRepo struct {
	bookings  map[int64]*bookingDomain.Booking
	nextID    int64
	listCalls int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*bookingDomain.Booking)}
}

func (f *fakeBookingRepo) seed(it itemDomain.Item, booker userDomain.User, status bookingDomain.Status, start, end time.Time) *bookingDomain.Booking {
	f.nextID++
	b := bookingDomain.Reconstruct(f.nextID, it, booker, status, start, end)
	f.bookings[b.ID()] = b
	return b
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id int64) (*bookingDomain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking", "booking with this id was not found")
	}
	return b, nil
}

func (f *fakeBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	f.nextID++
	b.SetID(f.nextID)
	f.bookings[b.ID()] = b
	return b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, decide func(*bookingDomain.Booking) error) (*bookingDomain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking", "booking with this id was not found")
	}
	if err := decide(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (f *fakeBookingRepo) FindByBookerID(_ context.Context, bookerID int64, filter bookingDomain.StateFilter, now time.Time, page pagination.Page) ([]*bookingDomain.Booking, error) {
	f.listCalls++
	return f.list(func(b *bookingDomain.Booking) bool { return b.Booker().ID == bookerID }, filter, now, page), nil
}

func (f *fakeBookingRepo) FindByOwnerID(_ context.Context, ownerID int64, filter bookingDomain.StateFilter, now time.Time, page pagination.Page) ([]*bookingDomain.Booking, error) {
	f.listCalls++
	return f.list(func(b *bookingDomain.Booking) bool { return b.Item().OwnerID == ownerID }, filter, now, page), nil
}

func (f *fakeBookingRepo) FindLastForItem(_ context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var last *bookingDomain.Booking
	for _, b := range f.bookings {
		if b.Item().ID != itemID || !b.End().Before(now) {
			continue
		}
		if last == nil || b.Start().After(last.Start()) {
			last = b
		}
	}
	return last, nil
}

func (f *fakeBookingRepo) FindNextForItem(_ context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var next *bookingDomain.Booking
	for _, b := range f.bookings {
		if b.Item().ID != itemID || !b.Start().After(now) {
			continue
		}
		if next == nil || b.Start().Before(next.Start()) {
			next = b
		}
	}
	return next, nil
}

func (f *fakeBookingRepo) FindFirstEndingByItemAndBooker(_ context.Context, itemID, bookerID int64) (*bookingDomain.Booking, error) {
	var first *bookingDomain.Booking
	for _, b := range f.bookings {
		if b.Item().ID != itemID || b.Booker().ID != bookerID {
			continue
		}
		if first == nil || b.End().Before(first.End()) {
			first = b
		}
	}
	return first, nil
}

func (f *fakeBookingRepo) list(match func(*bookingDomain.Booking) bool, filter bookingDomain.StateFilter, now time.Time, page pagination.Page) []*bookingDomain.Booking {
	var out []*bookingDomain.Booking
	for _, b := range f.bookings {
		if match(b) && matchesFilter(b, filter, now) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().After(out[j].Start()) })
	if page.Offset() >= len(out) {
		return nil
	}
	end := page.Offset() + page.Limit()
	if end > len(out) {
		end = len(out)
	}
	return out[page.Offset():end]
}

func matchesFilter(b *bookingDomain.Booking, filter bookingDomain.StateFilter, now time.Time) bool {
	switch filter {
	case bookingDomain.FilterAll:
		return true
	case bookingDomain.FilterCurrent:
		return !b.Start().After(now) && !b.End().Before(now)
	case bookingDomain.FilterPast:
		return b.End().Before(now)
	case bookingDomain.FilterFuture:
		return b.Start().After(now)
	default:
		status, _ := filter.Status()
		return b.Status() == status
	}
}

// --- request repository fake ---

type fakeRequestRepo struct {
	requests map[int64]*requestDomain.Request
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]*requestDomain.Request)}
}

func (f *fakeRequestRepo) seed(r requestDomain.Request) requestDomain.Request {
	f.nextID++
	r.ID = f.nextID
	f.requests[r.ID] = &r
	return r
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id int64) (*requestDomain.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.NewNotFoundError("request", "request with this id was not found")
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRequestRepo) FindByRequestorID(_ context.Context, requestorID int64) ([]*requestDomain.Request, error) {
	var out []*requestDomain.Request
	for _, r := range f.requests {
		if r.RequestorID == requestorID {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	return out, nil
}

func (f *fakeRequestRepo) FindAllExcept(_ context.Context, requestorID int64, page pagination.Page) ([]*requestDomain.Request, error) {
	var out []*requestDomain.Request
	for _, r := range f.requests {
		if r.RequestorID != requestorID {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	if page.Offset() >= len(out) {
		return nil, nil
	}
	end := page.Offset() + page.Limit()
	if end > len(out) {
		end = len(out)
	}
	return out[page.Offset():end], nil
}

func (f *fakeRequestRepo) Save(_ context.Context, r *requestDomain.Request) (*requestDomain.Request, error) {
	f.nextID++
	r.ID = f.nextID
	copied := *r
	f.requests[r.ID] = &copied
	return r, nil
}

// --- comment repository fake ---

type fakeCommentRepo struct {
	comments map[int64]*itemDomain.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*itemDomain.Comment)}
}

func (f *fakeCommentRepo) Save(_ context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	f.nextID++
	copied := *c
	copied.ID = f.nextID
	f.comments[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeCommentRepo) FindByItemID(_ context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var out []*itemDomain.Comment
	for _, c := range f.comments {
		if c.ItemID == itemID {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}
