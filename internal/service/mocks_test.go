package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/tkachuk2291/planetarium-api-service/internal/domain"
	"github.com/tkachuk2291/planetarium-api-service/internal/repository"
)

// MockThemeRepository is an in-memory ThemeRepository
type MockThemeRepository struct {
	themes    map[int64]*domain.ShowTheme
	nextID    int64
	createErr error
}

func NewMockThemeRepository() *MockThemeRepository {
	return &MockThemeRepository{themes: make(map[int64]*domain.ShowTheme), nextID: 1}
}

func (m *MockThemeRepository) Create(ctx context.Context, theme *domain.ShowTheme) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.themes {
		if existing.Name == theme.Name {
			return domain.ErrThemeNameTaken
		}
	}
	theme.ID = m.nextID
	m.nextID++
	m.themes[theme.ID] = theme
	return nil
}

func (m *MockThemeRepository) GetByID(ctx context.Context, id int64) (*domain.ShowTheme, error) {
	theme, ok := m.themes[id]
	if !ok {
		return nil, domain.ErrThemeNotFound
	}
	return theme, nil
}

func (m *MockThemeRepository) List(ctx context.Context, filter *repository.ThemeFilter) ([]*domain.ShowTheme, error) {
	var out []*domain.ShowTheme
	for id := int64(1); id < m.nextID; id++ {
		theme, ok := m.themes[id]
		if !ok {
			continue
		}
		if filter != nil && filter.Name != "" &&
			!strings.Contains(strings.ToLower(theme.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, theme)
	}
	return out, nil
}

func (m *MockThemeRepository) Update(ctx context.Context, theme *domain.ShowTheme) error {
	if _, ok := m.themes[theme.ID]; !ok {
		return domain.ErrThemeNotFound
	}
	for id, existing := range m.themes {
		if id != theme.ID && existing.Name == theme.Name {
			return domain.ErrThemeNameTaken
		}
	}
	m.themes[theme.ID] = theme
	return nil
}

func (m *MockThemeRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.themes[id]; !ok {
		return domain.ErrThemeNotFound
	}
	delete(m.themes, id)
	return nil
}

func (m *MockThemeRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.ShowTheme, error) {
	var out []*domain.ShowTheme
	for _, id := range ids {
		if theme, ok := m.themes[id]; ok {
			out = append(out, theme)
		}
	}
	return out, nil
}

// MockShowRepository is an in-memory ShowRepository
type MockShowRepository struct {
	shows     map[int64]*domain.AstronomyShow
	nextID    int64
	createErr error
}

func NewMockShowRepository() *MockShowRepository {
	return &MockShowRepository{shows: make(map[int64]*domain.AstronomyShow), nextID: 1}
}

func (m *MockShowRepository) Create(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.shows {
		if existing.Title == show.Title {
			return domain.ErrShowTitleTaken
		}
	}
	show.ID = m.nextID
	m.nextID++
	m.shows[show.ID] = show
	return nil
}

func (m *MockShowRepository) GetByID(ctx context.Context, id int64) (*domain.AstronomyShow, error) {
	show, ok := m.shows[id]
	if !ok {
		return nil, domain.ErrShowNotFound
	}
	return show, nil
}

func (m *MockShowRepository) List(ctx context.Context, filter *repository.ShowFilter) ([]*domain.AstronomyShow, error) {
	var out []*domain.AstronomyShow
	for id := int64(1); id < m.nextID; id++ {
		show, ok := m.shows[id]
		if !ok {
			continue
		}
		if filter != nil {
			if filter.Title != "" && !strings.Contains(strings.ToLower(show.Title), strings.ToLower(filter.Title)) {
				continue
			}
			if filter.Description != "" && !strings.Contains(strings.ToLower(show.Description), strings.ToLower(filter.Description)) {
				continue
			}
			if filter.ThemeName != "" {
				matched := false
				for _, theme := range show.Themes {
					if strings.Contains(strings.ToLower(theme.Name), strings.ToLower(filter.ThemeName)) {
						matched = true
						break
					}
				}
				if !matched {
					continue
				}
			}
		}
		out = append(out, show)
	}
	return out, nil
}

func (m *MockShowRepository) Update(ctx context.Context, show *domain.AstronomyShow, themeIDs []int64) error {
	if _, ok := m.shows[show.ID]; !ok {
		return domain.ErrShowNotFound
	}
	for id, existing := range m.shows {
		if id != show.ID && existing.Title == show.Title {
			return domain.ErrShowTitleTaken
		}
	}
	m.shows[show.ID] = show
	return nil
}

func (m *MockShowRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.shows[id]; !ok {
		return domain.ErrShowNotFound
	}
	delete(m.shows, id)
	return nil
}

func (m *MockShowRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	show, ok := m.shows[id]
	if !ok {
		return domain.ErrShowNotFound
	}
	show.Image = &image
	return nil
}

// MockDomeRepository is an in-memory DomeRepository
type MockDomeRepository struct {
	domes  map[int64]*domain.PlanetariumDome
	nextID int64
}

func NewMockDomeRepository() *MockDomeRepository {
	return &MockDomeRepository{domes: make(map[int64]*domain.PlanetariumDome), nextID: 1}
}

func (m *MockDomeRepository) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	for _, existing := range m.domes {
		if existing.Name == dome.Name {
			return domain.ErrDomeNameTaken
		}
	}
	dome.ID = m.nextID
	m.nextID++
	m.domes[dome.ID] = dome
	return nil
}

func (m *MockDomeRepository) GetByID(ctx context.Context, id int64) (*domain.PlanetariumDome, error) {
	dome, ok := m.domes[id]
	if !ok {
		return nil, domain.ErrDomeNotFound
	}
	return dome, nil
}

func (m *MockDomeRepository) List(ctx context.Context, filter *repository.DomeFilter) ([]*domain.PlanetariumDome, error) {
	var out []*domain.PlanetariumDome
	for id := int64(1); id < m.nextID; id++ {
		dome, ok := m.domes[id]
		if !ok {
			continue
		}
		if filter != nil {
			if filter.Name != "" && !strings.Contains(strings.ToLower(dome.Name), strings.ToLower(filter.Name)) {
				continue
			}
			if filter.Rows != nil && dome.Rows != *filter.Rows {
				continue
			}
			if filter.SeatsInRow != nil && dome.SeatsInRow != *filter.SeatsInRow {
				continue
			}
		}
		out = append(out, dome)
	}
	return out, nil
}

func (m *MockDomeRepository) Update(ctx context.Context, dome *domain.PlanetariumDome) error {
	if _, ok := m.domes[dome.ID]; !ok {
		return domain.ErrDomeNotFound
	}
	for id, existing := range m.domes {
		if id != dome.ID && existing.Name == dome.Name {
			return domain.ErrDomeNameTaken
		}
	}
	m.domes[dome.ID] = dome
	return nil
}

func (m *MockDomeRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.domes[id]; !ok {
		return domain.ErrDomeNotFound
	}
	delete(m.domes, id)
	return nil
}

func (m *MockDomeRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	dome, ok := m.domes[id]
	if !ok {
		return domain.ErrDomeNotFound
	}
	dome.Image = &image
	return nil
}

// MockSessionRepository is an in-memory SessionRepository
type MockSessionRepository struct {
	sessions map[int64]*domain.ShowSession
	nextID   int64
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{sessions: make(map[int64]*domain.ShowSession), nextID: 1}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.ShowSession) error {
	session.ID = m.nextID
	m.nextID++
	m.sessions[session.ID] = session
	return nil
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id int64) (*domain.ShowSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionRepository) Update(ctx context.Context, session *domain.ShowSession) error {
	if _, ok := m.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionRepository) List(ctx context.Context, filter *repository.SessionFilter) ([]*domain.ShowSession, error) {
	var out []*domain.ShowSession
	for id := int64(1); id < m.nextID; id++ {
		session, ok := m.sessions[id]
		if !ok {
			continue
		}
		if filter != nil {
			if filter.ShowTitle != "" && !strings.Contains(strings.ToLower(session.Show.Title), strings.ToLower(filter.ShowTitle)) {
				continue
			}
			if filter.DomeName != "" && !strings.Contains(strings.ToLower(session.Dome.Name), strings.ToLower(filter.DomeName)) {
				continue
			}
			if filter.ShowTime != nil && !session.ShowTime.Equal(*filter.ShowTime) {
				continue
			}
		}
		out = append(out, session)
	}
	return out, nil
}

// seatKey identifies a seat within a session
type seatKey struct {
	sessionID int64
	row       int
	seat      int
}

// MockTicketRepository is an in-memory TicketRepository enforcing the
// per-session seat uniqueness constraint
type MockTicketRepository struct {
	tickets    map[int64]*domain.Ticket
	taken      map[seatKey]bool
	themeNames map[int64][]string
	nextID     int64
}

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{
		tickets:    make(map[int64]*domain.Ticket),
		taken:      make(map[seatKey]bool),
		themeNames: make(map[int64][]string),
		nextID:     1,
	}
}

func (m *MockTicketRepository) CreateWithReservation(ctx context.Context, userID int64, ticket *domain.Ticket) error {
	key := seatKey{sessionID: ticket.ShowSessionID, row: ticket.Row, seat: ticket.Seat}
	if m.taken[key] {
		return domain.ErrSeatTaken
	}
	m.taken[key] = true

	ticket.ID = m.nextID
	ticket.ReservationID = m.nextID
	ticket.OwnerID = userID
	ticket.ReservedAt = time.Now()
	m.nextID++
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, ok := m.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}

func (m *MockTicketRepository) ListByUser(ctx context.Context, userID int64, filter *repository.TicketFilter) ([]*domain.Ticket, error) {
	var out []*domain.Ticket
	for id := int64(1); id < m.nextID; id++ {
		ticket, ok := m.tickets[id]
		if !ok || ticket.OwnerID != userID {
			continue
		}
		if filter != nil {
			if filter.ShowTitle != "" && !strings.Contains(strings.ToLower(ticket.ShowTitle), strings.ToLower(filter.ShowTitle)) {
				continue
			}
			if filter.DomeName != "" && !strings.Contains(strings.ToLower(ticket.DomeName), strings.ToLower(filter.DomeName)) {
				continue
			}
			if filter.OwnerUsername != "" && !strings.Contains(strings.ToLower(ticket.OwnerUsername), strings.ToLower(filter.OwnerUsername)) {
				continue
			}
		}
		out = append(out, ticket)
	}
	return out, nil
}

func (m *MockTicketRepository) ThemeNames(ctx context.Context, ticketID int64) ([]string, error) {
	return m.themeNames[ticketID], nil
}

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	users  map[int64]*domain.User
	nextID int64
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[int64]*domain.User), nextID: 1}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	for _, existing := range m.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	user, ok := m.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Image = &image
	return nil
}

// MockImageStore records saves without touching the filesystem
type MockImageStore struct {
	saved []string
}

func (m *MockImageStore) Save(prefix, name, ext string, r io.Reader) (string, error) {
	io.Copy(io.Discard, r)
	path := prefix + "/" + name + ext
	m.saved = append(m.saved, path)
	return path, nil
}
