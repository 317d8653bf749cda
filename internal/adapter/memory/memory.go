// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"nutriplan/internal/domain"

	"github.com/google/uuid"
)

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	clients     map[uuid.UUID]domain.Client
	weighIns    []domain.WeighIn
	waterEvents []domain.WaterEvent
	users       []*domain.User
	sessions    map[string]*domain.Session

	weighInIDCounter int64
	waterIDCounter   int64
	userIDCounter    int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		clients:  make(map[uuid.UUID]domain.Client),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var (
	_ domain.ClientRepository  = (*DB)(nil)
	_ domain.WeightRepository  = (*DB)(nil)
	_ domain.WaterRepository   = (*DB)(nil)
	_ domain.UserRepository    = (*DB)(nil)
	_ domain.SessionRepository = (*SessionRepo)(nil)
)

func localDayBounds(localDay string) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", localDay, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return dayStart.UTC(), dayStart.AddDate(0, 0, 1).UTC(), nil
}

func cloneClient(c domain.Client) *domain.Client {
	c.DietaryRestrictions = slices.Clone(c.DietaryRestrictions)
	return &c
}

// --- ClientRepository ---

// CreateClient stores a new client.
func (db *DB) CreateClient(ctx context.Context, c *domain.Client) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.clients[c.ID]; ok {
		return errors.New("client already exists")
	}
	db.clients[c.ID] = *cloneClient(*c)
	return nil
}

// GetClient returns a client owned by coachID.
func (db *DB) GetClient(ctx context.Context, coachID int64, id uuid.UUID) (*domain.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.clients[id]
	if !ok || c.CoachID != coachID {
		return nil, nil
	}
	return cloneClient(c), nil
}

// ListClients returns a coach's clients ordered by name.
func (db *DB) ListClients(ctx context.Context, coachID int64) ([]domain.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Client, 0)
	for _, c := range db.clients {
		if c.CoachID == coachID {
			out = append(out, *cloneClient(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// UpdateClient replaces a stored client. CreatedAt is preserved.
func (db *DB) UpdateClient(ctx context.Context, c *domain.Client) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	old, ok := db.clients[c.ID]
	if !ok || old.CoachID != c.CoachID {
		return false, nil
	}
	updated := *cloneClient(*c)
	updated.CreatedAt = old.CreatedAt
	db.clients[c.ID] = updated
	return true, nil
}

// DeleteClient removes a client along with their weigh-ins and water events.
func (db *DB) DeleteClient(ctx context.Context, coachID int64, id uuid.UUID) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.clients[id]
	if !ok || c.CoachID != coachID {
		return false, nil
	}
	delete(db.clients, id)
	db.weighIns = slices.DeleteFunc(db.weighIns, func(w domain.WeighIn) bool { return w.ClientID == id })
	db.waterEvents = slices.DeleteFunc(db.waterEvents, func(w domain.WaterEvent) bool { return w.ClientID == id })
	return true, nil
}

// --- WeightRepository ---

// AddWeighIn adds a weigh-in.
func (db *DB) AddWeighIn(ctx context.Context, clientID uuid.UUID, value float64, unit string, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weighInIDCounter++
	id := db.weighInIDCounter

	db.weighIns = append(db.weighIns, domain.WeighIn{
		ID:        id,
		ClientID:  clientID,
		Value:     value,
		Unit:      unit,
		CreatedAt: createdAt.UTC(),
	})
	return id, nil
}

// DeleteLatestWeighIn deletes the client's most recent weigh-in.
func (db *DB) DeleteLatestWeighIn(ctx context.Context, clientID uuid.UUID) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	lastIdx := -1
	for i, w := range db.weighIns {
		if w.ClientID != clientID {
			continue
		}
		if lastIdx == -1 || w.CreatedAt.After(db.weighIns[lastIdx].CreatedAt) {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return false, nil
	}
	db.weighIns = slices.Delete(db.weighIns, lastIdx, lastIdx+1)
	return true, nil
}

// LatestWeighInForLocalDay returns the client's latest weigh-in for the given day.
func (db *DB) LatestWeighInForLocalDay(ctx context.Context, clientID uuid.UUID, localDay string) (*domain.WeighIn, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	dayStart, dayEnd, err := localDayBounds(localDay)
	if err != nil {
		return nil, err
	}

	var latest *domain.WeighIn
	for i := range db.weighIns {
		w := &db.weighIns[i]
		if w.ClientID != clientID || w.CreatedAt.Before(dayStart) || !w.CreatedAt.Before(dayEnd) {
			continue
		}
		if latest == nil || w.CreatedAt.After(latest.CreatedAt) {
			latest = w
		}
	}
	if latest == nil {
		return nil, nil
	}
	ret := *latest
	ret.Day = localDay
	return &ret, nil
}

// ListRecentWeighIns lists the client's most recent weigh-ins.
func (db *DB) ListRecentWeighIns(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.WeighIn, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeighIn, 0)
	for _, w := range db.weighIns {
		if w.ClientID == clientID {
			result = append(result, w)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	for i := range result {
		result[i].Day = result[i].CreatedAt.In(time.Local).Format("2006-01-02")
	}
	return result, nil
}

// --- WaterRepository ---

// AddWaterEvent adds a water event.
func (db *DB) AddWaterEvent(ctx context.Context, clientID uuid.UUID, deltaMl int, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.waterIDCounter++
	id := db.waterIDCounter

	db.waterEvents = append(db.waterEvents, domain.WaterEvent{
		ID:        id,
		ClientID:  clientID,
		DeltaMl:   deltaMl,
		CreatedAt: createdAt.UTC(),
	})
	return id, nil
}

// DeleteWaterEvent deletes a client's water event by ID. Unknown IDs are ignored.
func (db *DB) DeleteWaterEvent(ctx context.Context, clientID uuid.UUID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.waterEvents = slices.DeleteFunc(db.waterEvents, func(w domain.WaterEvent) bool {
		return w.ID == id && w.ClientID == clientID
	})
	return nil
}

// ListRecentWaterEvents lists the client's most recent water events.
func (db *DB) ListRecentWaterEvents(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.WaterEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WaterEvent, 0)
	for _, w := range db.waterEvents {
		if w.ClientID == clientID {
			result = append(result, w)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// WaterTotalForLocalDay returns the client's total water intake in mL for the given day.
func (db *DB) WaterTotalForLocalDay(ctx context.Context, clientID uuid.UUID, localDay string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	dayStart, dayEnd, err := localDayBounds(localDay)
	if err != nil {
		return 0, err
	}

	var total int
	for _, w := range db.waterEvents {
		if w.ClientID == clientID && !w.CreatedAt.Before(dayStart) && w.CreatedAt.Before(dayEnd) {
			total += w.DeltaMl
		}
	}
	return total, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
