package intake

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

// Draft is the serialized form kept between page requests.
type Draft struct {
	Step    Step                `json:"step"`
	Request types.ReportRequest `json:"request"`
}

// Draft snapshots the form.
func (f *Form) Draft() Draft {
	return Draft{Step: f.step, Request: f.request}
}

// FromDraft restores a form. Out-of-range steps restart at Step1 and a
// submitted draft is never restored.
func FromDraft(d Draft) *Form {
	f := &Form{step: d.Step, request: d.Request}
	if f.step < Step1 || f.step > Step3 {
		f.step = Step1
	}
	return f
}

// DraftStore keeps one in-progress form per user.
type DraftStore interface {
	// Load returns nil, nil when the user has no draft.
	Load(ctx context.Context, userID uuid.UUID) (*Form, error)
	Save(ctx context.Context, userID uuid.UUID, f *Form) error
	Delete(ctx context.Context, userID uuid.UUID) error
	// Take loads and removes the draft in one step, so only one of several
	// concurrent callers receives it. It returns nil, nil when there is none.
	Take(ctx context.Context, userID uuid.UUID) (*Form, error)
}

const draftKeyPrefix = "intake:draft:"

func draftKey(userID uuid.UUID) string {
	return draftKeyPrefix + userID.String()
}

// RedisDraftStore stores drafts as JSON strings with a TTL.
type RedisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDraftStore creates a store on an existing client.
func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb, ttl: ttl}
}

// Load implements DraftStore.
func (s *RedisDraftStore) Load(ctx context.Context, userID uuid.UUID) (*Form, error) {
	raw, err := s.rdb.Get(ctx, draftKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "intake: load draft")
	}
	return decodeDraft(raw)
}

// Take implements DraftStore with GETDEL.
func (s *RedisDraftStore) Take(ctx context.Context, userID uuid.UUID) (*Form, error) {
	raw, err := s.rdb.GetDel(ctx, draftKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "intake: take draft")
	}
	return decodeDraft(raw)
}

func decodeDraft(raw []byte) (*Form, error) {
	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, eris.Wrap(err, "intake: decode draft")
	}
	return FromDraft(d), nil
}

// Save implements DraftStore. Saving refreshes the TTL.
func (s *RedisDraftStore) Save(ctx context.Context, userID uuid.UUID, f *Form) error {
	raw, err := json.Marshal(f.Draft())
	if err != nil {
		return eris.Wrap(err, "intake: encode draft")
	}
	if err := s.rdb.Set(ctx, draftKey(userID), raw, s.ttl).Err(); err != nil {
		return eris.Wrap(err, "intake: save draft")
	}
	return nil
}

// Delete implements DraftStore.
func (s *RedisDraftStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.rdb.Del(ctx, draftKey(userID)).Err(); err != nil {
		return eris.Wrap(err, "intake: delete draft")
	}
	return nil
}

type memoryDraft struct {
	draft     Draft
	expiresAt time.Time
}

// MemoryDraftStore is the single-process DraftStore used without Redis.
type MemoryDraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[uuid.UUID]memoryDraft
}

// NewMemoryDraftStore creates an empty store.
func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{
		ttl:    ttl,
		now:    time.Now,
		drafts: make(map[uuid.UUID]memoryDraft),
	}
}

// Load implements DraftStore.
func (s *MemoryDraftStore) Load(_ context.Context, userID uuid.UUID) (*Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[userID]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(d.expiresAt) {
		delete(s.drafts, userID)
		return nil, nil
	}
	return FromDraft(d.draft), nil
}

// Take implements DraftStore.
func (s *MemoryDraftStore) Take(_ context.Context, userID uuid.UUID) (*Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[userID]
	if !ok {
		return nil, nil
	}
	delete(s.drafts, userID)
	if !s.now().Before(d.expiresAt) {
		return nil, nil
	}
	return FromDraft(d.draft), nil
}

// Save implements DraftStore. Expired drafts of every user are dropped on
// the way.
func (s *MemoryDraftStore) Save(_ context.Context, userID uuid.UUID, f *Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, d := range s.drafts {
		if !now.Before(d.expiresAt) {
			delete(s.drafts, id)
		}
	}
	s.drafts[userID] = memoryDraft{draft: f.Draft(), expiresAt: now.Add(s.ttl)}
	return nil
}

// Delete implements DraftStore.
func (s *MemoryDraftStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
	return nil
}
