package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"megaCalc/internal/domain"
	"megaCalc/internal/ports"
)

var _ ports.ISessionStore = (*SessionStore)(nil)

// sessionDoc — документ в коллекции sessions: снимок состояния движка,
// по одному документу на сессию (upsert по session_id).
type sessionDoc struct {
	SessionID   string    `bson:"session_id"`
	Display     string    `bson:"display"`
	Operand0    string    `bson:"operand0"`
	Operand1    string    `bson:"operand1"`
	Operator    string    `bson:"operator"`
	Mode        int       `bson:"mode"`
	OperandHeld bool      `bson:"operand_held"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// SessionStore реализует ports.ISessionStore для MongoDB.
type SessionStore struct {
	client *Client
	log    *slog.Logger
}

// NewSessionStore возвращает хранилище сессий.
func NewSessionStore(client *Client, log *slog.Logger) *SessionStore {
	return &SessionStore{client: client, log: log}
}

// Save перезаписывает снимок сессии (upsert по session_id).
func (s *SessionStore) Save(ctx context.Context, st domain.SessionState) error {
	doc := sessionDoc{
		SessionID:   st.SessionID,
		Display:     st.Display,
		Operand0:    st.Operand0,
		Operand1:    st.Operand1,
		Operator:    st.Operator,
		Mode:        st.Mode,
		OperandHeld: st.OperandHeld,
		UpdatedAt:   st.UpdatedAt,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.client.Coll().ReplaceOne(ctx, bson.M{"session_id": st.SessionID}, doc, opts)
	if err != nil {
		s.log.Debug("session save failed", "session", st.SessionID, "error", err)
		return err
	}
	return nil
}

// Load возвращает снимок сессии. Если документа нет — found == false.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (domain.SessionState, bool, error) {
	var doc sessionDoc
	err := s.client.Coll().FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.SessionState{}, false, nil
		}
		s.log.Debug("session load failed", "session", sessionID, "error", err)
		return domain.SessionState{}, false, err
	}
	return domain.SessionState{
		SessionID:   doc.SessionID,
		Display:     doc.Display,
		Operand0:    doc.Operand0,
		Operand1:    doc.Operand1,
		Operator:    doc.Operator,
		Mode:        doc.Mode,
		OperandHeld: doc.OperandHeld,
		UpdatedAt:   doc.UpdatedAt,
	}, true, nil
}

// Ping проверяет доступность БД.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Client.Ping(ctx, nil)
}
