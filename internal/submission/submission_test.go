package submission

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Save(context.Context, Envelope) error { return errors.New("disk full") }
func (failingStore) List(context.Context, Kind) ([]Envelope, error) {
	return nil, errors.New("disk full")
}

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, e Envelope) error {
	n.sent = append(n.sent, e.Reference)
	return n.err
}

func TestNewEnvelope_Reference(t *testing.T) {
	e, err := NewEnvelope(KindQuote, "Ann", "ann@example.com", map[string]int{"runLength": 3000})
	if err != nil {
		t.Fatalf("envelope: %v", err)
	}
	if !regexp.MustCompile(`^QT-[0-9A-F]{8}$`).MatchString(e.Reference) {
		t.Fatalf("unexpected reference %q", e.Reference)
	}
	if string(e.Payload) != `{"runLength":3000}` {
		t.Fatalf("unexpected payload %s", e.Payload)
	}
}

func TestRecorder_NotifierFailureIsNotFatal(t *testing.T) {
	store := NewMemoryStore()
	notifier := &recordingNotifier{err: errors.New("sendgrid down")}
	r := NewRecorder(store, notifier, zap.NewNop())

	e, _ := NewEnvelope(KindContact, "Ann", "ann@example.com", map[string]string{"message": "hi"})
	if err := r.Deliver(context.Background(), e); err != nil {
		t.Fatalf("expected delivery to succeed, got %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	items, _ := r.List(context.Background(), KindContact)
	if len(items) != 1 || items[0].Reference != e.Reference {
		t.Fatalf("expected stored envelope, got %+v", items)
	}
}

func TestRecorder_StoreFailureIsUnavailable(t *testing.T) {
	notifier := &recordingNotifier{}
	r := NewRecorder(failingStore{}, notifier, zap.NewNop())

	e, _ := NewEnvelope(KindQuote, "Ann", "ann@example.com", struct{}{})
	err := r.Deliver(context.Background(), e)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("must not notify when the record was not stored")
	}
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.Save(context.Background(), Envelope{Reference: "old", Kind: KindContact, CreatedAt: now.Add(-time.Hour)})
	s.Save(context.Background(), Envelope{Reference: "new", Kind: KindContact, CreatedAt: now})
	s.Save(context.Background(), Envelope{Reference: "q", Kind: KindQuote, CreatedAt: now})

	items, _ := s.List(context.Background(), KindContact)
	if len(items) != 2 || items[0].Reference != "new" {
		t.Fatalf("unexpected order: %+v", items)
	}
	all, _ := s.List(context.Background(), "")
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}

func TestPostgresStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(sqlx.NewDb(db, "sqlmock"))

	e, _ := NewEnvelope(KindShowroom, "Ann", "ann@example.com", map[string]string{"date": "2030-01-02"})
	mock.ExpectExec("INSERT INTO submission").
		WithArgs(e.Reference, "showroom", "Ann", "ann@example.com", `{"date":"2030-01-02"}`, e.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := store.Save(context.Background(), e); err != nil {
		t.Fatalf("save: %v", err)
	}

	rows := sqlmock.NewRows([]string{"reference", "kind", "name", "email", "payload", "created_at"}).
		AddRow(e.Reference, "showroom", "Ann", "ann@example.com", `{"date":"2030-01-02"}`, e.CreatedAt)
	mock.ExpectQuery("FROM submission WHERE kind = \\$1").WithArgs("showroom").WillReturnRows(rows)
	items, err := store.List(context.Background(), KindShowroom)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Kind != KindShowroom || string(items[0].Payload) != `{"date":"2030-01-02"}` {
		t.Fatalf("unexpected items %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSummary(t *testing.T) {
	e, _ := NewEnvelope(KindNewsletter, "", "ann@example.com", map[string]string{"email": "ann@example.com"})
	subject, body := Summary(e)
	if !strings.Contains(subject, e.Reference) || !strings.Contains(subject, "newsletter") {
		t.Fatalf("unexpected subject %q", subject)
	}
	if strings.Contains(body, "Name:") || !strings.Contains(body, `"email": "ann@example.com"`) {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestSpamCounter(t *testing.T) {
	s := NewSpamCounter(zap.NewNop())
	s.Hit("quote", "1.2.3.4")
	s.Hit("quote", "1.2.3.4")
	s.Hit("contact", "5.6.7.8")

	snap := s.Snapshot()
	if snap["quote"] != 2 || snap["contact"] != 1 {
		t.Fatalf("unexpected counts %v", snap)
	}
	snap["quote"] = 100
	if s.Snapshot()["quote"] != 2 {
		t.Fatalf("snapshot must be a copy")
	}
}

func TestAdminRoutes(t *testing.T) {
	r := NewRecorder(NewMemoryStore(), nil, zap.NewNop())
	spam := NewSpamCounter(zap.NewNop())
	e, _ := NewEnvelope(KindCareers, "Ann", "ann@example.com", map[string]string{"positionId": "cnc-operator"})
	r.Deliver(context.Background(), e)
	spam.Hit("careers", "1.1.1.1")

	app := fiber.New()
	NewHandler(r, spam).RegisterProtectedRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/admin/submissions?kind=careers", nil))
	var items []Envelope
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 || items[0].Reference != e.Reference {
		t.Fatalf("unexpected items %+v", items)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/admin/submissions?kind=fax", nil))
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for unknown kind, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/admin/spam", nil))
	var counts map[string]int
	json.NewDecoder(res.Body).Decode(&counts)
	if counts["careers"] != 1 {
		t.Fatalf("unexpected spam counts %v", counts)
	}
}

func TestIsSpam(t *testing.T) {
	cases := map[string]bool{
		"":             false,
		"   ":          false,
		"\t\n":         false,
		"x":            true,
		" example.com": true,
	}
	for in, want := range cases {
		if got := IsSpam(in); got != want {
			t.Errorf("IsSpam(%q) = %v, want %v", in, got, want)
		}
	}
}
