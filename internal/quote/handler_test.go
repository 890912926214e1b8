package quote

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quartzcompany/worktops-backend/internal/attachment"
	"github.com/quartzcompany/worktops-backend/internal/submission"
	"go.uber.org/zap"
)

type testEnv struct {
	app   *fiber.App
	sub   *fakeSubmitter
	spam  *submission.SpamCounter
	store *Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		sub:   &fakeSubmitter{},
		spam:  submission.NewSpamCounter(zap.NewNop()),
		store: NewStore(time.Hour),
	}
	svc := NewService(env.store, catalogue(), env.sub, attachment.NewDiskStore(t.TempDir()), env.spam, zap.NewNop())
	env.app = fiber.New()
	NewHandler(svc).RegisterPublicRoutes(env.app)
	return env
}

func (e *testEnv) do(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, url, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	out := map[string]any{}
	if strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		json.NewDecoder(res.Body).Decode(&out)
	}
	return res, out
}

func (e *testEnv) start(t *testing.T, query string) string {
	t.Helper()
	res, body := e.do(t, "POST", "/api/v1/quotes"+query, nil)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	return body["id"].(string)
}

func TestQuoteRoutes_FullFlow(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t, "?product=calacatta-gold")
	base := "/api/v1/quotes/" + id

	res, body := env.do(t, "PUT", base+"/worktop", map[string]any{"productIds": []int{1}, "runLength": 0, "depth": 600})
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for zero run length, got %d", res.StatusCode)
	}
	if errs := body["errors"].(map[string]any); errs["runLength"] == nil {
		t.Fatalf("expected runLength error, got %v", errs)
	}

	res, body = env.do(t, "PUT", base+"/worktop", map[string]any{"productIds": []int{1}, "runLength": 3000, "depth": 600})
	if res.StatusCode != 200 || body["step"] != string(StepContact) {
		t.Fatalf("expected contact step, got %d %v", res.StatusCode, body["step"])
	}

	res, body = env.do(t, "POST", base+"/back", nil)
	if res.StatusCode != 200 || body["step"] != string(StepWorktop) {
		t.Fatalf("expected worktop step after back, got %d %v", res.StatusCode, body["step"])
	}
	env.do(t, "PUT", base+"/worktop", map[string]any{"productIds": []int{1}, "runLength": 3000, "depth": 600})

	contact := map[string]any{"name": "Ann", "email": "ann@example.com", "phone": "0123", "postcode": "not a postcode"}
	res, body = env.do(t, "PUT", base+"/contact", contact)
	if res.StatusCode != 400 || body["errors"].(map[string]any)["postcode"] == nil {
		t.Fatalf("expected postcode error, got %d %v", res.StatusCode, body)
	}

	contact["postcode"] = "SW1A 1AA"
	res, body = env.do(t, "PUT", base+"/contact", contact)
	if res.StatusCode != 200 || body["step"] != string(StepConfirmation) || body["reference"] != "QT-TEST0001" {
		t.Fatalf("expected confirmation, got %d %v", res.StatusCode, body)
	}

	res, _ = env.do(t, "POST", base+"/back", nil)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 after confirmation, got %d", res.StatusCode)
	}

	res, _ = env.do(t, "GET", base+"/summary.pdf", nil)
	if res.StatusCode != 200 || res.Header.Get("Content-Type") != "application/pdf" {
		t.Fatalf("expected pdf, got %d %s", res.StatusCode, res.Header.Get("Content-Type"))
	}
	pdf, _ := io.ReadAll(res.Body)
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("summary is not a pdf")
	}

	res, _ = env.do(t, "DELETE", base, nil)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	res, body = env.do(t, "GET", base, nil)
	if res.StatusCode != 404 || body["back"] != "/quote" {
		t.Fatalf("expected 404 after discard, got %d", res.StatusCode)
	}
}

func TestQuoteRoutes_UnknownPreselectedProduct(t *testing.T) {
	env := newTestEnv(t)
	res, body := env.do(t, "POST", "/api/v1/quotes?product=unobtainium", nil)
	if res.StatusCode != 404 || body["back"] != "/colours" {
		t.Fatalf("expected 404 with recovery link, got %d %v", res.StatusCode, body)
	}
}

func TestQuoteRoutes_SummaryBeforeConfirmation(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t, "")
	res, _ := env.do(t, "GET", "/api/v1/quotes/"+id+"/summary.pdf", nil)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
}

func TestQuoteRoutes_HoneypotLooksLikeSuccess(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t, "?product=pure-white")
	base := "/api/v1/quotes/" + id
	env.do(t, "PUT", base+"/worktop", map[string]any{"productIds": []int{12}, "runLength": 1000, "depth": 600})

	res, body := env.do(t, "PUT", base+"/contact", map[string]any{"website": "spam.example"})
	if res.StatusCode != 200 || body["step"] != string(StepConfirmation) {
		t.Fatalf("expected silent confirmation, got %d %v", res.StatusCode, body)
	}
	if len(env.sub.payloads) != 0 {
		t.Fatalf("spam must not be submitted")
	}
	if env.spam.Snapshot()["quote"] != 1 {
		t.Fatalf("honeypot hit not counted")
	}
}

func TestQuoteRoutes_SubmitFailureIsRetryable(t *testing.T) {
	env := newTestEnv(t)
	env.sub.err = errors.New("smtp down")
	id := env.start(t, "")
	base := "/api/v1/quotes/" + id
	env.do(t, "PUT", base+"/worktop", map[string]any{"productIds": []int{2}, "runLength": 1000, "depth": 600})

	res, body := env.do(t, "PUT", base+"/contact", map[string]any{
		"name": "Ann", "email": "ann@example.com", "phone": "0123", "postcode": "NN1 1AA",
	})
	if res.StatusCode != fiber.StatusBadGateway || body["retryable"] != true {
		t.Fatalf("expected retryable 502, got %d %v", res.StatusCode, body)
	}
	f, _ := env.store.Get(id)
	if f.Step != StepContact || f.Draft.Contact.Postcode != "NN1 1AA" {
		t.Fatalf("draft must stay on contact step with data, got %s %+v", f.Step, f.Draft.Contact)
	}
}

func uploadRequest(t *testing.T, url, name string, size int) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	part.Write(bytes.Repeat([]byte("x"), size))
	writer.Close()

	req := httptest.NewRequest("POST", url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestQuoteRoutes_Attachment(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t, "")
	url := "/api/v1/quotes/" + id + "/attachment"

	res, err := env.app.Test(uploadRequest(t, url, "plan.png", 64))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	res, _ = env.app.Test(uploadRequest(t, url, "virus.exe", 64))
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for exe, got %d", res.StatusCode)
	}
	f, _ := env.store.Get(id)
	if f.Draft.Worktop.Attachment == nil || f.Draft.Worktop.Attachment.Name != "plan.png" {
		t.Fatalf("rejected upload replaced attachment: %+v", f.Draft.Worktop.Attachment)
	}
	if !f.Errors.Has("file") {
		t.Fatalf("expected file error on draft")
	}
}

func TestQuoteRequests_OneShot(t *testing.T) {
	env := newTestEnv(t)
	req := map[string]any{
		"worktop": map[string]any{"productIds": []int{1, 5}, "runLength": 3000, "depth": 600, "thickness": "30mm"},
		"contact": map[string]any{"name": "Ann", "email": "ann@example.com", "phone": "0123", "postcode": "SW1A 1AA", "wantSamples": true},
	}
	res, body := env.do(t, "POST", "/api/v1/quote-requests", req)
	if res.StatusCode != fiber.StatusCreated || body["reference"] != "QT-TEST0001" {
		t.Fatalf("expected 201 with reference, got %d %v", res.StatusCode, body)
	}
	if len(env.sub.payloads) != 1 || len(env.sub.payloads[0].SelectedProducts) != 2 {
		t.Fatalf("unexpected submissions %+v", env.sub.payloads)
	}

	bad := map[string]any{"worktop": map[string]any{"runLength": 3000, "depth": 600}}
	res, body = env.do(t, "POST", "/api/v1/quote-requests", bad)
	if res.StatusCode != 400 || body["errors"].(map[string]any)["product"] == nil {
		t.Fatalf("expected product error, got %d %v", res.StatusCode, body)
	}

	spam := map[string]any{"website": "x"}
	res, body = env.do(t, "POST", "/api/v1/quote-requests", spam)
	if res.StatusCode != fiber.StatusCreated || body["step"] != string(StepConfirmation) {
		t.Fatalf("expected silent confirmation for spam, got %d %v", res.StatusCode, body)
	}
	if len(env.sub.payloads) != 1 {
		t.Fatalf("spam must not be submitted")
	}
}

func TestQuoteRoutes_WorktopIgnoresPostedAttachment(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t, "")
	base := "/api/v1/quotes/" + id
	forged := map[string]any{"name": "payload.exe", "size": 50 << 20, "key": "../../etc/passwd"}

	res, body := env.do(t, "PUT", base+"/worktop", map[string]any{
		"productIds": []int{1}, "runLength": 3000, "depth": 600, "attachment": forged,
	})
	if res.StatusCode != 200 || body["step"] != string(StepContact) {
		t.Fatalf("expected contact step, got %d %v", res.StatusCode, body)
	}
	f, _ := env.store.Get(id)
	if f.Draft.Worktop.Attachment != nil {
		t.Fatalf("posted attachment must be ignored, got %+v", f.Draft.Worktop.Attachment)
	}

	// an uploaded plan survives a worktop update that names another file
	env.do(t, "POST", base+"/back", nil)
	if res, _ := env.app.Test(uploadRequest(t, base+"/attachment", "plan.pdf", 64)); res.StatusCode != 200 {
		t.Fatalf("upload failed with %d", res.StatusCode)
	}
	env.do(t, "PUT", base+"/worktop", map[string]any{
		"productIds": []int{1}, "runLength": 3000, "depth": 600, "attachment": forged,
	})
	f, _ = env.store.Get(id)
	if f.Draft.Worktop.Attachment == nil || f.Draft.Worktop.Attachment.Name != "plan.pdf" ||
		strings.Contains(f.Draft.Worktop.Attachment.Key, "..") {
		t.Fatalf("stored plan replaced by posted attachment: %+v", f.Draft.Worktop.Attachment)
	}
}

func TestQuoteRequests_PostedAttachmentIgnored(t *testing.T) {
	env := newTestEnv(t)
	forged := map[string]any{"name": "payload.exe", "size": 50 << 20, "key": "../../etc/passwd"}

	res, _ := env.do(t, "POST", "/api/v1/quote-requests", map[string]any{
		"worktop": map[string]any{"productIds": []int{1}, "runLength": 3000, "depth": 600, "attachment": forged},
		"contact": map[string]any{"name": "Ann", "email": "ann@example.com", "phone": "0123", "postcode": "SW1A 1AA"},
	})
	if res.StatusCode != fiber.StatusCreated || len(env.sub.payloads) != 1 {
		t.Fatalf("expected one submission, got %d", res.StatusCode)
	}
	plan := env.sub.payloads[0].KitchenPlan
	if plan.File != nil || plan.FileName != "" || plan.Mode != PlanDimensions {
		t.Fatalf("posted attachment reached the payload: %+v", plan)
	}

	_, body := env.do(t, "POST", "/api/v1/quote-requests", map[string]any{
		"website": "x",
		"worktop": map[string]any{"attachment": forged},
	})
	worktop := body["draft"].(map[string]any)["worktop"].(map[string]any)
	if worktop["attachment"] != nil {
		t.Fatalf("spam draft kept posted attachment: %v", worktop["attachment"])
	}
}

func TestQuoteRequests_BlankHoneypotIsNotSpam(t *testing.T) {
	env := newTestEnv(t)
	res, body := env.do(t, "POST", "/api/v1/quote-requests", map[string]any{
		"website": "   ",
		"worktop": map[string]any{"productIds": []int{2}, "runLength": 2000, "depth": 600},
		"contact": map[string]any{"name": "Ann", "email": "ann@example.com", "phone": "0123", "postcode": "NN1 1AA"},
	})
	if res.StatusCode != fiber.StatusCreated || body["reference"] != "QT-TEST0001" {
		t.Fatalf("expected real submission, got %d %v", res.StatusCode, body)
	}
	if len(env.sub.payloads) != 1 || env.spam.Snapshot()["quote"] != 0 {
		t.Fatalf("blank decoy must be treated as a normal request")
	}
}

func TestQuoteRoutes_ProductRemovedBeforeSubmit(t *testing.T) {
	env := newTestEnv(t)
	id := env.start(t, "")
	base := "/api/v1/quotes/" + id
	env.do(t, "PUT", base+"/worktop", map[string]any{"productIds": []int{1}, "runLength": 3000, "depth": 600})

	// the colour leaves the range between the two steps
	env.store.Update(id, func(f *Flow) error {
		f.Draft.Worktop.ProductIDs = []int{999}
		return nil
	})

	res, body := env.do(t, "PUT", base+"/contact", map[string]any{
		"name": "Ann", "email": "ann@example.com", "phone": "0123", "postcode": "NN1 1AA",
	})
	if res.StatusCode != 400 || body["errors"].(map[string]any)["product"] == nil {
		t.Fatalf("expected product field error, got %d %v", res.StatusCode, body)
	}
	if len(env.sub.payloads) != 0 {
		t.Fatalf("nothing should be submitted")
	}
	if f, _ := env.store.Get(id); f.Step != StepContact || f.Draft.Contact.Name != "Ann" {
		t.Fatalf("draft must stay on contact with data, got %s", f.Step)
	}
}
