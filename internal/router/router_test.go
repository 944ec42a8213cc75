package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vax-tracker/internal/router"
)

var refNow = time.Date(2025, 8, 5, 15, 0, 0, 0, time.UTC)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Now: func() time.Time { return refNow },
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Login_AllRoles(t *testing.T) {
	ts := newServer(t)

	cases := []struct {
		email, password, role, name string
		menu                        int
	}{
		{"admin@vaxtracker.com", "admin123", "admin", "System Administrator", 9},
		{"vet@vaxtracker.com", "vet123", "veterinarian", "Dr. Maria Cruz", 8},
		{"user@vaxtracker.com", "user123", "user", "Jose Santos", 8},
	}
	for _, c := range cases {
		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    c.email,
			"password": c.password,
		})
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200 login, got %d body=%s", c.email, st, string(body))
		}
		var resp struct {
			Token       string `json:"token"`
			Role        string `json:"role"`
			DisplayName string `json:"display_name"`
			View        struct {
				CurrentPage string `json:"current_page"`
			} `json:"view"`
			Menu []json.RawMessage `json:"menu"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Token == "" || resp.Role != c.role || resp.DisplayName != c.name {
			t.Fatalf("%s: unexpected session body=%s", c.email, string(body))
		}
		if resp.View.CurrentPage != "dashboard" {
			t.Fatalf("%s: expected dashboard, got %q", c.email, resp.View.CurrentPage)
		}
		if len(resp.Menu) != c.menu {
			t.Fatalf("%s: expected %d menu entries, got %d", c.email, c.menu, len(resp.Menu))
		}
	}

	st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
		"email":    "admin@vaxtracker.com",
		"password": "vet123",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", st)
	}
}

func TestHTTP_Navigate_And_Logout(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, "user@vaxtracker.com", "user123")

	{
		st, body := doReq(t, ts.URL, "POST", "/me/navigate", token, map[string]any{
			"page":               "pet-profile",
			"selected_entity_id": "PET123456",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 navigate, got %d body=%s", st, string(body))
		}
	}

	// admin para un rol no admin resuelve a dashboard y conserva la entidad
	{
		st, body := doReq(t, ts.URL, "POST", "/me/navigate", token, map[string]any{"page": "admin"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 navigate, got %d body=%s", st, string(body))
		}
		var view struct {
			CurrentPage      string `json:"current_page"`
			SelectedEntityID string `json:"selected_entity_id"`
		}
		_ = json.Unmarshal(body, &view)
		if view.CurrentPage != "dashboard" || view.SelectedEntityID != "PET123456" {
			t.Fatalf("unexpected view after admin navigation: %s", string(body))
		}
	}

	{
		st, _ := doReq(t, ts.URL, "POST", "/me/navigate", token, map[string]any{"page": "settings"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown page, got %d", st)
		}
	}

	{
		st, body := doReq(t, ts.URL, "POST", "/auth/logout", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logout, got %d body=%s", st, string(body))
		}
	}

	// el token deja de ser válido
	{
		st, _ := doReq(t, ts.URL, "GET", "/me", token, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets", token, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 listing pets after logout, got %d", st)
		}
	}
}

func TestHTTP_PetList_Filters(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, "vet@vaxtracker.com", "vet123")

	cases := map[string]int{
		"/pets?species=dog":                   3,
		"/pets?species=cat&q=Buddy":           0,
		"/pets?species=all&status=all&q=":     5,
		"/pets?status=overdue":                1,
		"/pets?location=municipality-b":       2,
		"/pets?species=cat&status=up-to-date": 1,
	}
	for path, want := range cases {
		st, body := doReq(t, ts.URL, "GET", path, token, nil)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d body=%s", path, st, string(body))
		}
		var resp struct {
			Showing int `json:"showing"`
			Total   int `json:"total"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Showing != want || resp.Total != 5 {
			t.Fatalf("%s: expected showing=%d total=5, got body=%s", path, want, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/pets/PET789012", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet profile, got %d body=%s", st, string(body))
		}
		var p struct {
			Name   string `json:"name"`
			Status string `json:"vaccination_status"`
		}
		_ = json.Unmarshal(body, &p)
		if p.Name != "Luna" || p.Status != "Overdue" {
			t.Fatalf("unexpected profile: %s", string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/PET000000", token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown pet, got %d", st)
		}
	}
}

func TestHTTP_RegisterAndVaccinate(t *testing.T) {
	ts := newServer(t)
	token := login(t, ts.URL, "vet@vaxtracker.com", "vet123")

	var petID string
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", token, map[string]any{
			"owner_name":     "Lorna Dizon",
			"address":        "Barangay 5, Municipality B",
			"contact_number": "+63 917 000 1111",
			"pet_name":       "Choco",
			"pet_type":       "Dog",
			"breed":          "Aspin",
			"gender":         "Male",
			"age":            "2 years",
			"color_markings": "Brown",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			Pet struct {
				ID string `json:"id"`
			} `json:"pet"`
			QRPayload string `json:"qr_payload"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Pet.ID == "" || resp.QRPayload == "" {
			t.Fatalf("register pet: missing id or qr body=%s", string(body))
		}
		petID = resp.Pet.ID
	}

	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/vaccinations", token, map[string]any{
			"vaccine_type": "Rabies Vaccine",
			"batch_no":     "RV2025-002",
			"location":     "Municipal Veterinary Office",
			"veterinarian": "Dr. Maria Cruz",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record vaccination, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/vaccinations/today?q=Choco", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 vaccinated today, got %d body=%s", st, string(body))
		}
		var resp struct {
			Items []struct {
				PetID        string `json:"pet_id"`
				Municipality string `json:"municipality"`
			} `json:"items"`
			Counts struct {
				Total int `json:"total"`
			} `json:"counts"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Items) != 1 || resp.Items[0].PetID != petID || resp.Items[0].Municipality != "Municipality B" {
			t.Fatalf("unexpected vaccinated today: %s", string(body))
		}
		if resp.Counts.Total != 7 {
			t.Fatalf("expected 7 records today, got %d", resp.Counts.Total)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet profile, got %d body=%s", st, string(body))
		}
		var p struct {
			Status  string `json:"vaccination_status"`
			NextDue string `json:"next_vaccination_due"`
			History []struct {
				Status string `json:"status"`
			} `json:"vaccination_history"`
		}
		_ = json.Unmarshal(body, &p)
		if p.Status != "Up to date" || p.NextDue != "2026-08-05" || len(p.History) != 1 || p.History[0].Status != "Current" {
			t.Fatalf("unexpected profile after vaccination: %s", string(body))
		}
	}
}

func TestHTTP_Admin_RoleGated(t *testing.T) {
	ts := newServer(t)
	vet := login(t, ts.URL, "vet@vaxtracker.com", "vet123")
	adm := login(t, ts.URL, "admin@vaxtracker.com", "admin123")

	for _, path := range []string{"/admin/users", "/admin/vaccines", "/admin/logs", "/admin/stats"} {
		st, _ := doReq(t, ts.URL, "GET", path, vet, nil)
		if st != http.StatusForbidden {
			t.Fatalf("%s: expected 403 for veterinarian, got %d", path, st)
		}
		st, _ = doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without token, got %d", path, st)
		}
		st, body := doReq(t, ts.URL, "GET", path, adm, nil)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200 for admin, got %d body=%s", path, st, string(body))
		}
	}

	// los logins quedaron en el log del sistema
	st, body := doReq(t, ts.URL, "GET", "/admin/logs?severity=info", adm, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 logs, got %d", st)
	}
	var logs []struct {
		Action string `json:"action"`
		User   string `json:"user"`
	}
	_ = json.Unmarshal(body, &logs)
	if len(logs) == 0 || logs[0].Action != "User Login" || logs[0].User != "System Administrator" {
		t.Fatalf("expected newest log to be the admin login, got %s", string(body))
	}
}

func TestHTTP_Dashboard(t *testing.T) {
	ts := newServer(t)
	adm := login(t, ts.URL, "admin@vaxtracker.com", "admin123")

	st, body := doReq(t, ts.URL, "GET", "/dashboard", adm, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
	}
	var resp struct {
		Stats struct {
			Registered int `json:"total_registered_pets"`
			Today      int `json:"pets_vaccinated_today"`
		} `json:"stats"`
		QuickActions   []json.RawMessage `json:"quick_actions"`
		RecentActivity []json.RawMessage `json:"recent_activity"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Stats.Registered != 5 || resp.Stats.Today != 4 {
		t.Fatalf("unexpected dashboard stats: %s", string(body))
	}
	if len(resp.QuickActions) != 7 || len(resp.RecentActivity) != 3 {
		t.Fatalf("unexpected dashboard lists: %s", string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/dashboard", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 dashboard without token, got %d", st)
	}
}

func TestHTTP_FormOptions_RequireToken(t *testing.T) {
	ts := newServer(t)
	vet := login(t, ts.URL, "vet@vaxtracker.com", "vet123")

	for _, path := range []string{"/vaccinations/options", "/rabies-cases/options"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 %s without token, got %d", path, st)
		}
		st, body := doReq(t, ts.URL, "GET", path, vet, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 %s, got %d body=%s", path, st, string(body))
		}
	}
}

func TestHTTP_Vaccinate_RejectsDateBeforeLastDose(t *testing.T) {
	ts := newServer(t)
	vet := login(t, ts.URL, "vet@vaxtracker.com", "vet123")

	st, body := doReq(t, ts.URL, "POST", "/pets/PET123456/vaccinations", vet, map[string]any{
		"vaccine_type": "Rabies Vaccine",
		"batch_no":     "RV2025-002",
		"location":     "Municipal Veterinary Office",
		"veterinarian": "Dr. Maria Cruz",
		"date":         "2023-01-01",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 backdated vaccination, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/pets/PET123456", vet, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 pet profile, got %d body=%s", st, string(body))
	}
	var resp struct {
		Status string `json:"vaccination_status"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Status != "Up to date" {
		t.Fatalf("expected Buddy to stay up to date, body=%s", string(body))
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t)
	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("login: missing token body=%s", string(body))
	}
	return resp.Token
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
